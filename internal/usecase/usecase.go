package usecase

import (
	"context"
	"time"

	"user-management/internal/repository"
	"user-management/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	UserUsecaseInterface
	HealthUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, repo repository.Repository, timeout time.Duration) InterfaceUsecase {
	return domain.New(log, ctx, repo, timeout)
}
