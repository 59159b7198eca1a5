package usecase

import (
	"context"

	"user-management/internal/entities"
)

// UserUsecaseInterface abstracts user lifecycle operations for delivery layer.
type UserUsecaseInterface interface {
	CreateUser(ctx context.Context, user entities.NewUser) (*entities.User, error)
	ListUsers(ctx context.Context) ([]entities.User, error)
	GetUser(ctx context.Context, id int64) (*entities.User, error)
	UpdateUser(ctx context.Context, id int64, patch entities.UserPatch) (*entities.User, error)
	RemoveUser(ctx context.Context, id int64) error
}

// HealthUsecaseInterface reports backing store health.
type HealthUsecaseInterface interface {
	Health(ctx context.Context) error
}
