// Package repository provides factory for repositories.
package repository

import (
	"context"
	"fmt"

	"user-management/config"
	"user-management/internal/repository/memory"
	"user-management/internal/repository/postgres"

	"go.uber.org/zap"
)

// Repository aggregates all persistence interfaces.
type Repository interface {
	LifecycleInterface
	UserInterface
}

// New constructs repository backend by name.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Repository, error) {
	switch name {
	case config.BackendPostgres:
		return postgres.New(ctx, log, cfg), nil
	case config.BackendMemory:
		return memory.New(log), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}
