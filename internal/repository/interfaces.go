// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"user-management/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
	Ping(ctx context.Context) error
}

// UserInterface is the record store for users.
// GetUser returns entities.ErrUserNotFound on a miss; UpdateUser and
// DeleteUser report the number of rows affected.
type UserInterface interface {
	InsertUser(ctx context.Context, user entities.NewUser) (*entities.User, error)
	ListUsers(ctx context.Context) ([]entities.User, error)
	GetUser(ctx context.Context, id int64) (*entities.User, error)
	UpdateUser(ctx context.Context, id int64, patch entities.UserPatch) (int64, error)
	DeleteUser(ctx context.Context, id int64) (int64, error)
}
