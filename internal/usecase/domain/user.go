// Package domain contains application Usecases orchestrating domain logic by user.
package domain

import (
	"context"
	"errors"

	"user-management/internal/entities"
)

// CreateUser stores a new user. Store errors are returned as is.
func (u *Usecase) CreateUser(ctx context.Context, user entities.NewUser) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	created, err := u.repo.InsertUser(ctx, user)
	if err != nil {
		u.log.Errorw("failed to create user", "error", err)
		return nil, err
	}
	u.log.Infow("user created", "user_id", created.ID)
	return created, nil
}

// ListUsers returns all users in store order.
func (u *Usecase) ListUsers(ctx context.Context) ([]entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	users, err := u.repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []entities.User{}
	}
	return users, nil
}

// GetUser returns the user or nil when no row matches.
func (u *Usecase) GetUser(ctx context.Context, id int64) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.find(ctx, id)
}

// UpdateUser applies the patch and returns the user as read back after the write.
// The result is nil when the id matches no user.
func (u *Usecase) UpdateUser(ctx context.Context, id int64, patch entities.UserPatch) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if !patch.Empty() {
		if _, err := u.repo.UpdateUser(ctx, id, patch); err != nil {
			u.log.Errorw("failed to update user", "error", err, "user_id", id)
			return nil, err
		}
	}
	return u.find(ctx, id)
}

// RemoveUser deletes the user, failing with NotFoundError when nothing was deleted.
func (u *Usecase) RemoveUser(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	affected, err := u.repo.DeleteUser(ctx, id)
	if err != nil {
		u.log.Errorw("failed to remove user", "error", err, "user_id", id)
		return err
	}
	if affected == 0 {
		return &entities.NotFoundError{ID: id}
	}
	u.log.Infow("user removed", "user_id", id)
	return nil
}

func (u *Usecase) find(ctx context.Context, id int64) (*entities.User, error) {
	user, err := u.repo.GetUser(ctx, id)
	if errors.Is(err, entities.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
