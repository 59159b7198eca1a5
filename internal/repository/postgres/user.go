package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"user-management/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	insertUserQuery = `INSERT INTO users(name, email) VALUES ($1, $2) RETURNING id, name, email`
	listUsersQuery  = `SELECT id, name, email FROM users ORDER BY id`
	selectUserQuery = `SELECT id, name, email FROM users WHERE id = $1`
	deleteUserQuery = `DELETE FROM users WHERE id = $1`
)

// InsertUser stores a new user and returns it with the generated id.
func (p *Postgres) InsertUser(ctx context.Context, user entities.NewUser) (*entities.User, error) {
	var u entities.User
	err := p.db.QueryRow(ctx, insertUserQuery, user.Name, user.Email).Scan(&u.ID, &u.Name, &u.Email)
	if err != nil {
		p.log.Errorw("failed to insert user", "error", err)
		return nil, storeError("insert user", err)
	}

	p.log.Infow("user inserted", "user_id", u.ID)
	return &u, nil
}

// ListUsers returns every stored user.
func (p *Postgres) ListUsers(ctx context.Context) ([]entities.User, error) {
	rows, err := p.db.Query(ctx, listUsersQuery)
	if err != nil {
		return nil, storeError("list users", err)
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		var u entities.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			p.log.Errorw("failed to scan user", "error", err)
			return nil, storeError("scan users", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		p.log.Errorw("failed to iterate users", "error", err)
		return nil, storeError("iterate users", err)
	}

	return users, nil
}

// GetUser fetches one user by id.
func (p *Postgres) GetUser(ctx context.Context, id int64) (*entities.User, error) {
	var u entities.User
	err := p.db.QueryRow(ctx, selectUserQuery, id).Scan(&u.ID, &u.Name, &u.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, storeError("get user", err)
	}
	return &u, nil
}

// UpdateUser writes the supplied fields and reports how many rows changed.
func (p *Postgres) UpdateUser(ctx context.Context, id int64, patch entities.UserPatch) (int64, error) {
	query, args := buildUpdate(id, patch)
	if query == "" {
		return 0, nil
	}

	tag, err := p.db.Exec(ctx, query, args...)
	if err != nil {
		p.log.Errorw("failed to update user", "error", err, "user_id", id)
		return 0, storeError("update user", err)
	}

	p.log.Infow("user updated", "user_id", id, "rows", tag.RowsAffected())
	return tag.RowsAffected(), nil
}

// DeleteUser removes a user and reports how many rows were deleted.
func (p *Postgres) DeleteUser(ctx context.Context, id int64) (int64, error) {
	tag, err := p.db.Exec(ctx, deleteUserQuery, id)
	if err != nil {
		p.log.Errorw("failed to delete user", "error", err, "user_id", id)
		return 0, storeError("delete user", err)
	}

	p.log.Infow("user deleted", "user_id", id, "rows", tag.RowsAffected())
	return tag.RowsAffected(), nil
}

// buildUpdate returns an empty query when the patch has no fields.
func buildUpdate(id int64, patch entities.UserPatch) (string, []any) {
	sets := make([]string, 0, 2)
	args := make([]any, 0, 3)

	if patch.Name != nil {
		args = append(args, *patch.Name)
		sets = append(sets, fmt.Sprintf("name = $%d", len(args)))
	}
	if patch.Email != nil {
		args = append(args, *patch.Email)
		sets = append(sets, fmt.Sprintf("email = $%d", len(args)))
	}
	if len(sets) == 0 {
		return "", nil
	}

	args = append(args, id)
	return fmt.Sprintf("UPDATE users SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args)), args
}

// storeError flags SQLSTATE class 23 (integrity constraint violation).
func storeError(op string, err error) *entities.StoreError {
	var pgErr *pgconn.PgError
	constraint := errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, "23")
	return &entities.StoreError{Op: op, Err: err, Constraint: constraint}
}
