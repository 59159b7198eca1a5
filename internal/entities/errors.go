// Package entities contains core business entities and errors.
package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidArgument signals malformed request input.
	ErrInvalidArgument = errors.New("invalid argument")
)

// NotFoundError names the id that matched no user. It matches ErrUserNotFound.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("User with ID %d not found", e.ID)
}

// Is lets errors.Is(err, ErrUserNotFound) succeed.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrUserNotFound
}

// StoreError wraps a persistence failure. The message is the cause's message.
// Constraint is set when the store rejected the write on an integrity constraint.
type StoreError struct {
	Op         string
	Err        error
	Constraint bool
}

func (e *StoreError) Error() string {
	return e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// IsConstraintViolation reports whether err is a store rejection on an integrity constraint.
func IsConstraintViolation(err error) bool {
	var se *StoreError
	return errors.As(err, &se) && se.Constraint
}

// IsStoreError reports whether err carries a persistence failure.
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
