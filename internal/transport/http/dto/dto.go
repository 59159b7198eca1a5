// Package dto holds the JSON shapes of the HTTP API.
package dto

// User is the wire representation of a user.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CreateUserRequest is the body of POST /users.
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpdateUserRequest is the body of PUT/PATCH /users/:id. Absent fields stay unchanged.
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

// ErrorCode classifies an error response.
type ErrorCode string

const (
	INVALIDARGUMENT ErrorCode = "INVALID_ARGUMENT"
	NOTFOUND        ErrorCode = "NOT_FOUND"
	CONFLICT        ErrorCode = "CONFLICT"
	INTERNAL        ErrorCode = "INTERNAL"
	UNAVAILABLE     ErrorCode = "UNAVAILABLE"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the code and message of an ErrorResponse.
type ErrorBody struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}
