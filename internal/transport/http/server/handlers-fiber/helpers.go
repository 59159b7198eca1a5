package handlers_fiber

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"user-management/internal/entities"
	"user-management/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := dto.INTERNAL
	msg := err.Error()

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = dto.INVALIDARGUMENT
	case errors.Is(err, entities.ErrUserNotFound):
		status = http.StatusNotFound
		code = dto.NOTFOUND
	case entities.IsConstraintViolation(err):
		status = http.StatusConflict
		code = dto.CONFLICT
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code dto.ErrorCode, msg string) dto.ErrorResponse {
	return dto.ErrorResponse{Error: dto.ErrorBody{Code: code, Message: msg}}
}

// parseID reads the :id path parameter as a positive base-10 integer.
func parseID(c *fiber.Ctx) (int64, error) {
	raw := c.Params("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: id must be a positive integer, got %q", entities.ErrInvalidArgument, raw)
	}
	return id, nil
}
