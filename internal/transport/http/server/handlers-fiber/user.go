package handlers_fiber

import (
	"net/http"

	"user-management/internal/entities"
	"user-management/internal/mapper"
	"user-management/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// PostUsers creates a user.
func (h *Handler) PostUsers(c *fiber.Ctx) error {
	var body dto.CreateUserRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.INVALIDARGUMENT, "invalid body"))
	}

	usr, err := h.uc.CreateUser(c.UserContext(), mapper.FromCreateRequest(body))
	if err != nil {
		h.log.Errorw("failed to create user", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToUser(*usr))
}

// GetUsers lists all users.
func (h *Handler) GetUsers(c *fiber.Ctx) error {
	users, err := h.uc.ListUsers(c.UserContext())
	if err != nil {
		h.log.Errorw("failed to list users", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToUserList(users))
}

// GetUsersId returns one user.
func (h *Handler) GetUsersId(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}

	usr, err := h.uc.GetUser(c.UserContext(), id)
	if err != nil {
		h.log.Errorw("failed to get user", "error", err.Error(), "user_id", id)
		return writeError(c, err)
	}
	if usr == nil {
		return writeError(c, &entities.NotFoundError{ID: id})
	}
	return c.Status(http.StatusOK).JSON(mapper.ToUser(*usr))
}

// PutUsersId applies a partial update and returns the stored user.
func (h *Handler) PutUsersId(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}

	var body dto.UpdateUserRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			h.log.Errorw("failed to parse body", "error", err.Error())
			return c.Status(http.StatusBadRequest).JSON(errorResponse(dto.INVALIDARGUMENT, "invalid body"))
		}
	}

	usr, err := h.uc.UpdateUser(c.UserContext(), id, mapper.FromUpdateRequest(body))
	if err != nil {
		h.log.Errorw("failed to update user", "error", err.Error(), "user_id", id)
		return writeError(c, err)
	}
	if usr == nil {
		return writeError(c, &entities.NotFoundError{ID: id})
	}
	return c.Status(http.StatusOK).JSON(mapper.ToUser(*usr))
}

// DeleteUsersId removes a user.
func (h *Handler) DeleteUsersId(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, err)
	}

	if err := h.uc.RemoveUser(c.UserContext(), id); err != nil {
		h.log.Infow("failed to remove user", "error", err.Error(), "user_id", id)
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
