// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"user-management/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the user API on top of the usecase layer.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP server with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log.Named("http"),
		uc:  usecase,
	}
}

// RegisterHandlers mounts every route of the API on router.
func RegisterHandlers(router fiber.Router, h *Handler) {
	router.Get("/healthz", h.GetHealthz)

	router.Post("/users", h.PostUsers)
	router.Get("/users", h.GetUsers)
	router.Get("/users/:id", h.GetUsersId)
	router.Put("/users/:id", h.PutUsersId)
	router.Patch("/users/:id", h.PutUsersId)
	router.Delete("/users/:id", h.DeleteUsersId)
}
