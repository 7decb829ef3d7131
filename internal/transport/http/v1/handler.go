// Package v1 provides the public HTTP handlers for the trip-planning
// orchestrator.
package v1

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/planwise/orchestrator/internal/domain"
)

// Conversation runs one trip-planning turn against a caller-owned
// transcript.
type Conversation interface {
	Turn(ctx context.Context, transcript domain.Transcript, userInput string) (domain.TurnResult, error)
}

// Handler handles HTTP requests.
type Handler struct {
	service Conversation
}

// NewHandler creates a new handler.
func NewHandler(service Conversation) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/v1/chat", h.Chat)
	e.GET("/health", h.Health)
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": "0.1.0",
	})
}
