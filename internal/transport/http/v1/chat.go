package v1

import (
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/planwise/orchestrator/internal/domain"
	"github.com/planwise/orchestrator/internal/service"
)

// ChatRequest is one conversation turn from the client. The transcript is
// caller-owned state: send back exactly what the previous response
// returned. Both fields may be empty to start a new conversation.
type ChatRequest struct {
	Transcript domain.Transcript `json:"transcript"`
	UserInput  string            `json:"user_input"`
}

// ChatResponse wraps the turn result with a server-assigned turn id.
type ChatResponse struct {
	TurnID string `json:"turn_id"`
	domain.TurnResult
}

// Chat processes one conversation turn.
// POST /v1/chat
func (h *Handler) Chat(c echo.Context) error {
	ctx := c.Request().Context()

	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	turnID := "turn_" + uuid.New().String()[:8]

	result, err := h.service.Turn(ctx, req.Transcript, req.UserInput)
	if err != nil {
		if errors.Is(err, service.ErrRetryable) {
			// The result still carries the transcript and phase the
			// client needs to retry the same turn.
			return c.JSON(http.StatusServiceUnavailable, ChatResponse{TurnID: turnID, TurnResult: result})
		}
		log.Printf("ERROR: chat turn %s failed: %v", turnID, err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to process turn"})
	}

	return c.JSON(http.StatusOK, ChatResponse{TurnID: turnID, TurnResult: result})
}
