package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/planwise/orchestrator/internal/domain"
	"github.com/planwise/orchestrator/internal/service"
)

type stubConversation struct {
	result        domain.TurnResult
	err           error
	gotInput      string
	gotTranscript domain.Transcript
}

func (s *stubConversation) Turn(ctx context.Context, transcript domain.Transcript, userInput string) (domain.TurnResult, error) {
	s.gotTranscript = transcript
	s.gotInput = userInput
	return s.result, s.err
}

func postChat(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.Chat(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

func TestChatSuccess(t *testing.T) {
	stub := &stubConversation{
		result: domain.TurnResult{
			Transcript: domain.Transcript{
				{Role: domain.RoleAssistant, Content: "Hello!"},
			},
			AssistantMessage: "Hello!",
			Phase:            domain.PhaseGreeting,
			StillNeed:        []string{"dates", "pace"},
		},
	}
	h := NewHandler(stub)

	rec := postChat(t, h, `{"transcript":[],"user_input":""}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp ChatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.TurnID == "" {
		t.Fatal("expected a turn_id")
	}
	if resp.Phase != domain.PhaseGreeting {
		t.Fatalf("expected greeting phase, got %q", resp.Phase)
	}
	if len(resp.StillNeed) != 2 {
		t.Fatalf("expected 2 still_need fields, got %v", resp.StillNeed)
	}
}

func TestChatForwardsTranscriptAndInput(t *testing.T) {
	stub := &stubConversation{}
	h := NewHandler(stub)

	body := `{"transcript":[{"role":"assistant","content":"When are you traveling?"}],"user_input":"next weekend"}`
	rec := postChat(t, h, body)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stub.gotInput != "next weekend" {
		t.Fatalf("expected user input forwarded, got %q", stub.gotInput)
	}
	if len(stub.gotTranscript) != 1 || stub.gotTranscript[0].Role != domain.RoleAssistant {
		t.Fatalf("expected transcript forwarded, got %+v", stub.gotTranscript)
	}
}

func TestChatRetryableFailure(t *testing.T) {
	stub := &stubConversation{
		result: domain.TurnResult{
			Phase: domain.PhaseAwaitingConfirmation,
			Error: "I couldn't put together a reliable itinerary just now. Please try again.",
		},
		err: fmt.Errorf("generation rejected: %w", service.ErrRetryable),
	}
	h := NewHandler(stub)

	rec := postChat(t, h, `{"transcript":[],"user_input":"yes"}`)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}

	var resp ChatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error == "" {
		t.Fatal("expected an error message in the body")
	}
	if resp.Phase != domain.PhaseAwaitingConfirmation {
		t.Fatalf("expected phase preserved for retry, got %q", resp.Phase)
	}
}

func TestChatInternalFailure(t *testing.T) {
	stub := &stubConversation{err: fmt.Errorf("catalog exploded")}
	h := NewHandler(stub)

	rec := postChat(t, h, `{"transcript":[],"user_input":"hi"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if bytes.Contains(rec.Body.Bytes(), []byte("exploded")) {
		t.Fatal("internal error detail must not leak to the client")
	}
}

func TestChatBadBody(t *testing.T) {
	h := NewHandler(&stubConversation{})

	rec := postChat(t, h, `{"transcript": "not an array"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	h := NewHandler(&stubConversation{})
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Health(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
