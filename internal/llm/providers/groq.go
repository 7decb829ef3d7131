package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/planwise/orchestrator/internal/llm"
)

const (
	defaultGroqBaseURL = "https://api.groq.com/openai/v1"
	defaultGroqModel   = "llama-3.3-70b-versatile"
)

// Groq calls Groq's OpenAI-compatible chat completions endpoint.
type Groq struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// GroqOption configures a Groq provider.
type GroqOption func(*Groq)

// WithGroqModel overrides the default model.
func WithGroqModel(model string) GroqOption {
	return func(g *Groq) {
		if model != "" {
			g.model = model
		}
	}
}

// WithGroqBaseURL overrides the API base URL. Used in tests.
func WithGroqBaseURL(baseURL string) GroqOption {
	return func(g *Groq) {
		if baseURL != "" {
			g.baseURL = baseURL
		}
	}
}

// WithGroqTimeout sets the HTTP client timeout.
func WithGroqTimeout(timeout time.Duration) GroqOption {
	return func(g *Groq) {
		if timeout > 0 {
			g.httpClient.Timeout = timeout
		}
	}
}

// NewGroq creates a Groq provider with the given API key.
func NewGroq(apiKey string, opts ...GroqOption) *Groq {
	g := &Groq{
		apiKey:  apiKey,
		model:   defaultGroqModel,
		baseURL: defaultGroqBaseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Name implements llm.Provider.
func (g *Groq) Name() string {
	return "groq"
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature *float64      `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

// Generate implements llm.Provider against the chat completions API.
func (g *Groq) Generate(ctx context.Context, req llm.Request) (string, error) {
	messages := make([]chatMessage, 0, len(req.Messages)+1)
	if req.Instructions != "" {
		messages = append(messages, chatMessage{Role: "system", Content: req.Instructions})
	}
	for _, m := range req.Messages {
		messages = append(messages, chatMessage{Role: m.Role, Content: m.Content})
	}

	body := chatCompletionRequest{
		Model:       g.model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", llm.NewFatalError(fmt.Errorf("marshaling groq request: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", llm.NewFatalError(fmt.Errorf("creating groq request: %w", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", llm.NewTransientError(fmt.Errorf("calling groq API: %w", err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", llm.NewTransientError(fmt.Errorf("reading groq response: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		return "", classifyStatus("groq", resp.StatusCode, raw)
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(raw, &completion); err != nil {
		return "", llm.NewTransientError(fmt.Errorf("decoding groq response: %w", err))
	}
	if len(completion.Choices) == 0 {
		return "", llm.NewTransientError(fmt.Errorf("groq returned no choices"))
	}

	return completion.Choices[0].Message.Content, nil
}
