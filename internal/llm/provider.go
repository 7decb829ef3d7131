package llm

import "context"

// Message is one chat message sent to a provider.
type Message struct {
	Role    string `json:"role"` // "system", "user", or "assistant"
	Content string `json:"content"`
}

// Request is a text-generation request, provider-independent.
type Request struct {
	// Instructions is the system-level instruction block. It is prepended
	// to Messages in whatever form the provider's wire format requires.
	Instructions string

	// Messages is the conversation to generate from.
	Messages []Message

	// Temperature is the sampling temperature. nil uses the provider default.
	Temperature *float64

	// MaxTokens limits response length. 0 uses the provider default.
	MaxTokens int
}

// Provider is one text-generation backend. The gateway holds a small fixed
// set of providers in priority order; this is deliberately not an open
// plugin registry.
type Provider interface {
	// Name returns the provider identifier (e.g. "groq", "gemini").
	Name() string

	// Generate produces a completion for the request. Errors should be
	// wrapped with NewTransientError or NewFatalError so the gateway can
	// decide between retrying and falling through.
	Generate(ctx context.Context, req Request) (string, error)
}
