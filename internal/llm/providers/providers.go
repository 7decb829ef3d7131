// Package providers implements the concrete language-model backends used by
// the gateway: Groq (primary) and Gemini (secondary).
package providers

import (
	"fmt"
	"net/http"

	"github.com/planwise/orchestrator/internal/llm"
)

// maxResponseSize limits provider response bodies to prevent memory
// exhaustion on a misbehaving endpoint.
const maxResponseSize = 10 * 1024 * 1024 // 10MB

// classifyStatus maps an HTTP error status to a transient or fatal error.
func classifyStatus(provider string, statusCode int, body []byte) error {
	preview := string(body)
	if len(preview) > 200 {
		preview = preview[:200] + "..."
	}
	err := fmt.Errorf("%s API error (status %d): %s", provider, statusCode, preview)

	switch {
	case statusCode == http.StatusTooManyRequests:
		return llm.NewTransientError(err)
	case statusCode >= 500:
		return llm.NewTransientError(err)
	case statusCode == http.StatusUnauthorized, statusCode == http.StatusForbidden:
		return llm.NewFatalError(err)
	default:
		return llm.NewFatalError(err)
	}
}
