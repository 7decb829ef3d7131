package domain

// Turn is a single message in the conversation.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Transcript is the full ordered conversation history. It is owned by the
// caller; the orchestrator treats it as immutable input and returns an
// updated copy instead of mutating it in place.
type Transcript []Turn

// Append returns a new transcript with the given turns added. The receiver
// is never modified, even when it has spare capacity.
func (t Transcript) Append(turns ...Turn) Transcript {
	out := make(Transcript, 0, len(t)+len(turns))
	out = append(out, t...)
	return append(out, turns...)
}

// LastAssistant returns the most recent assistant turn, or nil if none exists.
func (t Transcript) LastAssistant() *Turn {
	for i := len(t) - 1; i >= 0; i-- {
		if t[i].Role == RoleAssistant {
			return &t[i]
		}
	}
	return nil
}

// UserTexts returns the content of every user turn in order.
func (t Transcript) UserTexts() []string {
	var out []string
	for _, turn := range t {
		if turn.Role == RoleUser {
			out = append(out, turn.Content)
		}
	}
	return out
}

// WithoutSystem returns the transcript with system turns removed.
// Used when rebuilding the message list around a different system prompt.
func (t Transcript) WithoutSystem() Transcript {
	out := make(Transcript, 0, len(t))
	for _, turn := range t {
		if turn.Role != RoleSystem {
			out = append(out, turn)
		}
	}
	return out
}
