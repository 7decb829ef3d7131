package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/planwise/orchestrator/internal/domain"
	"github.com/planwise/orchestrator/internal/llm"
)

// ErrRetryable marks turn failures the client should retry with the same
// input: the language model being unavailable, or a rejected generation.
var ErrRetryable = errors.New("turn failed, retry with the same input")

// Turn processes one conversation turn. The transcript is treated as
// immutable input; the result carries an updated copy. userInput may be
// empty to re-evaluate the current state (greeting on an empty transcript,
// or a re-send of the last question).
func (s *Service) Turn(ctx context.Context, transcript domain.Transcript, userInput string) (domain.TurnResult, error) {
	if len(transcript) == 0 && userInput == "" {
		return s.greeting(), nil
	}

	confirming := userInput != "" && s.isConfirming(transcript, userInput)

	if userInput != "" {
		transcript = transcript.Append(domain.Turn{Role: domain.RoleUser, Content: userInput})
	}

	if confirming {
		return s.generate(ctx, transcript)
	}
	return s.intake(ctx, transcript)
}

// greeting starts a conversation without calling the language model.
func (s *Service) greeting() domain.TurnResult {
	transcript := domain.Transcript{
		{Role: domain.RoleSystem, Content: intakeSystemPrompt},
		{Role: domain.RoleAssistant, Content: greetingMessage},
	}
	return domain.TurnResult{
		Transcript:       transcript,
		AssistantMessage: greetingMessage,
		Phase:            domain.PhaseGreeting,
		StillNeed:        domain.TripIntent{}.MissingFields(),
	}
}

// intake runs one collection turn. When every required field is present it
// emits the fixed confirmation question instead of calling the model, so
// the marker phrase is guaranteed and re-sends are idempotent.
func (s *Service) intake(ctx context.Context, transcript domain.Transcript) (domain.TurnResult, error) {
	ti := s.extractor.Extract(transcript)
	stillNeed := ti.MissingFields()

	if len(stillNeed) == 0 {
		question := confirmationQuestion(s.city)
		return domain.TurnResult{
			Transcript:       transcript.Append(domain.Turn{Role: domain.RoleAssistant, Content: question}),
			AssistantMessage: question,
			Phase:            domain.PhaseAwaitingConfirmation,
			StillNeed:        []string{},
		}, nil
	}

	messages := s.intakeMessages(transcript)

	ctx, cancel := context.WithTimeout(ctx, s.llmTimeout)
	defer cancel()

	reply, err := s.generator.Generate(ctx, llm.Request{
		Instructions: intakeSystemPrompt,
		Messages:     messages,
		MaxTokens:    1024,
	})
	if err != nil {
		if errors.Is(err, llm.ErrUnavailable) {
			log.Printf("ERROR: intake turn failed, no provider available: %v", err)
			return domain.TurnResult{
				Transcript: transcript,
				Phase:      domain.PhaseIntake,
				StillNeed:  stillNeed,
				Error:      "The assistant is temporarily unavailable. Please try again in a moment.",
			}, ErrRetryable
		}
		return domain.TurnResult{}, err
	}

	return domain.TurnResult{
		Transcript:       transcript.Append(domain.Turn{Role: domain.RoleAssistant, Content: reply}),
		AssistantMessage: reply,
		Phase:            domain.PhaseIntake,
		StillNeed:        stillNeed,
	}, nil
}

// intakeMessages converts the transcript to gateway messages, skipping
// system turns (the instruction block travels separately).
func (s *Service) intakeMessages(transcript domain.Transcript) []llm.Message {
	var messages []llm.Message
	for _, turn := range transcript.WithoutSystem() {
		messages = append(messages, llm.Message{Role: string(turn.Role), Content: turn.Content})
	}
	return messages
}

// isConfirming reports whether userInput is an affirmative reply to a
// confirmation question. Both conditions must hold: the most recent
// assistant turn carries the marker, and the reply matches the affirmative
// pattern. An unprompted "yes" stays in intake.
func (s *Service) isConfirming(transcript domain.Transcript, userInput string) bool {
	if !affirmativeRe.MatchString(strings.TrimSpace(userInput)) {
		return false
	}
	last := transcript.LastAssistant()
	return last != nil && strings.Contains(strings.ToLower(last.Content), confirmationMarker)
}
