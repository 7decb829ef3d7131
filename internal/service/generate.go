package service

import (
	"context"
	"errors"
	"log"

	"github.com/planwise/orchestrator/internal/domain"
	"github.com/planwise/orchestrator/internal/grounding"
	"github.com/planwise/orchestrator/internal/llm"
)

const generationFailedMessage = "I couldn't put together a reliable itinerary just now. Please try again."

// generate runs the grounded generation pipeline: concurrent enrichment,
// model generation against the venue catalog, grounding validation, route
// decoration, and assembly. Grounding rejection and total model failure
// are fatal for the turn; the phase stays at awaiting_confirmation so the
// client can retry the same confirmation.
func (s *Service) generate(ctx context.Context, transcript domain.Transcript) (domain.TurnResult, error) {
	ti := s.extractor.Extract(transcript)

	// Stage 1: weather, budget, venues in parallel.
	bundle := s.enricher.Enrich(ctx, ti)

	// Stage 2: model generation against the catalog.
	text, err := s.generateText(ctx, transcript, bundle, ti)
	if err != nil {
		if errors.Is(err, llm.ErrUnavailable) {
			log.Printf("ERROR: itinerary generation failed, no provider available: %v", err)
			return s.generationFailure(transcript), ErrRetryable
		}
		return domain.TurnResult{}, err
	}

	// Stage 3: grounding validation. Any violation rejects the whole
	// itinerary; there is no relaxed retry.
	itinerary, err := grounding.Parse(text)
	if err == nil {
		err = grounding.Validate(itinerary, domain.IndexVenues(bundle.Venues), ti.Pace)
	}
	if err != nil {
		log.Printf("ERROR: generated itinerary rejected: %v", err)
		return s.generationFailure(transcript), ErrRetryable
	}

	// Stage 4: route legs between consecutive venues.
	var legs []domain.RouteLeg
	if s.router != nil {
		legs = s.router.Legs(ctx, itinerary, ti.City, ti.Country)
	}

	// Stage 5: assembly.
	return assemble(transcript, text, bundle, legs), nil
}

// generateText builds the grounded prompt and calls the gateway.
func (s *Service) generateText(ctx context.Context, transcript domain.Transcript, bundle domain.EnrichmentBundle, ti domain.TripIntent) (string, error) {
	messages := s.intakeMessages(transcript)
	messages = append(messages, llm.Message{
		Role: "user",
		Content: "Please generate my itinerary now based on everything I told you. " +
			"Use ONLY venues from the venue list and include Source citations on every line.",
	})

	ctx, cancel := context.WithTimeout(ctx, s.llmTimeout)
	defer cancel()

	return s.generator.Generate(ctx, llm.Request{
		Instructions: buildItineraryPrompt(bundle.Venues, bundle.Weather, ti),
		Messages:     messages,
		MaxTokens:    4096,
	})
}

// generationFailure builds the fatal-for-turn result: a generic message,
// no phase advance, and a transcript without an assistant reply so the
// client re-sends the same confirmation.
func (s *Service) generationFailure(transcript domain.Transcript) domain.TurnResult {
	return domain.TurnResult{
		Transcript: transcript,
		Phase:      domain.PhaseAwaitingConfirmation,
		StillNeed:  []string{},
		Error:      generationFailedMessage,
	}
}
