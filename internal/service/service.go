// Package service implements the conversational trip-planning orchestrator:
// phase control over the transcript, intake turns through the language
// model, and the grounded generation pipeline.
package service

import (
	"regexp"
	"time"

	"github.com/planwise/orchestrator/internal/enrich"
	"github.com/planwise/orchestrator/internal/intent"
	"github.com/planwise/orchestrator/internal/llm"
)

var affirmativeRe = regexp.MustCompile(`(?i)` + affirmativePattern)

// Service orchestrates conversation turns. It holds no per-conversation
// state; the transcript is caller-owned and every turn re-derives intent
// from it.
type Service struct {
	generator llm.Generator
	extractor *intent.Extractor
	enricher  *enrich.Coordinator
	router    *enrich.RouteEnricher

	city       string
	country    string
	llmTimeout time.Duration
}

// Options configures a Service.
type Options struct {
	DestinationCity    string
	DestinationCountry string
	LLMTimeout         time.Duration
}

// New creates the orchestrator service. The route enricher may be nil, in
// which case responses simply carry no route legs.
func New(generator llm.Generator, coordinator *enrich.Coordinator, router *enrich.RouteEnricher, opts Options) *Service {
	city := opts.DestinationCity
	if city == "" {
		city = "Toronto"
	}
	country := opts.DestinationCountry
	if country == "" {
		country = "Canada"
	}
	timeout := opts.LLMTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Service{
		generator:  generator,
		extractor:  intent.NewExtractor(city, country),
		enricher:   coordinator,
		router:     router,
		city:       city,
		country:    country,
		llmTimeout: timeout,
	}
}
