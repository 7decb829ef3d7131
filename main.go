package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/planwise/orchestrator/internal/adapter/budget"
	"github.com/planwise/orchestrator/internal/adapter/routes"
	"github.com/planwise/orchestrator/internal/adapter/venues"
	"github.com/planwise/orchestrator/internal/adapter/weather"
	"github.com/planwise/orchestrator/internal/config"
	"github.com/planwise/orchestrator/internal/enrich"
	"github.com/planwise/orchestrator/internal/llm"
	"github.com/planwise/orchestrator/internal/llm/providers"
	"github.com/planwise/orchestrator/internal/service"
	transport "github.com/planwise/orchestrator/internal/transport/http"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	log.Printf("Starting trip-planning orchestrator...")
	log.Printf("HTTP Port: %d", cfg.HTTPPort)
	log.Printf("Destination: %s, %s", cfg.DestinationCity, cfg.DestinationCountry)
	log.Printf("Venue catalog: %s", cfg.CatalogDSN)

	// Initialize language model providers, primary first
	var llmProviders []llm.Provider
	if cfg.GroqAPIKey != "" {
		llmProviders = append(llmProviders, providers.NewGroq(cfg.GroqAPIKey,
			providers.WithGroqModel(cfg.GroqModel),
			providers.WithGroqBaseURL(cfg.GroqBaseURL),
			providers.WithGroqTimeout(cfg.LLMTimeout)))
	}
	if cfg.GeminiAPIKey != "" {
		llmProviders = append(llmProviders, providers.NewGemini(cfg.GeminiAPIKey,
			providers.WithGeminiModel(cfg.GeminiModel),
			providers.WithGeminiBaseURL(cfg.GeminiBaseURL),
			providers.WithGeminiTimeout(cfg.LLMTimeout)))
	}
	gateway := llm.NewClient(llmProviders)

	// Initialize venue catalog store
	catalog, err := venues.NewStore(cfg.CatalogDSN, cfg.CatalogTTL)
	if err != nil {
		log.Fatalf("Failed to open venue catalog: %v", err)
	}
	defer catalog.Close()

	// Initialize enrichment adapters
	weatherClient := weather.NewClient()
	estimator := budget.NewEstimator()

	coordinator := enrich.NewCoordinator(weatherClient, estimator, catalog, enrich.Timeouts{
		Weather: cfg.WeatherTimeout,
		Budget:  cfg.BudgetTimeout,
		Venues:  cfg.VenueTimeout,
	}, cfg.VenueLimit)

	// Route decoration is optional: without a Maps key every leg fetch
	// fails and itineraries go out without legs.
	var router *enrich.RouteEnricher
	if cfg.MapsAPIKey != "" {
		routeClient := routes.NewClient(cfg.MapsAPIKey,
			routes.WithDirectionsURL(cfg.MapsBaseURL+"/directions/json"),
			routes.WithMode(cfg.RouteMode))
		router = enrich.NewRouteEnricher(routeClient, cfg.RouteTimeout, 4)
	} else {
		log.Printf("WARN: MAPS_API_KEY not set, itineraries will not include route legs")
	}

	// Initialize service
	svc := service.New(gateway, coordinator, router, service.Options{
		DestinationCity:    cfg.DestinationCity,
		DestinationCountry: cfg.DestinationCountry,
		LLMTimeout:         cfg.LLMTimeout,
	})

	// Create HTTP server
	server := transport.NewServer(svc)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := server.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Printf("API started on port %d", cfg.HTTPPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down orchestrator...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to shutdown server gracefully: %v", err)
	}

	log.Println("Orchestrator stopped")
}
