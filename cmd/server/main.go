package main

import (
	"fmt"
	"log"
	"os"

	"github.com/autoquote/backend/config"
	httpDelivery "github.com/autoquote/backend/internal/delivery/http"
	"github.com/autoquote/backend/internal/infrastructure/extraction"
	"github.com/autoquote/backend/internal/infrastructure/store"
	"github.com/autoquote/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting AutoQuote Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Initialize infrastructure dependencies
	itemStore := store.NewMemoryStore()

	extractionClient := extraction.NewClient(
		cfg.Extraction.APIKey,
		cfg.Extraction.BaseURL,
		cfg.Extraction.RequestsPerMinute,
	)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		extractionClient.SetDebug(true)
		log.Printf("Extraction client debug mode enabled")
	}
	log.Printf("Extraction service: %s (%d req/min)",
		cfg.Extraction.BaseURL, cfg.Extraction.RequestsPerMinute)

	// Initialize usecase layer
	quoteService := usecase.NewQuoteService(
		itemStore,
		extractionClient,
		usecase.QuoteServiceConfig{
			Normalizer: usecase.NormalizerConfig{
				StripStems:  cfg.Normalizer.StripStems,
				StripTokens: cfg.Normalizer.StripTokens,
			},
			EnableDebugLogging: cfg.Matching.EnableDebugLogging,
		},
	)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(quoteService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
