package main

// @title           Dar.ai Document Service API
// @version         1.0
// @description     Real-estate document generation API. Produces comparison, quote and recommendation PDFs enriched with AI narrative text.

// @host      localhost:8080
// @BasePath  /
// @schemes   http

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/dar-ai/darai-docs/internal/adapters/driven/ai"
	"github.com/dar-ai/darai-docs/internal/adapters/driven/jsonstore"
	"github.com/dar-ai/darai-docs/internal/adapters/driven/pdf"
	httpadapter "github.com/dar-ai/darai-docs/internal/adapters/driving/http"
	"github.com/dar-ai/darai-docs/internal/core/ports/driven"
	"github.com/dar-ai/darai-docs/internal/core/services"
)

var version = "dev"

func main() {
	// .env is optional, environment always wins
	_ = godotenv.Load()

	log.Printf("darai-docs %s starting", version)

	// Configuration from environment
	apiKey := getEnv("OPENROUTER_API_KEY", "")
	propertiesFile := getEnv("PROPERTIES_FILE", "data/properties.json")
	contactsFile := getEnv("CONTACTS_FILE", "data/contacts.json")
	port := getEnvInt("PORT", 8080)
	narrativeTimeout := time.Duration(getEnvInt("NARRATIVE_TIMEOUT_SEC", 20)) * time.Second

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	// ===== Data stores =====
	propertyStore := jsonstore.NewPropertyStore(propertiesFile)
	contactStore := jsonstore.NewContactStore(contactsFile)
	log.Printf("Loaded %d properties and %d contacts", propertyStore.Count(), contactStore.Count())

	// ===== Narrative provider =====
	var completer driven.TextCompleter
	if apiKey != "" {
		c, err := ai.NewOpenRouterCompleter(ai.Config{
			APIKey:  apiKey,
			Model:   getEnv("OPENROUTER_MODEL", ""),
			Timeout: narrativeTimeout,
		})
		if err != nil {
			log.Fatalf("Failed to configure narrative provider: %v", err)
		}
		defer c.Close()
		completer = c
		log.Printf("Narrative provider ready (model %s)", c.Model())
	} else {
		log.Println("OPENROUTER_API_KEY not set, narrative generation will use fallbacks")
	}

	// ===== Services =====
	catalogService := services.NewCatalogService(propertyStore, contactStore)
	narrativeService := services.NewNarrativeService(completer, logger)
	documentService := services.NewDocumentService(narrativeService, pdf.NewRenderer(), logger)

	// ===== HTTP server =====
	serverConfig := httpadapter.Config{
		Host:    getEnv("HOST", "0.0.0.0"),
		Port:    port,
		Version: version,
	}
	server := httpadapter.NewServer(serverConfig, catalogService, documentService, narrativeService)

	if err := server.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}
