package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dar-ai/darai-docs/internal/core/ports/driving"
)

// ServiceName is reported by the liveness endpoints
const ServiceName = "Dar.ai Document Service"

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	router     *http.ServeMux
	version    string

	// Services
	catalog   driving.CatalogService
	documents driving.DocumentService
	narrative driving.NarrativeService
}

// Config holds server configuration
type Config struct {
	Host    string
	Port    int
	Version string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Host:    "0.0.0.0",
		Port:    8080,
		Version: "dev",
	}
}

// NewServer creates a new HTTP server
func NewServer(
	cfg Config,
	catalog driving.CatalogService,
	documents driving.DocumentService,
	narrative driving.NarrativeService,
) *Server {
	s := &Server{
		router:    http.NewServeMux(),
		version:   cfg.Version,
		catalog:   catalog,
		documents: documents,
		narrative: narrative,
	}

	logging := NewLoggingMiddleware()
	recovery := NewRecoveryMiddleware()

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      recovery.Handler(logging.Handler(s.router)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	// Health endpoints
	s.router.HandleFunc("GET /{$}", s.handleRoot)
	s.router.HandleFunc("GET /health", s.handleHealth)

	// Document generation endpoints
	s.router.HandleFunc("GET /compare", s.handleCompare)
	s.router.HandleFunc("GET /quote", s.handleQuote)
	s.router.HandleFunc("GET /recommend", s.handleRecommend)

	// Data access endpoints
	s.router.HandleFunc("GET /properties", s.handleListProperties)
	s.router.HandleFunc("GET /properties/{id}", s.handleGetProperty)
	s.router.HandleFunc("GET /contacts", s.handleListContacts)
	s.router.HandleFunc("GET /contacts/{id}", s.handleGetContact)
}

// Handler exposes the configured routing stack, used by tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start starts the HTTP server with graceful shutdown
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Starting server on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("Server stopped")
	return nil
}

// Stop stops the server
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
