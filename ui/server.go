// Package ui exposes the analyzer's operations over HTTP. The server is demo
// glue around the core: it owns no analysis logic of its own and is excluded
// from the core contract.
package ui

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"datadetective/analyzer"
	"datadetective/app"
)

// Server serves analyzer queries as JSON
type Server struct {
	router    *chi.Mux
	analyzer  *analyzer.Analyzer
	sweep     *app.SweepService
	threshold float64
	report    string
}

// Config holds server configuration
type Config struct {
	// Threshold is the default anomaly deviation multiplier for /anomalies
	// requests that do not supply their own.
	Threshold float64
	// ReportPath is where POST /report writes the exported document.
	ReportPath string
}

// NewServer creates a server over an already-constructed analyzer
func NewServer(a *analyzer.Analyzer, cfg Config) *Server {
	threshold := cfg.Threshold
	if threshold <= 0 {
		threshold = analyzer.DefaultThreshold
	}

	s := &Server{
		router:    chi.NewRouter(),
		analyzer:  a,
		sweep:     app.NewSweepService(0),
		threshold: threshold,
		report:    cfg.ReportPath,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// setupMiddleware configures HTTP middleware
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)
	s.router.Get("/fields", s.handleFields)
	s.router.Get("/metrics/{metric}/statistics", s.handleStatistics)
	s.router.Get("/metrics/{metric}/anomalies", s.handleAnomalies)
	s.router.Get("/metrics/{metric}/profile", s.handleProfile)
	s.router.Get("/groups/{group}/{metric}", s.handleGroups)
	s.router.Get("/sweep", s.handleSweep)
	s.router.Post("/metrics/{metric}/report", s.handleExportReport)
}

// Router returns the configured handler, mainly for tests
func (s *Server) Router() http.Handler {
	return s.router
}

// Start runs the HTTP server on the given port
func (s *Server) Start(port string) error {
	addr := ":" + port
	log.Printf("[Server] Analyzer %s listening on %s", s.analyzer.ID(), addr)
	return http.ListenAndServe(addr, s.router)
}
