// Package webui serves the local dashboard: a small JSON API over the
// loaded dataset plus a single embedded HTML page that renders it.
package webui

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/findexlab/fipulse/core"
	"github.com/findexlab/fipulse/internal/contract"
	"github.com/findexlab/fipulse/schema"
)

// Server wraps the HTTP server for the dashboard.
type Server struct {
	httpServer *http.Server

	cfg      *contract.Config
	records  []schema.DataRecord
	impacts  map[string]map[string]float64
	schedule map[string][]int
}

// NewServer loads the configured dataset once and builds a dashboard
// server around it. The listen address comes from cfg.ListenAddr.
func NewServer(cfg *contract.Config) (*Server, error) {
	records, impacts, schedule, err := core.LoadInputs(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset for dashboard: %w", err)
	}

	s := &Server{
		cfg:      cfg,
		records:  records,
		impacts:  impacts,
		schedule: schedule,
	}

	s.httpServer = &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      loggingMiddleware(s.routes()),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes wires the dashboard endpoints onto a fresh mux.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/api/indicators", s.handleIndicators)
	mux.HandleFunc("/api/history", s.handleHistory)
	mux.HandleFunc("/api/forecast", s.handleForecast)
	mux.HandleFunc("/api/overview", s.handleOverview)
	mux.HandleFunc("/api/gender-gap", s.handleGenderGap)
	mux.HandleFunc("/download/forecast.csv", s.handleForecastCSV)
	return mux
}

// Start begins listening. It blocks until the server stops.
func (s *Server) Start() error {
	log.Printf("Dashboard listening on %s", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("Shutting down dashboard...")
	return s.httpServer.Shutdown(ctx)
}

// loggingMiddleware logs each request with its duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %v", r.Method, r.URL.Path, time.Since(start))
	})
}
