// Package api - Thin HTTP layer
// The API is only responsible for input ingestion, collaborator
// orchestration, and output serialization. It never performs pricing
// arithmetic; that stays in the core packages.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"nava-ops/adapters/registry"
	"nava-ops/adapters/statistics"
	"nava-ops/core/diff"
	"nava-ops/core/pricing"
	"nava-ops/internal/errors"
	"nava-ops/internal/logging"
)

// Server is the API server
type Server struct {
	mux       *http.ServeMux
	calc      *pricing.Calculator
	differ    *diff.Evaluator
	registry  registry.Registry
	collector *statistics.Collector
	hub       *registry.Hub
	version   string
	log       *zap.Logger
}

// NewServer creates a new API server
func NewServer(version string, calc *pricing.Calculator, reg registry.Registry, collector *statistics.Collector, hub *registry.Hub) *Server {
	s := &Server{
		mux:       http.NewServeMux(),
		calc:      calc,
		differ:    diff.NewEvaluator(calc),
		registry:  reg,
		collector: collector,
		hub:       hub,
		version:   version,
		log:       logging.With(zap.String("component", "api")),
	}
	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	// Core endpoints
	s.mux.HandleFunc("POST /v1/pricing/quote", s.handleQuote)
	s.mux.HandleFunc("POST /v1/pricing/diff", s.handleDiff)
	s.mux.HandleFunc("POST /v1/metrics/summary", s.handleSummary)

	// Branch registry endpoints
	s.mux.HandleFunc("GET /v1/branches", s.handleListBranches)
	s.mux.HandleFunc("POST /v1/branches", s.handleCreateBranch)
	s.mux.HandleFunc("DELETE /v1/branches/{id}", s.handleDeleteBranch)

	// Supporting endpoints
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// Run starts the change feed watcher and serves until the listener fails
func (s *Server) Run(ctx context.Context, addr string) error {
	if s.hub != nil {
		events, cancel := s.hub.Subscribe()
		defer cancel()
		go s.watchBranches(ctx, events)
	}

	srv := &http.Server{Addr: addr, Handler: s.mux}
	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()

	s.log.Info("api server listening", zap.String("addr", addr))
	err := srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// watchBranches re-prices a brand whenever its branch set changes. The
// calculator stays pure; this is the explicit event channel around it.
func (s *Server) watchBranches(ctx context.Context, events <-chan registry.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			count, err := s.registry.CountActive(ctx, ev.Branch.BrandID)
			if err != nil {
				s.log.Warn("repricing after branch change failed", zap.Error(err))
				continue
			}
			bd := s.calc.Breakdown(count)
			s.log.Info("subscription repriced after branch change",
				zap.String("event", string(ev.Type)),
				zap.String("brand_id", ev.Branch.BrandID),
				zap.Int("branch_count", count),
				zap.String("monthly_total", bd.MonthlyTotal.String()))
		}
	}
}

// handleQuote handles POST /v1/pricing/quote
func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	count, err := s.resolveBranchCount(r.Context(), req.BranchCount, req.BrandID)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	s.writeJSON(w, &QuoteResponse{
		Breakdown:            s.calc.Breakdown(count),
		Validation:           s.calc.ValidateBranchCount(count),
		RequestedBranchCount: count,
	}, http.StatusOK)
}

// handleDiff handles POST /v1/pricing/diff
func (s *Server) handleDiff(w http.ResponseWriter, r *http.Request) {
	var req DiffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	current, err := s.resolveBranchCount(r.Context(), req.CurrentBranchCount, req.BrandID)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	s.writeJSON(w, &DiffResponse{Diff: s.differ.Evaluate(current, req.NewBranchCount)}, http.StatusOK)
}

// handleSummary handles POST /v1/metrics/summary
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	var req SummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}
	if req.BrandID == "" {
		s.writeError(w, "VALIDATION_ERROR", "brand_id is required", http.StatusBadRequest)
		return
	}

	branches, err := s.registry.List(r.Context(), req.BrandID)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	summary, skipped := s.collector.Summarize(r.Context(), branches)
	s.writeJSON(w, &SummaryResponse{Summary: summary, BranchesSkipped: skipped}, http.StatusOK)
}

// handleListBranches handles GET /v1/branches?brand_id=
func (s *Server) handleListBranches(w http.ResponseWriter, r *http.Request) {
	brandID := r.URL.Query().Get("brand_id")
	if brandID == "" {
		s.writeError(w, "VALIDATION_ERROR", "brand_id is required", http.StatusBadRequest)
		return
	}

	branches, err := s.registry.List(r.Context(), brandID)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, branches, http.StatusOK)
}

// handleCreateBranch handles POST /v1/branches
func (s *Server) handleCreateBranch(w http.ResponseWriter, r *http.Request) {
	var req CreateBranchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	branch, err := s.registry.Create(r.Context(), req.BrandID, req.Name, req.Location)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, branch, http.StatusCreated)
}

// handleDeleteBranch handles DELETE /v1/branches/{id}
func (s *Server) handleDeleteBranch(w http.ResponseWriter, r *http.Request) {
	if err := s.registry.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version": s.version,
		"plan":    s.calc.Config().PlanName,
	}, http.StatusOK)
}

// resolveBranchCount takes an explicit count or falls back to the brand's
// live registry count
func (s *Server) resolveBranchCount(ctx context.Context, explicit *int, brandID string) (int, error) {
	if explicit != nil {
		return *explicit, nil
	}
	if brandID == "" {
		return 0, errors.Input("either branch_count or brand_id is required")
	}
	return s.registry.CountActive(ctx, brandID)
}

func (s *Server) writeJSON(w http.ResponseWriter, v interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encoding response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(&ErrorResponse{Code: code, Message: message})
}

// writeDomainError maps typed domain errors onto HTTP statuses
func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	if e, ok := err.(*errors.Error); ok {
		status := http.StatusInternalServerError
		switch e.Type {
		case errors.TypeInput:
			status = http.StatusBadRequest
		case errors.TypeNotFound:
			status = http.StatusNotFound
		}
		s.writeError(w, string(e.Type), e.Message, status)
		return
	}
	s.writeError(w, string(errors.TypeInternal), err.Error(), http.StatusInternalServerError)
}
