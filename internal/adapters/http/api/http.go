// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/okian/plenum/internal/adapters/repository"
	"github.com/okian/plenum/internal/domain/awards"
	"github.com/okian/plenum/internal/domain/model"
	"github.com/okian/plenum/internal/domain/scoring"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	repository.Store

	// SubmitEvaluation validates and stores a scoring submission.
	SubmitEvaluation(ctx context.Context, in scoring.Input) (model.DelegateEvaluation, error)

	// AutoAssignAwards runs the assignment engine for one committee.
	AutoAssignAwards(ctx context.Context, req awards.Request) ([]model.DelegateAward, error)

	// GetStats returns service statistics for monitoring.
	GetStats(ctx context.Context) map[string]any
}

// Server wires HTTP routes for the business API.
type Server struct {
	deps Dependencies
}

// NewServer creates a new API server around deps.
func NewServer(deps Dependencies) *Server {
	return &Server{deps: deps}
}

// Register attaches all HTTP routes to r.
func (s *Server) Register(ctx context.Context, r chi.Router) {
	r.Get("/healthz", Metrics(handleHealth, "healthz"))
	r.Get("/stats", Metrics(s.handleStats, "stats"))

	r.Route("/api", func(r chi.Router) {
		s.registerRecordRoutes(r)
		s.registerDelegateRoutes(r)
		s.registerEvaluationRoutes(r)
		s.registerAwardRoutes(r)
		s.registerSettingsRoutes(r)
	})
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeDomainError translates store and engine errors to their HTTP shape.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, awards.ErrAwardsExist):
		writeError(w, http.StatusConflict, "awards_exist", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
