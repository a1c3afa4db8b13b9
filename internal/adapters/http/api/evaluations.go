package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/okian/plenum/internal/domain/model"
	"github.com/okian/plenum/internal/domain/scoring"
)

// evaluationRequest mirrors the JSON shape of POST /api/evaluations.
// scores maps criterion id to awarded points; totalScore is computed
// server-side and ignored if submitted.
type evaluationRequest struct {
	DelegateID   string         `json:"delegateId"`
	DelegateName string         `json:"delegateName"`
	Committee    string         `json:"committee"`
	Scores       map[string]int `json:"scores"`
	Comments     string         `json:"comments"`
	EvaluatedBy  string         `json:"evaluatedBy"`
}

func (s *Server) registerEvaluationRoutes(r chi.Router) {
	r.Get("/evaluations", Metrics(s.handleListEvaluations, "evaluations"))
	r.Post("/evaluations", Metrics(s.handleCreateEvaluation, "evaluations"))

	mountItemRoutes(r, "/evaluations", "evaluations",
		s.deps.UpdateEvaluation, s.deps.DeleteEvaluation)
}

func (s *Server) handleListEvaluations(w http.ResponseWriter, r *http.Request) {
	out := s.deps.Evaluations(r.Context())
	if out == nil {
		out = []model.DelegateEvaluation{}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateEvaluation(w http.ResponseWriter, r *http.Request) {
	var req evaluationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	e, err := s.deps.SubmitEvaluation(r.Context(), scoring.Input{
		DelegateID:   req.DelegateID,
		DelegateName: req.DelegateName,
		Committee:    req.Committee,
		Scores:       req.Scores,
		Comments:     req.Comments,
		EvaluatedBy:  req.EvaluatedBy,
	})
	if err != nil {
		// The recorder only fails on malformed input.
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	writeJSON(w, http.StatusCreated, e)
}
