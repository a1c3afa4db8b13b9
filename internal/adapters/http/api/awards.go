package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/okian/plenum/internal/domain/awards"
	"github.com/okian/plenum/internal/domain/model"
)

// autoAssignRequest mirrors the JSON shape of POST /api/awards/auto-assign.
type autoAssignRequest struct {
	CommitteeID   string `json:"committeeId"`
	CommitteeName string `json:"committeeName"`
	AssignedBy    string `json:"assignedBy"`
	Force         bool   `json:"force"`
}

func (s *Server) registerAwardRoutes(r chi.Router) {
	mount(r, "/awards", resource[model.DelegateAward, model.DelegateAwardPatch]{
		label:  "awards",
		list:   s.deps.Awards,
		create: s.deps.CreateAward,
		update: s.deps.UpdateAward,
		remove: s.deps.DeleteAward,
		validate: func(v model.DelegateAward) error {
			return requireFields(
				[2]string{"committeeId", v.CommitteeID},
				[2]string{"awardTypeId", v.AwardTypeID},
				[2]string{"delegateId", v.DelegateID},
			)
		},
	})

	r.Get("/awards/committee/{committeeID}", Metrics(s.handleAwardsByCommittee, "awards_by_committee"))
	r.Post("/awards/auto-assign", Metrics(s.handleAutoAssign, "awards_auto_assign"))
}

func (s *Server) handleAwardsByCommittee(w http.ResponseWriter, r *http.Request) {
	out := s.deps.AwardsByCommittee(r.Context(), chi.URLParam(r, "committeeID"))
	if out == nil {
		out = []model.DelegateAward{}
	}
	writeJSON(w, http.StatusOK, out)
}

// handleAutoAssign runs the assignment engine. An unforced run against a
// committee that already has awards answers 409 with code "awards_exist",
// so callers can offer a force-retry.
func (s *Server) handleAutoAssign(w http.ResponseWriter, r *http.Request) {
	var req autoAssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := requireFields(
		[2]string{"committeeId", req.CommitteeID},
		[2]string{"committeeName", req.CommitteeName},
	); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	created, err := s.deps.AutoAssignAwards(r.Context(), awards.Request{
		CommitteeID:   req.CommitteeID,
		CommitteeName: req.CommitteeName,
		AssignedBy:    req.AssignedBy,
		Force:         req.Force,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if created == nil {
		created = []model.DelegateAward{}
	}
	writeJSON(w, http.StatusCreated, created)
}
