package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/okian/plenum/internal/domain/model"
)

func (s *Server) registerSettingsRoutes(r chi.Router) {
	r.Get("/app-settings", Metrics(s.handleGetSettings, "app_settings"))
	r.Patch("/app-settings", Metrics(s.handlePatchSettings, "app_settings"))
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.deps.Settings(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (s *Server) handlePatchSettings(w http.ResponseWriter, r *http.Request) {
	var patch model.AppSettingsPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	writeJSON(w, http.StatusOK, s.deps.UpdateSettings(r.Context(), patch))
}
