package api

import (
	"encoding/csv"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/okian/plenum/internal/domain/model"
)

// csvColumns is the expected delegate import layout.
const csvColumns = 6 // name, school, committee, portfolio, email, phone

func (s *Server) registerDelegateRoutes(r chi.Router) {
	mount(r, "/delegates", resource[model.Delegate, model.DelegatePatch]{
		label:  "delegates",
		list:   s.deps.Delegates,
		create: s.deps.CreateDelegate,
		update: s.deps.UpdateDelegate,
		remove: s.deps.DeleteDelegate,
		validate: func(v model.Delegate) error {
			return requireFields(
				[2]string{"name", v.Name},
				[2]string{"school", v.School},
				[2]string{"committee", v.Committee},
				[2]string{"email", v.Email},
			)
		},
	})

	r.Get("/delegates/{id}", Metrics(s.handleGetDelegate, "delegates"))
	r.Post("/delegates/import", Metrics(s.handleImportDelegates, "delegates_import"))
}

func (s *Server) handleGetDelegate(w http.ResponseWriter, r *http.Request) {
	d, err := s.deps.Delegate(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

type importResponse struct {
	Imported  int              `json:"imported"`
	Delegates []model.Delegate `json:"delegates"`
}

// handleImportDelegates bulk-registers delegates from a CSV body with
// columns name,school,committee,portfolio,email,phone. A header row whose
// first cell is "name" is skipped.
func (s *Server) handleImportDelegates(w http.ResponseWriter, r *http.Request) {
	reader := csv.NewReader(r.Body)
	reader.FieldsPerRecord = csvColumns

	created := []model.Delegate{}
	row := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", err)
			return
		}
		row++
		if row == 1 && strings.EqualFold(strings.TrimSpace(record[0]), "name") {
			continue
		}
		d := model.Delegate{
			Name:      strings.TrimSpace(record[0]),
			School:    strings.TrimSpace(record[1]),
			Committee: strings.TrimSpace(record[2]),
			Portfolio: strings.TrimSpace(record[3]),
			Email:     strings.TrimSpace(record[4]),
			Phone:     strings.TrimSpace(record[5]),
			Status:    model.StatusRegistered,
		}
		if err := requireFields(
			[2]string{"name", d.Name},
			[2]string{"school", d.School},
			[2]string{"committee", d.Committee},
			[2]string{"email", d.Email},
		); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", err)
			return
		}
		created = append(created, s.deps.CreateDelegate(r.Context(), d))
	}

	writeJSON(w, http.StatusCreated, importResponse{Imported: len(created), Delegates: created})
}
