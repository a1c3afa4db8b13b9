package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// resource bundles the store operations behind one REST collection.
type resource[T any, P any] struct {
	label    string
	list     func(ctx context.Context) []T
	create   func(ctx context.Context, v T) T
	update   func(ctx context.Context, id string, patch P) (T, error)
	remove   func(ctx context.Context, id string) error
	validate func(v T) error
}

// mount registers GET/POST on path and PATCH/DELETE on path/{id}.
func mount[T any, P any](r chi.Router, path string, res resource[T, P]) {
	r.Get(path, Metrics(func(w http.ResponseWriter, req *http.Request) {
		out := res.list(req.Context())
		if out == nil {
			out = []T{}
		}
		writeJSON(w, http.StatusOK, out)
	}, res.label))

	r.Post(path, Metrics(func(w http.ResponseWriter, req *http.Request) {
		var v T
		if err := json.NewDecoder(req.Body).Decode(&v); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", err)
			return
		}
		if res.validate != nil {
			if err := res.validate(v); err != nil {
				writeError(w, http.StatusBadRequest, "bad_request", err)
				return
			}
		}
		writeJSON(w, http.StatusCreated, res.create(req.Context(), v))
	}, res.label))

	mountItemRoutes(r, path, res.label, res.update, res.remove)
}

// mountItemRoutes registers PATCH/DELETE on path/{id}.
func mountItemRoutes[T any, P any](r chi.Router, path, label string,
	update func(ctx context.Context, id string, patch P) (T, error),
	remove func(ctx context.Context, id string) error,
) {
	r.Patch(path+"/{id}", Metrics(func(w http.ResponseWriter, req *http.Request) {
		var patch P
		if err := json.NewDecoder(req.Body).Decode(&patch); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", err)
			return
		}
		updated, err := update(req.Context(), chi.URLParam(req, "id"), patch)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}, label))

	r.Delete(path+"/{id}", Metrics(func(w http.ResponseWriter, req *http.Request) {
		if err := remove(req.Context(), chi.URLParam(req, "id")); err != nil {
			writeDomainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}, label))
}

// requireFields reports the first empty required field.
func requireFields(pairs ...[2]string) error {
	for _, p := range pairs {
		if strings.TrimSpace(p[1]) == "" {
			return fmt.Errorf("missing %s: %w", p[0], ErrBadRequest)
		}
	}
	return nil
}
