package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/taskbox/taskbox/internal/logutil"
	"github.com/taskbox/taskbox/store"
)

type (
	errorBody struct {
		Error string `json:"error"`
	}
)

func respondJSON(w http.ResponseWriter, code int, payload interface{}) {
	buf, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, `{"error":"server error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	w.Write(buf)
}

func respondError(w http.ResponseWriter, code int, msg string) {
	respondJSON(w, code, errorBody{Error: msg})
}

// respondStoreError maps store failures onto the wire. The client sees
// only the category of the failure, the cause stays in the logs.
func respondStoreError(ctx context.Context, w http.ResponseWriter, err error) {
	var notFound store.NotFound
	var dupEmail store.DuplicateEmail
	var dupCategory store.DuplicateCategory
	switch {
	case errors.As(err, &notFound):
		respondError(w, http.StatusNotFound, notFound.Error())
	case errors.As(err, &dupEmail):
		respondError(w, http.StatusBadRequest, "user already exists")
	case errors.As(err, &dupCategory):
		respondError(w, http.StatusBadRequest, "category already exists")
	default:
		log := logutil.GetOrDefault(ctx)
		log.Error().Err(err).Msg("Unexpected store failure")
		respondError(w, http.StatusInternalServerError, "server error")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, out interface{}) bool {
	defer r.Body.Close()
	err := json.NewDecoder(r.Body).Decode(out)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request payload")
		return false
	}
	return true
}
