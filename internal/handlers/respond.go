package handlers

import (
	"errors"
	"io"
	"net/http"

	"homenest-backend/internal/models"
	"homenest-backend/internal/repository"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// decodeDocument reads the request body as a single JSON object.
func decodeDocument(r *http.Request) (models.Document, error) {
	var doc models.Document
	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(&doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errors.New("body is not a JSON object")
	}
	return doc, nil
}

// storeError answers a failed store call. Malformed ids are the caller's
// fault, anything else is logged and reported as a server error.
func storeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	if errors.Is(err, repository.ErrInvalidID) {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	zerolog.Ctx(r.Context()).Error().Err(err).Str("op", op).Msg("store operation failed")
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
