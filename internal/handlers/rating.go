package handlers

import (
	"context"
	"net/http"

	"homenest-backend/internal/middleware"
	"homenest-backend/internal/models"

	"github.com/go-chi/chi/v5"
)

type RatingStore interface {
	Create(ctx context.Context, rating models.Document) (models.InsertResult, error)
	FindByReviewer(ctx context.Context, email string) ([]models.Document, error)
	Delete(ctx context.Context, id string) (models.DeleteResult, error)
}

type RatingHandler struct {
	ratings RatingStore
}

func NewRatingHandler(ratings RatingStore) *RatingHandler {
	return &RatingHandler{
		ratings: ratings,
	}
}

// --- POST /ratings ---

func (h *RatingHandler) Create(w http.ResponseWriter, r *http.Request) {
	doc, err := decodeDocument(r)
	if err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.ratings.Create(r.Context(), doc)
	if err != nil {
		storeError(w, r, "create rating", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// --- GET /ratings?email= ---

func (h *RatingHandler) ListByReviewer(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email != middleware.GetEmail(r.Context()) {
		return
	}

	docs, err := h.ratings.FindByReviewer(r.Context(), email)
	if err != nil {
		storeError(w, r, "list reviewer ratings", err)
		return
	}
	writeJSON(w, http.StatusOK, docs)
}

// --- DELETE /ratings/{id} ---

func (h *RatingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	result, err := h.ratings.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		storeError(w, r, "delete rating", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
