package handlers

import (
	"context"
	"net/http"

	"homenest-backend/internal/middleware"
	"homenest-backend/internal/models"

	"github.com/go-chi/chi/v5"
)

// LatestLimit is how many listings GET /latest-properties returns.
const LatestLimit = 6

type PropertyStore interface {
	Create(ctx context.Context, property models.Document) (models.InsertResult, error)
	All(ctx context.Context) ([]models.Document, error)
	Latest(ctx context.Context, limit int64) ([]models.Document, error)
	FindByID(ctx context.Context, id string) (models.Document, error)
	FindByOwner(ctx context.Context, email string) ([]models.Document, error)
	Delete(ctx context.Context, id string) (models.DeleteResult, error)
}

type PropertyHandler struct {
	properties PropertyStore
}

func NewPropertyHandler(properties PropertyStore) *PropertyHandler {
	return &PropertyHandler{
		properties: properties,
	}
}

// --- POST /properties ---

func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	doc, err := decodeDocument(r)
	if err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.properties.Create(r.Context(), doc)
	if err != nil {
		storeError(w, r, "create property", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// --- GET /all-properties ---

func (h *PropertyHandler) All(w http.ResponseWriter, r *http.Request) {
	docs, err := h.properties.All(r.Context())
	if err != nil {
		storeError(w, r, "list properties", err)
		return
	}
	writeJSON(w, http.StatusOK, docs)
}

// --- GET /latest-properties ---

func (h *PropertyHandler) Latest(w http.ResponseWriter, r *http.Request) {
	docs, err := h.properties.Latest(r.Context(), LatestLimit)
	if err != nil {
		storeError(w, r, "latest properties", err)
		return
	}
	writeJSON(w, http.StatusOK, docs)
}

// --- GET /property/{id} ---

func (h *PropertyHandler) Get(w http.ResponseWriter, r *http.Request) {
	doc, err := h.properties.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		storeError(w, r, "get property", err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// --- GET /property?email= ---
// Only the owner may list their own properties. Any other caller gets an
// empty 200.

func (h *PropertyHandler) ListByOwner(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email != middleware.GetEmail(r.Context()) {
		return
	}

	docs, err := h.properties.FindByOwner(r.Context(), email)
	if err != nil {
		storeError(w, r, "list owner properties", err)
		return
	}
	writeJSON(w, http.StatusOK, docs)
}

// --- DELETE /property/{id} ---

func (h *PropertyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	result, err := h.properties.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		storeError(w, r, "delete property", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
