package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/xavierca1/inbox-crm/internal/infra/database"
)

type ContactHandler struct {
	Repo *database.ContactRepository
}

func NewContactHandler(repo *database.ContactRepository) *ContactHandler {
	return &ContactHandler{Repo: repo}
}

func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r, 100)

	contacts, err := h.Repo.List(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list contacts")
		return
	}

	writeJSON(w, http.StatusOK, contacts)
}

func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	contact, err := h.Repo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "contact not found")
		return
	}

	writeJSON(w, http.StatusOK, contact)
}
