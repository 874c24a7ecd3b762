package handlers

import (
	"net/http"

	"github.com/xavierca1/inbox-crm/internal/infra/database"
)

type StatsHandler struct {
	Repo *database.StatsRepository
}

func NewStatsHandler(repo *database.StatsRepository) *StatsHandler {
	return &StatsHandler{Repo: repo}
}

func (h *StatsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Repo.Stats(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load stats")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
