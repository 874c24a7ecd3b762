package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/xavierca1/inbox-crm/internal/infra/database"
	"github.com/xavierca1/inbox-crm/internal/infra/http/middleware"
	"github.com/xavierca1/inbox-crm/internal/usecase"
)

type TicketHandler struct {
	Repo     *database.TicketRepository
	ReplyUC  *usecase.ReplyTicketUseCase
	StatusUC *usecase.UpdateTicketStatusUseCase
}

func NewTicketHandler(repo *database.TicketRepository, replyUC *usecase.ReplyTicketUseCase, statusUC *usecase.UpdateTicketStatusUseCase) *TicketHandler {
	return &TicketHandler{
		Repo:     repo,
		ReplyUC:  replyUC,
		StatusUC: statusUC,
	}
}

func (h *TicketHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r, 100)

	tickets, err := h.Repo.List(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list tickets")
		return
	}

	writeJSON(w, http.StatusOK, tickets)
}

func (h *TicketHandler) Get(w http.ResponseWriter, r *http.Request) {
	ticket, err := h.Repo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "ticket not found")
		return
	}

	writeJSON(w, http.StatusOK, ticket)
}

func (h *TicketHandler) Reply(w http.ResponseWriter, r *http.Request) {
	var req replyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	ticket, err := h.ReplyUC.Execute(r.Context(), chi.URLParam(r, "id"), req.Reply)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordReplySent(usecase.RecordTypeSupportTicket)
	writeJSON(w, http.StatusOK, ticket)
}

func (h *TicketHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	ticket, err := h.StatusUC.Execute(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ticket)
}
