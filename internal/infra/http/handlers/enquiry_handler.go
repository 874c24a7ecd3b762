package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/xavierca1/inbox-crm/internal/infra/database"
	"github.com/xavierca1/inbox-crm/internal/infra/http/middleware"
	"github.com/xavierca1/inbox-crm/internal/usecase"
)

type EnquiryHandler struct {
	Repo     *database.EnquiryRepository
	ReplyUC  *usecase.ReplyEnquiryUseCase
	StatusUC *usecase.UpdateEnquiryStatusUseCase
}

func NewEnquiryHandler(repo *database.EnquiryRepository, replyUC *usecase.ReplyEnquiryUseCase, statusUC *usecase.UpdateEnquiryStatusUseCase) *EnquiryHandler {
	return &EnquiryHandler{
		Repo:     repo,
		ReplyUC:  replyUC,
		StatusUC: statusUC,
	}
}

func (h *EnquiryHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r, 100)

	enquiries, err := h.Repo.List(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list enquiries")
		return
	}

	writeJSON(w, http.StatusOK, enquiries)
}

func (h *EnquiryHandler) Get(w http.ResponseWriter, r *http.Request) {
	enquiry, err := h.Repo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "enquiry not found")
		return
	}

	writeJSON(w, http.StatusOK, enquiry)
}

type replyRequest struct {
	Reply string `json:"reply"`
}

func (h *EnquiryHandler) Reply(w http.ResponseWriter, r *http.Request) {
	var req replyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	enquiry, err := h.ReplyUC.Execute(r.Context(), chi.URLParam(r, "id"), req.Reply)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordReplySent(usecase.RecordTypeEnquiry)
	writeJSON(w, http.StatusOK, enquiry)
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *EnquiryHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	enquiry, err := h.StatusUC.Execute(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, enquiry)
}

func parseLimit(r *http.Request, fallback int) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fallback
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 || limit > 500 {
		return fallback
	}
	return limit
}
