package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/inbox-crm/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeUseCaseError maps the usecase error taxonomy onto HTTP statuses:
// validation 400, domain rejection 422, everything else 500.
func writeUseCaseError(w http.ResponseWriter, err error) {
	switch {
	case usecase.IsValidationError(err):
		writeError(w, http.StatusBadRequest, err.Error())
	case usecase.IsDomainError(err):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
