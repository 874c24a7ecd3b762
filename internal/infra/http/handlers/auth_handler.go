package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/xavierca1/inbox-crm/internal/auth"
	"github.com/xavierca1/inbox-crm/internal/entity"
	"github.com/xavierca1/inbox-crm/internal/infra/database"
)

type AuthHandler struct {
	Users  *database.UserRepository
	Tokens *auth.Manager
	Logger *slog.Logger
}

func NewAuthHandler(users *database.UserRepository, tokens *auth.Manager, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{Users: users, Tokens: tokens, Logger: logger}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	user, err := h.Users.FindByEmail(r.Context(), req.Email)
	if errors.Is(err, entity.ErrNotFound) {
		// Same answer as a wrong password, no account enumeration.
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}

	if !user.CheckPassword(req.Password) {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := h.Tokens.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		h.Logger.Error("token generation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: token, User: user})
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Register creates a dashboard user. Admin only, wired behind RequireRole.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	user, err := entity.NewUser(req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Users.Create(r.Context(), user); err != nil {
		if errors.Is(err, entity.ErrDuplicate) {
			writeError(w, http.StatusConflict, "email already registered")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	writeJSON(w, http.StatusCreated, user)
}
