package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/englishk12/backend/internal/domain/user"
	"github.com/englishk12/backend/internal/store"
)

// ── Request / Response types ────────────────────────────────────────────────

type LoginRequest struct {
	Username string `json:"username" example:"student1"`
}

func (r *LoginRequest) Validate() error {
	if r.Username == "" {
		return errors.New("username is required")
	}
	return nil
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      user.User `json:"user"`
}

type SessionResponse struct {
	User *user.User `json:"user"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// login signs a user in by username.
// @Summary      Log in
// @Description  Exact, case-sensitive username match. Returns a bearer token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body  body      LoginRequest  true  "Credentials"
// @Success      200   {object}  LoginResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Router       /api/auth/login [post]
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	u, err := h.svc.Gate.Login(r.Context(), req.Username)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusUnauthorized, "Tên đăng nhập không hợp lệ")
		return
	}
	if h.handleError(w, err, "user") {
		return
	}

	token, exp, err := h.svc.Issuer.Issue(u)
	if h.handleError(w, err, "token") {
		return
	}

	h.logger.Info("user logged in", "user_id", u.ID, "role", u.Role)
	respondJSON(w, http.StatusOK, LoginResponse{Token: token, ExpiresAt: exp, User: u})
}

// logout clears the caller's remembered login.
// @Summary      Log out
// @Tags         Auth
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  ErrorResponse
// @Router       /api/auth/logout [post]
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if h.handleError(w, h.svc.Gate.Logout(r.Context(), currentUser(r).ID), "session") {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// restoreSession returns the caller's remembered login, if any.
// @Summary      Restore the last session
// @Description  Returns the user stored by the caller's last login, or null after the caller logged out.
// @Tags         Auth
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  SessionResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /api/auth/session [get]
func (h *Handler) restoreSession(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.Gate.Restore(r.Context(), currentUser(r).ID)
	if h.handleError(w, err, "session") {
		return
	}
	respondJSON(w, http.StatusOK, SessionResponse{User: u})
}

// me returns the user carried by the token.
// @Summary      Current user
// @Tags         Auth
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  user.User
// @Failure      401  {object}  ErrorResponse
// @Router       /api/me [get]
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, currentUser(r))
}
