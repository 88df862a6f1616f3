package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"hostelvend-api/internal/middleware"
	"hostelvend-api/internal/model"
	"hostelvend-api/internal/service"
	"hostelvend-api/pkg/apierror"
	"hostelvend-api/pkg/response"
)

// AuthHandler handles registration, login and session lookups.
type AuthHandler struct {
	accounts  *service.AccountService
	sessions  *service.SessionService
	adminID   string
	adminPass string
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(accounts *service.AccountService, sessions *service.SessionService, adminID, adminPass string) *AuthHandler {
	return &AuthHandler{
		accounts:  accounts,
		sessions:  sessions,
		adminID:   adminID,
		adminPass: adminPass,
	}
}

// RegisterRequest represents the request body for registration.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Room     string `json:"room"`
	Phone    string `json:"phone"`
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SessionResponse is returned from register/login with the issued token.
type SessionResponse struct {
	Token     string        `json:"token"`
	Role      model.Role    `json:"role"`
	Account   model.Account `json:"account"`
	ExpiresAt time.Time     `json:"expires_at"`
}

// Register handles POST /api/v1/auth/register. A successful registration
// also establishes the session, so the caller is logged in immediately.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, apierror.BadRequest("invalid request body"))
		return
	}
	defer r.Body.Close()

	account, err := h.accounts.Register(r.Context(), req.Username, req.Password, req.Room, req.Phone)
	if err != nil {
		response.Error(w, err)
		return
	}

	session, err := h.sessions.Issue(r.Context(), account.Username, model.RoleCustomer)
	if err != nil {
		response.Error(w, apierror.InternalError("failed to create session"))
		return
	}

	response.Created(w, SessionResponse{
		Token:     session.Token,
		Role:      session.Role,
		Account:   account.Public(),
		ExpiresAt: session.ExpiresAt,
	})
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, apierror.BadRequest("invalid request body"))
		return
	}
	defer r.Body.Close()

	account, err := h.accounts.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		response.Error(w, err)
		return
	}

	session, err := h.sessions.Issue(r.Context(), account.Username, model.RoleCustomer)
	if err != nil {
		response.Error(w, apierror.InternalError("failed to create session"))
		return
	}

	response.OK(w, SessionResponse{
		Token:     session.Token,
		Role:      session.Role,
		Account:   account.Public(),
		ExpiresAt: session.ExpiresAt,
	})
}

// Logout handles POST /api/v1/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get("X-Token")
	if token == "" {
		response.Error(w, apierror.BadRequest("X-Token header required"))
		return
	}

	if err := h.sessions.Revoke(r.Context(), token); err != nil {
		response.Error(w, apierror.InternalError("failed to revoke session"))
		return
	}

	response.NoContent(w)
}

// Session handles GET /api/v1/auth/session - returns the current
// authenticated identity.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSessionFromContext(r.Context())
	if session == nil {
		response.Error(w, apierror.Unauthorized(""))
		return
	}

	resp := map[string]interface{}{
		"username":   session.Username,
		"role":       session.Role,
		"expires_at": session.ExpiresAt,
	}

	if session.Role == model.RoleCustomer {
		if account, err := h.accounts.Get(r.Context(), session.Username); err == nil {
			resp["account"] = account.Public()
		}
	}

	response.OK(w, resp)
}

// AdminLoginRequest represents the request body for admin login.
type AdminLoginRequest struct {
	ID       string `json:"id"`
	Password string `json:"password"`
}

// AdminLogin handles POST /api/v1/admin/login
func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req AdminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, apierror.BadRequest("invalid request body"))
		return
	}
	defer r.Body.Close()

	if req.ID != h.adminID || req.Password != h.adminPass {
		response.Error(w, apierror.InvalidCredentials("invalid admin credentials"))
		return
	}

	session, err := h.sessions.Issue(r.Context(), req.ID, model.RoleAdmin)
	if err != nil {
		response.Error(w, apierror.InternalError("failed to create session"))
		return
	}

	response.OK(w, map[string]interface{}{
		"token":      session.Token,
		"role":       session.Role,
		"expires_at": session.ExpiresAt,
	})
}
