package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mrops-br/inventory-dashboard-api/internal/app/dto"
	"github.com/mrops-br/inventory-dashboard-api/internal/app/service"
	"github.com/mrops-br/inventory-dashboard-api/internal/domain"
	"github.com/mrops-br/inventory-dashboard-api/internal/infrastructure/http/response"
)

// AuthHandler exposes the auth gate over HTTP.
type AuthHandler struct {
	gate   *service.AuthGate
	logger *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(gate *service.AuthGate, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		gate:   gate,
		logger: logger,
	}
}

// SignIn handles POST /auth/signin
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req dto.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to decode request body",
			slog.String("error", err.Error()),
		)
		response.Error(w, http.StatusBadRequest, err)
		return
	}

	if fields := req.Validate(); fields != nil {
		response.ValidationError(w, fields)
		return
	}

	session, err := h.gate.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			response.Error(w, http.StatusUnauthorized, err)
		case errors.Is(err, domain.ErrSignInSuperseded):
			response.Error(w, http.StatusConflict, err)
		default:
			// Collaborator failures surface as a generic message, never
			// as a crash.
			response.Error(w, http.StatusBadGateway, domain.ErrIdentityUnavailable)
		}
		return
	}

	response.JSON(w, http.StatusOK, dto.SessionResponse{
		State:     domain.AuthStateAuthenticated.String(),
		Email:     session.Email,
		Token:     session.Token,
		CreatedAt: &session.CreatedAt,
	})
}

// SignOut handles POST /auth/signout
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	h.gate.SignOut(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// Session handles GET /auth/session
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	state, session := h.gate.State()

	resp := dto.SessionResponse{State: state.String()}
	if session != nil {
		resp.Email = session.Email
		resp.CreatedAt = &session.CreatedAt
	}

	response.JSON(w, http.StatusOK, resp)
}
