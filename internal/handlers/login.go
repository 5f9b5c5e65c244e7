package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/onlyfilms/onlyfilms/internal/logger"
	"github.com/onlyfilms/onlyfilms/internal/metrics"
	"github.com/onlyfilms/onlyfilms/internal/services"
	"github.com/onlyfilms/onlyfilms/internal/validation"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, login, password string) (string, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Login
	// required: true
	// example: alice1
	Login string `json:"login" validate:"required,min=6,max=25"`

	// Password
	// required: true
	// example: pw12345
	Password string `json:"password" validate:"required,min=5,max=20"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Opaque session token
	// example: 9f2b7a1e-0c62-4c89-aaaa-1b2c3d4e5f60
	Token string `json:"token"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate a user and issue a new opaque session token. Unknown logins and wrong passwords are indistinguishable.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} handlers.LoginResponse "Session token issued"
// @Failure 406 {object} handlers.ErrorResponse "Invalid login or password"
// @Failure 422 {object} handlers.ErrorResponse "Invalid login or password format"
// @Router /login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		if err := validation.Struct(req); err != nil {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
			return
		}

		token, err := svc.Login(r.Context(), req.Login, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				metrics.LoginsTotal.WithLabelValues("rejected").Inc()
				w.WriteHeader(http.StatusNotAcceptable)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid login or password"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "internal server error"})
			}
			return
		}

		metrics.LoginsTotal.WithLabelValues("ok").Inc()

		// Browser clients authenticate with the cookie, API clients with the
		// Authorization header; both carry the same value.
		http.SetCookie(w, &http.Cookie{
			Name:     "token",
			Value:    token,
			Path:     "/",
			HttpOnly: true,
		})

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LoginResponse{Token: token})
	}
}
