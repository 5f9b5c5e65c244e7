package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/onlyfilms/onlyfilms/internal/logger"
	"github.com/onlyfilms/onlyfilms/internal/middlewares"
	"github.com/onlyfilms/onlyfilms/internal/services"
)

// Logouter defines the interface that the logout service must implement.
type Logouter interface {
	Logout(ctx context.Context, value string) error
}

// LogoutResponse represents a successful logout response
// swagger:model LogoutResponse
type LogoutResponse struct {
	// Success message
	// example: logged out
	Message string `json:"message"`
}

// NewLogoutHandler returns an HTTP handler that revokes the current session
// token server-side and clears the token cookie.
// @Summary User logout
// @Description Revokes the session token used to authenticate this request. The token becomes unusable immediately.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.LogoutResponse "Token revoked"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Router /logout [post]
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		value := middlewares.TokenFromRequest(r)

		if err := svc.Logout(r.Context(), value); err != nil {
			if errors.Is(err, services.ErrTokenInvalid) {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid token"})
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "internal server error"})
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     "token",
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		})

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LogoutResponse{Message: "logged out"})
	}
}
