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

// Registerer defines the interface that the registration service must implement.
type Registerer interface {
	Register(ctx context.Context, login, password string) error
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Login
	// required: true
	// example: alice1
	Login string `json:"login" validate:"required,min=6,max=25"`

	// Password
	// required: true
	// example: pw12345
	Password string `json:"password" validate:"required,min=5,max=20"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// example: user registered
	Message string `json:"message"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. The login must be unique; the password is stored only as a bcrypt hash.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "User successfully registered"
// @Failure 406 {object} handlers.ErrorResponse "Login already taken"
// @Failure 422 {object} handlers.ErrorResponse "Invalid login or password format"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

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

		if err := svc.Register(r.Context(), req.Login, req.Password); err != nil {
			switch {
			case errors.Is(err, services.ErrLoginTaken):
				w.WriteHeader(http.StatusNotAcceptable)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "login already taken"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "internal server error"})
			}
			return
		}

		metrics.RegistrationsTotal.Inc()

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(RegisterResponse{Message: "user registered"})
	}
}
