package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/onlyfilms/onlyfilms/internal/logger"
	"github.com/onlyfilms/onlyfilms/internal/models"
)

// Authorizer resolves a token value to its owning user.
type Authorizer interface {
	Authorize(ctx context.Context, value string) (*models.UserDB, error)
}

// userKey is the context key under which the authenticated user is stored.
type userKeyType struct{}

var userKey = userKeyType{}

// AuthMiddleware returns a middleware that resolves the request token to a
// user and attaches it to the request context. Requests without a valid,
// unexpired token are rejected with 401.
func AuthMiddleware(auth Authorizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			value := tokenFromRequest(r)
			if value == "" {
				logger.Log.Warnw("authorization required", "uri", r.RequestURI)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			user, err := auth.Authorize(ctx, value)
			if err != nil {
				logger.Log.Warnw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(SetUserToContext(ctx, user)))
		})
	}
}

// tokenFromRequest extracts the token value from the Authorization header,
// with or without the Bearer prefix, falling back to the token cookie left
// by browser logins.
func tokenFromRequest(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		parts := strings.Fields(header)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
		return header
	}
	if cookie, err := r.Cookie("token"); err == nil {
		return cookie.Value
	}
	return ""
}

// TokenFromRequest exposes the extraction rule to handlers that need the raw
// token value (logout revokes it).
func TokenFromRequest(r *http.Request) string {
	return tokenFromRequest(r)
}

// SetUserToContext stores the authenticated user in the context.
func SetUserToContext(ctx context.Context, user *models.UserDB) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext retrieves the authenticated user from the context.
// Returns nil if the request did not pass AuthMiddleware.
func GetUserFromContext(ctx context.Context) *models.UserDB {
	user, _ := ctx.Value(userKey).(*models.UserDB)
	return user
}
