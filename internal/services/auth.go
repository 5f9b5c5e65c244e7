package services

import (
	"context"
	"errors"
	"time"

	"github.com/onlyfilms/onlyfilms/internal/logger"
	"github.com/onlyfilms/onlyfilms/internal/models"
	"github.com/onlyfilms/onlyfilms/internal/password"
	"github.com/onlyfilms/onlyfilms/internal/repositories"
)

// Error variables
var (
	ErrLoginTaken         = errors.New("login already taken")
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrTokenInvalid       = errors.New("token missing or unrecognized")
	ErrTokenExpired       = errors.New("token expired")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByLogin(ctx context.Context, login string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, login, passwordHash string) (int64, error)
}

// TokenReader resolves a token value to the token row and its owning user.
type TokenReader interface {
	GetByValue(ctx context.Context, value string) (*models.TokenDB, *models.UserDB, error)
}

// TokenWriter defines write operations for tokens.
type TokenWriter interface {
	Save(ctx context.Context, userID int64, value string) (int64, error)
	Delete(ctx context.Context, value string) error
}

// TokenIssuer generates opaque token values and decides expiry.
type TokenIssuer interface {
	Generate() string
	Expired(created, now time.Time) bool
}

// AuthService handles registration, login, token authorization and logout.
type AuthService struct {
	users       UserReader
	userWriter  UserWriter
	tokens      TokenReader
	tokenWriter TokenWriter
	issuer      TokenIssuer
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(users UserReader, userWriter UserWriter, tokens TokenReader, tokenWriter TokenWriter, issuer TokenIssuer) *AuthService {
	return &AuthService{
		users:       users,
		userWriter:  userWriter,
		tokens:      tokens,
		tokenWriter: tokenWriter,
		issuer:      issuer,
	}
}

// Register creates a new user with a hashed password. Duplicate logins are
// rejected by the storage-level unique constraint, not by a prior lookup.
func (svc *AuthService) Register(ctx context.Context, login, plaintext string) error {
	hash, err := password.Hash(plaintext)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if _, err := svc.userWriter.Save(ctx, login, hash); err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			logger.Log.Warnw("login already taken", "login", login)
			return ErrLoginTaken
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}

	return nil
}

// Login authenticates a user and issues a new token. An unknown login and a
// wrong password both return ErrInvalidCredentials so callers cannot probe
// for registered logins. Tokens are additive: concurrent logins each get
// their own token.
func (svc *AuthService) Login(ctx context.Context, login, plaintext string) (string, error) {
	user, err := svc.users.GetByLogin(ctx, login)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil || !password.Verify(plaintext, user.PasswordHash) {
		logger.Log.Warnw("invalid credentials", "login", login)
		return "", ErrInvalidCredentials
	}

	value := svc.issuer.Generate()
	if _, err := svc.tokenWriter.Save(ctx, user.ID, value); err != nil {
		logger.Log.Errorw("failed to save token", "err", err)
		return "", err
	}

	return value, nil
}

// Authorize resolves a token value to its owning user. Expired tokens are
// rejected: the validity window is a hard policy of the lookup path, not
// just of the issuing side.
func (svc *AuthService) Authorize(ctx context.Context, value string) (*models.UserDB, error) {
	tok, user, err := svc.tokens.GetByValue(ctx, value)
	if err != nil {
		logger.Log.Errorw("failed to look up token", "err", err)
		return nil, err
	}
	if tok == nil {
		logger.Log.Warnw("unknown token")
		return nil, ErrTokenInvalid
	}
	if svc.issuer.Expired(tok.CreatedAt, time.Now()) {
		logger.Log.Warnw("expired token", "user_id", tok.UserID, "created_at", tok.CreatedAt)
		return nil, ErrTokenExpired
	}

	return user, nil
}

// Logout revokes the server-side token record, not just the client cookie.
func (svc *AuthService) Logout(ctx context.Context, value string) error {
	if err := svc.tokenWriter.Delete(ctx, value); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrTokenInvalid
		}
		logger.Log.Errorw("failed to delete token", "err", err)
		return err
	}
	return nil
}
