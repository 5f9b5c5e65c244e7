package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/onlyfilms/onlyfilms/internal/logger"
	"github.com/onlyfilms/onlyfilms/internal/models"
)

// TokenWriteRepository handles session token write operations.
type TokenWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTokenWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TokenWriteRepository {
	return &TokenWriteRepository{db: db, txGetter: txGetter}
}

// Save persists a freshly issued token for a user. Tokens are additive:
// nothing invalidates earlier tokens of the same user.
func (r *TokenWriteRepository) Save(ctx context.Context, userID int64, value string) (int64, error) {
	const query = `
		INSERT INTO tokens (user_id, value, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id
	`

	var id int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &id, query, userID, value)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", id,
		"error", err,
	)

	if err != nil {
		return 0, translateError(err)
	}
	return id, nil
}

// Delete revokes a token by value. Returns ErrNotFound when the value is
// unknown.
func (r *TokenWriteRepository) Delete(ctx context.Context, value string) error {
	const query = `
		DELETE FROM tokens
		WHERE value = $1
		RETURNING id
	`

	var id int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &id, query, value)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"result", id,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// TokenReadRepository handles session token read operations.
type TokenReadRepository struct {
	db *sqlx.DB
}

func NewTokenReadRepository(db *sqlx.DB) *TokenReadRepository {
	return &TokenReadRepository{db: db}
}

// tokenWithUser is the joined row shape used by GetByValue.
type tokenWithUser struct {
	models.TokenDB
	UserLogin        string       `db:"user_login"`
	UserPasswordHash string       `db:"user_password_hash"`
	UserRegisteredAt sql.NullTime `db:"user_registered_at"`
}

// GetByValue resolves a token value to the token row and its owning user in
// a single joined query. Returns (nil, nil, nil) when the value is unknown.
func (r *TokenReadRepository) GetByValue(ctx context.Context, value string) (*models.TokenDB, *models.UserDB, error) {
	const query = `
		SELECT t.id, t.user_id, t.value, t.created_at,
		       u.login AS user_login,
		       u.password_hash AS user_password_hash,
		       u.registered_at AS user_registered_at
		FROM tokens t
		JOIN users u ON u.id = t.user_id
		WHERE t.value = $1
	`

	var row tokenWithUser
	err := r.db.GetContext(ctx, &row, query, value)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	user := &models.UserDB{
		ID:           row.UserID,
		Login:        row.UserLogin,
		PasswordHash: row.UserPasswordHash,
		RegisteredAt: row.UserRegisteredAt.Time,
	}
	return &row.TokenDB, user, nil
}
