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

// ReviewWriteRepository handles review write operations.
type ReviewWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewReviewWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ReviewWriteRepository {
	return &ReviewWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a review and returns its id. The (author_id, film_id) unique
// constraint surfaces as ErrUniqueViolation; a missing film surfaces as
// ErrForeignKeyViolation. No check-then-insert: both races resolve at the
// storage layer.
func (r *ReviewWriteRepository) Save(ctx context.Context, filmID, authorID int64, text string, score *int) (int64, error) {
	const query = `
		INSERT INTO reviews (film_id, author_id, text, score, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id
	`

	var id int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &id, query, filmID, authorID, text, score)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{filmID, authorID, score},
		"result", id,
		"error", err,
	)

	if err != nil {
		return 0, translateError(err)
	}
	return id, nil
}

// Delete removes a review only when authorID is its author, in a single
// statement. Returns ErrNotFound both when the review does not exist and
// when the requester is not the author; callers cannot tell the two apart.
func (r *ReviewWriteRepository) Delete(ctx context.Context, reviewID, authorID int64) (int64, error) {
	const query = `
		DELETE FROM reviews
		WHERE id = $1 AND author_id = $2
		RETURNING id
	`

	var id int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &id, query, reviewID, authorID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{reviewID, authorID},
		"result", id,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return id, nil
}

// ReviewReadRepository handles review read operations. Author summaries are
// joined in the same query to avoid per-row lookups.
type ReviewReadRepository struct {
	db *sqlx.DB
}

func NewReviewReadRepository(db *sqlx.DB) *ReviewReadRepository {
	return &ReviewReadRepository{db: db}
}

// GetByID returns one review of a film with its author summary, or
// (nil, nil) when absent.
func (r *ReviewReadRepository) GetByID(ctx context.Context, filmID, reviewID int64) (*models.ReviewWithAuthor, error) {
	const query = `
		SELECT r.id, r.film_id, r.author_id, r.text, r.score, r.created_at,
		       u.login AS author_login
		FROM reviews r
		JOIN users u ON u.id = r.author_id
		WHERE r.id = $1 AND r.film_id = $2
	`

	var review models.ReviewWithAuthor
	err := r.db.GetContext(ctx, &review, query, reviewID, filmID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{reviewID, filmID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

// ListByFilm returns a page of reviews for a film ordered by creation time
// ascending (id breaks ties for a stable order).
func (r *ReviewReadRepository) ListByFilm(ctx context.Context, filmID int64, offset, limit int) ([]models.ReviewWithAuthor, error) {
	const query = `
		SELECT r.id, r.film_id, r.author_id, r.text, r.score, r.created_at,
		       u.login AS author_login
		FROM reviews r
		JOIN users u ON u.id = r.author_id
		WHERE r.film_id = $1
		ORDER BY r.created_at ASC, r.id ASC
		OFFSET $2 LIMIT $3
	`

	reviews := []models.ReviewWithAuthor{}
	err := r.db.SelectContext(ctx, &reviews, query, filmID, offset, limit)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{filmID, offset, limit},
		"result", len(reviews),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// CountByFilm returns the total number of reviews for a film.
func (r *ReviewReadRepository) CountByFilm(ctx context.Context, filmID int64) (int64, error) {
	const query = `
		SELECT COUNT(*)
		FROM reviews
		WHERE film_id = $1
	`

	var total int64
	err := r.db.GetContext(ctx, &total, query, filmID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{filmID},
		"result", total,
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return total, nil
}
