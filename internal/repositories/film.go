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

// FilmReadRepository handles film read operations. Every read joins the
// review aggregate in the same query, so scores are always recomputed on
// demand and never read from a stored column.
type FilmReadRepository struct {
	db *sqlx.DB
}

func NewFilmReadRepository(db *sqlx.DB) *FilmReadRepository {
	return &FilmReadRepository{db: db}
}

// filmAggregateJoin computes the per-film average of non-null scores,
// rounded to one decimal place, and the count of scored reviews.
const filmAggregateJoin = `
	LEFT JOIN (
		SELECT film_id,
		       ROUND(AVG(score)::numeric, 1)::float8 AS score,
		       COUNT(score) AS evaluators
		FROM reviews
		GROUP BY film_id
	) agg ON agg.film_id = f.id
`

// List returns a page of films with their aggregate scores. The q filter is
// a case-insensitive substring match on title; pagination is keyset-style
// (id > afterID), ordered by id ascending.
func (r *FilmReadRepository) List(ctx context.Context, q string, afterID int64, limit int) ([]models.FilmWithScore, error) {
	query := `
		SELECT f.id, f.title, f.director, f.description, f.cover,
		       agg.score,
		       COALESCE(agg.evaluators, 0) AS evaluators
		FROM films f
	` + filmAggregateJoin + `
		WHERE f.id > $1
		  AND ($2 = '' OR f.title ILIKE '%' || $2 || '%')
		ORDER BY f.id ASC
		LIMIT $3
	`

	films := []models.FilmWithScore{}
	err := r.db.SelectContext(ctx, &films, query, afterID, q, limit)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{q, afterID, limit},
		"result", len(films),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return films, nil
}

// Count returns the number of films matching the q filter, ignoring
// pagination. Used for the total field of list responses.
func (r *FilmReadRepository) Count(ctx context.Context, q string) (int64, error) {
	const query = `
		SELECT COUNT(*)
		FROM films f
		WHERE ($1 = '' OR f.title ILIKE '%' || $1 || '%')
	`

	var total int64
	err := r.db.GetContext(ctx, &total, query, q)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{q},
		"result", total,
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return total, nil
}

// GetByID returns one film with its aggregate score, or (nil, nil) when the
// film does not exist.
func (r *FilmReadRepository) GetByID(ctx context.Context, id int64) (*models.FilmWithScore, error) {
	query := `
		SELECT f.id, f.title, f.director, f.description, f.cover,
		       agg.score,
		       COALESCE(agg.evaluators, 0) AS evaluators
		FROM films f
	` + filmAggregateJoin + `
		WHERE f.id = $1
	`

	var film models.FilmWithScore
	err := r.db.GetContext(ctx, &film, query, id)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &film, nil
}

// FilmWriteRepository handles film write operations (catalog seeding).
type FilmWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewFilmWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *FilmWriteRepository {
	return &FilmWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts one film and returns its id.
func (r *FilmWriteRepository) Save(ctx context.Context, film models.FilmDB) (int64, error) {
	const query = `
		INSERT INTO films (title, director, description, cover)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &id, query,
		film.Title, film.Director, film.Description, film.Cover)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{film.Title},
		"result", id,
		"error", err,
	)

	if err != nil {
		return 0, translateError(err)
	}
	return id, nil
}

// SaveAll inserts a batch of films inside one transaction.
func (r *FilmWriteRepository) SaveAll(ctx context.Context, films []models.FilmDB) error {
	const query = `
		INSERT INTO films (title, director, description, cover)
		VALUES (:title, :director, :description, :cover)
	`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	res, err := tx.NamedExecContext(ctx, query, films)
	var inserted int64
	if res != nil {
		inserted, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{len(films)},
		"result", inserted,
		"error", err,
	)

	if err != nil {
		tx.Rollback()
		return translateError(err)
	}
	return tx.Commit()
}
