package services

import (
	"context"
	"encoding/json"
	"errors"
	"os"

	"github.com/onlyfilms/onlyfilms/internal/logger"
	"github.com/onlyfilms/onlyfilms/internal/models"
)

// ErrFilmNotFound is returned when the requested film does not exist.
var ErrFilmNotFound = errors.New("film not found")

// Pagination bounds for film listing.
const (
	DefaultLimit = 10
	MaxLimit     = 50
)

// FilmReader defines read operations for films with their aggregates.
type FilmReader interface {
	List(ctx context.Context, q string, afterID int64, limit int) ([]models.FilmWithScore, error)
	Count(ctx context.Context, q string) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.FilmWithScore, error)
}

// FilmWriter defines write operations for films.
type FilmWriter interface {
	SaveAll(ctx context.Context, films []models.FilmDB) error
}

// FilmService handles film listing, detail and catalog seeding.
type FilmService struct {
	reader FilmReader
	writer FilmWriter
}

// NewFilmService creates a new FilmService instance.
func NewFilmService(reader FilmReader, writer FilmWriter) *FilmService {
	return &FilmService{reader: reader, writer: writer}
}

// List returns a page of films matching q, films with id greater than
// afterID, plus the total count for the query ignoring pagination. The
// limit is clamped to [1, MaxLimit], defaulting to DefaultLimit.
func (svc *FilmService) List(ctx context.Context, q string, afterID int64, limit int) ([]models.FilmWithScore, int64, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if afterID < 0 {
		afterID = 0
	}

	films, err := svc.reader.List(ctx, q, afterID, limit)
	if err != nil {
		logger.Log.Errorw("failed to list films", "err", err)
		return nil, 0, err
	}

	total, err := svc.reader.Count(ctx, q)
	if err != nil {
		logger.Log.Errorw("failed to count films", "err", err)
		return nil, 0, err
	}

	return films, total, nil
}

// Get returns one film with its aggregate score and evaluator count.
func (svc *FilmService) Get(ctx context.Context, id int64) (*models.FilmWithScore, error) {
	film, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get film", "film_id", id, "err", err)
		return nil, err
	}
	if film == nil {
		return nil, ErrFilmNotFound
	}
	return film, nil
}

// LoadFromFile seeds the catalog from a JSON array of films.
func (svc *FilmService) LoadFromFile(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Log.Errorw("failed to read films file", "path", path, "err", err)
		return 0, err
	}

	var films []models.FilmDB
	if err := json.Unmarshal(data, &films); err != nil {
		logger.Log.Errorw("failed to parse films file", "path", path, "err", err)
		return 0, err
	}
	if len(films) == 0 {
		return 0, nil
	}

	if err := svc.writer.SaveAll(ctx, films); err != nil {
		logger.Log.Errorw("failed to save films", "err", err)
		return 0, err
	}

	logger.Log.Infow("films loaded", "path", path, "count", len(films))
	return len(films), nil
}
