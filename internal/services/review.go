package services

import (
	"context"
	"errors"

	"github.com/onlyfilms/onlyfilms/internal/logger"
	"github.com/onlyfilms/onlyfilms/internal/models"
	"github.com/onlyfilms/onlyfilms/internal/repositories"
)

// Error variables
var (
	ErrReviewNotFound  = errors.New("review not found")
	ErrDuplicateReview = errors.New("user already reviewed this film")
	ErrNotPermitted    = errors.New("operation not permitted")
)

// ReviewReader defines read operations for reviews with author summaries.
type ReviewReader interface {
	GetByID(ctx context.Context, filmID, reviewID int64) (*models.ReviewWithAuthor, error)
	ListByFilm(ctx context.Context, filmID int64, offset, limit int) ([]models.ReviewWithAuthor, error)
	CountByFilm(ctx context.Context, filmID int64) (int64, error)
}

// ReviewWriter defines write operations for reviews.
type ReviewWriter interface {
	Save(ctx context.Context, filmID, authorID int64, text string, score *int) (int64, error)
	Delete(ctx context.Context, reviewID, authorID int64) (int64, error)
}

// ReviewService handles the review workflow.
type ReviewService struct {
	reader ReviewReader
	writer ReviewWriter
}

// NewReviewService creates a new ReviewService instance.
func NewReviewService(reader ReviewReader, writer ReviewWriter) *ReviewService {
	return &ReviewService{reader: reader, writer: writer}
}

// Post creates a review and returns its id. A missing film maps to
// ErrFilmNotFound, a second review by the same author for the same film to
// ErrDuplicateReview; both come from storage constraints, so a double
// submit race cannot slip through.
func (svc *ReviewService) Post(ctx context.Context, filmID, authorID int64, text string, score *int) (int64, error) {
	id, err := svc.writer.Save(ctx, filmID, authorID, text, score)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrForeignKeyViolation):
			logger.Log.Warnw("review for unknown film", "film_id", filmID)
			return 0, ErrFilmNotFound
		case errors.Is(err, repositories.ErrUniqueViolation):
			logger.Log.Warnw("duplicate review", "film_id", filmID, "author_id", authorID)
			return 0, ErrDuplicateReview
		}
		logger.Log.Errorw("failed to save review", "err", err)
		return 0, err
	}
	return id, nil
}

// Get returns one review of a film with its author summary.
func (svc *ReviewService) Get(ctx context.Context, filmID, reviewID int64) (*models.ReviewWithAuthor, error) {
	review, err := svc.reader.GetByID(ctx, filmID, reviewID)
	if err != nil {
		logger.Log.Errorw("failed to get review", "review_id", reviewID, "err", err)
		return nil, err
	}
	if review == nil {
		return nil, ErrReviewNotFound
	}
	return review, nil
}

// List returns a page of reviews for a film ordered by creation time
// ascending, plus the total count for the film.
func (svc *ReviewService) List(ctx context.Context, filmID int64, offset, limit int) ([]models.ReviewWithAuthor, int64, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}

	reviews, err := svc.reader.ListByFilm(ctx, filmID, offset, limit)
	if err != nil {
		logger.Log.Errorw("failed to list reviews", "film_id", filmID, "err", err)
		return nil, 0, err
	}

	total, err := svc.reader.CountByFilm(ctx, filmID)
	if err != nil {
		logger.Log.Errorw("failed to count reviews", "film_id", filmID, "err", err)
		return nil, 0, err
	}

	return reviews, total, nil
}

// Delete removes a review on behalf of its author and returns the deleted
// id. A review that does not exist and a review owned by someone else both
// map to ErrNotPermitted, leaving the row untouched.
func (svc *ReviewService) Delete(ctx context.Context, reviewID, authorID int64) (int64, error) {
	id, err := svc.writer.Delete(ctx, reviewID, authorID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.Log.Warnw("delete not permitted", "review_id", reviewID, "user_id", authorID)
			return 0, ErrNotPermitted
		}
		logger.Log.Errorw("failed to delete review", "review_id", reviewID, "err", err)
		return 0, err
	}
	return id, nil
}
