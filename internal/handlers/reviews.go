package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/onlyfilms/onlyfilms/internal/logger"
	"github.com/onlyfilms/onlyfilms/internal/metrics"
	"github.com/onlyfilms/onlyfilms/internal/middlewares"
	"github.com/onlyfilms/onlyfilms/internal/models"
	"github.com/onlyfilms/onlyfilms/internal/services"
	"github.com/onlyfilms/onlyfilms/internal/validation"
)

// Reviewer defines the interface that the review service must implement.
type Reviewer interface {
	Post(ctx context.Context, filmID, authorID int64, text string, score *int) (int64, error)
	Get(ctx context.Context, filmID, reviewID int64) (*models.ReviewWithAuthor, error)
	List(ctx context.Context, filmID int64, offset, limit int) ([]models.ReviewWithAuthor, int64, error)
	Delete(ctx context.Context, reviewID, authorID int64) (int64, error)
}

// ReviewCreateRequest represents the JSON body for posting a review
// swagger:model ReviewCreateRequest
type ReviewCreateRequest struct {
	// Review text
	// required: true
	// example: great
	Text string `json:"text" validate:"required,max=2000"`

	// Optional score between 0 and 10
	// example: 9
	Score *int `json:"score" validate:"omitempty,gte=0,lte=10"`
}

// ReviewCreateResponse represents a successful review creation
// swagger:model ReviewCreateResponse
type ReviewCreateResponse struct {
	// Identifier of the created review
	// example: 42
	ReviewID int64 `json:"review_id"`
}

// ReviewListResponse represents a page of reviews for one film
// swagger:model ReviewListResponse
type ReviewListResponse struct {
	Reviews []models.ReviewWithAuthor `json:"reviews"`
	// Total number of reviews for the film
	// example: 3
	Total int64 `json:"total"`
	// Offset this page was requested with
	// example: 0
	Offset int64 `json:"offset"`
}

// ReviewDeleteResponse represents a successful review deletion
// swagger:model ReviewDeleteResponse
type ReviewDeleteResponse struct {
	// Identifier of the deleted review
	// example: 42
	ReviewID int64 `json:"review_id"`
}

// NewReviewCreateHandler returns an HTTP handler for posting a review.
// @Summary Post a review
// @Description Creates a review for a film. Each user may review a film at most once; the second attempt fails with a conflict.
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param film_id path int true "Film id"
// @Param reviewCreateRequest body handlers.ReviewCreateRequest true "Review body"
// @Success 201 {object} handlers.ReviewCreateResponse "Review created"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} handlers.ErrorResponse "Film not found"
// @Failure 409 {object} handlers.ErrorResponse "User already reviewed this film"
// @Failure 422 {object} handlers.ErrorResponse "Invalid review body"
// @Router /films/{film_id}/review [post]
func NewReviewCreateHandler(svc Reviewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "authorization required"})
			return
		}

		filmID, err := pathInt(r, "film_id")
		if err != nil {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "film_id must be an integer"})
			return
		}

		var req ReviewCreateRequest
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

		reviewID, err := svc.Post(r.Context(), filmID, user.ID, req.Text, req.Score)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrFilmNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "film not found"})
			case errors.Is(err, services.ErrDuplicateReview):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "film already reviewed"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "internal server error"})
			}
			return
		}

		metrics.ReviewsCreatedTotal.Inc()

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(ReviewCreateResponse{ReviewID: reviewID})
	}
}

// NewReviewDetailHandler returns an HTTP handler for a single review.
// @Summary Review detail
// @Description Returns one review of a film with its author summary.
// @Tags reviews
// @Produce json
// @Param film_id path int true "Film id"
// @Param review_id path int true "Review id"
// @Success 200 {object} models.ReviewWithAuthor "Review with author"
// @Failure 404 {object} handlers.ErrorResponse "Review not found"
// @Router /films/{film_id}/reviews/{review_id} [get]
func NewReviewDetailHandler(svc Reviewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filmID, err := pathInt(r, "film_id")
		if err != nil {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "film_id must be an integer"})
			return
		}
		reviewID, err := pathInt(r, "review_id")
		if err != nil {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "review_id must be an integer"})
			return
		}

		review, err := svc.Get(r.Context(), filmID, reviewID)
		if err != nil {
			if errors.Is(err, services.ErrReviewNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "review not found"})
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(review)
	}
}

// NewReviewListHandler returns an HTTP handler for listing a film's reviews.
// @Summary List reviews
// @Description Returns a page of reviews for a film, oldest first, plus the total count.
// @Tags reviews
// @Produce json
// @Param film_id path int true "Film id"
// @Param offset query int false "Rows to skip" default(0)
// @Param limit query int false "Page size, at most 50" default(10)
// @Success 200 {object} handlers.ReviewListResponse "Page of reviews"
// @Failure 422 {object} handlers.ErrorResponse "Malformed parameters"
// @Router /films/{film_id}/reviews [get]
func NewReviewListHandler(svc Reviewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filmID, err := pathInt(r, "film_id")
		if err != nil {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "film_id must be an integer"})
			return
		}

		offset, err := queryInt(r, "offset", 0)
		if err != nil || offset < 0 {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "offset must be a non-negative integer"})
			return
		}

		limit, err := queryInt(r, "limit", 0)
		if err != nil || limit < 0 {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "limit must be a non-negative integer"})
			return
		}

		reviews, total, err := svc.List(r.Context(), filmID, int(offset), int(limit))
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ReviewListResponse{Reviews: reviews, Total: total, Offset: offset})
	}
}

// NewReviewDeleteHandler returns an HTTP handler for deleting a review.
// @Summary Delete a review
// @Description Deletes a review. Only the original author may delete it; anyone else gets a forbidden response and the review stays.
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param film_id path int true "Film id"
// @Param review_id path int true "Review id"
// @Success 200 {object} handlers.ReviewDeleteResponse "Review deleted"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} handlers.ErrorResponse "Not the author, or no such review"
// @Router /films/{film_id}/reviews/{review_id} [delete]
func NewReviewDeleteHandler(svc Reviewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "authorization required"})
			return
		}

		reviewID, err := pathInt(r, "review_id")
		if err != nil {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "review_id must be an integer"})
			return
		}

		id, err := svc.Delete(r.Context(), reviewID, user.ID)
		if err != nil {
			if errors.Is(err, services.ErrNotPermitted) {
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "not permitted"})
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ReviewDeleteResponse{ReviewID: id})
	}
}
