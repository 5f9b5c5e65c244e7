package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/onlyfilms/onlyfilms/internal/logger"
	"github.com/onlyfilms/onlyfilms/internal/models"
	"github.com/onlyfilms/onlyfilms/internal/services"
)

// FilmProvider defines the interface that the film service must implement.
type FilmProvider interface {
	List(ctx context.Context, q string, afterID int64, limit int) ([]models.FilmWithScore, int64, error)
	Get(ctx context.Context, id int64) (*models.FilmWithScore, error)
}

// FilmListResponse represents a page of films
// swagger:model FilmListResponse
type FilmListResponse struct {
	Films []models.FilmWithScore `json:"films"`
	// Total number of films matching the query, ignoring pagination
	// example: 10
	Total int64 `json:"total"`
	// Offset this page was requested with
	// example: 0
	Offset int64 `json:"offset"`
}

// NewFilmListHandler returns an HTTP handler for the film listing.
// @Summary List films
// @Description Returns a page of films with their aggregate scores. The score is the average of all numeric review scores, rounded to one decimal, or null when nobody scored the film yet.
// @Tags films
// @Produce json
// @Param q query string false "Case-insensitive substring match on title"
// @Param offset query int false "Return films with id greater than this" default(0)
// @Param limit query int false "Page size, at most 50" default(10)
// @Success 200 {object} handlers.FilmListResponse "Page of films"
// @Failure 422 {object} handlers.ErrorResponse "Malformed query parameters"
// @Router /films [get]
func NewFilmListHandler(svc FilmProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")

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

		films, total, err := svc.List(r.Context(), q, offset, int(limit))
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(FilmListResponse{Films: films, Total: total, Offset: offset})
	}
}

// NewFilmDetailHandler returns an HTTP handler for a single film.
// @Summary Film detail
// @Description Returns one film with its aggregate score and evaluator count.
// @Tags films
// @Produce json
// @Param film_id path int true "Film id"
// @Success 200 {object} models.FilmWithScore "Film with aggregates"
// @Failure 404 {object} handlers.ErrorResponse "Film not found"
// @Router /films/{film_id} [get]
func NewFilmDetailHandler(svc FilmProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathInt(r, "film_id")
		if err != nil {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "film_id must be an integer"})
			return
		}

		film, err := svc.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrFilmNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "film not found"})
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(film)
	}
}

// queryInt parses an optional integer query parameter.
func queryInt(r *http.Request, name string, def int64) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}

// pathInt parses an integer chi path parameter.
func pathInt(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}
