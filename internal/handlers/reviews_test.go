package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onlyfilms/onlyfilms/internal/middlewares"
	"github.com/onlyfilms/onlyfilms/internal/models"
	"github.com/onlyfilms/onlyfilms/internal/services"
)

func asUser(req *http.Request, user *models.UserDB) *http.Request {
	return req.WithContext(middlewares.SetUserToContext(req.Context(), user))
}

func TestReviewCreateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alice := &models.UserDB{ID: 7, Login: "alice1"}

	tests := []struct {
		name         string
		target       string
		body         string
		user         *models.UserDB
		mockSetup    func(m *MockReviewer)
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name:   "success with score",
			target: "/films/6/review",
			body:   `{"text":"great","score":9}`,
			user:   alice,
			mockSetup: func(m *MockReviewer) {
				m.EXPECT().
					Post(gomock.Any(), int64(6), int64(7), "great", gomock.Any()).
					DoAndReturn(func(_ any, _, _ int64, _ string, score *int) (int64, error) {
						require.NotNil(t, score)
						require.Equal(t, 9, *score)
						return int64(42), nil
					})
			},
			expectedCode: http.StatusCreated,
			expectedBody: map[string]any{"review_id": float64(42)},
		},
		{
			name:   "success without score",
			target: "/films/6/review",
			body:   `{"text":"have not decided yet"}`,
			user:   alice,
			mockSetup: func(m *MockReviewer) {
				m.EXPECT().
					Post(gomock.Any(), int64(6), int64(7), "have not decided yet", gomock.Nil()).
					Return(int64(43), nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: map[string]any{"review_id": float64(43)},
		},
		{
			name:         "unauthorized",
			target:       "/films/6/review",
			body:         `{"text":"great"}`,
			user:         nil,
			mockSetup:    func(m *MockReviewer) {},
			expectedCode: http.StatusUnauthorized,
			expectedBody: map[string]any{"error": "authorization required"},
		},
		{
			name:   "film not found",
			target: "/films/999/review",
			body:   `{"text":"great"}`,
			user:   alice,
			mockSetup: func(m *MockReviewer) {
				m.EXPECT().
					Post(gomock.Any(), int64(999), int64(7), "great", gomock.Nil()).
					Return(int64(0), services.ErrFilmNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: map[string]any{"error": "film not found"},
		},
		{
			name:   "duplicate review",
			target: "/films/6/review",
			body:   `{"text":"again"}`,
			user:   alice,
			mockSetup: func(m *MockReviewer) {
				m.EXPECT().
					Post(gomock.Any(), int64(6), int64(7), "again", gomock.Nil()).
					Return(int64(0), services.ErrDuplicateReview)
			},
			expectedCode: http.StatusConflict,
			expectedBody: map[string]any{"error": "film already reviewed"},
		},
		{
			name:         "score out of range",
			target:       "/films/6/review",
			body:         `{"text":"great","score":11}`,
			user:         alice,
			mockSetup:    func(m *MockReviewer) {},
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: map[string]any{"error": "score must be at most 10"},
		},
		{
			name:         "missing text",
			target:       "/films/6/review",
			body:         `{"score":5}`,
			user:         alice,
			mockSetup:    func(m *MockReviewer) {},
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: map[string]any{"error": "text is required"},
		},
		{
			name:         "invalid json",
			target:       "/films/6/review",
			body:         `{`,
			user:         alice,
			mockSetup:    func(m *MockReviewer) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"error": "invalid request body"},
		},
		{
			name:   "internal server error",
			target: "/films/6/review",
			body:   `{"text":"great"}`,
			user:   alice,
			mockSetup: func(m *MockReviewer) {
				m.EXPECT().
					Post(gomock.Any(), int64(6), int64(7), "great", gomock.Nil()).
					Return(int64(0), errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]any{"error": "internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockReviewer(ctrl)
			tt.mockSetup(mockSvc)

			router := chi.NewRouter()
			router.Post("/films/{film_id}/review", NewReviewCreateHandler(mockSvc))

			req := httptest.NewRequest(http.MethodPost, tt.target, bytes.NewBufferString(tt.body))
			if tt.user != nil {
				req = asUser(req, tt.user)
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]any
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}

func TestReviewDetailHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		target       string
		mockSetup    func(m *MockReviewer)
		expectedCode int
		check        func(t *testing.T, body []byte)
	}{
		{
			name:   "found",
			target: "/films/6/reviews/42",
			mockSetup: func(m *MockReviewer) {
				m.EXPECT().
					Get(gomock.Any(), int64(6), int64(42)).
					Return(&models.ReviewWithAuthor{
						ReviewDB:    models.ReviewDB{ID: 42, FilmID: 6, AuthorID: 7, Text: "great", Score: intPtr(9)},
						AuthorLogin: "alice1",
					}, nil)
			},
			expectedCode: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var resp models.ReviewWithAuthor
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, int64(42), resp.ID)
				assert.Equal(t, "great", resp.Text)
				assert.Equal(t, "alice1", resp.AuthorLogin)
			},
		},
		{
			name:   "not found",
			target: "/films/6/reviews/999",
			mockSetup: func(m *MockReviewer) {
				m.EXPECT().
					Get(gomock.Any(), int64(6), int64(999)).
					Return(nil, services.ErrReviewNotFound)
			},
			expectedCode: http.StatusNotFound,
			check: func(t *testing.T, body []byte) {
				var resp ErrorResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, "review not found", resp.Error)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockReviewer(ctrl)
			tt.mockSetup(mockSvc)

			router := chi.NewRouter()
			router.Get("/films/{film_id}/reviews/{review_id}", NewReviewDetailHandler(mockSvc))

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			tt.check(t, rr.Body.Bytes())
		})
	}
}

func TestReviewListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reviews := []models.ReviewWithAuthor{
		{
			ReviewDB:    models.ReviewDB{ID: 1, FilmID: 6, AuthorID: 7, Text: "first", Score: intPtr(8)},
			AuthorLogin: "alice1",
		},
		{
			ReviewDB:    models.ReviewDB{ID: 2, FilmID: 6, AuthorID: 8, Text: "second"},
			AuthorLogin: "bobby1",
		},
	}

	t.Run("page of reviews", func(t *testing.T) {
		mockSvc := NewMockReviewer(ctrl)
		mockSvc.EXPECT().
			List(gomock.Any(), int64(6), 0, 0).
			Return(reviews, int64(2), nil)

		router := chi.NewRouter()
		router.Get("/films/{film_id}/reviews", NewReviewListHandler(mockSvc))

		req := httptest.NewRequest(http.MethodGet, "/films/6/reviews", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp ReviewListResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp.Reviews, 2)
		assert.Equal(t, int64(2), resp.Total)
		assert.Equal(t, "first", resp.Reviews[0].Text)
		assert.Nil(t, resp.Reviews[1].Score)
	})

	t.Run("malformed limit", func(t *testing.T) {
		mockSvc := NewMockReviewer(ctrl)

		router := chi.NewRouter()
		router.Get("/films/{film_id}/reviews", NewReviewListHandler(mockSvc))

		req := httptest.NewRequest(http.MethodGet, "/films/6/reviews?limit=abc", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})
}

func TestReviewDeleteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	alice := &models.UserDB{ID: 7, Login: "alice1"}
	mallory := &models.UserDB{ID: 9, Login: "mallory"}

	tests := []struct {
		name         string
		target       string
		user         *models.UserDB
		mockSetup    func(m *MockReviewer)
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name:   "author deletes own review",
			target: "/films/6/reviews/42",
			user:   alice,
			mockSetup: func(m *MockReviewer) {
				m.EXPECT().
					Delete(gomock.Any(), int64(42), int64(7)).
					Return(int64(42), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]any{"review_id": float64(42)},
		},
		{
			name:   "not the author",
			target: "/films/6/reviews/42",
			user:   mallory,
			mockSetup: func(m *MockReviewer) {
				m.EXPECT().
					Delete(gomock.Any(), int64(42), int64(9)).
					Return(int64(0), services.ErrNotPermitted)
			},
			expectedCode: http.StatusForbidden,
			expectedBody: map[string]any{"error": "not permitted"},
		},
		{
			name:         "unauthorized",
			target:       "/films/6/reviews/42",
			user:         nil,
			mockSetup:    func(m *MockReviewer) {},
			expectedCode: http.StatusUnauthorized,
			expectedBody: map[string]any{"error": "authorization required"},
		},
		{
			name:   "internal server error",
			target: "/films/6/reviews/42",
			user:   alice,
			mockSetup: func(m *MockReviewer) {
				m.EXPECT().
					Delete(gomock.Any(), int64(42), int64(7)).
					Return(int64(0), errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]any{"error": "internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockReviewer(ctrl)
			tt.mockSetup(mockSvc)

			router := chi.NewRouter()
			router.Delete("/films/{film_id}/reviews/{review_id}", NewReviewDeleteHandler(mockSvc))

			req := httptest.NewRequest(http.MethodDelete, tt.target, nil)
			if tt.user != nil {
				req = asUser(req, tt.user)
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]any
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}
