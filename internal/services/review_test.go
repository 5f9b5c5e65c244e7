package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/onlyfilms/onlyfilms/internal/models"
	"github.com/onlyfilms/onlyfilms/internal/repositories"
	"github.com/onlyfilms/onlyfilms/internal/services"
)

func TestReviewService_Post(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	score := 9

	tests := []struct {
		name      string
		writerErr error
		wantID    int64
		wantErr   error
	}{
		{
			name:   "successful post",
			wantID: 42,
		},
		{
			name:      "film does not exist",
			writerErr: repositories.ErrForeignKeyViolation,
			wantErr:   services.ErrFilmNotFound,
		},
		{
			name:      "author already reviewed this film",
			writerErr: repositories.ErrUniqueViolation,
			wantErr:   services.ErrDuplicateReview,
		},
		{
			name:      "storage error",
			writerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWriter := services.NewMockReviewWriter(ctrl)
			mockWriter.EXPECT().
				Save(gomock.Any(), int64(1), int64(7), "great", &score).
				Return(tt.wantID, tt.writerErr)

			svc := services.NewReviewService(nil, mockWriter)
			id, err := svc.Post(context.Background(), 1, 7, "great", &score)

			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Zero(t, id)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}

func TestReviewService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("found", func(t *testing.T) {
		review := &models.ReviewWithAuthor{
			ReviewDB:    models.ReviewDB{ID: 3, FilmID: 1, AuthorID: 7, Text: "great", CreatedAt: time.Now()},
			AuthorLogin: "alice1",
		}

		mockReader := services.NewMockReviewReader(ctrl)
		mockReader.EXPECT().GetByID(gomock.Any(), int64(1), int64(3)).Return(review, nil)

		svc := services.NewReviewService(mockReader, nil)
		got, err := svc.Get(context.Background(), 1, 3)
		assert.NoError(t, err)
		assert.Equal(t, review, got)
	})

	t.Run("not found", func(t *testing.T) {
		mockReader := services.NewMockReviewReader(ctrl)
		mockReader.EXPECT().GetByID(gomock.Any(), int64(1), int64(666)).Return(nil, nil)

		svc := services.NewReviewService(mockReader, nil)
		got, err := svc.Get(context.Background(), 1, 666)
		assert.ErrorIs(t, err, services.ErrReviewNotFound)
		assert.Nil(t, got)
	})
}

func TestReviewService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reviews := []models.ReviewWithAuthor{
		{ReviewDB: models.ReviewDB{ID: 1, FilmID: 1, Text: "first"}, AuthorLogin: "alice1"},
		{ReviewDB: models.ReviewDB{ID: 2, FilmID: 1, Text: "second"}, AuthorLogin: "bobby1"},
	}

	mockReader := services.NewMockReviewReader(ctrl)
	mockReader.EXPECT().ListByFilm(gomock.Any(), int64(1), 0, services.DefaultLimit).Return(reviews, nil)
	mockReader.EXPECT().CountByFilm(gomock.Any(), int64(1)).Return(int64(2), nil)

	svc := services.NewReviewService(mockReader, nil)
	got, total, err := svc.List(context.Background(), 1, -5, 0)
	assert.NoError(t, err)
	assert.Equal(t, reviews, got)
	assert.Equal(t, int64(2), total)
}

func TestReviewService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("author deletes own review", func(t *testing.T) {
		mockWriter := services.NewMockReviewWriter(ctrl)
		mockWriter.EXPECT().Delete(gomock.Any(), int64(3), int64(7)).Return(int64(3), nil)

		svc := services.NewReviewService(nil, mockWriter)
		id, err := svc.Delete(context.Background(), 3, 7)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), id)
	})

	t.Run("non-author is not permitted", func(t *testing.T) {
		mockWriter := services.NewMockReviewWriter(ctrl)
		mockWriter.EXPECT().Delete(gomock.Any(), int64(3), int64(8)).Return(int64(0), repositories.ErrNotFound)

		svc := services.NewReviewService(nil, mockWriter)
		id, err := svc.Delete(context.Background(), 3, 8)
		assert.ErrorIs(t, err, services.ErrNotPermitted)
		assert.Zero(t, id)
	})

	t.Run("missing review is not permitted either", func(t *testing.T) {
		mockWriter := services.NewMockReviewWriter(ctrl)
		mockWriter.EXPECT().Delete(gomock.Any(), int64(666), int64(7)).Return(int64(0), repositories.ErrNotFound)

		svc := services.NewReviewService(nil, mockWriter)
		_, err := svc.Delete(context.Background(), 666, 7)
		assert.ErrorIs(t, err, services.ErrNotPermitted)
	})
}
