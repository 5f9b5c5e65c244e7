package repositories

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onlyfilms/onlyfilms/internal/models"
)

func TestFilmRepositories(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewFilmWriteRepository(db, noTx)
	readRepo := NewFilmReadRepository(db)
	ctx := context.Background()

	director := "Ridley Scott"
	films := make([]models.FilmDB, 0, 10)
	for i := 1; i <= 10; i++ {
		films = append(films, models.FilmDB{
			Title:    fmt.Sprintf("Film %02d", i),
			Director: &director,
		})
	}
	require.NoError(t, writeRepo.SaveAll(ctx, films))

	t.Run("List first page", func(t *testing.T) {
		page, err := readRepo.List(ctx, "", 0, 3)
		require.NoError(t, err)
		require.Len(t, page, 3)
		assert.Equal(t, "Film 01", page[0].Title)
		assert.Nil(t, page[0].Score)
		assert.Equal(t, 0, page[0].Evaluators)
	})

	t.Run("List after id", func(t *testing.T) {
		page, err := readRepo.List(ctx, "", 5, 2)
		require.NoError(t, err)
		require.Len(t, page, 2)
		assert.Equal(t, "Film 06", page[0].Title)
		assert.Equal(t, "Film 07", page[1].Title)
	})

	t.Run("Count", func(t *testing.T) {
		total, err := readRepo.Count(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, int64(10), total)
	})

	t.Run("search is case-insensitive substring", func(t *testing.T) {
		page, err := readRepo.List(ctx, "film 0", 0, 50)
		require.NoError(t, err)
		assert.Len(t, page, 9)

		total, err := readRepo.Count(ctx, "FILM 01")
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
	})

	t.Run("no match", func(t *testing.T) {
		page, err := readRepo.List(ctx, "casablanca", 0, 50)
		require.NoError(t, err)
		assert.Empty(t, page)
	})

	t.Run("aggregates recomputed on read", func(t *testing.T) {
		filmID := mustFilm(t, db, "Scored Film")
		u1 := mustUser(t, db, "rater1")
		u2 := mustUser(t, db, "rater2")
		u3 := mustUser(t, db, "rater3")

		// Two numeric scores and one score-less review: the average uses
		// only the two numbers and rounds to one decimal.
		_, err := db.Exec(`INSERT INTO reviews (film_id, author_id, text, score)
			VALUES ($1, $2, 'good', 8), ($1, $3, 'great', 9), ($1, $4, 'meh', NULL)`,
			filmID, u1, u2, u3)
		require.NoError(t, err)

		film, err := readRepo.GetByID(ctx, filmID)
		require.NoError(t, err)
		require.NotNil(t, film)
		require.NotNil(t, film.Score)
		assert.Equal(t, 8.5, *film.Score)
		assert.Equal(t, 2, film.Evaluators)
	})

	t.Run("GetByID missing", func(t *testing.T) {
		film, err := readRepo.GetByID(ctx, 999999)
		assert.NoError(t, err)
		assert.Nil(t, film)
	})

	t.Run("Save single film", func(t *testing.T) {
		id, err := writeRepo.Save(ctx, models.FilmDB{Title: "Single"})
		require.NoError(t, err)
		assert.Positive(t, id)

		film, err := readRepo.GetByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, film)
		assert.Equal(t, "Single", film.Title)
		assert.Nil(t, film.Director)
	})
}
