package models

import "time"

// ReviewDB represents a review record in the database.
type ReviewDB struct {
	ID        int64     `json:"id" db:"id"`                 // Primary key
	FilmID    int64     `json:"film_id" db:"film_id"`       // Reviewed film
	AuthorID  int64     `json:"author_id" db:"author_id"`   // Review author; unique with FilmID
	Text      string    `json:"text" db:"text"`             // Free-text body
	Score     *int      `json:"score" db:"score"`           // Optional score in [0, 10]
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// ReviewWithAuthor is a review row joined with its author summary.
type ReviewWithAuthor struct {
	ReviewDB
	AuthorLogin string `json:"author_login" db:"author_login"`
}
