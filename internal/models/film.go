package models

// FilmDB represents a film record in the database.
type FilmDB struct {
	ID          int64   `json:"id" db:"id"`                   // Primary key
	Title       string  `json:"title" db:"title"`             // Required title
	Director    *string `json:"director" db:"director"`       // Optional director
	Description *string `json:"description" db:"description"` // Optional description
	Cover       *string `json:"cover" db:"cover"`             // Optional cover reference
}

// FilmWithScore is a film row joined with its on-demand review aggregate.
// Score is nil when the film has no scored reviews.
type FilmWithScore struct {
	FilmDB
	Score      *float64 `json:"score" db:"score"`           // Rounded to one decimal place
	Evaluators int      `json:"evaluators" db:"evaluators"` // Count of scored reviews
}
