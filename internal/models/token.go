package models

import "time"

// TokenDB represents a session token record in the database.
type TokenDB struct {
	ID        int64     `db:"id"`         // Primary key
	UserID    int64     `db:"user_id"`    // Owning user
	Value     string    `db:"value"`      // Unique opaque token value
	CreatedAt time.Time `db:"created_at"` // Issue timestamp, drives expiry
}
