package models

import "time"

// UserDB represents a user record in the database.
type UserDB struct {
	ID           int64     `json:"id" db:"id"`                       // Primary key
	Login        string    `json:"login" db:"login"`                 // Unique login
	PasswordHash string    `json:"-" db:"password_hash"`             // bcrypt hash, never serialized
	RegisteredAt time.Time `json:"registered_at" db:"registered_at"` // Registration timestamp
}
