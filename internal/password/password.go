// Package password wraps bcrypt hashing for stored user credentials.
package password

import "golang.org/x/crypto/bcrypt"

// Cost is the bcrypt work factor used for new hashes.
const Cost = 10

// Hash returns the bcrypt hash of a plaintext password.
func Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), Cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches the stored bcrypt hash.
func Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
