// Package token issues and checks opaque session tokens. A token is an
// unguessable random value stored server-side with its creation time; it
// carries no claims and is revoked by deleting its row.
package token

import (
	"time"

	"github.com/google/uuid"
)

// DefaultTTL is the validity window of a freshly issued token.
const DefaultTTL = 12 * time.Hour

// Issuer generates token values and decides expiry.
type Issuer struct {
	TTL time.Duration // Token validity window
}

// New creates an Issuer. A non-positive ttl falls back to DefaultTTL.
func New(ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Issuer{TTL: ttl}
}

// Generate returns a new globally unique opaque token value.
func (i *Issuer) Generate() string {
	return uuid.NewString()
}

// Expired reports whether a token created at the given time is expired at now.
func (i *Issuer) Expired(created, now time.Time) bool {
	return now.Sub(created) >= i.TTL
}
