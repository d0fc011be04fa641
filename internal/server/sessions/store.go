// Package sessions provides the TTL token store backing interactive sessions.
// Tokens are opaque strings mapped to user IDs; the store itself guarantees
// expiry, so callers never check timestamps.
package sessions

import (
	"context"
	"time"
)

// DefaultTTL is the lifetime of an interactive session (24 hours).
const DefaultTTL = 86400 * time.Second

// keyPrefix namespaces session keys so they cannot collide with other key
// spaces sharing the same store.
const keyPrefix = "auth_"

// Store maps opaque session tokens to user IDs with absolute expiry.
type Store interface {
	// Put stores token -> userID for ttl, overwriting any existing entry.
	Put(ctx context.Context, token, userID string, ttl time.Duration) error

	// Get returns the user ID for token, or a not-found error if the token
	// is absent or past its TTL.
	Get(ctx context.Context, token string) (string, error)

	// Delete removes token. Deleting an absent token is not an error.
	Delete(ctx context.Context, token string) error

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}

func sessionKey(token string) string {
	return keyPrefix + token
}
