// Package cryptox provides the one-way password digest used for stored
// credentials.
package cryptox

import (
	"crypto/sha1"
	"encoding/hex"
)

// HashPassword returns the hex-encoded SHA-1 digest of password.
//
// SHA-1 without a salt is weak by modern standards. It is kept because every
// stored credential was written with this digest; switching to a salted KDF
// would lock out existing users unless paired with a rehash-on-login
// migration, which does not exist yet.
func HashPassword(password string) string {
	sum := sha1.Sum([]byte(password))
	return hex.EncodeToString(sum[:])
}
