package store

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// MatchSecret compares a submitted password against a stored admin secret.
// Secrets written by newer tooling are bcrypt hashes; seeds from the legacy
// system stored the password verbatim, so anything without a bcrypt prefix
// is compared as plaintext in constant time.
func MatchSecret(stored, password string) bool {
	if isBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1
}

// isBcryptHash matches the full version prefix so a plaintext secret that
// merely starts with "$2" is not mistaken for a hash.
func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}
