// Package service declares the infrastructure capabilities the usecases depend on:
// password hashing for user accounts and publishing of check-in events.
package service

// MaxPasswordBytes is the longest password a PasswordHasher accepts. bcrypt rejects
// longer input, so user creation validates against it up front.
const MaxPasswordBytes = 72

// PasswordHasher turns user passwords into the hashes stored on User records.
// Plaintext passwords are never persisted or returned.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether hash was produced from password.
	Check(password, hash string) bool
}
