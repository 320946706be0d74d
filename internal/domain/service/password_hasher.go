// Package service declares the ports the use cases drive: hashing, tokens,
// files, QR codes, events and metrics. Implementations live under infra.
package service

// PasswordHasher stores and verifies account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Matches(password, hash string) bool

	// ValidatePasswordStrength returns ErrPasswordStrength describing the
	// first rule the password breaks, or ErrPasswordForbiddenWords.
	ValidatePasswordStrength(password string) error
}
