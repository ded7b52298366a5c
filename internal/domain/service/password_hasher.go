// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash to see if they match.
	Check(password, hash string) bool

	// ValidatePasswordStrength enforces the configured password policy.
	ValidatePasswordStrength(password string) error
}

// ActivationCodeGenerator produces one-time activation codes.
type ActivationCodeGenerator interface {
	Generate() (string, error)
}
