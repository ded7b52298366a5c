// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"catalog/config"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/service"

	"golang.org/x/crypto/bcrypt"
)

// DefaultPasswordPolicy applies when no passwordStrength section is configured.
var DefaultPasswordPolicy = config.PasswordStrengthConfig{
	MinLength:        6,
	RequireUppercase: true,
	RequireNumbers:   true,
	MaxLength:        72,
}

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy config.PasswordStrengthConfig
}

// NewBcryptHasher builds the hasher from the auth and passwordStrength config sections.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	policy := DefaultPasswordPolicy
	if cfg.PasswordStrength != nil {
		policy = *cfg.PasswordStrength
	}

	return NewBcryptHasherWithPolicy(cost, policy)
}

// NewBcryptHasherWithPolicy creates a hasher with an explicit cost and policy.
// Costs outside bcrypt's accepted range fall back to bcrypt.DefaultCost.
func NewBcryptHasherWithPolicy(cost int, policy config.PasswordStrengthConfig) service.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{cost: cost, policy: policy}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	return err == nil
}

// ValidatePasswordStrength reports the first policy rule the password breaks.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	p := h.policy

	if p.MinLength > 0 && utf8.RuneCountInString(password) < p.MinLength {
		return domainerrors.ErrPasswordStrength.WithDetails("must be at least " + strconv.Itoa(p.MinLength) + " characters long")
	}
	// bcrypt only looks at the first 72 bytes.
	if p.MaxLength > 0 && len(password) > p.MaxLength {
		return domainerrors.ErrPasswordStrength.WithDetails("must be at most " + strconv.Itoa(p.MaxLength) + " bytes long")
	}
	if p.RequireUppercase && !hasUppercase(password) {
		return domainerrors.ErrPasswordStrength.WithDetails("must contain at least one uppercase letter")
	}
	if p.RequireLowercase && !hasLowercase(password) {
		return domainerrors.ErrPasswordStrength.WithDetails("must contain at least one lowercase letter")
	}
	if p.RequireNumbers && !hasNumbers(password) {
		return domainerrors.ErrPasswordStrength.WithDetails("must contain at least one number")
	}
	if p.RequireSpecial && !hasSpecialChars(password) {
		return domainerrors.ErrPasswordStrength.WithDetails("must contain at least one special character")
	}

	return nil
}

func hasUppercase(s string) bool {
	return containsRune(s, unicode.IsUpper)
}

func hasLowercase(s string) bool {
	return containsRune(s, unicode.IsLower)
}

func hasNumbers(s string) bool {
	return containsRune(s, unicode.IsDigit)
}

func hasSpecialChars(s string) bool {
	return containsRune(s, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	})
}

func containsRune(s string, pred func(rune) bool) bool {
	for _, r := range s {
		if pred(r) {
			return true
		}
	}

	return false
}
