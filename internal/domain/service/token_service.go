package service

import (
	"time"

	"catalog/internal/domain/entity"
)

// IssuedToken is a signed bearer token together with its expiry.
type IssuedToken struct {
	Token     string
	ExpiresAt time.Time
}

// TokenService issues and verifies stateless bearer tokens.
// Tokens stay valid until they expire; there is no revocation.
type TokenService interface {
	// Issue signs a token carrying the account's id and role.
	Issue(account *entity.Account) (*IssuedToken, error)

	// Verify returns the identity carried by a token. Failures are ErrTokenMalformed,
	// ErrTokenSignatureInvalid or ErrTokenExpired.
	Verify(token string) (*entity.Identity, error)
}
