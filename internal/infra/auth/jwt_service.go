package auth

import (
	"time"

	"catalog/config"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// tokenClaims are the claims carried by an access token.
type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
// The signing secret is read once here and never changes afterwards.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	ttl := time.Duration(0)
	if cfg.Auth != nil {
		ttl = cfg.Auth.TokenTTL
	}

	return NewJWTServiceWithClock(cfg.SecretKey.Access, ttl, time.Now)
}

// NewJWTServiceWithClock creates a token service with an explicit clock.
func NewJWTServiceWithClock(secret string, ttl time.Duration, now func() time.Time) (service.TokenService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if ttl <= 0 {
		return nil, errors.New("token ttl must be positive")
	}

	return &jwtService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    now,
	}, nil
}

// Issue signs a token for the account, valid for the configured TTL.
func (s *jwtService) Issue(account *entity.Account) (*service.IssuedToken, error) {
	issuedAt := s.now()
	claims := tokenClaims{
		Role: account.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign token")
	}

	return &service.IssuedToken{
		Token:     signed,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Verify parses and checks a token, returning the identity it carries.
func (s *jwtService) Verify(token string) (*entity.Identity, error) {
	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, classifyTokenError(err)
	}

	subject, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, domainerrors.ErrTokenMalformed.WithDetails("invalid subject claim")
	}

	role := entity.Role(claims.Role)
	if !role.IsValid() {
		return nil, domainerrors.ErrTokenMalformed.WithDetails("invalid role claim")
	}

	return &entity.Identity{Subject: subject, Role: role}, nil
}

func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return domainerrors.ErrTokenSignatureInvalid
	case errors.Is(err, jwt.ErrTokenExpired):
		return domainerrors.ErrTokenExpired
	default:
		return domainerrors.ErrTokenMalformed
	}
}
