package auth

import (
	"crypto/rand"
	"encoding/hex"

	"catalog/internal/domain/service"

	"github.com/pkg/errors"
)

const activationCodeBytes = 32

type randomCodeGenerator struct{}

// NewActivationCodeGenerator returns a generator of 64-character hex activation codes.
func NewActivationCodeGenerator() service.ActivationCodeGenerator {
	return randomCodeGenerator{}
}

// Generate reads 32 bytes from crypto/rand.
func (randomCodeGenerator) Generate() (string, error) {
	buf := make([]byte, activationCodeBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	return hex.EncodeToString(buf), nil
}
