package auth

import (
	"crypto/rand"
	"encoding/hex"

	"gatekeeper/internal/domain/service"

	"github.com/pkg/errors"
)

// tokenByteLength is the raw entropy per token: 24 bytes (192 bits), encoded
// to a 48-character hex string. Brute-force guessing is infeasible well below
// this size; 192 bits keeps the value compact enough for a header.
const tokenByteLength = 24

// randomTokenGenerator mints opaque access tokens from crypto/rand.
type randomTokenGenerator struct{}

// NewTokenGenerator is the constructor for randomTokenGenerator.
func NewTokenGenerator() service.TokenGenerator {
	return &randomTokenGenerator{}
}

// Generate returns a fresh 48-character hex token. The only error path is the
// system random source failing, which is not recoverable by retrying here.
func (g *randomTokenGenerator) Generate() (string, error) {
	buf := make([]byte, tokenByteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read from system random source")
	}

	return hex.EncodeToString(buf), nil
}
