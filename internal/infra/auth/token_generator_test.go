package auth

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenGenerator_Format(t *testing.T) {
	gen := NewTokenGenerator()

	token, err := gen.Generate()
	require.NoError(t, err)

	// 24 random bytes hex-encoded: 48 characters, decodable back to 24 bytes.
	assert.Len(t, token, tokenByteLength*2)

	raw, err := hex.DecodeString(token)
	require.NoError(t, err)
	assert.Len(t, raw, tokenByteLength)
}

func TestTokenGenerator_PairwiseDistinct(t *testing.T) {
	gen := NewTokenGenerator()

	const samples = 10000
	seen := make(map[string]struct{}, samples)
	for i := 0; i < samples; i++ {
		token, err := gen.Generate()
		require.NoError(t, err)

		_, dup := seen[token]
		require.False(t, dup, "duplicate token after %d samples", i)
		seen[token] = struct{}{}
	}
}
