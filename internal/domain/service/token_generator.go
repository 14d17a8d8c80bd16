package service

// TokenGenerator defines the interface for minting access tokens.
// Tokens are opaque bearer strings; nothing in the system derives meaning from
// their contents.
type TokenGenerator interface {
	// Generate returns a fresh token drawn from a cryptographically secure
	// random source with at least 128 bits of entropy.
	Generate() (string, error)
}
