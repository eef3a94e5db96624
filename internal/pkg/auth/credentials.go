package auth

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier checks a caller-supplied credential against the stored one.
// The scheme is pluggable so routing and identity resolution never depend on
// how credentials are stored.
type CredentialVerifier interface {
	// Verify reports whether supplied matches stored.
	Verify(stored, supplied string) bool
	// Hash prepares a credential for storage under this scheme.
	Hash(plain string) (string, error)
}

// Scheme names accepted in configuration.
const (
	SchemePlaintext = "plaintext"
	SchemeBcrypt    = "bcrypt"
)

// NewVerifier returns the verifier for the configured scheme.
func NewVerifier(scheme string) (CredentialVerifier, error) {
	switch scheme {
	case "", SchemePlaintext:
		return PlaintextVerifier{}, nil
	case SchemeBcrypt:
		return BcryptVerifier{Cost: bcrypt.DefaultCost}, nil
	default:
		return nil, fmt.Errorf("unknown credential scheme: %q", scheme)
	}
}

// PlaintextVerifier compares credentials by exact equality. This is the
// historical contract of the stored data; swap in BcryptVerifier once the
// stored credentials are rehashed.
type PlaintextVerifier struct{}

// Verify compares in constant time.
func (PlaintextVerifier) Verify(stored, supplied string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}

// Hash stores the credential as-is.
func (PlaintextVerifier) Hash(plain string) (string, error) {
	return plain, nil
}

// BcryptVerifier stores and checks bcrypt hashes.
type BcryptVerifier struct {
	Cost int
}

func (v BcryptVerifier) Verify(stored, supplied string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
}

func (v BcryptVerifier) Hash(plain string) (string, error) {
	cost := v.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash credential: %w", err)
	}
	return string(hashed), nil
}
