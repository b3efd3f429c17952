package service

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/talentcast/jobposting-api/internal/core/ports"
)

const (
	SchemePlaintext = "plaintext"
	SchemeBcrypt    = "bcrypt"
)

// NewSecretKeeper returns the SecretKeeper for scheme.
func NewSecretKeeper(scheme string) (ports.SecretKeeper, error) {
	switch scheme {
	case "", SchemePlaintext:
		return PlaintextSecrets{}, nil
	case SchemeBcrypt:
		return BcryptSecrets{Cost: bcrypt.DefaultCost}, nil
	default:
		return nil, fmt.Errorf("unknown password scheme %q", scheme)
	}
}

// PlaintextSecrets stores secrets as given and compares them in constant time.
// Whether to hash is an open product decision; see BcryptSecrets.
type PlaintextSecrets struct{}

func (PlaintextSecrets) Seal(secret string) (string, error) { return secret, nil }

func (PlaintextSecrets) Match(stored, presented string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(presented)) == 1
}

// BcryptSecrets stores bcrypt hashes.
type BcryptSecrets struct {
	Cost int
}

func (b BcryptSecrets) Seal(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), b.Cost)
	if err != nil {
		return "", fmt.Errorf("hash secret: %w", err)
	}
	return string(hash), nil
}

func (BcryptSecrets) Match(stored, presented string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(presented)) == nil
}
