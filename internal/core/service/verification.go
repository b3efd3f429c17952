package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/talentcast/jobposting-api/internal/core/domain"
	"github.com/talentcast/jobposting-api/internal/core/ports"
)

// verificationTokenBytes is the amount of randomness behind each token.
const verificationTokenBytes = 32

// VerificationFlow owns the pending → verified transition of an account.
// Tokens have no expiry; they stay valid until consumed.
type VerificationFlow struct {
	repo     ports.AccountRepository
	newToken func() (string, error)
}

func NewVerificationFlow(repo ports.AccountRepository) *VerificationFlow {
	return &VerificationFlow{repo: repo, newToken: randomToken}
}

// MintToken returns a fresh token without storing it. Signup inserts it with
// the account so a pending account never exists without one.
func (f *VerificationFlow) MintToken() (string, error) {
	token, err := f.newToken()
	if err != nil {
		return "", fmt.Errorf("mint verification token: %w", err)
	}
	return token, nil
}

// BeginVerification replaces the token of an existing pending account and
// returns it for delivery.
func (f *VerificationFlow) BeginVerification(ctx context.Context, accountID string) (string, error) {
	token, err := f.MintToken()
	if err != nil {
		return "", fmt.Errorf("begin verification: %w", err)
	}
	if err := f.repo.SetVerificationToken(ctx, accountID, token); err != nil {
		return "", fmt.Errorf("begin verification: %w", err)
	}
	return token, nil
}

// CompleteVerification verifies the account holding token. Unknown, consumed
// and empty tokens all fail with domain.ErrInvalidVerificationToken.
func (f *VerificationFlow) CompleteVerification(ctx context.Context, token string) (*domain.Account, error) {
	if token == "" {
		return nil, domain.ErrInvalidVerificationToken
	}
	account, err := f.repo.ConsumeVerificationToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("complete verification: %w", err)
	}
	return account, nil
}

func randomToken() (string, error) {
	b := make([]byte, verificationTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("read random: %w", err)
	}
	return hex.EncodeToString(b), nil
}
