package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentcast/jobposting-api/internal/core/domain"
)

func pendingAccount(id, email string) *domain.Account {
	return &domain.Account{ID: id, Name: "Ada", CompanyName: "Acme", CompanyEmail: email, Secret: "secret1"}
}

func TestVerificationFlow_BeginStoresRandomToken(t *testing.T) {
	repo := newStubAccountRepo()
	repo.seed(pendingAccount("a1", "a@acme.test"))
	flow := NewVerificationFlow(repo)

	first, err := flow.BeginVerification(context.Background(), "a1")
	require.NoError(t, err)
	assert.Len(t, first, 2*verificationTokenBytes)
	assert.True(t, isHex(first))

	stored, _ := repo.FindByID(context.Background(), "a1")
	assert.Equal(t, first, stored.VerificationToken)

	second, err := flow.BeginVerification(context.Background(), "a1")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestVerificationFlow_BeginUnknownAccount(t *testing.T) {
	flow := NewVerificationFlow(newStubAccountRepo())

	_, err := flow.BeginVerification(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestVerificationFlow_CompleteIsSingleUse(t *testing.T) {
	repo := newStubAccountRepo()
	repo.seed(pendingAccount("a1", "a@acme.test"))
	flow := NewVerificationFlow(repo)
	ctx := context.Background()

	token, err := flow.BeginVerification(ctx, "a1")
	require.NoError(t, err)

	account, err := flow.CompleteVerification(ctx, token)
	require.NoError(t, err)
	assert.True(t, account.IsVerified)
	assert.Empty(t, account.VerificationToken)

	_, err = flow.CompleteVerification(ctx, token)
	assert.ErrorIs(t, err, domain.ErrInvalidVerificationToken)
}

func TestVerificationFlow_CompleteUnknownToken(t *testing.T) {
	repo := newStubAccountRepo()
	repo.seed(pendingAccount("a1", "a@acme.test"))
	flow := NewVerificationFlow(repo)

	for _, token := range []string{"", "deadbeef"} {
		_, err := flow.CompleteVerification(context.Background(), token)
		assert.ErrorIs(t, err, domain.ErrInvalidVerificationToken, "token %q", token)
	}
}

func TestVerificationFlow_BeginAfterVerifyIsRejected(t *testing.T) {
	repo := newStubAccountRepo()
	repo.seed(pendingAccount("a1", "a@acme.test"))
	flow := NewVerificationFlow(repo)
	ctx := context.Background()

	token, err := flow.BeginVerification(ctx, "a1")
	require.NoError(t, err)
	_, err = flow.CompleteVerification(ctx, token)
	require.NoError(t, err)

	_, err = flow.BeginVerification(ctx, "a1")
	assert.ErrorIs(t, err, domain.ErrAlreadyVerified)
}
