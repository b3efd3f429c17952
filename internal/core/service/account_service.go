package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/talentcast/jobposting-api/internal/core/domain"
	"github.com/talentcast/jobposting-api/internal/core/ports"
)

// AccountConfig carries the mail settings used at signup.
type AccountConfig struct {
	MailFrom string
	// VerifyURL is the link prefix the verification token is appended to.
	VerifyURL string
}

// AccountService implements signup, email verification and signin.
type AccountService struct {
	repo    ports.AccountRepository
	flow    *VerificationFlow
	issuer  *TokenIssuer
	secrets ports.SecretKeeper
	mailer  ports.Mailer
	cfg     AccountConfig
	log     zerolog.Logger
	now     func() time.Time
	newID   func() string
}

func NewAccountService(
	repo ports.AccountRepository,
	flow *VerificationFlow,
	issuer *TokenIssuer,
	secrets ports.SecretKeeper,
	mailer ports.Mailer,
	cfg AccountConfig,
	log zerolog.Logger,
) *AccountService {
	return &AccountService{
		repo:    repo,
		flow:    flow,
		issuer:  issuer,
		secrets: secrets,
		mailer:  mailer,
		cfg:     cfg,
		log:     log,
		now:     func() time.Time { return time.Now().UTC() },
		newID:   uuid.NewString,
	}
}

// Signup creates a pending account holding its verification token in a single
// insert, mails the link and opens a session. When the mail fails the account
// is kept and the call fails with a *domain.EmailDeliveryError.
func (s *AccountService) Signup(ctx context.Context, in ports.SignupInput) (*ports.AuthResult, error) {
	// Fast path only; the store's unique index is the real guard.
	if _, err := s.repo.FindByEmail(ctx, in.CompanyEmail); err == nil {
		return nil, domain.ErrAccountExists
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, fmt.Errorf("signup: lookup email: %w", err)
	}

	sealed, err := s.secrets.Seal(in.Password)
	if err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}

	token, err := s.flow.MintToken()
	if err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}

	now := s.now()
	account := &domain.Account{
		ID:                s.newID(),
		Name:              in.Name,
		PhoneNumber:       in.PhoneNumber,
		CompanyName:       in.CompanyName,
		CompanyEmail:      in.CompanyEmail,
		Secret:            sealed,
		VerificationToken: token,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.repo.Create(ctx, account); err != nil {
		if errors.Is(err, domain.ErrAccountExists) {
			return nil, domain.ErrAccountExists
		}
		return nil, fmt.Errorf("signup: create account: %w", err)
	}

	body, err := renderVerification(s.cfg.VerifyURL + token)
	if err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}
	res := s.mailer.Send(ctx, domain.MailMessage{
		From:     s.cfg.MailFrom,
		To:       account.CompanyEmail,
		Subject:  "Please verify your email",
		HTMLBody: body,
	})
	if !res.Success {
		s.log.Warn().Str("account_id", account.ID).Str("reason", res.Error).Msg("verification email not delivered")
		return nil, &domain.EmailDeliveryError{Detail: res.Error}
	}

	session, err := s.issuer.Issue(account.ID, account.CompanyEmail)
	if err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}

	s.log.Info().Str("account_id", account.ID).Msg("account created, verification pending")
	return &ports.AuthResult{Session: session, Account: account}, nil
}

// Verify consumes a verification token and logs the account in.
func (s *AccountService) Verify(ctx context.Context, token string) (*ports.AuthResult, error) {
	account, err := s.flow.CompleteVerification(ctx, token)
	if err != nil {
		return nil, err
	}

	session, err := s.issuer.Issue(account.ID, account.CompanyEmail)
	if err != nil {
		return nil, fmt.Errorf("verify: %w", err)
	}

	s.log.Info().Str("account_id", account.ID).Msg("account verified")
	return &ports.AuthResult{Session: session, Account: account}, nil
}

// Signin checks, in order, that the email is known, the account is verified
// and the secret matches.
func (s *AccountService) Signin(ctx context.Context, companyEmail, password string) (*ports.AuthResult, error) {
	account, err := s.repo.FindByEmail(ctx, companyEmail)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrUnknownEmail
		}
		return nil, fmt.Errorf("signin: %w", err)
	}

	if account.Pending() {
		return nil, domain.ErrAccountNotVerified
	}

	if !s.secrets.Match(account.Secret, password) {
		return nil, domain.ErrInvalidCredentials
	}

	session, err := s.issuer.Issue(account.ID, account.CompanyEmail)
	if err != nil {
		return nil, fmt.Errorf("signin: %w", err)
	}
	return &ports.AuthResult{Session: session, Account: account}, nil
}
