package ports

import (
	"context"
	"time"

	"github.com/talentcast/jobposting-api/internal/core/domain"
)

// SignupInput is an already validated signup request.
type SignupInput struct {
	Name         string
	PhoneNumber  string
	CompanyName  string
	CompanyEmail string
	Password     string
}

// Session is a signed session token and its absolute expiry.
type Session struct {
	Token     string
	ExpiresAt time.Time
}

// AuthResult is returned by every operation that opens a session.
type AuthResult struct {
	Session Session
	Account *domain.Account
}

// AccountService orchestrates signup, verification and signin.
type AccountService interface {
	Signup(ctx context.Context, in SignupInput) (*AuthResult, error)
	Verify(ctx context.Context, token string) (*AuthResult, error)
	Signin(ctx context.Context, companyEmail, password string) (*AuthResult, error)
}

// SessionVerifier decodes a presented session token.
type SessionVerifier interface {
	Verify(token string) (domain.Identity, error)
}
