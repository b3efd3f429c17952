package ports

import (
	"context"

	"github.com/talentcast/jobposting-api/internal/core/domain"
)

// AccountRepository persists accounts. Create must enforce the unique
// company-email constraint itself and report a clash as domain.ErrAccountExists.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	// SetVerificationToken stores token on a still-pending account.
	SetVerificationToken(ctx context.Context, id, token string) error
	// ConsumeVerificationToken atomically verifies the pending account holding
	// token and clears it. A token matches at most once.
	ConsumeVerificationToken(ctx context.Context, token string) (*domain.Account, error)
}
