package ports

import (
	"context"

	"github.com/talentcast/jobposting-api/internal/core/domain"
)

// Mailer delivers one message. It never returns an error: failures, including
// ctx expiry, are reported in the result. Send must return promptly once ctx
// is done; the fan-out stops waiting at its send timeout but the call itself
// keeps running until it does.
type Mailer interface {
	Send(ctx context.Context, msg domain.MailMessage) domain.MailResult
}

// SecretKeeper owns how account secrets are stored and compared. Swapping the
// implementation is the single change needed to move to a hashing scheme.
type SecretKeeper interface {
	Seal(secret string) (string, error)
	Match(stored, presented string) bool
}
