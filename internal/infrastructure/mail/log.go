package mail

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/talentcast/jobposting-api/internal/core/domain"
)

// LogMailer stands in for SMTP in development: it logs each message and
// reports it as sent. The body is never logged since it may hold a
// verification link.
type LogMailer struct {
	log zerolog.Logger
}

func NewLogMailer(log zerolog.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) Send(ctx context.Context, msg domain.MailMessage) domain.MailResult {
	if err := ctx.Err(); err != nil {
		return domain.MailFailed(err.Error())
	}
	m.log.Info().
		Str("from", msg.From).
		Str("recipient", msg.To).
		Str("subject", msg.Subject).
		Int("body_bytes", len(msg.HTMLBody)).
		Msg("mail not delivered: no MAIL_HOST configured")
	return domain.MailSent("logged")
}
