package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/talentcast/jobposting-api/internal/core/domain"
	"github.com/talentcast/jobposting-api/internal/core/ports"
)

const defaultSendTimeout = 15 * time.Second

// FanoutConfig tunes NotificationFanout.
type FanoutConfig struct {
	From        string
	SendTimeout time.Duration
	// MaxParallel caps in-flight sends; zero means one goroutine per recipient.
	MaxParallel int
}

// NotificationFanout mails every candidate of a posting concurrently and
// waits for all sends to settle. A failed send never cancels the others.
type NotificationFanout struct {
	mailer ports.Mailer
	cfg    FanoutConfig
	log    zerolog.Logger
}

func NewNotificationFanout(mailer ports.Mailer, cfg FanoutConfig, log zerolog.Logger) *NotificationFanout {
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = defaultSendTimeout
	}
	return &NotificationFanout{mailer: mailer, cfg: cfg, log: log}
}

// Dispatch sends one message per candidate and returns the outcomes in
// candidate order. Cancelling ctx does not abort sends already started; each
// send is bounded by SendTimeout instead.
func (f *NotificationFanout) Dispatch(ctx context.Context, from Sender, job JobDetails, candidates []string) domain.FanoutReport {
	report := domain.FanoutReport{
		Outcomes:     make([]domain.NotificationOutcome, len(candidates)),
		AllSucceeded: true,
	}
	if len(candidates) == 0 {
		return report
	}

	body, err := renderOpportunity(from, job)
	if err != nil {
		f.log.Error().Err(err).Msg("render candidate notification")
		for i, to := range candidates {
			report.Outcomes[i] = domain.NotificationOutcome{Recipient: to, Error: "failed to render message"}
		}
		report.AllSucceeded = false
		return report
	}
	subject := fmt.Sprintf("New Job Opportunity from %s", from.CompanyName)

	start := time.Now()
	base := context.WithoutCancel(ctx)
	var g errgroup.Group
	if f.cfg.MaxParallel > 0 {
		g.SetLimit(f.cfg.MaxParallel)
	}
	for i, to := range candidates {
		g.Go(func() error {
			res := f.send(base, domain.MailMessage{From: f.cfg.From, To: to, Subject: subject, HTMLBody: body})
			report.Outcomes[i] = domain.NotificationOutcome{
				Recipient: to,
				Success:   res.Success,
				Info:      res.Info,
				Error:     res.Error,
			}
			return nil
		})
	}
	_ = g.Wait()
	report.Elapsed = time.Since(start)

	for _, o := range report.Outcomes {
		if !o.Success {
			report.AllSucceeded = false
			f.log.Warn().Str("recipient", o.Recipient).Str("reason", o.Error).Msg("candidate notification failed")
		}
	}
	return report
}

// send bounds one delivery by SendTimeout even if the mailer ignores ctx.
func (f *NotificationFanout) send(ctx context.Context, msg domain.MailMessage) domain.MailResult {
	ctx, cancel := context.WithTimeout(ctx, f.cfg.SendTimeout)
	defer cancel()

	done := make(chan domain.MailResult, 1)
	go func() { done <- f.mailer.Send(ctx, msg) }()

	select {
	case res := <-done:
		return res
	case <-ctx.Done():
		return domain.MailFailed(fmt.Sprintf("send timed out after %s", f.cfg.SendTimeout))
	}
}
