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

// JobService persists postings for verified accounts and notifies candidates.
type JobService struct {
	accounts ports.AccountRepository
	jobs     ports.JobRepository
	fanout   *NotificationFanout
	receipts ports.DeliveryLog
	log      zerolog.Logger
	now      func() time.Time
	newID    func() string
}

// NewJobService wires the service. receipts may be nil, in which case
// outcomes are only returned to the caller.
func NewJobService(
	accounts ports.AccountRepository,
	jobs ports.JobRepository,
	fanout *NotificationFanout,
	receipts ports.DeliveryLog,
	log zerolog.Logger,
) *JobService {
	return &JobService{
		accounts: accounts,
		jobs:     jobs,
		fanout:   fanout,
		receipts: receipts,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
}

// PostJob stores the posting and, if there are candidates, mails them. The
// posting stands whatever the notification outcomes are.
func (s *JobService) PostJob(ctx context.Context, who domain.Identity, in ports.PostJobInput) (*ports.PostJobResult, error) {
	if !in.ExperienceLevel.Valid() {
		return nil, &domain.ValidationError{Issues: []domain.Issue{{
			Field:   "experienceLevel",
			Tag:     "oneof",
			Message: "experienceLevel must be one of: Entry Mid-level Senior Executive",
		}}}
	}

	account, err := s.accounts.FindByID(ctx, who.AccountID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("post job: load account: %w", err)
	}
	if account.Pending() {
		return nil, domain.ErrAccountNotVerified
	}

	candidates := in.Candidates
	if candidates == nil {
		candidates = []string{}
	}
	job := &domain.JobPosting{
		ID:              s.newID(),
		AccountID:       account.ID,
		Title:           in.Title,
		Description:     in.Description,
		ExperienceLevel: in.ExperienceLevel,
		Candidates:      candidates,
		EndDate:         in.EndDate.UTC(),
		CreatedAt:       s.now(),
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("post job: %w", err)
	}
	s.log.Info().Str("job_id", job.ID).Str("account_id", account.ID).Int("candidates", len(candidates)).Msg("job posted")

	result := &ports.PostJobResult{Job: job}
	if len(candidates) == 0 {
		return result, nil
	}

	report := s.fanout.Dispatch(ctx,
		Sender{Name: account.Name, CompanyName: account.CompanyName},
		JobDetails{
			Title:       job.Title,
			Description: job.Description,
			Level:       string(job.ExperienceLevel),
			Deadline:    job.EndDate.Format(time.RFC3339),
		},
		candidates,
	)
	result.Report = &report

	if s.receipts != nil {
		if err := s.receipts.Record(context.WithoutCancel(ctx), job.ID, report.Outcomes); err != nil {
			s.log.Warn().Err(err).Str("job_id", job.ID).Msg("failed to record notification receipts")
		}
	}
	return result, nil
}

// Notifications returns the recorded outcomes of a posting owned by who.
func (s *JobService) Notifications(ctx context.Context, who domain.Identity, jobID string) ([]domain.NotificationOutcome, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("notifications: %w", err)
	}
	if job.AccountID != who.AccountID {
		return nil, domain.ErrForbidden
	}
	if s.receipts == nil {
		return []domain.NotificationOutcome{}, nil
	}

	outcomes, err := s.receipts.List(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("notifications: %w", err)
	}
	return outcomes, nil
}
