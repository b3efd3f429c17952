package ports

import (
	"context"
	"time"

	"github.com/talentcast/jobposting-api/internal/core/domain"
)

// PostJobInput is an already validated job posting request.
type PostJobInput struct {
	Title           string
	Description     string
	ExperienceLevel domain.ExperienceLevel
	Candidates      []string
	EndDate         time.Time
}

// PostJobResult holds the persisted posting and, when candidates were given,
// the fan-out report.
type PostJobResult struct {
	Job    *domain.JobPosting
	Report *domain.FanoutReport
}

// JobService validates ownership and persists postings.
type JobService interface {
	PostJob(ctx context.Context, who domain.Identity, in PostJobInput) (*PostJobResult, error)
	Notifications(ctx context.Context, who domain.Identity, jobID string) ([]domain.NotificationOutcome, error)
}
