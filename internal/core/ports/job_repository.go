package ports

import (
	"context"

	"github.com/talentcast/jobposting-api/internal/core/domain"
)

// JobRepository persists job postings.
type JobRepository interface {
	Create(ctx context.Context, job *domain.JobPosting) error
	FindByID(ctx context.Context, id string) (*domain.JobPosting, error)
}

// DeliveryLog keeps the per-recipient outcomes of a posting's notification batch.
type DeliveryLog interface {
	Record(ctx context.Context, jobID string, outcomes []domain.NotificationOutcome) error
	List(ctx context.Context, jobID string) ([]domain.NotificationOutcome, error)
}
