package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/talentcast/jobposting-api/internal/core/domain"
)

const collectionJobs = "job_postings"

type JobRepository struct {
	col *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{col: db.Collection(collectionJobs)}
}

type jobDoc struct {
	ID              string    `bson:"_id"`
	AccountID       string    `bson:"account_id"`
	Title           string    `bson:"job_title"`
	Description     string    `bson:"job_description"`
	ExperienceLevel string    `bson:"experience_level"`
	Candidates      []string  `bson:"candidates"`
	EndDate         time.Time `bson:"end_date"`
	CreatedAt       time.Time `bson:"created_at"`
}

func toJobDoc(j *domain.JobPosting) jobDoc {
	candidates := j.Candidates
	if candidates == nil {
		candidates = []string{}
	}
	return jobDoc{
		ID:              j.ID,
		AccountID:       j.AccountID,
		Title:           j.Title,
		Description:     j.Description,
		ExperienceLevel: string(j.ExperienceLevel),
		Candidates:      candidates,
		EndDate:         j.EndDate,
		CreatedAt:       j.CreatedAt,
	}
}

func (d jobDoc) toDomain() *domain.JobPosting {
	candidates := d.Candidates
	if candidates == nil {
		candidates = []string{}
	}
	return &domain.JobPosting{
		ID:              d.ID,
		AccountID:       d.AccountID,
		Title:           d.Title,
		Description:     d.Description,
		ExperienceLevel: domain.ExperienceLevel(d.ExperienceLevel),
		Candidates:      candidates,
		EndDate:         d.EndDate.UTC(),
		CreatedAt:       d.CreatedAt.UTC(),
	}
}

// Create inserts a new job posting document.
func (r *JobRepository) Create(ctx context.Context, j *domain.JobPosting) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, toJobDoc(j)); err != nil {
		return fmt.Errorf("insert job posting: %w", err)
	}
	return nil
}

func (r *JobRepository) FindByID(ctx context.Context, id string) (*domain.JobPosting, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var doc jobDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job posting: %w", err)
	}
	return doc.toDomain(), nil
}

// EnsureIndexes creates necessary indexes on the job postings collection.
func (r *JobRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "account_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}
