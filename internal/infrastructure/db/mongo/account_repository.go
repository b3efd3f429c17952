package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/talentcast/jobposting-api/internal/core/domain"
)

const collectionAccounts = "accounts"

// AccountRepository stores accounts in MongoDB. The unique index on
// company_email is the authority on duplicate signups.
type AccountRepository struct {
	col *mongo.Collection
	now func() time.Time
}

func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{
		col: db.Collection(collectionAccounts),
		now: func() time.Time { return time.Now().UTC() },
	}
}

type accountDoc struct {
	ID                string    `bson:"_id"`
	Name              string    `bson:"name"`
	PhoneNumber       string    `bson:"phone_number"`
	CompanyName       string    `bson:"company_name"`
	CompanyEmail      string    `bson:"company_email"`
	Secret            string    `bson:"secret"`
	IsVerified        bool      `bson:"is_verified"`
	VerificationToken string    `bson:"verification_token,omitempty"`
	CreatedAt         time.Time `bson:"created_at"`
	UpdatedAt         time.Time `bson:"updated_at"`
}

func toAccountDoc(a *domain.Account) accountDoc {
	return accountDoc{
		ID:                a.ID,
		Name:              a.Name,
		PhoneNumber:       a.PhoneNumber,
		CompanyName:       a.CompanyName,
		CompanyEmail:      a.CompanyEmail,
		Secret:            a.Secret,
		IsVerified:        a.IsVerified,
		VerificationToken: a.VerificationToken,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}

func (d accountDoc) toDomain() *domain.Account {
	return &domain.Account{
		ID:                d.ID,
		Name:              d.Name,
		PhoneNumber:       d.PhoneNumber,
		CompanyName:       d.CompanyName,
		CompanyEmail:      d.CompanyEmail,
		Secret:            d.Secret,
		IsVerified:        d.IsVerified,
		VerificationToken: d.VerificationToken,
		CreatedAt:         d.CreatedAt.UTC(),
		UpdatedAt:         d.UpdatedAt.UTC(),
	}
}

// Create inserts a new account. A duplicate company email is reported as
// domain.ErrAccountExists.
func (r *AccountRepository) Create(ctx context.Context, a *domain.Account) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, toAccountDoc(a)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrAccountExists
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// FindByEmail matches the company email exactly.
func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.findOne(ctx, bson.M{"company_email": email})
}

func (r *AccountRepository) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *AccountRepository) findOne(ctx context.Context, filter bson.M) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var doc accountDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return doc.toDomain(), nil
}

// SetVerificationToken stores token on a pending account.
func (r *AccountRepository) SetVerificationToken(ctx context.Context, id, token string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "is_verified": false},
		bson.M{"$set": bson.M{"verification_token": token, "updated_at": r.now()}},
	)
	if err != nil {
		return fmt.Errorf("set verification token: %w", err)
	}
	if res.MatchedCount == 0 {
		// Either the account is gone or it is already verified.
		if _, err := r.FindByID(ctx, id); err != nil {
			return err
		}
		return domain.ErrAlreadyVerified
	}
	return nil
}

// ConsumeVerificationToken verifies the pending account holding token and
// removes the token in one atomic update, so a token matches at most once.
func (r *AccountRepository) ConsumeVerificationToken(ctx context.Context, token string) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc accountDoc
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"verification_token": token, "is_verified": false},
		bson.M{
			"$set":   bson.M{"is_verified": true, "updated_at": r.now()},
			"$unset": bson.M{"verification_token": ""},
		},
		opts,
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrInvalidVerificationToken
		}
		return nil, fmt.Errorf("consume verification token: %w", err)
	}
	return doc.toDomain(), nil
}

// EnsureIndexes creates the unique email index and the sparse token index.
func (r *AccountRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "company_email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "verification_token", Value: 1}},
			Options: options.Index().SetSparse(true),
		},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
