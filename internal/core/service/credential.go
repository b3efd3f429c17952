package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/talentcast/jobposting-api/internal/core/domain"
	"github.com/talentcast/jobposting-api/internal/core/ports"
)

const DefaultSessionTTL = 24 * time.Hour

// sessionClaims is the payload of a session token.
type sessionClaims struct {
	AccountID string `json:"userId"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

// TokenIssuer mints and checks HS256 session tokens. It holds no state beyond
// its key, so any replica can verify any token it issued.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenIssuer returns an issuer signing with secret. An empty secret is
// rejected.
func NewTokenIssuer(secret []byte, ttl time.Duration) (*TokenIssuer, error) {
	if len(secret) == 0 {
		return nil, errors.New("token issuer: signing secret is required")
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &TokenIssuer{secret: secret, ttl: ttl, now: time.Now}, nil
}

// TTL is the lifetime of every issued session.
func (t *TokenIssuer) TTL() time.Duration { return t.ttl }

// Issue signs a session for the account that expires ttl from now.
func (t *TokenIssuer) Issue(accountID, companyEmail string) (ports.Session, error) {
	now := t.now()
	exp := now.Add(t.ttl)
	claims := sessionClaims{
		AccountID: accountID,
		Email:     companyEmail,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return ports.Session{}, fmt.Errorf("sign session: %w", err)
	}
	return ports.Session{Token: signed, ExpiresAt: exp}, nil
}

// Verify checks signature and expiry and returns the embedded identity. It
// does not look at the account's current verification state.
func (t *TokenIssuer) Verify(token string) (domain.Identity, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil || !parsed.Valid {
		return domain.Identity{}, fmt.Errorf("%w: %v", domain.ErrUnauthenticated, err)
	}
	if claims.AccountID == "" || claims.Email == "" {
		return domain.Identity{}, fmt.Errorf("%w: missing identity claims", domain.ErrUnauthenticated)
	}
	return domain.Identity{AccountID: claims.AccountID, CompanyEmail: claims.Email}, nil
}
