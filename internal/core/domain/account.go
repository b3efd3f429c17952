package domain

import "time"

// Account is a registered company. It starts pending (unverified, holding a
// verification token) and is flipped to verified exactly once.
type Account struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	PhoneNumber       string    `json:"phoneNumber"`
	CompanyName       string    `json:"companyName"`
	CompanyEmail      string    `json:"companyEmail"`
	Secret            string    `json:"-"`
	IsVerified        bool      `json:"isVerified"`
	VerificationToken string    `json:"-"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// Pending reports whether the account still awaits email verification.
func (a *Account) Pending() bool {
	return !a.IsVerified
}

// Verify moves the account into the verified state and drops the token so it
// can never match again.
func (a *Account) Verify(at time.Time) {
	a.IsVerified = true
	a.VerificationToken = ""
	a.UpdatedAt = at
}

// Identity is the decoded content of a session token.
type Identity struct {
	AccountID    string
	CompanyEmail string
}
