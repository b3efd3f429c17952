package handler

import "github.com/talentcast/jobposting-api/internal/core/domain"

// errorResponse is the error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error   string         `json:"error"`
	Issues  []domain.Issue `json:"issues,omitempty"`
	Details string         `json:"details,omitempty"`
}

// messageResponse carries a fixed human-readable message.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Account ---

type signupRequest struct {
	Name         string `json:"name"         validate:"required"`
	PhoneNumber  string `json:"phoneNumber"  validate:"required,min=10"`
	CompanyName  string `json:"companyName"  validate:"required"`
	CompanyEmail string `json:"companyEmail" validate:"required,email"`
	Password     string `json:"password"     validate:"required,min=6"`
}

type signinRequest struct {
	CompanyEmail string `json:"companyEmail" validate:"required,email"`
	Password     string `json:"password"     validate:"required,min=6"`
}

type signupResponse struct {
	Message   string `json:"message"`
	AccountID string `json:"accountId"`
}

type accountSummary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	CompanyEmail string `json:"companyEmail"`
	CompanyName  string `json:"companyName"`
}

type signinResponse struct {
	Message string         `json:"message"`
	User    accountSummary `json:"user"`
}

// --- Job ---

type postJobRequest struct {
	JobTitle        string   `json:"jobTitle"        validate:"required"`
	JobDescription  string   `json:"jobDescription"  validate:"required,min=10"`
	ExperienceLevel string   `json:"experienceLevel" validate:"required,oneof=Entry Mid-level Senior Executive"`
	Candidates      []string `json:"candidates"      validate:"omitempty,dive,email"`
	EndDate         string   `json:"endDate"         validate:"required,datetime=2006-01-02T15:04:05Z"`
}

type postJobResponse struct {
	Message      string                       `json:"message"`
	JobID        string                       `json:"jobId"`
	EmailResults []domain.NotificationOutcome `json:"emailResults,omitempty"`
}

type notificationsResponse struct {
	JobID        string                       `json:"jobId"`
	EmailResults []domain.NotificationOutcome `json:"emailResults"`
}
