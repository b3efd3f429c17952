package domain

import "time"

// ExperienceLevel is the seniority a job posting targets.
type ExperienceLevel string

const (
	LevelEntry     ExperienceLevel = "Entry"
	LevelMid       ExperienceLevel = "Mid-level"
	LevelSenior    ExperienceLevel = "Senior"
	LevelExecutive ExperienceLevel = "Executive"
)

var experienceLevels = []ExperienceLevel{LevelEntry, LevelMid, LevelSenior, LevelExecutive}

// Valid reports whether l is one of the fixed experience levels.
func (l ExperienceLevel) Valid() bool {
	for _, known := range experienceLevels {
		if l == known {
			return true
		}
	}
	return false
}

// JobPosting is a job opening owned (by id) by a verified account.
type JobPosting struct {
	ID              string          `json:"id"`
	AccountID       string          `json:"accountId"`
	Title           string          `json:"jobTitle"`
	Description     string          `json:"jobDescription"`
	ExperienceLevel ExperienceLevel `json:"experienceLevel"`
	Candidates      []string        `json:"candidates"`
	EndDate         time.Time       `json:"endDate"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// NotificationOutcome is the result of mailing one candidate.
type NotificationOutcome struct {
	Recipient string `json:"recipient"`
	Success   bool   `json:"success"`
	Info      string `json:"info,omitempty"`
	Error     string `json:"error,omitempty"`
}

// FanoutReport aggregates the outcomes of one notification batch.
type FanoutReport struct {
	Outcomes     []NotificationOutcome
	AllSucceeded bool
	// Elapsed is the wall time from the first send to the last settled outcome.
	Elapsed time.Duration
}
