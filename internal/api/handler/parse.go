package handler

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/talentcast/jobposting-api/internal/core/domain"
)

// Parsed is the outcome of reading a request body: either a typed value or
// the issues that prevented one. Exactly one of the two is meaningful.
type Parsed[T any] struct {
	Value  T
	Issues []domain.Issue
}

// OK reports whether the body produced a value.
func (p Parsed[T]) OK() bool { return len(p.Issues) == 0 }

// Err returns the issues as a *domain.ValidationError, or nil when OK.
func (p Parsed[T]) Err() error {
	if p.OK() {
		return nil
	}
	return &domain.ValidationError{Issues: p.Issues}
}

// Parse binds the JSON body into T and runs the registered validator over it.
func Parse[T any](c echo.Context) Parsed[T] {
	var out Parsed[T]
	if err := c.Bind(&out.Value); err != nil {
		out.Issues = []domain.Issue{{Field: "body", Tag: "json", Message: "invalid payload"}}
		return out
	}
	if err := c.Validate(&out.Value); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			out.Issues = verr.Issues
		} else {
			out.Issues = []domain.Issue{{Field: "body", Tag: "invalid", Message: err.Error()}}
		}
	}
	return out
}
