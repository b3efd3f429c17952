package domain

import (
	"errors"
	"strings"
)

var (
	ErrAccountExists            = errors.New("email already taken")
	ErrAccountNotFound          = errors.New("account not found")
	ErrAccountNotVerified       = errors.New("account is not verified")
	ErrAlreadyVerified          = errors.New("account already verified")
	ErrUnknownEmail             = errors.New("no user found with this email")
	ErrInvalidCredentials       = errors.New("invalid password")
	ErrInvalidVerificationToken = errors.New("invalid or expired verification token")
	ErrUnauthenticated          = errors.New("no token provided, authorization denied")
	ErrInvalidSession           = errors.New("invalid token")
	ErrForbidden                = errors.New("access forbidden")
	ErrJobNotFound              = errors.New("job posting not found")
	ErrEmailDelivery            = errors.New("failed to send verification email")
)

// Issue is one field-level validation failure.
type Issue struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// ValidationError carries every issue found while parsing a request.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Issues))
	for _, is := range e.Issues {
		msgs = append(msgs, is.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// EmailDeliveryError is returned when the mail collaborator reports a failure
// that the caller must surface.
type EmailDeliveryError struct {
	Detail string
}

func (e *EmailDeliveryError) Error() string {
	if e.Detail == "" {
		return ErrEmailDelivery.Error()
	}
	return ErrEmailDelivery.Error() + ": " + e.Detail
}

func (e *EmailDeliveryError) Unwrap() error { return ErrEmailDelivery }
