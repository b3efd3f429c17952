package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/talentcast/jobposting-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error   string         `json:"error"`
	Issues  []domain.Issue `json:"issues,omitempty"`
	Details string         `json:"details,omitempty"`
}

// statusBySentinel maps known domain errors to deterministic HTTP codes. The
// sentinel's own text is what the client sees.
var statusBySentinel = []struct {
	err  error
	code int
}{
	{domain.ErrAccountExists, http.StatusConflict},
	{domain.ErrAlreadyVerified, http.StatusConflict},
	{domain.ErrUnauthenticated, http.StatusUnauthorized},
	{domain.ErrUnknownEmail, http.StatusUnauthorized},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized},
	{domain.ErrInvalidSession, http.StatusForbidden},
	{domain.ErrAccountNotVerified, http.StatusForbidden},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrAccountNotFound, http.StatusNotFound},
	{domain.ErrJobNotFound, http.StatusNotFound},
	{domain.ErrInvalidVerificationToken, http.StatusBadRequest},
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"} plus issues
//     for validation failures and details for mail delivery failures.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors (404 from router, 405, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest, errorResponse{Error: "invalid input", Issues: verr.Issues}
	}

	var merr *domain.EmailDeliveryError
	if errors.As(err, &merr) {
		return http.StatusInternalServerError, errorResponse{Error: domain.ErrEmailDelivery.Error(), Details: merr.Detail}
	}

	for _, s := range statusBySentinel {
		if errors.Is(err, s.err) {
			return s.code, errorResponse{Error: s.err.Error()}
		}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Error: "internal server error"}
}
