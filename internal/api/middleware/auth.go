package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/talentcast/jobposting-api/internal/core/domain"
	"github.com/talentcast/jobposting-api/internal/core/ports"
)

// SessionCookie is the name of the cookie carrying the session token.
const SessionCookie = "token"

const identityKey = "identity"

// AuthGate reads the session cookie, verifies it and injects the decoded
// identity into the request context. A missing cookie is ErrUnauthenticated;
// a cookie that does not verify is ErrInvalidSession.
func AuthGate(verifier ports.SessionVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				return domain.ErrUnauthenticated
			}

			id, err := verifier.Verify(cookie.Value)
			if err != nil {
				return domain.ErrInvalidSession
			}

			c.Set(identityKey, id)
			return next(c)
		}
	}
}

// IdentityFrom returns the identity set by AuthGate for this request.
func IdentityFrom(c echo.Context) (domain.Identity, bool) {
	id, ok := c.Get(identityKey).(domain.Identity)
	return id, ok && id.AccountID != ""
}
