package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/talentcast/jobposting-api/internal/api/middleware"
	"github.com/talentcast/jobposting-api/internal/core/ports"
)

// SessionCookie controls how session tokens are handed to the browser.
type SessionCookie struct {
	// Secure is set in production so the cookie never travels over plain HTTP.
	Secure bool
	MaxAge time.Duration
}

func (s SessionCookie) set(c echo.Context, session ports.Session) {
	maxAge := s.MaxAge
	if maxAge <= 0 {
		maxAge = time.Until(session.ExpiresAt)
	}
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    session.Token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteStrictMode,
	})
}
