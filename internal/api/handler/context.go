package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/talentcast/jobposting-api/internal/api/middleware"
	"github.com/talentcast/jobposting-api/internal/core/domain"
)

// ctxIdentity returns the identity injected by AuthGate. Its absence means
// the route was mounted without the gate, which is treated as unauthenticated.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		return domain.Identity{}, domain.ErrUnauthenticated
	}
	return id, nil
}
