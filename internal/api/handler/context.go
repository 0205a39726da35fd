package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nightshift/gigboard/internal/api/middleware"
	"github.com/nightshift/gigboard/internal/core/domain"
)

// ctxIdentity returns the identity injected by the Auth middleware. An
// empty subject means the middleware did not run.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	id, ok := c.Get(middleware.IdentityKey).(domain.Identity)
	if !ok || id.ID == "" {
		return domain.Identity{}, domain.ErrUnauthenticated
	}
	return id, nil
}

// ctxToken returns the id and expiry of the token that authenticated the request.
func ctxToken(c echo.Context) (string, time.Time) {
	jti, _ := c.Get(middleware.TokenIDKey).(string)
	exp, _ := c.Get(middleware.TokenExpiryKey).(time.Time)
	return jti, exp
}
