package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/nightshift/gigboard/internal/core/domain"
	"github.com/nightshift/gigboard/internal/core/ports"
)

// Context keys set by Auth.
const (
	IdentityKey    = "identity"
	TokenIDKey     = "token_id"
	TokenExpiryKey = "token_exp"
)

// Auth validates the JWT and injects the caller's identity into context.
// When revoker is non-nil, tokens revoked at logout are rejected.
func Auth(jwtSecret string, revoker ports.TokenRevoker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			}, jwt.WithExpirationRequired())
			if errors.Is(err, jwt.ErrTokenExpired) {
				return echo.NewHTTPError(http.StatusUnauthorized, "token expired")
			}
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			sub, _ := claims.GetSubject()
			if sub == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing subject")
			}
			jti, _ := claims["jti"].(string)

			if revoker != nil && jti != "" {
				revoked, err := revoker.IsRevoked(c.Request().Context(), jti)
				if err != nil {
					return domain.Dependency("check token revocation", err)
				}
				if revoked {
					return echo.NewHTTPError(http.StatusUnauthorized, "token revoked")
				}
			}

			var exp time.Time
			if e, _ := claims.GetExpirationTime(); e != nil {
				exp = e.Time
			}

			c.Set(IdentityKey, domain.Identity{
				ID:        sub,
				Name:      stringClaim(claims, "name"),
				Email:     stringClaim(claims, "email"),
				AvatarURL: stringClaim(claims, "avatar_url"),
			})
			c.Set(TokenIDKey, jti)
			c.Set(TokenExpiryKey, exp)

			return next(c)
		}
	}
}

func stringClaim(claims jwt.MapClaims, key string) string {
	s, _ := claims[key].(string)
	return s
}
