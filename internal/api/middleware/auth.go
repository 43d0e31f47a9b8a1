package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/ledgerline/practice-api/internal/core/domain"
)

// principalKey is the echo context key under which the authenticated
// principal is stored. It is written exactly once, here, at the trust
// boundary; downstream code reads it through PrincipalFrom.
const principalKey = "principal"

// Auth validates the JWT and injects the principal into context.
func Auth(jwtSecret string) echo.MiddlewareFunc {
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
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			userID, _ := claims["sub"].(string)
			if userID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token missing subject")
			}
			firmID, _ := claims["firm_id"].(string)
			role, _ := claims["role"].(string)

			SetPrincipal(c, domain.Principal{
				UserID: userID,
				FirmID: firmID,
				Role:   role,
			})

			return next(c)
		}
	}
}

// SetPrincipal attaches the authenticated principal to the request context.
// Production code calls this only from Auth; tests use it to simulate an
// authenticated request.
func SetPrincipal(c echo.Context, p domain.Principal) {
	c.Set(principalKey, p)
}

// PrincipalFrom extracts the principal attached by Auth. The second return
// value is false when no authenticated principal is present.
func PrincipalFrom(c echo.Context) (domain.Principal, bool) {
	p, ok := c.Get(principalKey).(domain.Principal)
	if !ok || p.UserID == "" {
		return domain.Principal{}, false
	}
	return p, true
}

// ScopeFrom derives the immutable tenant scope for the request. A principal
// without a firm cannot be scoped; the route is configured wrong or the
// account is firmless, and either way the request fails closed.
func ScopeFrom(c echo.Context) (domain.RequestScope, error) {
	p, ok := PrincipalFrom(c)
	if !ok {
		return domain.RequestScope{}, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	if p.FirmID == "" {
		return domain.RequestScope{}, echo.NewHTTPError(http.StatusForbidden, "insufficient access")
	}
	scope := domain.RequestScope{FirmID: p.FirmID}
	if strings.EqualFold(p.Role, domain.RoleClient) {
		scope.ClientID = p.UserID
	}
	return scope, nil
}
