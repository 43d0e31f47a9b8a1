package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ledgerline/practice-api/internal/api/metrics"
	"github.com/ledgerline/practice-api/internal/core/domain"
	"github.com/ledgerline/practice-api/internal/core/ports"
)

// RequireModuleAccess gates a route (or group) on module access.
//
// Status contract: 401 when no principal is attached, 403 when the
// principal lacks access. A resolver failure counts as a denial — the gate
// never fails open. Errors from downstream handlers pass through untouched.
func RequireModuleAccess(svc ports.AccessService, module domain.ModuleKey, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := PrincipalFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			allowed, err := svc.HasModuleAccess(c.Request().Context(), p, module)
			if err != nil {
				metrics.AccessChecksTotal.WithLabelValues(string(module), "error").Inc()
				log.Error().Err(err).
					Str("user_id", p.UserID).
					Str("module", string(module)).
					Msg("access check failed, denying")
				return echo.NewHTTPError(http.StatusForbidden, "insufficient access")
			}
			if !allowed {
				metrics.AccessChecksTotal.WithLabelValues(string(module), "denied").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "insufficient access")
			}

			metrics.AccessChecksTotal.WithLabelValues(string(module), "granted").Inc()
			return next(c)
		}
	}
}

// RequireAdminRole gates a route on membership in the administrative role
// set. Used for permission administration endpoints.
func RequireAdminRole() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := PrincipalFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if p.FirmID == "" || !domain.IsAdminRole(p.Role) {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient access")
			}
			return next(c)
		}
	}
}
