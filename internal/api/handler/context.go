package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ledgerline/practice-api/internal/api/middleware"
	"github.com/ledgerline/practice-api/internal/core/domain"
)

// requestScope resolves the tenant scope for the request. Handlers call it
// before any service call; a missing or firmless principal fails closed
// before any data access happens.
func requestScope(c echo.Context) (domain.RequestScope, error) {
	return middleware.ScopeFrom(c)
}

// queryInt parses an integer query parameter, returning def when absent or
// malformed. Pagination bounds are enforced by the service layer.
func queryInt(c echo.Context, name string, def int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
