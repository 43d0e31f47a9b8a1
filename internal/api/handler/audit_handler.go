package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ledgerline/practice-api/internal/core/domain"
	"github.com/ledgerline/practice-api/internal/core/ports"
)

// AuditHandler exposes the firm's audit trail. Routes are gated by
// RequireAdminRole before reaching these methods.
type AuditHandler struct {
	service ports.AuditService
}

func NewAuditHandler(service ports.AuditService) *AuditHandler {
	return &AuditHandler{service: service}
}

type listAuditResponse struct {
	Items []*domain.AuditEntry `json:"items"`
}

// List handles GET /v1/audit.
//
// @Summary      List the firm's recent audit entries
// @Tags         audit
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Maximum entries to return (max 200)"
// @Success      200    {object}  listAuditResponse
// @Failure      403    {object}  map[string]string
// @Router       /v1/audit [get]
func (h *AuditHandler) List(c echo.Context) error {
	scope, err := requestScope(c)
	if err != nil {
		return err
	}

	entries, err := h.service.ListRecent(c.Request().Context(), scope, queryInt(c, "limit", 0))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listAuditResponse{Items: entries})
}
