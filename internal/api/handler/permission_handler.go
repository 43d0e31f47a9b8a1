package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ledgerline/practice-api/internal/api/middleware"
	"github.com/ledgerline/practice-api/internal/core/domain"
	"github.com/ledgerline/practice-api/internal/core/ports"
)

// PermissionHandler handles permission administration endpoints. Routes are
// gated by RequireAdminRole before reaching these methods.
type PermissionHandler struct {
	service ports.PermissionService
	audit   ports.AuditRecorder
}

func NewPermissionHandler(service ports.PermissionService, audit ports.AuditRecorder) *PermissionHandler {
	return &PermissionHandler{service: service, audit: audit}
}

type setPermissionsRequest struct {
	Modules []string `json:"modules" validate:"required"`
}

type permissionsResponse struct {
	UserID  string             `json:"user_id"`
	Modules []domain.ModuleKey `json:"modules"`
}

// Get handles GET /v1/users/:id/permissions.
//
// @Summary      Get a user's module permissions
// @Tags         permissions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  permissionsResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/users/{id}/permissions [get]
func (h *PermissionHandler) Get(c echo.Context) error {
	scope, err := requestScope(c)
	if err != nil {
		return err
	}

	userID := c.Param("id")
	modules, err := h.service.GetUserPermissions(c.Request().Context(), scope, userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, permissionsResponse{UserID: userID, Modules: modules})
}

// Set handles PUT /v1/users/:id/permissions.
//
// @Summary      Replace a user's module permissions
// @Tags         permissions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "User ID"
// @Param        body  body      setPermissionsRequest  true  "Full grant set"
// @Success      200   {object}  permissionsResponse
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/users/{id}/permissions [put]
func (h *PermissionHandler) Set(c echo.Context) error {
	var req setPermissionsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	scope, err := requestScope(c)
	if err != nil {
		return err
	}

	modules := make([]domain.ModuleKey, 0, len(req.Modules))
	for _, m := range req.Modules {
		modules = append(modules, domain.ModuleKey(m))
	}

	userID := c.Param("id")
	granted, err := h.service.SetUserPermissions(c.Request().Context(), scope, userID, modules)
	if err != nil {
		return err
	}

	if p, ok := middleware.PrincipalFrom(c); ok {
		h.audit.Enqueue(ports.AuditEntryInput{
			FirmID:   scope.FirmID,
			ActorID:  p.UserID,
			Action:   domain.AuditPermissionsChanged,
			TargetID: userID,
			Detail:   fmt.Sprintf("%d modules granted", len(granted)),
		})
	}

	return c.JSON(http.StatusOK, permissionsResponse{UserID: userID, Modules: granted})
}
