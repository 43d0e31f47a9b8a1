package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ledgerline/practice-api/internal/api/middleware"
	"github.com/ledgerline/practice-api/internal/core/dates"
	"github.com/ledgerline/practice-api/internal/core/domain"
	"github.com/ledgerline/practice-api/internal/core/ports"
)

// InvoiceHandler handles HTTP requests for invoices.
type InvoiceHandler struct {
	service ports.InvoiceService
	audit   ports.AuditRecorder
}

func NewInvoiceHandler(service ports.InvoiceService, audit ports.AuditRecorder) *InvoiceHandler {
	return &InvoiceHandler{service: service, audit: audit}
}

type createInvoiceRequest struct {
	ClientID  string  `json:"client_id" validate:"required"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Currency  string  `json:"currency" validate:"required,len=3"`
	IssueDate string  `json:"issue_date" validate:"required"`
	DueDate   string  `json:"due_date" validate:"required"`
	Notes     string  `json:"notes"`
}

type markInvoiceRequest struct {
	Status string `json:"status" validate:"required,oneof=draft sent paid overdue voided"`
}

// invoiceResponse augments the stored invoice with display-formatted dates.
// The stored YYYY-MM-DD values are authoritative; the display strings are
// derived per request and never persisted.
type invoiceResponse struct {
	*domain.Invoice
	IssueDateDisplay string `json:"issue_date_display"`
	DueDateDisplay   string `json:"due_date_display"`
}

func newInvoiceResponse(inv *domain.Invoice) invoiceResponse {
	return invoiceResponse{
		Invoice:          inv,
		IssueDateDisplay: dates.DisplayDateString(inv.IssueDate),
		DueDateDisplay:   dates.DisplayDateString(inv.DueDate),
	}
}

type listInvoicesResponse struct {
	Items      []invoiceResponse `json:"items"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}

// Create handles POST /v1/invoices.
//
// @Summary      Create an invoice
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createInvoiceRequest  true  "Invoice details (dates as YYYY-MM-DD)"
// @Success      201   {object}  invoiceResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/invoices [post]
func (h *InvoiceHandler) Create(c echo.Context) error {
	var req createInvoiceRequest
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

	inv, err := h.service.CreateInvoice(c.Request().Context(), scope, ports.CreateInvoiceInput{
		ClientID:  req.ClientID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		IssueDate: req.IssueDate,
		DueDate:   req.DueDate,
		Notes:     req.Notes,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, newInvoiceResponse(inv))
}

// Get handles GET /v1/invoices/:id.
//
// @Summary      Get an invoice by ID
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Invoice ID"
// @Success      200  {object}  invoiceResponse
// @Failure      404  {object}  map[string]string
// @Router       /v1/invoices/{id} [get]
func (h *InvoiceHandler) Get(c echo.Context) error {
	scope, err := requestScope(c)
	if err != nil {
		return err
	}

	inv, err := h.service.GetInvoice(c.Request().Context(), scope, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newInvoiceResponse(inv))
}

// MarkStatus handles PUT /v1/invoices/:id/status.
//
// @Summary      Set an invoice's status
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Invoice ID"
// @Param        body  body      markInvoiceRequest  true  "New status"
// @Success      200   {object}  invoiceResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/invoices/{id}/status [put]
func (h *InvoiceHandler) MarkStatus(c echo.Context) error {
	var req markInvoiceRequest
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

	inv, err := h.service.MarkInvoiceStatus(c.Request().Context(), scope, c.Param("id"), domain.InvoiceStatus(req.Status))
	if err != nil {
		return err
	}

	if p, ok := middleware.PrincipalFrom(c); ok {
		h.audit.Enqueue(ports.AuditEntryInput{
			FirmID:   scope.FirmID,
			ActorID:  p.UserID,
			Action:   domain.AuditInvoiceStatusChanged,
			TargetID: inv.ID,
			Detail:   req.Status,
		})
	}

	return c.JSON(http.StatusOK, newInvoiceResponse(inv))
}

// List handles GET /v1/invoices.
//
// @Summary      List the firm's invoices
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        client_id  query     string  false  "Restrict to one client"
// @Param        status     query     string  false  "Filter by status"
// @Param        date_from  query     string  false  "issue_date >= (YYYY-MM-DD)"
// @Param        date_to    query     string  false  "issue_date <= (YYYY-MM-DD)"
// @Param        page       query     int     false  "Page number (1-based)"
// @Param        limit      query     int     false  "Page size (max 100)"
// @Success      200        {object}  listInvoicesResponse
// @Failure      422        {object}  map[string]string
// @Router       /v1/invoices [get]
func (h *InvoiceHandler) List(c echo.Context) error {
	scope, err := requestScope(c)
	if err != nil {
		return err
	}

	result, err := h.service.ListInvoices(c.Request().Context(), scope, ports.ListInvoicesInput{
		ClientID: c.QueryParam("client_id"),
		Status:   c.QueryParam("status"),
		DateFrom: c.QueryParam("date_from"),
		DateTo:   c.QueryParam("date_to"),
		Page:     queryInt(c, "page", 1),
		Limit:    queryInt(c, "limit", 20),
	})
	if err != nil {
		return err
	}

	items := make([]invoiceResponse, 0, len(result.Items))
	for _, inv := range result.Items {
		items = append(items, newInvoiceResponse(inv))
	}

	return c.JSON(http.StatusOK, listInvoicesResponse{
		Items:      items,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalPages: result.TotalPages,
	})
}
