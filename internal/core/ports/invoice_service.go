package ports

import (
	"context"

	"github.com/ledgerline/practice-api/internal/core/domain"
)

// CreateInvoiceInput carries the data needed to create an invoice.
// IssueDate and DueDate are calendar dates in YYYY-MM-DD form.
type CreateInvoiceInput struct {
	ClientID  string
	Amount    float64
	Currency  string
	IssueDate string
	DueDate   string
	Notes     string
}

// ListInvoicesInput carries pagination and filters for the list endpoint.
type ListInvoicesInput struct {
	ClientID string
	Status   string
	DateFrom string
	DateTo   string
	Page     int
	Limit    int
}

// ListInvoicesResult is returned by ListInvoices.
type ListInvoicesResult struct {
	Items      []*domain.Invoice
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// InvoiceService defines use-case operations for invoices.
type InvoiceService interface {
	CreateInvoice(ctx context.Context, scope domain.RequestScope, input CreateInvoiceInput) (*domain.Invoice, error)
	GetInvoice(ctx context.Context, scope domain.RequestScope, id string) (*domain.Invoice, error)
	MarkInvoiceStatus(ctx context.Context, scope domain.RequestScope, id string, status domain.InvoiceStatus) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, scope domain.RequestScope, input ListInvoicesInput) (*ListInvoicesResult, error)
}
