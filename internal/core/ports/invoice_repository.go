package ports

import (
	"context"

	"github.com/ledgerline/practice-api/internal/core/domain"
)

// ListInvoicesFilter carries query parameters for listing a firm's invoices.
type ListInvoicesFilter struct {
	FirmID   string
	ClientID string // optional: restrict to one client
	Status   string // optional: filter by invoice status
	DateFrom string // optional: issue_date >= DateFrom (YYYY-MM-DD)
	DateTo   string // optional: issue_date <= DateTo   (YYYY-MM-DD)
	Page     int
	Limit    int
}

// InvoiceRepository defines persistence operations for invoices.
type InvoiceRepository interface {
	Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error)
	FindByID(ctx context.Context, id, firmID string) (*domain.Invoice, error)
	Update(ctx context.Context, inv *domain.Invoice) error
	List(ctx context.Context, filter ListInvoicesFilter) ([]*domain.Invoice, int64, error)
}
