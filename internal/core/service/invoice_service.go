package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/ledgerline/practice-api/internal/api/metrics"
	"github.com/ledgerline/practice-api/internal/core/dates"
	"github.com/ledgerline/practice-api/internal/core/domain"
	"github.com/ledgerline/practice-api/internal/core/ports"
)

// InvoiceService implements firm-scoped invoice operations.
type InvoiceService struct {
	repo    ports.InvoiceRepository
	clients ports.ClientRepository
	logger  zerolog.Logger
}

func NewInvoiceService(repo ports.InvoiceRepository, clients ports.ClientRepository, logger zerolog.Logger) *InvoiceService {
	return &InvoiceService{repo: repo, clients: clients, logger: logger}
}

// CreateInvoice validates the calendar dates, verifies the target client
// belongs to the request's firm, and persists the invoice.
func (s *InvoiceService) CreateInvoice(ctx context.Context, scope domain.RequestScope, input ports.CreateInvoiceInput) (*domain.Invoice, error) {
	if scope.FirmID == "" {
		return nil, domain.ErrNoFirm
	}
	if !dates.IsValidDateString(input.IssueDate) || !dates.IsValidDateString(input.DueDate) {
		return nil, domain.ErrInvalidDate
	}

	// The client must exist inside the firm boundary. A client ID from
	// another firm resolves to not-found, never to a cross-tenant invoice.
	client, err := s.clients.FindByID(ctx, input.ClientID, scope.FirmID)
	if err != nil {
		return nil, err
	}
	if client.FirmID != scope.FirmID {
		metrics.ScopeDenialsTotal.WithLabelValues("client").Inc()
		return nil, domain.ErrNotFound
	}

	now := time.Now().UTC()
	inv := &domain.Invoice{
		FirmID:    scope.FirmID,
		ClientID:  client.ID,
		Number:    generateInvoiceNumber(),
		Amount:    input.Amount,
		Currency:  input.Currency,
		IssueDate: input.IssueDate,
		DueDate:   input.DueDate,
		Status:    domain.InvoiceDraft,
		Notes:     input.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, inv)
	if err != nil {
		s.logger.Error().Err(err).Str("firm_id", scope.FirmID).Msg("failed to create invoice")
		return nil, err
	}

	s.logger.Info().
		Str("invoice_id", created.ID).
		Str("number", created.Number).
		Str("firm_id", scope.FirmID).
		Msg("invoice created")
	return created, nil
}

func (s *InvoiceService) GetInvoice(ctx context.Context, scope domain.RequestScope, id string) (*domain.Invoice, error) {
	if scope.FirmID == "" {
		return nil, domain.ErrNoFirm
	}

	inv, err := s.repo.FindByID(ctx, id, scope.FirmID)
	if err != nil {
		return nil, err
	}
	if inv.FirmID != scope.FirmID {
		metrics.ScopeDenialsTotal.WithLabelValues("invoice").Inc()
		return nil, domain.ErrNotFound
	}
	return inv, nil
}

func (s *InvoiceService) MarkInvoiceStatus(ctx context.Context, scope domain.RequestScope, id string, status domain.InvoiceStatus) (*domain.Invoice, error) {
	inv, err := s.GetInvoice(ctx, scope, id)
	if err != nil {
		return nil, err
	}

	inv.Status = status
	inv.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, inv); err != nil {
		s.logger.Error().Err(err).Str("invoice_id", id).Msg("failed to update invoice")
		return nil, err
	}
	return inv, nil
}

func (s *InvoiceService) ListInvoices(ctx context.Context, scope domain.RequestScope, input ports.ListInvoicesInput) (*ports.ListInvoicesResult, error) {
	if scope.FirmID == "" {
		return nil, domain.ErrNoFirm
	}
	if input.DateFrom != "" && !dates.IsValidDateString(input.DateFrom) {
		return nil, domain.ErrInvalidDate
	}
	if input.DateTo != "" && !dates.IsValidDateString(input.DateTo) {
		return nil, domain.ErrInvalidDate
	}

	page, limit := normalizePage(input.Page, input.Limit)
	items, total, err := s.repo.List(ctx, ports.ListInvoicesFilter{
		FirmID:   scope.FirmID,
		ClientID: input.ClientID,
		Status:   input.Status,
		DateFrom: input.DateFrom,
		DateTo:   input.DateTo,
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("firm_id", scope.FirmID).Msg("failed to list invoices")
		return nil, err
	}

	return &ports.ListInvoicesResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

// generateInvoiceNumber returns a unique invoice number in the format INV-XXXXXXXX.
func generateInvoiceNumber() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("INV-%08X", time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("INV-%08X", b)
}
