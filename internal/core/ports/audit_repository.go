package ports

import (
	"context"

	"github.com/ledgerline/practice-api/internal/core/domain"
)

// AuditRepository persists and queries the per-firm audit trail.
type AuditRepository interface {
	// Insert appends one entry to the audit trail.
	Insert(ctx context.Context, entry *domain.AuditEntry) error
	// ListByFirm returns the firm's most recent entries, newest first.
	ListByFirm(ctx context.Context, firmID string, limit int) ([]*domain.AuditEntry, error)
}
