package ports

import (
	"context"
	"time"

	"github.com/ledgerline/practice-api/internal/core/domain"
)

// AuditEntryInput is the DTO handed from the transport layer to the audit
// pipeline.
type AuditEntryInput struct {
	FirmID     string
	ActorID    string
	Action     domain.AuditAction
	TargetID   string
	Detail     string
	OccurredAt time.Time
}

// AuditRecorder accepts audit entries for asynchronous recording. Enqueue
// never blocks the request path on persistence.
type AuditRecorder interface {
	Enqueue(entry AuditEntryInput)
}

// AuditService records and queries audit trail entries.
type AuditService interface {
	Record(ctx context.Context, entry AuditEntryInput) error
	ListRecent(ctx context.Context, scope domain.RequestScope, limit int) ([]*domain.AuditEntry, error)
}
