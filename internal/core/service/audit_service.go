package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/ledgerline/practice-api/internal/core/domain"
	"github.com/ledgerline/practice-api/internal/core/ports"
)

const defaultAuditLimit = 50

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService implementation.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Record validates and persists a single audit entry.
func (s *auditService) Record(ctx context.Context, in ports.AuditEntryInput) error {
	if in.FirmID == "" {
		return fmt.Errorf("record audit entry: %w", domain.ErrNoFirm)
	}

	occurredAt := in.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}

	entry := &domain.AuditEntry{
		FirmID:     in.FirmID,
		ActorID:    in.ActorID,
		Action:     in.Action,
		TargetID:   in.TargetID,
		Detail:     in.Detail,
		OccurredAt: occurredAt,
	}
	if err := s.repo.Insert(ctx, entry); err != nil {
		return fmt.Errorf("record audit entry: %w", err)
	}

	s.log.Debug().
		Str("firm_id", in.FirmID).
		Str("action", string(in.Action)).
		Str("target_id", in.TargetID).
		Msg("audit entry recorded")

	return nil
}

// ListRecent returns the calling firm's newest entries. The firm filter comes
// from the request scope, never from the caller's input.
func (s *auditService) ListRecent(ctx context.Context, scope domain.RequestScope, limit int) ([]*domain.AuditEntry, error) {
	if scope.FirmID == "" {
		return nil, domain.ErrNoFirm
	}
	if limit <= 0 || limit > 200 {
		limit = defaultAuditLimit
	}
	return s.repo.ListByFirm(ctx, scope.FirmID, limit)
}
