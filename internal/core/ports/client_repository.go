package ports

import (
	"context"

	"github.com/ledgerline/practice-api/internal/core/domain"
)

// ListClientsFilter carries query parameters for listing a firm's clients.
// FirmID is always set by the service layer from the request scope.
type ListClientsFilter struct {
	FirmID string
	Status string // optional: filter by client status
	Search string // optional: partial match on name or email
	Page   int    // 1-based
	Limit  int    // capped by the service
}

// ClientRepository defines persistence operations for firm clients.
// Every lookup is filtered by firm_id at the query level; a record owned by
// another firm is indistinguishable from a missing one.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	FindByID(ctx context.Context, id, firmID string) (*domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
	List(ctx context.Context, filter ListClientsFilter) ([]*domain.Client, int64, error)
}
