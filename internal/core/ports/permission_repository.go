package ports

import (
	"context"

	"github.com/ledgerline/practice-api/internal/core/domain"
)

// PermissionRepository defines persistence for per-firm module grants.
type PermissionRepository interface {
	// GetPermissions returns the module keys granted to (userID, firmID).
	// A user with no grants yields an empty slice, not an error.
	GetPermissions(ctx context.Context, userID, firmID string) ([]domain.ModuleKey, error)
	// SetPermissions replaces the full grant set for (userID, firmID).
	SetPermissions(ctx context.Context, userID, firmID string, modules []domain.ModuleKey) error
}
