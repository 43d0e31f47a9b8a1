package ports

import (
	"context"

	"github.com/ledgerline/practice-api/internal/core/domain"
)

// AuthRepository defines the interface for user account persistence.
type AuthRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByID retrieves a user scoped to firmID; a user belonging to a
	// different firm is reported as not found.
	FindByID(ctx context.Context, id, firmID string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// Deactivate marks a user inactive. Accounts are never hard-deleted.
	Deactivate(ctx context.Context, id, firmID string) error
}
