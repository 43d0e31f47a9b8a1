package ports

import (
	"context"

	"github.com/ledgerline/practice-api/internal/core/domain"
)

// RegisterInput carries the data needed to create a user account.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Role     string
	FirmID   string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// PermissionService defines permission administration. Callers must already
// be gated by an admin-role check before reaching these operations.
type PermissionService interface {
	GetUserPermissions(ctx context.Context, scope domain.RequestScope, userID string) ([]domain.ModuleKey, error)
	SetUserPermissions(ctx context.Context, scope domain.RequestScope, userID string, modules []domain.ModuleKey) ([]domain.ModuleKey, error)
}
