package ports

import (
	"context"

	"github.com/ledgerline/practice-api/internal/core/domain"
)

// AccessService resolves whether a principal may use a feature module.
type AccessService interface {
	// HasModuleAccess reports whether p may use module. An error means the
	// permission store could not be consulted; callers must treat it as a
	// denial, never as a grant.
	HasModuleAccess(ctx context.Context, p domain.Principal, module domain.ModuleKey) (bool, error)
}
