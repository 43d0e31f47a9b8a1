package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/ledgerline/practice-api/internal/core/domain"
	"github.com/ledgerline/practice-api/internal/core/ports"
)

const defaultCheckTimeout = 2 * time.Second

// AccessService resolves module access for a principal against the static
// module dependency graph and the per-firm permission store.
type AccessService struct {
	perms   ports.PermissionRepository
	timeout time.Duration
	log     zerolog.Logger
}

// NewAccessService returns an AccessService. The timeout bounds the single
// permission-store read a non-admin check performs; zero or negative values
// fall back to defaultCheckTimeout.
func NewAccessService(perms ports.PermissionRepository, timeout time.Duration, log zerolog.Logger) *AccessService {
	if timeout <= 0 {
		timeout = defaultCheckTimeout
	}
	return &AccessService{perms: perms, timeout: timeout, log: log}
}

// HasModuleAccess reports whether p may use module.
//
// Resolution order:
//  1. No firm attached to the principal: denied, regardless of role.
//  2. Administrative role: granted, no permission lookup.
//  3. Module present in the principal's grant set: granted.
//  4. Module reachable in exactly one hop from a granted module through
//     the dependency graph: granted.
//  5. Otherwise denied.
//
// A permission-store failure (including timeout) is returned as an error;
// callers must treat it as a denial.
func (s *AccessService) HasModuleAccess(ctx context.Context, p domain.Principal, module domain.ModuleKey) (bool, error) {
	if p.FirmID == "" {
		return false, nil
	}
	if domain.IsAdminRole(p.Role) {
		return true, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	granted, err := s.perms.GetPermissions(ctx, p.UserID, p.FirmID)
	if err != nil {
		s.log.Error().Err(err).
			Str("user_id", p.UserID).
			Str("firm_id", p.FirmID).
			Str("module", string(module)).
			Msg("permission fetch failed")
		return false, fmt.Errorf("fetch permissions: %w", err)
	}

	for _, g := range granted {
		if g == module {
			return true, nil
		}
	}

	_, ok := domain.ImpliedModules(granted)[module]
	return ok, nil
}
