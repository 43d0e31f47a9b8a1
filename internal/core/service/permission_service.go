package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ledgerline/practice-api/internal/core/domain"
	"github.com/ledgerline/practice-api/internal/core/ports"
)

// PermissionService implements permission administration for firm admins.
// Route-level gating (admin role required) happens in the middleware; this
// service still verifies the target user belongs to the caller's firm so a
// cross-tenant user ID behaves exactly like an unknown one.
type PermissionService struct {
	perms  ports.PermissionRepository
	users  ports.AuthRepository
	logger zerolog.Logger
}

func NewPermissionService(perms ports.PermissionRepository, users ports.AuthRepository, logger zerolog.Logger) *PermissionService {
	return &PermissionService{perms: perms, users: users, logger: logger}
}

func (s *PermissionService) GetUserPermissions(ctx context.Context, scope domain.RequestScope, userID string) ([]domain.ModuleKey, error) {
	if scope.FirmID == "" {
		return nil, domain.ErrNoFirm
	}
	if _, err := s.users.FindByID(ctx, userID, scope.FirmID); err != nil {
		return nil, err
	}
	return s.perms.GetPermissions(ctx, userID, scope.FirmID)
}

// SetUserPermissions replaces the target user's grant set. Every module key
// must belong to the known set; unknown keys reject the whole request.
func (s *PermissionService) SetUserPermissions(ctx context.Context, scope domain.RequestScope, userID string, modules []domain.ModuleKey) ([]domain.ModuleKey, error) {
	if scope.FirmID == "" {
		return nil, domain.ErrNoFirm
	}
	for _, m := range modules {
		if !domain.KnownModule(m) {
			return nil, domain.ErrUnknownModule
		}
	}

	if _, err := s.users.FindByID(ctx, userID, scope.FirmID); err != nil {
		return nil, err
	}

	if err := s.perms.SetPermissions(ctx, userID, scope.FirmID, modules); err != nil {
		s.logger.Error().Err(err).
			Str("user_id", userID).
			Str("firm_id", scope.FirmID).
			Msg("failed to set permissions")
		return nil, err
	}

	s.logger.Info().
		Str("user_id", userID).
		Str("firm_id", scope.FirmID).
		Int("modules", len(modules)).
		Msg("permissions updated")
	return modules, nil
}
