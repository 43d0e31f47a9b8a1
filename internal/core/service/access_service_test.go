package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ledgerline/practice-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub permission repository
// ---------------------------------------------------------------------------

type stubPermRepo struct {
	grants map[string][]domain.ModuleKey // key: userID|firmID
	err    error
	calls  int
}

func newStubPermRepo() *stubPermRepo {
	return &stubPermRepo{grants: make(map[string][]domain.ModuleKey)}
}

func (r *stubPermRepo) GetPermissions(_ context.Context, userID, firmID string) ([]domain.ModuleKey, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return r.grants[userID+"|"+firmID], nil
}

func (r *stubPermRepo) SetPermissions(_ context.Context, userID, firmID string, modules []domain.ModuleKey) error {
	r.grants[userID+"|"+firmID] = modules
	return nil
}

func newAccessService(repo *stubPermRepo) *AccessService {
	return NewAccessService(repo, 0, zerolog.Nop())
}

// ---------------------------------------------------------------------------
// Resolution order
// ---------------------------------------------------------------------------

func TestHasModuleAccess_AdminBypassesPermissions(t *testing.T) {
	repo := newStubPermRepo()
	svc := newAccessService(repo)

	roles := []string{"firm_admin", "firm_owner", "saas_owner", "super_admin", "manager", "admin", "ADMIN", "Firm_Owner"}
	for _, role := range roles {
		p := domain.Principal{UserID: "u1", FirmID: "f1", Role: role}
		for _, module := range domain.KnownModules {
			ok, err := svc.HasModuleAccess(context.Background(), p, module)
			if err != nil {
				t.Fatalf("role %s module %s: unexpected error: %v", role, module, err)
			}
			if !ok {
				t.Errorf("role %s should be granted %s", role, module)
			}
		}
	}
	if repo.calls != 0 {
		t.Errorf("admin checks must not hit the permission store, got %d calls", repo.calls)
	}
}

func TestHasModuleAccess_NoFirmDominatesRole(t *testing.T) {
	repo := newStubPermRepo()
	svc := newAccessService(repo)

	// Even an admin role is denied everything without a firm.
	p := domain.Principal{UserID: "u1", FirmID: "", Role: "super_admin"}
	for _, module := range domain.KnownModules {
		ok, err := svc.HasModuleAccess(context.Background(), p, module)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Errorf("firmless principal must be denied %s", module)
		}
	}
	if repo.calls != 0 {
		t.Errorf("firmless checks must not hit the permission store")
	}
}

func TestHasModuleAccess_DirectGrant(t *testing.T) {
	repo := newStubPermRepo()
	repo.grants["u5|f3"] = []domain.ModuleKey{domain.ModuleTasks}
	svc := newAccessService(repo)

	p := domain.Principal{UserID: "u5", FirmID: "f3", Role: "staff"}
	ok, err := svc.HasModuleAccess(context.Background(), p, domain.ModuleTasks)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("direct grant should allow access")
	}
}

func TestHasModuleAccess_OneHopImplied(t *testing.T) {
	repo := newStubPermRepo()
	repo.grants["u5|f3"] = []domain.ModuleKey{domain.ModuleTasks}
	svc := newAccessService(repo)
	p := domain.Principal{UserID: "u5", FirmID: "f3", Role: "staff"}

	// tasks unlocks time-expenses directly.
	ok, err := svc.HasModuleAccess(context.Background(), p, domain.ModuleTimeExpenses)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("tasks grant should unlock time-expenses")
	}

	// billing is not a dependency of tasks.
	ok, err = svc.HasModuleAccess(context.Background(), p, domain.ModuleBilling)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("tasks grant must not unlock billing")
	}
}

func TestHasModuleAccess_NotTransitive(t *testing.T) {
	repo := newStubPermRepo()
	// clients unlocks reports; reports unlocks dashboard. A clients-only
	// grant must not reach dashboard: the traversal is single-hop.
	repo.grants["u2|f1"] = []domain.ModuleKey{domain.ModuleClients}
	svc := newAccessService(repo)
	p := domain.Principal{UserID: "u2", FirmID: "f1", Role: "staff"}

	ok, _ := svc.HasModuleAccess(context.Background(), p, domain.ModuleProjects)
	if !ok {
		t.Error("clients grant should unlock projects (one hop)")
	}
	ok, _ = svc.HasModuleAccess(context.Background(), p, domain.ModuleCalendar)
	if ok {
		t.Error("clients grant must not unlock calendar (two hops via projects)")
	}
	ok, _ = svc.HasModuleAccess(context.Background(), p, domain.ModuleDashboard)
	if ok {
		t.Error("clients grant must not unlock dashboard (two hops via reports)")
	}
}

func TestHasModuleAccess_NoGrants(t *testing.T) {
	repo := newStubPermRepo()
	svc := newAccessService(repo)
	p := domain.Principal{UserID: "u9", FirmID: "f1", Role: "staff"}

	ok, err := svc.HasModuleAccess(context.Background(), p, domain.ModuleClients)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("principal with no grants must be denied")
	}
}

func TestHasModuleAccess_StoreErrorPropagates(t *testing.T) {
	repo := newStubPermRepo()
	repo.err = errors.New("store unavailable")
	svc := newAccessService(repo)
	p := domain.Principal{UserID: "u5", FirmID: "f3", Role: "staff"}

	ok, err := svc.HasModuleAccess(context.Background(), p, domain.ModuleTasks)
	if err == nil {
		t.Fatal("expected error when permission store fails")
	}
	if ok {
		t.Error("a failed check must never report access granted")
	}
}
