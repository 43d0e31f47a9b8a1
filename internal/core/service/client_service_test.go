package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ledgerline/practice-api/internal/core/domain"
	"github.com/ledgerline/practice-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub client repository
// ---------------------------------------------------------------------------

type stubClientRepo struct {
	byID      map[string]*domain.Client
	seq       int
	createErr error
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{byID: make(map[string]*domain.Client)}
}

func (r *stubClientRepo) Create(_ context.Context, c *domain.Client) (*domain.Client, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	clone := *c
	r.seq++
	clone.ID = "c" + strconv.Itoa(r.seq)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

// FindByID enforces the firm filter exactly like the real Mongo query.
func (r *stubClientRepo) FindByID(_ context.Context, id, firmID string) (*domain.Client, error) {
	c, ok := r.byID[id]
	if !ok || c.FirmID != firmID {
		return nil, domain.ErrNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubClientRepo) Update(_ context.Context, c *domain.Client) error {
	stored, ok := r.byID[c.ID]
	if !ok || stored.FirmID != c.FirmID {
		return domain.ErrNotFound
	}
	clone := *c
	r.byID[c.ID] = &clone
	return nil
}

func (r *stubClientRepo) List(_ context.Context, f ports.ListClientsFilter) ([]*domain.Client, int64, error) {
	var matched []*domain.Client
	for _, c := range r.byID {
		if c.FirmID != f.FirmID {
			continue
		}
		if f.Status != "" && string(c.Status) != f.Status {
			continue
		}
		if f.Search != "" {
			nameMatch := strings.Contains(strings.ToLower(c.Name), strings.ToLower(f.Search))
			emailMatch := strings.Contains(strings.ToLower(c.Email), strings.ToLower(f.Search))
			if !nameMatch && !emailMatch {
				continue
			}
		}
		clone := *c
		matched = append(matched, &clone)
	}
	return matched, int64(len(matched)), nil
}

var discardLogger = zerolog.Nop()

func firmScope(firmID string) domain.RequestScope {
	return domain.RequestScope{FirmID: firmID}
}

// ---------------------------------------------------------------------------
// CreateClient tests
// ---------------------------------------------------------------------------

func TestClientService_Create_Success(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, discardLogger)

	client, err := svc.CreateClient(context.Background(), firmScope("firm_7"), ports.CreateClientInput{
		Name:  "Acme Corp",
		Email: "ap@acme.test",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.FirmID != "firm_7" {
		t.Errorf("client must carry the scope's firm, got %q", client.FirmID)
	}
	if client.Status != domain.ClientActive {
		t.Errorf("expected status active, got %q", client.Status)
	}
	if client.ID == "" {
		t.Error("expected generated ID")
	}
}

func TestClientService_Create_NoFirm(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, discardLogger)

	if _, err := svc.CreateClient(context.Background(), firmScope(""), ports.CreateClientInput{Name: "x"}); err != domain.ErrNoFirm {
		t.Fatalf("expected ErrNoFirm, got %v", err)
	}
}

func TestClientService_Create_RepoError(t *testing.T) {
	repo := newStubClientRepo()
	repo.createErr = errors.New("db unavailable")
	svc := NewClientService(repo, discardLogger)

	if _, err := svc.CreateClient(context.Background(), firmScope("firm_7"), ports.CreateClientInput{Name: "x"}); err == nil {
		t.Fatal("expected error when repo fails, got nil")
	}
}

// ---------------------------------------------------------------------------
// Tenant-scope enforcement
// ---------------------------------------------------------------------------

func TestClientService_Get_CrossTenantLooksLikeMissing(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, discardLogger)

	created, err := svc.CreateClient(context.Background(), firmScope("firm_7"), ports.CreateClientInput{Name: "Acme"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// A request scoped to another firm must get the same outcome as a
	// lookup for a record that does not exist at all.
	_, crossErr := svc.GetClient(context.Background(), firmScope("firm_9"), created.ID)
	_, missingErr := svc.GetClient(context.Background(), firmScope("firm_9"), "no-such-id")

	if !errors.Is(crossErr, domain.ErrNotFound) {
		t.Fatalf("cross-tenant get: expected ErrNotFound, got %v", crossErr)
	}
	if !errors.Is(missingErr, domain.ErrNotFound) {
		t.Fatalf("missing get: expected ErrNotFound, got %v", missingErr)
	}
	if crossErr.Error() != missingErr.Error() {
		t.Errorf("cross-tenant and missing lookups must be indistinguishable: %q vs %q", crossErr, missingErr)
	}
}

func TestClientService_Get_OwnFirm(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, discardLogger)

	created, _ := svc.CreateClient(context.Background(), firmScope("firm_7"), ports.CreateClientInput{Name: "Acme"})
	got, err := svc.GetClient(context.Background(), firmScope("firm_7"), created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Acme" {
		t.Errorf("unexpected client: %+v", got)
	}
}

func TestClientService_Update_CrossTenantDenied(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, discardLogger)

	created, _ := svc.CreateClient(context.Background(), firmScope("firm_7"), ports.CreateClientInput{Name: "Acme"})

	_, err := svc.UpdateClient(context.Background(), firmScope("firm_9"), created.ID, ports.UpdateClientInput{Name: "Hijacked"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// The record must be untouched.
	stored, _ := svc.GetClient(context.Background(), firmScope("firm_7"), created.ID)
	if stored.Name != "Acme" {
		t.Errorf("cross-tenant update mutated record: %+v", stored)
	}
}

func TestClientService_Update_PartialFields(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, discardLogger)

	created, _ := svc.CreateClient(context.Background(), firmScope("firm_7"), ports.CreateClientInput{Name: "Acme", Email: "a@acme.test"})

	updated, err := svc.UpdateClient(context.Background(), firmScope("firm_7"), created.ID, ports.UpdateClientInput{Phone: "+1 555 0100"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "Acme" || updated.Email != "a@acme.test" {
		t.Errorf("unset fields must be preserved: %+v", updated)
	}
	if updated.Phone != "+1 555 0100" {
		t.Errorf("phone not updated: %+v", updated)
	}
}

func TestClientService_List_ScopedToFirm(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, discardLogger)

	_, _ = svc.CreateClient(context.Background(), firmScope("firm_7"), ports.CreateClientInput{Name: "A"})
	_, _ = svc.CreateClient(context.Background(), firmScope("firm_7"), ports.CreateClientInput{Name: "B"})
	_, _ = svc.CreateClient(context.Background(), firmScope("firm_9"), ports.CreateClientInput{Name: "C"})

	result, err := svc.ListClients(context.Background(), firmScope("firm_7"), ports.ListClientsInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Total != 2 {
		t.Fatalf("expected 2 clients for firm_7, got %d", result.Total)
	}
	for _, c := range result.Items {
		if c.FirmID != "firm_7" {
			t.Errorf("leaked record from firm %q", c.FirmID)
		}
	}
}
