package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/ledgerline/practice-api/internal/api/middleware"
	"github.com/ledgerline/practice-api/internal/core/domain"
	"github.com/ledgerline/practice-api/internal/core/ports"
)

// stubClientService records the scope it was called with so tests can
// verify the handler derives it from the principal, not from the request.
type stubClientService struct {
	byID      map[string]*domain.Client
	lastScope domain.RequestScope
}

func (s *stubClientService) CreateClient(_ context.Context, scope domain.RequestScope, input ports.CreateClientInput) (*domain.Client, error) {
	s.lastScope = scope
	return &domain.Client{ID: "c1", FirmID: scope.FirmID, Name: input.Name, Status: domain.ClientActive}, nil
}

func (s *stubClientService) GetClient(_ context.Context, scope domain.RequestScope, id string) (*domain.Client, error) {
	s.lastScope = scope
	c, ok := s.byID[id]
	if !ok || c.FirmID != scope.FirmID {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (s *stubClientService) UpdateClient(_ context.Context, scope domain.RequestScope, id string, _ ports.UpdateClientInput) (*domain.Client, error) {
	return s.GetClient(context.Background(), scope, id)
}

func (s *stubClientService) ListClients(_ context.Context, scope domain.RequestScope, _ ports.ListClientsInput) (*ports.ListClientsResult, error) {
	s.lastScope = scope
	return &ports.ListClientsResult{Page: 1, Limit: 20}, nil
}

func newClientContext(t *testing.T, p *domain.Principal, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/clients/:id")
	c.SetParamNames("id")
	c.SetParamValues(target)
	if p != nil {
		middleware.SetPrincipal(c, *p)
	}
	return c, rec
}

func TestClientHandler_Get_ScopedToPrincipalFirm(t *testing.T) {
	svc := &stubClientService{byID: map[string]*domain.Client{
		"c7": {ID: "c7", FirmID: "firm_7", Name: "Acme"},
	}}
	handler := NewClientHandler(svc)

	c, rec := newClientContext(t, &domain.Principal{UserID: "u1", FirmID: "firm_7", Role: "staff"}, "c7")
	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.lastScope.FirmID != "firm_7" {
		t.Errorf("scope not derived from principal: %+v", svc.lastScope)
	}
}

func TestClientHandler_Get_CrossTenantIsNotFound(t *testing.T) {
	svc := &stubClientService{byID: map[string]*domain.Client{
		"c7": {ID: "c7", FirmID: "firm_7", Name: "Acme"},
	}}
	handler := NewClientHandler(svc)

	// The URL names a real record owned by firm_7; the principal belongs
	// to firm_9. The outcome must be the not-found sentinel, nothing more.
	c, _ := newClientContext(t, &domain.Principal{UserID: "u2", FirmID: "firm_9", Role: "staff"}, "c7")
	if err := handler.Get(c); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClientHandler_Get_NoPrincipal(t *testing.T) {
	svc := &stubClientService{byID: map[string]*domain.Client{}}
	handler := NewClientHandler(svc)

	c, _ := newClientContext(t, nil, "c7")
	err := handler.Get(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestClientHandler_Get_FirmlessPrincipalFailsClosed(t *testing.T) {
	svc := &stubClientService{byID: map[string]*domain.Client{
		"c7": {ID: "c7", FirmID: "firm_7", Name: "Acme"},
	}}
	handler := NewClientHandler(svc)

	c, _ := newClientContext(t, &domain.Principal{UserID: "u3", FirmID: "", Role: "saas_owner"}, "c7")
	err := handler.Get(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}
}
