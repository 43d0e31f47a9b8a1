package ports

import (
	"context"

	"github.com/ledgerline/practice-api/internal/core/domain"
)

// CreateClientInput carries the data needed to create a client record.
type CreateClientInput struct {
	Name  string
	Email string
	Phone string
}

// UpdateClientInput carries the mutable fields of a client record.
// Empty fields are left unchanged.
type UpdateClientInput struct {
	Name   string
	Email  string
	Phone  string
	Status string
}

// ListClientsInput carries pagination and filters for the list endpoint.
type ListClientsInput struct {
	Status string
	Search string
	Page   int
	Limit  int
}

// ListClientsResult is returned by ListClients.
type ListClientsResult struct {
	Items      []*domain.Client
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ClientService defines use-case operations for firm clients. Every
// operation takes the request scope and never returns data outside it.
type ClientService interface {
	CreateClient(ctx context.Context, scope domain.RequestScope, input CreateClientInput) (*domain.Client, error)
	GetClient(ctx context.Context, scope domain.RequestScope, id string) (*domain.Client, error)
	UpdateClient(ctx context.Context, scope domain.RequestScope, id string, input UpdateClientInput) (*domain.Client, error)
	ListClients(ctx context.Context, scope domain.RequestScope, input ListClientsInput) (*ListClientsResult, error)
}
