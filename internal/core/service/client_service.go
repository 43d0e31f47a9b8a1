package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ledgerline/practice-api/internal/api/metrics"
	"github.com/ledgerline/practice-api/internal/core/domain"
	"github.com/ledgerline/practice-api/internal/core/ports"
)

const maxPageSize = 100

// ClientService implements firm-scoped client CRUD.
type ClientService struct {
	repo   ports.ClientRepository
	logger zerolog.Logger
}

func NewClientService(repo ports.ClientRepository, logger zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, logger: logger}
}

func (s *ClientService) CreateClient(ctx context.Context, scope domain.RequestScope, input ports.CreateClientInput) (*domain.Client, error) {
	if scope.FirmID == "" {
		return nil, domain.ErrNoFirm
	}

	now := time.Now().UTC()
	client := &domain.Client{
		FirmID:    scope.FirmID,
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Status:    domain.ClientActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, client)
	if err != nil {
		s.logger.Error().Err(err).Str("firm_id", scope.FirmID).Msg("failed to create client")
		return nil, err
	}

	s.logger.Info().Str("client_id", created.ID).Str("firm_id", scope.FirmID).Msg("client created")
	return created, nil
}

// GetClient retrieves a client by ID within the request scope. A client
// owned by another firm yields ErrNotFound, identical to a missing record.
func (s *ClientService) GetClient(ctx context.Context, scope domain.RequestScope, id string) (*domain.Client, error) {
	if scope.FirmID == "" {
		return nil, domain.ErrNoFirm
	}

	client, err := s.repo.FindByID(ctx, id, scope.FirmID)
	if err != nil {
		return nil, err
	}
	// The repository already filters by firm_id; this re-check guards
	// against a repository implementation that forgets to.
	if client.FirmID != scope.FirmID {
		metrics.ScopeDenialsTotal.WithLabelValues("client").Inc()
		return nil, domain.ErrNotFound
	}
	return client, nil
}

func (s *ClientService) UpdateClient(ctx context.Context, scope domain.RequestScope, id string, input ports.UpdateClientInput) (*domain.Client, error) {
	client, err := s.GetClient(ctx, scope, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		client.Name = input.Name
	}
	if input.Email != "" {
		client.Email = input.Email
	}
	if input.Phone != "" {
		client.Phone = input.Phone
	}
	if input.Status != "" {
		client.Status = domain.ClientStatus(input.Status)
	}
	client.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, client); err != nil {
		s.logger.Error().Err(err).Str("client_id", id).Msg("failed to update client")
		return nil, err
	}
	return client, nil
}

func (s *ClientService) ListClients(ctx context.Context, scope domain.RequestScope, input ports.ListClientsInput) (*ports.ListClientsResult, error) {
	if scope.FirmID == "" {
		return nil, domain.ErrNoFirm
	}

	page, limit := normalizePage(input.Page, input.Limit)
	items, total, err := s.repo.List(ctx, ports.ListClientsFilter{
		FirmID: scope.FirmID,
		Status: input.Status,
		Search: input.Search,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("firm_id", scope.FirmID).Msg("failed to list clients")
		return nil, err
	}

	return &ports.ListClientsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}

func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return pages
}
