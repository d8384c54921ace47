package agenda

import (
	"context"

	"github.com/BruksfildServices01/coldtech-agenda/internal/models"
)

// Client and service mutations have no local path: a remote failure is
// reported as nil or false and the mirror is left alone.

func (s *Service) ListClients(ctx context.Context) []models.Client {
	return read(ctx, s, "list_clients",
		s.repo.ListClients,
		func() []models.Client {
			s.mu.Lock()
			defer s.mu.Unlock()

			if !s.ensureLocal(ctx) {
				return []models.Client{}
			}
			return append([]models.Client{}, s.local.Clients...)
		},
	)
}

func (s *Service) AddClient(ctx context.Context, c models.Client) *models.Client {
	created, _ := attempt[*models.Client](ctx, s, "add_client",
		func(ctx context.Context) (*models.Client, error) {
			c.ID = 0
			if err := s.repo.CreateClient(ctx, &c); err != nil {
				return nil, err
			}
			s.dispatch(ctx, "client_created", "client", c.ID, nil)
			return &c, nil
		},
		nil,
	)
	return created
}

// UpdateClient applies the non-empty fields of c to client id.
func (s *Service) UpdateClient(ctx context.Context, id uint, c models.Client) *models.Client {
	updated, _ := attempt[*models.Client](ctx, s, "update_client",
		func(ctx context.Context) (*models.Client, error) {
			updated, err := s.repo.UpdateClient(ctx, id, c)
			if err != nil {
				return nil, err
			}
			s.dispatch(ctx, "client_updated", "client", id, nil)
			return updated, nil
		},
		nil,
	)
	return updated
}

func (s *Service) DeleteClient(ctx context.Context, id uint) bool {
	ok, _ := attempt[bool](ctx, s, "delete_client",
		func(ctx context.Context) (bool, error) {
			if err := s.repo.DeleteClient(ctx, id); err != nil {
				return false, err
			}
			s.dispatch(ctx, "client_deleted", "client", id, nil)
			return true, nil
		},
		nil,
	)
	return ok
}

func (s *Service) ListServices(ctx context.Context) []models.Service {
	return read(ctx, s, "list_services",
		s.repo.ListServices,
		func() []models.Service {
			s.mu.Lock()
			defer s.mu.Unlock()

			if !s.ensureLocal(ctx) {
				return []models.Service{}
			}
			return append([]models.Service{}, s.local.Services...)
		},
	)
}
