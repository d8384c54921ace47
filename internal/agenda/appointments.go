package agenda

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/BruksfildServices01/coldtech-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/coldtech-agenda/internal/models"
)

// NoIndex marks a call without a positional index into the local list.
const NoIndex = -1

var listAll = domain.Filter{OrderBy: domain.OrderByDate}

// ======================================================
// QUERIES
// ======================================================

// ListAppointments returns every appointment, ascending by date.
func (s *Service) ListAppointments(ctx context.Context) []domain.View {
	return s.list(ctx, "list_appointments", listAll)
}

// ListAppointmentsByDate returns the appointments of one day, ascending by
// time.
func (s *Service) ListAppointmentsByDate(ctx context.Context, date string) []domain.View {
	return s.list(ctx, "list_appointments_by_date", domain.Filter{
		Date:    date,
		OrderBy: domain.OrderByTime,
	})
}

func (s *Service) ListPending(ctx context.Context) []domain.View {
	return s.list(ctx, "list_pending", domain.Filter{
		Status:  domain.StatusPending,
		OrderBy: domain.OrderByDate,
	})
}

func (s *Service) ListCompleted(ctx context.Context) []domain.View {
	return s.list(ctx, "list_completed", domain.Filter{
		Status:  domain.StatusCompleted,
		OrderBy: domain.OrderByDate,
	})
}

func (s *Service) list(ctx context.Context, op string, f domain.Filter) []domain.View {
	return read(ctx, s, op,
		func(ctx context.Context) ([]domain.View, error) {
			aps, err := s.repo.ListAppointments(ctx, f)
			if err != nil {
				return nil, err
			}
			return domain.ToViews(aps), nil
		},
		func() []domain.View {
			return s.localList(ctx, f)
		},
	)
}

func (s *Service) localList(ctx context.Context, f domain.Filter) []domain.View {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ensureLocal(ctx) {
		return []domain.View{}
	}

	// The full listing reorders the stored list so the positions callers
	// see are the positions UpdateAppointment and DeleteAppointment use.
	if f == listAll {
		f.Sort(s.local.Appointments)
	}
	return f.Apply(s.local.Appointments)
}

// ======================================================
// CREATE
// ======================================================

// AddAppointment stores v and returns it as read back from the store.
// The service is resolved by exact type and must exist; the client is
// resolved by exact name and created when missing.
//
// When the remote store fails, v is put at the head of the local list and
// returned unchanged.
func (s *Service) AddAppointment(ctx context.Context, v domain.View) (domain.View, error) {
	v.PriceOmitted = false
	return attempt(ctx, s, "add_appointment",
		func(ctx context.Context) (domain.View, error) {
			return s.addRemote(ctx, v)
		},
		func() (domain.View, error) {
			s.mu.Lock()
			defer s.mu.Unlock()

			if s.ensureLocal(ctx) {
				s.local.Appointments = append([]domain.View{v}, s.local.Appointments...)
				s.persist(ctx)
			}
			return v, nil
		},
	)
}

func (s *Service) addRemote(ctx context.Context, v domain.View) (domain.View, error) {
	// Resolved before the client so an unknown service creates nothing.
	svc, err := s.repo.FindServiceByType(ctx, v.Service)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.View{}, fmt.Errorf("%w: %q", domain.ErrServiceNotFound, v.Service)
	}
	if err != nil {
		return domain.View{}, fmt.Errorf("resolve service: %w", err)
	}

	clientID, err := s.resolveClient(ctx, v)
	if err != nil {
		return domain.View{}, err
	}

	row := domain.ToRow(v, clientID, svc.ID)
	if err := s.repo.CreateAppointment(ctx, &row); err != nil {
		return domain.View{}, fmt.Errorf("insert appointment: %w", err)
	}

	created, err := s.repo.GetAppointment(ctx, row.ID)
	if err != nil {
		return domain.View{}, fmt.Errorf("reload appointment: %w", err)
	}

	s.dispatch(ctx, "appointment_created", "appointment", created.ID, nil)
	return domain.ToView(*created), nil
}

func (s *Service) resolveClient(ctx context.Context, v domain.View) (uint, error) {
	existing, err := s.repo.FindClientByName(ctx, v.Client)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return 0, fmt.Errorf("resolve client: %w", err)
	}

	client := models.Client{
		Name:    v.Client,
		Contact: v.Contact,
		Address: v.Location,
	}
	if err := s.repo.CreateClient(ctx, &client); err != nil {
		return 0, fmt.Errorf("create client: %w", err)
	}

	s.dispatch(ctx, "client_created", "client", client.ID, map[string]any{"source": "appointment"})
	return client.ID, nil
}

// ======================================================
// UPDATE
// ======================================================

// UpdateAppointment changes date, time, service, price and status of the
// appointment v.ID. The client association is never changed. The result
// merges the stored fields with the caller's client, contact, service and
// location.
//
// index is the position in the local list, used when the remote store
// fails or v has no id. Without either, ErrMissingID is returned.
func (s *Service) UpdateAppointment(ctx context.Context, index int, v domain.View) (domain.View, error) {
	if v.ID == 0 {
		if index < 0 {
			return domain.View{}, domain.ErrMissingID
		}
		return s.updateLocal(ctx, index, v), nil
	}

	return attempt(ctx, s, "update_appointment",
		func(ctx context.Context) (domain.View, error) {
			var serviceID uint
			if v.Service != "" {
				svc, err := s.repo.FindServiceByType(ctx, v.Service)
				if err != nil {
					return domain.View{}, fmt.Errorf("resolve service %q: %w", v.Service, err)
				}
				serviceID = svc.ID
			}

			updated, err := s.repo.UpdateAppointment(ctx, v.ID, domain.ToChanges(v, serviceID))
			if err != nil {
				return domain.View{}, fmt.Errorf("update appointment %d: %w", v.ID, err)
			}

			s.dispatch(ctx, "appointment_updated", "appointment", updated.ID, map[string]any{
				"status": updated.Status,
			})
			return domain.Merge(*updated, v), nil
		},
		func() (domain.View, error) {
			return s.updateLocal(ctx, index, v), nil
		},
	)
}

func (s *Service) updateLocal(ctx context.Context, index int, v domain.View) domain.View {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ensureLocal(ctx) {
		return v
	}
	if index < 0 || index >= len(s.local.Appointments) {
		s.log.Warn().Int("index", index).Msg("local update skipped, index out of range")
		return v
	}

	merged := domain.Overlay(s.local.Appointments[index], v)
	s.local.Appointments[index] = merged
	s.persist(ctx)
	return merged
}

// ======================================================
// DELETE
// ======================================================

// DeleteAppointment removes an appointment by id from the remote store, or
// by position from the local list when id is 0. It returns the removed
// record, or only its id on the remote path, and nil when nothing was
// removed.
func (s *Service) DeleteAppointment(ctx context.Context, index int, id uint) (*domain.View, error) {
	if id == 0 {
		if index < 0 {
			return nil, domain.ErrMissingID
		}
		return s.deleteLocal(ctx, index), nil
	}

	return attempt[*domain.View](ctx, s, "delete_appointment",
		func(ctx context.Context) (*domain.View, error) {
			if err := s.repo.DeleteAppointment(ctx, id); err != nil {
				return nil, fmt.Errorf("delete appointment %d: %w", id, err)
			}
			s.dispatch(ctx, "appointment_deleted", "appointment", id, nil)
			return &domain.View{ID: id}, nil
		},
		nil,
	)
}

func (s *Service) deleteLocal(ctx context.Context, index int) *domain.View {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ensureLocal(ctx) || index < 0 || index >= len(s.local.Appointments) {
		return nil
	}

	removed := s.local.Appointments[index]
	s.local.Appointments = append(s.local.Appointments[:index], s.local.Appointments[index+1:]...)
	s.persist(ctx)
	return &removed
}
