// Package agenda is the data-access facade for appointments, clients and
// services.
//
// Every operation tries the remote relational store first. When it fails,
// the operation is answered from the local mirror, a persisted full copy
// kept in the flat view shape. Only two conditions reach the caller as
// errors: an unknown service on appointment creation (ErrServiceNotFound)
// and an update or delete that cannot locate its record (ErrMissingID).
// Everything else degrades to a possibly stale or empty local answer.
//
// The two backends are never reconciled.
package agenda

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/coldtech-agenda/internal/audit"
	domain "github.com/BruksfildServices01/coldtech-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/coldtech-agenda/internal/infra/mirror"
	"github.com/BruksfildServices01/coldtech-agenda/internal/requestid"
	"github.com/BruksfildServices01/coldtech-agenda/internal/seed"
)

// Mode is the readiness signal returned by Init.
type Mode string

const (
	ModeUnknown   Mode = ""
	ModeRemote    Mode = "remote"
	ModeLocalOnly Mode = "local-only"
)

type Option func(*Service)

// WithAudit records successful remote mutations.
func WithAudit(d *audit.Dispatcher) Option {
	return func(s *Service) { s.audit = d }
}

// WithClock sets the source of "today" and "this month".
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithSeed replaces the embedded seed dataset.
func WithSeed(load func() (*seed.Dataset, error)) Option {
	return func(s *Service) { s.loadSeed = load }
}

type Service struct {
	repo     domain.Repository
	store    mirror.Store
	log      zerolog.Logger
	audit    *audit.Dispatcher
	now      func() time.Time
	loadSeed func() (*seed.Dataset, error)

	mu    sync.Mutex
	mode  Mode
	local *mirror.Snapshot
}

func New(
	repo domain.Repository,
	store mirror.Store,
	log zerolog.Logger,
	opts ...Option,
) *Service {
	s := &Service{
		repo:     repo,
		store:    store,
		log:      log.With().Str("component", "agenda").Logger(),
		now:      time.Now,
		loadSeed: seed.Load,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Init checks the remote store once. If the check fails the service goes
// local-only: it loads the persisted mirror or, when there is none, builds
// it from the seed dataset and persists it. If the remote store is
// reachable but holds no appointment, it is seeded. Seeding errors are
// logged, not returned.
//
// Local-only is reported through Mode; operations still try the remote
// store first.
func (s *Service) Init(ctx context.Context) (Mode, error) {
	has, err := s.repo.HasAppointments(ctx)
	if err != nil {
		s.log.Warn().Err(err).Str("kind", domain.Kind(err)).Msg("remote store unavailable, using local mirror")

		if err := s.initLocal(ctx); err != nil {
			return ModeLocalOnly, err
		}
		s.setMode(ModeLocalOnly)
		return ModeLocalOnly, nil
	}

	s.setMode(ModeRemote)

	if !has {
		if err := s.seedRemote(ctx); err != nil {
			s.log.Error().Err(err).Msg("seeding remote store failed")
		}
	}

	return ModeRemote, nil
}

func (s *Service) setMode(m Mode) {
	s.mu.Lock()
	s.mode = m
	s.mu.Unlock()
}

func (s *Service) initLocal(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.store.Load(ctx)
	if err == nil {
		s.local = snap
		return nil
	}
	if !errors.Is(err, mirror.ErrEmpty) {
		s.log.Warn().Err(err).Msg("local mirror unreadable, starting from seed")
	}

	ds, err := s.loadSeed()
	if err != nil {
		return fmt.Errorf("load seed: %w", err)
	}

	s.local = &mirror.Snapshot{
		Clients:      ds.ClientRows(),
		Services:     ds.Services,
		Appointments: ds.Appointments,
	}
	s.persist(ctx)
	return nil
}

// seedRemote inserts the seed dataset. Appointments whose client or service
// is not found after insertion keep an empty reference.
func (s *Service) seedRemote(ctx context.Context) error {
	ds, err := s.loadSeed()
	if err != nil {
		return fmt.Errorf("load seed: %w", err)
	}

	if err := s.repo.CreateServices(ctx, ds.ServiceRows()); err != nil {
		return fmt.Errorf("insert services: %w", err)
	}
	if err := s.repo.CreateClients(ctx, ds.ClientRows()); err != nil {
		return fmt.Errorf("insert clients: %w", err)
	}

	clients, err := s.repo.ListClients(ctx)
	if err != nil {
		return fmt.Errorf("reload clients: %w", err)
	}
	services, err := s.repo.ListServices(ctx)
	if err != nil {
		return fmt.Errorf("reload services: %w", err)
	}

	if err := s.repo.CreateAppointments(ctx, ds.AppointmentRows(clients, services)); err != nil {
		return fmt.Errorf("insert appointments: %w", err)
	}

	s.log.Info().
		Int("services", len(services)).
		Int("clients", len(clients)).
		Int("appointments", len(ds.Appointments)).
		Msg("remote store seeded")
	return nil
}

// attempt runs remote and, on any failure other than the surfaced ones,
// logs it and answers with local. A nil local yields the zero value.
func attempt[T any](
	ctx context.Context,
	s *Service,
	op string,
	remote func(context.Context) (T, error),
	local func() (T, error),
) (T, error) {
	v, err := remote(ctx)
	if err == nil {
		return v, nil
	}
	if surfaced(err) {
		var zero T
		return zero, err
	}

	s.log.Warn().
		Err(err).
		Str("op", op).
		Str("kind", domain.Kind(err)).
		Str("request_id", requestid.From(ctx)).
		Msg("remote store failed, answering from local mirror")

	if local == nil {
		var zero T
		return zero, nil
	}
	return local()
}

// read is attempt for operations whose local answer cannot fail.
func read[T any](
	ctx context.Context,
	s *Service,
	op string,
	remote func(context.Context) (T, error),
	local func() T,
) T {
	v, _ := attempt(ctx, s, op, remote, func() (T, error) { return local(), nil })
	return v
}

func surfaced(err error) bool {
	return errors.Is(err, domain.ErrServiceNotFound) || errors.Is(err, domain.ErrMissingID)
}

func (s *Service) dispatch(ctx context.Context, action, entity string, id uint, meta any) {
	s.audit.Dispatch(audit.Event{
		Action:    action,
		Entity:    entity,
		EntityID:  &id,
		RequestID: requestid.From(ctx),
		Metadata:  meta,
	})
}
