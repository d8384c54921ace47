package agenda

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/coldtech-agenda/internal/infra/mirror"
)

// ensureLocal makes the in-memory snapshot available, loading the persisted
// slot on first use. An empty slot starts an empty snapshot; an unreadable
// one is retried on the next call so it is never overwritten blindly.
// Callers hold s.mu.
func (s *Service) ensureLocal(ctx context.Context) bool {
	if s.local != nil {
		return true
	}

	snap, err := s.store.Load(ctx)
	switch {
	case err == nil:
		s.local = snap
	case errors.Is(err, mirror.ErrEmpty):
		s.local = &mirror.Snapshot{}
	default:
		s.log.Error().Err(err).Msg("local mirror unavailable")
		return false
	}
	return true
}

// persist overwrites the slot with the whole snapshot. Callers hold s.mu.
func (s *Service) persist(ctx context.Context) {
	if err := s.store.Save(ctx, s.local.Clone()); err != nil {
		s.log.Error().Err(err).Msg("persisting local mirror failed")
	}
}
