package agenda

import (
	"context"
	"fmt"

	domain "github.com/BruksfildServices01/coldtech-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/coldtech-agenda/internal/timezone"
)

// Stats aggregates the appointment set. Counts come from count queries;
// revenue sums the prices of this month's completed appointments and the
// projection sums this month's appointments of any status.
//
// If a count fails, every figure is derived from ListAppointments instead,
// clients are counted by distinct name and the revenue fields are omitted.
func (s *Service) Stats(ctx context.Context) domain.Stats {
	now := s.now()
	today := timezone.Today(now)
	first, last := timezone.MonthBounds(now)

	return read(ctx, s, "stats",
		func(ctx context.Context) (domain.Stats, error) {
			st, err := s.remoteCounts(ctx, today)
			if err != nil {
				return domain.Stats{}, err
			}

			month, projected := s.revenue(ctx, first, last)
			st.MonthRevenue = &month
			st.ProjectedRevenue = &projected
			return st, nil
		},
		func() domain.Stats {
			return domain.StatsFromViews(s.ListAppointments(ctx), today)
		},
	)
}

func (s *Service) remoteCounts(ctx context.Context, today string) (domain.Stats, error) {
	var st domain.Stats

	counts := []struct {
		name string
		dst  *int64
		f    domain.Filter
	}{
		{"total", &st.Total, domain.Filter{}},
		{"pending", &st.Pending, domain.Filter{Status: domain.StatusPending}},
		{"completed", &st.Completed, domain.Filter{Status: domain.StatusCompleted}},
		{"today", &st.Today, domain.Filter{Date: today}},
	}
	for _, c := range counts {
		n, err := s.repo.CountAppointments(ctx, c.f)
		if err != nil {
			return domain.Stats{}, fmt.Errorf("count %s: %w", c.name, err)
		}
		*c.dst = n
	}

	// Client rows, not distinct names.
	clients, err := s.repo.CountClients(ctx)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("count clients: %w", err)
	}
	st.UniqueClients = clients

	return st, nil
}

// revenue keeps a figure at zero when its price query fails.
func (s *Service) revenue(ctx context.Context, first, last string) (month, projected domain.Price) {
	completed, err := s.repo.ListPrices(ctx, domain.Filter{
		Status: domain.StatusCompleted,
		From:   first,
		To:     last,
	})
	if err != nil {
		s.log.Warn().Err(err).Str("kind", domain.Kind(err)).Msg("monthly revenue unavailable")
		return 0, 0
	}
	month = domain.SumPrices(completed)

	all, err := s.repo.ListPrices(ctx, domain.Filter{From: first, To: last})
	if err != nil {
		s.log.Warn().Err(err).Str("kind", domain.Kind(err)).Msg("projected revenue unavailable")
		return month, 0
	}
	return month, domain.SumPrices(all)
}
