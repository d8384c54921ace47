package appointment

import (
	"errors"
	"fmt"
	"testing"
)

func sample() []View {
	return []View{
		{Client: "A", Date: "2026-10-20", Time: "15:00", Status: StatusPending},
		{Client: "B", Date: "2026-10-18", Time: "09:00", Status: StatusCompleted},
		{Client: "C", Date: "2026-10-20", Time: "08:00", Status: StatusPending},
		{Client: "A", Date: "2026-11-02", Time: "10:00", Status: "cancelado"},
	}
}

func clients(views []View) string {
	s := ""
	for _, v := range views {
		s += v.Client
	}
	return s
}

func TestFilterApply(t *testing.T) {
	cases := []struct {
		name string
		f    Filter
		want string
	}{
		{"all by date", Filter{OrderBy: OrderByDate}, "BACA"},
		{"one day by time", Filter{Date: "2026-10-20", OrderBy: OrderByTime}, "CA"},
		{"pending", Filter{Status: StatusPending, OrderBy: OrderByDate}, "AC"},
		{"month range", Filter{From: "2026-10-01", To: "2026-10-31"}, "ABC"},
		{"unknown status kept", Filter{Status: "cancelado"}, "A"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in := sample()
			got := c.f.Apply(in)
			if clients(got) != c.want {
				t.Fatalf("got %s, want %s", clients(got), c.want)
			}
			if clients(in) != "ABCA" {
				t.Fatal("Apply must not reorder its input")
			}
		})
	}
}

func TestFilterSortInPlace(t *testing.T) {
	views := sample()
	Filter{OrderBy: OrderByDate}.Sort(views)

	if clients(views) != "BACA" {
		t.Fatalf("got %s", clients(views))
	}
}

func TestStatsFromViews(t *testing.T) {
	st := StatsFromViews(sample(), "2026-10-20")

	if st.Total != 4 || st.Pending != 2 || st.Completed != 1 || st.Today != 2 {
		t.Fatalf("unexpected counts: %+v", st)
	}
	if st.UniqueClients != 3 {
		t.Fatalf("expected 3 distinct names, got %d", st.UniqueClients)
	}
	if st.MonthRevenue != nil || st.ProjectedRevenue != nil {
		t.Fatal("revenue must stay nil")
	}
}

func TestKind(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{ErrNotFound, "not_found"},
		{fmt.Errorf("%w: duplicate key", ErrRemoteRejected), "remote_rejected"},
		{fmt.Errorf("%w: %q", ErrServiceNotFound, "Pintura"), "unresolved_reference"},
		{ErrMissingID, "missing_identifier"},
		{errors.New("dial tcp: connection refused"), "remote_unreachable"},
	}
	for _, c := range cases {
		if got := Kind(c.err); got != c.want {
			t.Errorf("Kind(%v) = %q, want %q", c.err, got, c.want)
		}
	}
}
