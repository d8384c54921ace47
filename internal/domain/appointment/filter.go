package appointment

import "sort"

type Order string

const (
	OrderByDate Order = "data"
	OrderByTime Order = "time"
)

// Filter is evaluated by the Repository on the remote path and by Match on
// the local one. Zero fields do not filter.
type Filter struct {
	Date   string
	Status Status

	// inclusive YYYY-MM-DD bounds
	From string
	To   string

	OrderBy Order
}

func (f Filter) Match(v View) bool {
	if f.Date != "" && v.Date != f.Date {
		return false
	}
	if f.Status != "" && v.Status != f.Status {
		return false
	}
	if f.From != "" && v.Date < f.From {
		return false
	}
	if f.To != "" && v.Date > f.To {
		return false
	}
	return true
}

// Sort orders views ascending by the filter's column, keeping ties stable.
func (f Filter) Sort(views []View) {
	switch f.OrderBy {
	case OrderByTime:
		sort.SliceStable(views, func(i, j int) bool { return views[i].Time < views[j].Time })
	case OrderByDate:
		sort.SliceStable(views, func(i, j int) bool { return views[i].Date < views[j].Date })
	}
}

// Apply filters and sorts views into a new slice.
func (f Filter) Apply(views []View) []View {
	out := make([]View, 0, len(views))
	for _, v := range views {
		if f.Match(v) {
			out = append(out, v)
		}
	}
	f.Sort(out)
	return out
}
