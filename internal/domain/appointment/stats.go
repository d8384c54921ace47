package appointment

// Stats is derived on every call and never stored. The revenue fields are
// nil when computed from the local list.
type Stats struct {
	Total            int64  `json:"totalAgendamentos"`
	Pending          int64  `json:"pendentes"`
	Completed        int64  `json:"concluidos"`
	UniqueClients    int64  `json:"clientesUnicos"`
	Today            int64  `json:"agendamentosHoje"`
	MonthRevenue     *Price `json:"faturamentoMes,omitempty"`
	ProjectedRevenue *Price `json:"previsaoFaturamento,omitempty"`
}

// StatsFromViews derives the counts from a flat list. Distinct clients are
// distinct names.
func StatsFromViews(views []View, today string) Stats {
	st := Stats{Total: int64(len(views))}
	clients := make(map[string]struct{}, len(views))

	for _, v := range views {
		switch v.Status {
		case StatusPending:
			st.Pending++
		case StatusCompleted:
			st.Completed++
		}
		if v.Date == today {
			st.Today++
		}
		clients[v.Client] = struct{}{}
	}

	st.UniqueClients = int64(len(clients))
	return st
}
