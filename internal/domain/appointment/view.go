package appointment

import "github.com/BruksfildServices01/coldtech-agenda/internal/models"

// View is the flat appointment callers read and write. It is also the shape
// kept in the local mirror.
type View struct {
	ID       uint   `json:"id,omitempty"`
	Client   string `json:"cliente"`
	Contact  string `json:"contato"`
	Service  string `json:"servico"`
	Date     string `json:"data"`
	Time     string `json:"time"`
	Location string `json:"local"`
	Price    Price  `json:"preco"`
	Status   Status `json:"status"`

	// PriceOmitted marks an update whose caller sent no price.
	PriceOmitted bool `json:"-"`
}

// ToView projects a row with its client and service preloaded.
// Missing joins read as empty strings.
func ToView(ap models.Appointment) View {
	v := View{
		ID:       ap.ID,
		Date:     ap.Date,
		Time:     ap.Time,
		Location: ap.Location,
		Price:    ParsePrice(ap.CustomPrice),
		Status:   Status(ap.Status),
	}
	if ap.Client != nil {
		v.Client = ap.Client.Name
		v.Contact = ap.Client.Contact
	}
	if ap.Service != nil {
		v.Service = ap.Service.Type
	}
	return v
}

func ToViews(aps []models.Appointment) []View {
	out := make([]View, 0, len(aps))
	for _, ap := range aps {
		out = append(out, ToView(ap))
	}
	return out
}

// ToRow decomposes v into an insertable row referencing the resolved
// client and service.
func ToRow(v View, clientID, serviceID uint) models.Appointment {
	status := v.Status
	if status == "" {
		status = InitialStatus()
	}
	return models.Appointment{
		ClientID:    &clientID,
		ServiceID:   &serviceID,
		Date:        v.Date,
		Time:        v.Time,
		Location:    v.Location,
		CustomPrice: v.Price.String(),
		Status:      string(status),
	}
}

// Changes are the columns an update may touch. The client association is
// never part of it.
type Changes struct {
	Date      string
	Time      string
	ServiceID uint
	Price     *Price
	Status    Status
}

// ToChanges leaves Price nil when v carries no price.
func ToChanges(v View, serviceID uint) Changes {
	ch := Changes{
		Date:      v.Date,
		Time:      v.Time,
		ServiceID: serviceID,
		Status:    v.Status,
	}
	if !v.PriceOmitted {
		price := v.Price
		ch.Price = &price
	}
	return ch
}

// Overlay applies in over the stored old record. Empty date, time, service
// and status, and an omitted price, keep old's values.
func Overlay(old, in View) View {
	if in.Date == "" {
		in.Date = old.Date
	}
	if in.Time == "" {
		in.Time = old.Time
	}
	if in.Service == "" {
		in.Service = old.Service
	}
	if in.Status == "" {
		in.Status = old.Status
	}
	if in.PriceOmitted {
		in.Price = old.Price
		in.PriceOmitted = false
	}
	return in
}

// Merge combines the server-confirmed row with the caller's display fields,
// which an update does not re-read.
func Merge(updated models.Appointment, in View) View {
	service := in.Service
	if service == "" && updated.Service != nil {
		service = updated.Service.Type
	}
	return View{
		ID:       updated.ID,
		Client:   in.Client,
		Contact:  in.Contact,
		Service:  service,
		Date:     updated.Date,
		Time:     updated.Time,
		Location: in.Location,
		Price:    ParsePrice(updated.CustomPrice),
		Status:   Status(updated.Status),
	}
}
