package dto

import (
	"github.com/BruksfildServices01/coldtech-agenda/internal/domain/appointment"
)

// AppointmentRequest is the body of POST and PUT /api/appointments. Keys
// follow the flat appointment shape.
type AppointmentRequest struct {
	ID       uint               `json:"id"`
	Client   string             `json:"cliente" binding:"required"`
	Contact  string             `json:"contato"`
	Service  string             `json:"servico" binding:"required"`
	Date     string             `json:"data" binding:"required,datetime=2006-01-02"`
	Time     string             `json:"time" binding:"required,datetime=15:04"`
	Location string             `json:"local"`
	Price    *appointment.Price `json:"preco"`
	Status   appointment.Status `json:"status"`
}

// ToView marks the price omitted when the body carried none.
func (r AppointmentRequest) ToView() appointment.View {
	v := appointment.View{
		ID:       r.ID,
		Client:   r.Client,
		Contact:  r.Contact,
		Service:  r.Service,
		Date:     r.Date,
		Time:     r.Time,
		Location: r.Location,
		Status:   r.Status,
	}
	if r.Price == nil {
		v.PriceOmitted = true
	} else {
		v.Price = *r.Price
	}
	return v
}
