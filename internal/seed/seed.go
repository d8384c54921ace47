// Package seed embeds the baseline dataset used to populate an empty
// remote store or an empty local mirror.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/BruksfildServices01/coldtech-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/coldtech-agenda/internal/models"
)

//go:embed database.json
var raw []byte

// Client is a seed client. Agendamentos is a display counter that only
// exists in the seed file.
type Client struct {
	ID           uint   `json:"id"`
	Name         string `json:"nome"`
	Contact      string `json:"contato"`
	Address      string `json:"endereco"`
	Agendamentos int    `json:"agendamentos,omitempty"`
}

// Row strips the seed-only fields.
func (c Client) Row() models.Client {
	return models.Client{
		Name:    c.Name,
		Contact: c.Contact,
		Address: c.Address,
	}
}

// Dataset references clients and services by name and type, never by id.
type Dataset struct {
	Services     []models.Service   `json:"servicos"`
	Clients      []Client           `json:"clientes"`
	Appointments []appointment.View `json:"agendamentos"`
}

// Load decodes a fresh copy of the embedded dataset.
func Load() (*Dataset, error) {
	return Parse(raw)
}

func Parse(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parse seed dataset: %w", err)
	}
	return &ds, nil
}

// ClientRows returns the clients as insertable rows.
func (ds *Dataset) ClientRows() []models.Client {
	out := make([]models.Client, 0, len(ds.Clients))
	for _, c := range ds.Clients {
		out = append(out, c.Row())
	}
	return out
}

// ServiceRows returns the services without ids so the store assigns them.
func (ds *Dataset) ServiceRows() []models.Service {
	out := make([]models.Service, 0, len(ds.Services))
	for _, s := range ds.Services {
		s.ID = 0
		out = append(out, s)
	}
	return out
}

// AppointmentRows resolves each seed appointment against the stored clients
// and services. An unmatched name leaves the reference empty.
func (ds *Dataset) AppointmentRows(clients []models.Client, services []models.Service) []models.Appointment {
	out := make([]models.Appointment, 0, len(ds.Appointments))
	for _, v := range ds.Appointments {
		ap := models.Appointment{
			Date:        v.Date,
			Time:        v.Time,
			Location:    v.Location,
			CustomPrice: v.Price.String(),
			Status:      string(v.Status),
		}
		for i := range clients {
			if clients[i].Name == v.Client {
				ap.ClientID = &clients[i].ID
				break
			}
		}
		for i := range services {
			if services[i].Type == v.Service {
				ap.ServiceID = &services[i].ID
				break
			}
		}
		out = append(out, ap)
	}
	return out
}
