// Package mirror persists the local copy of the agenda as one named slot
// holding a whole snapshot. Every Save overwrites the slot.
package mirror

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/coldtech-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/coldtech-agenda/internal/models"
)

// ErrEmpty is returned by Load when nothing was ever saved.
var ErrEmpty = errors.New("mirror slot is empty")

// Snapshot uses the seed dataset keys, so a seed file is a valid snapshot.
type Snapshot struct {
	Clients      []models.Client    `json:"clientes"`
	Services     []models.Service   `json:"servicos"`
	Appointments []appointment.View `json:"agendamentos"`
}

// Clone returns a deep copy safe to hand to a Store while the original
// keeps changing.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}
	return &Snapshot{
		Clients:      append([]models.Client(nil), s.Clients...),
		Services:     append([]models.Service(nil), s.Services...),
		Appointments: append([]appointment.View(nil), s.Appointments...),
	}
}

type Store interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snap *Snapshot) error
}
