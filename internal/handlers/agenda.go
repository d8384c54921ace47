package handlers

import (
	"context"

	"github.com/BruksfildServices01/coldtech-agenda/internal/agenda"
	domain "github.com/BruksfildServices01/coldtech-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/coldtech-agenda/internal/models"
)

// Agenda is the part of *agenda.Service the handlers call.
type Agenda interface {
	Mode() agenda.Mode

	ListAppointments(ctx context.Context) []domain.View
	ListAppointmentsByDate(ctx context.Context, date string) []domain.View
	ListPending(ctx context.Context) []domain.View
	ListCompleted(ctx context.Context) []domain.View
	AddAppointment(ctx context.Context, v domain.View) (domain.View, error)
	UpdateAppointment(ctx context.Context, index int, v domain.View) (domain.View, error)
	DeleteAppointment(ctx context.Context, index int, id uint) (*domain.View, error)

	ListClients(ctx context.Context) []models.Client
	AddClient(ctx context.Context, c models.Client) *models.Client
	UpdateClient(ctx context.Context, id uint, c models.Client) *models.Client
	DeleteClient(ctx context.Context, id uint) bool

	ListServices(ctx context.Context) []models.Service
	Stats(ctx context.Context) domain.Stats
}

var _ Agenda = (*agenda.Service)(nil)
