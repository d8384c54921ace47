package appointment

import (
	"context"

	"github.com/BruksfildServices01/coldtech-agenda/internal/models"
)

// Repository is the remote relational store. Every method reports store
// failures through its error; lookups that match nothing return ErrNotFound.
type Repository interface {
	// -------- Appointment (read) --------
	HasAppointments(ctx context.Context) (bool, error)

	// ListAppointments returns rows with Client and Service preloaded.
	ListAppointments(ctx context.Context, f Filter) ([]models.Appointment, error)

	GetAppointment(ctx context.Context, id uint) (*models.Appointment, error)

	CountAppointments(ctx context.Context, f Filter) (int64, error)

	// ListPrices returns preco_personalizado of the matching rows.
	ListPrices(ctx context.Context, f Filter) ([]string, error)

	// -------- Appointment (write) --------
	CreateAppointment(ctx context.Context, ap *models.Appointment) error

	UpdateAppointment(ctx context.Context, id uint, ch Changes) (*models.Appointment, error)

	DeleteAppointment(ctx context.Context, id uint) error

	// -------- Client --------
	FindClientByName(ctx context.Context, name string) (*models.Client, error)
	ListClients(ctx context.Context) ([]models.Client, error)
	CountClients(ctx context.Context) (int64, error)
	CreateClient(ctx context.Context, c *models.Client) error
	UpdateClient(ctx context.Context, id uint, c models.Client) (*models.Client, error)
	DeleteClient(ctx context.Context, id uint) error

	// -------- Service --------
	FindServiceByType(ctx context.Context, serviceType string) (*models.Service, error)
	ListServices(ctx context.Context) ([]models.Service, error)

	// -------- Seeding --------
	CreateServices(ctx context.Context, services []models.Service) error
	CreateClients(ctx context.Context, clients []models.Client) error
	CreateAppointments(ctx context.Context, aps []models.Appointment) error
}
