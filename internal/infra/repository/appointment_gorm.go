package repository

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/coldtech-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/coldtech-agenda/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

func applyFilter(q *gorm.DB, f domain.Filter) *gorm.DB {
	if f.Date != "" {
		q = q.Where("data = ?", f.Date)
	}
	if f.Status != "" {
		q = q.Where("status = ?", string(f.Status))
	}
	if f.From != "" {
		q = q.Where("data >= ?", f.From)
	}
	if f.To != "" {
		q = q.Where("data <= ?", f.To)
	}
	return q
}

func applyOrder(q *gorm.DB, order domain.Order) *gorm.DB {
	if order == "" {
		return q
	}
	return q.Order(clause.OrderByColumn{Column: clause.Column{Name: string(order)}})
}

// --------------------------------------------------
// Appointment (read)
// --------------------------------------------------

func (r *AppointmentGormRepository) HasAppointments(ctx context.Context) (bool, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Limit(1).
		Pluck("id", &ids).Error; err != nil {
		return false, classify(err)
	}
	return len(ids) > 0, nil
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	f domain.Filter,
) ([]models.Appointment, error) {

	var apps []models.Appointment

	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service")
	q = applyOrder(applyFilter(q, f), f.OrderBy)

	if err := q.Find(&apps).Error; err != nil {
		return nil, classify(err)
	}
	return apps, nil
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		First(&ap, id).Error; err != nil {
		return nil, classify(err)
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) CountAppointments(
	ctx context.Context,
	f domain.Filter,
) (int64, error) {

	var count int64
	q := applyFilter(r.db.WithContext(ctx).Model(&models.Appointment{}), f)
	if err := q.Count(&count).Error; err != nil {
		return 0, classify(err)
	}
	return count, nil
}

func (r *AppointmentGormRepository) ListPrices(
	ctx context.Context,
	f domain.Filter,
) ([]string, error) {

	var raw []sql.NullString
	q := applyFilter(r.db.WithContext(ctx).Model(&models.Appointment{}), f)
	if err := q.Pluck("preco_personalizado", &raw).Error; err != nil {
		return nil, classify(err)
	}

	prices := make([]string, 0, len(raw))
	for _, p := range raw {
		prices = append(prices, p.String)
	}
	return prices, nil
}

// --------------------------------------------------
// Appointment (write)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return classify(r.db.WithContext(ctx).Create(ap).Error)
}

// UpdateAppointment writes ch and returns the row as stored, with its
// service preloaded. Empty date, time, service and status and a nil price
// are left untouched.
func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	id uint,
	ch domain.Changes,
) (*models.Appointment, error) {

	fields := map[string]any{}
	if ch.Price != nil {
		fields["preco_personalizado"] = ch.Price.String()
	}
	if ch.ServiceID != 0 {
		fields["servico_id"] = ch.ServiceID
	}
	if ch.Date != "" {
		fields["data"] = ch.Date
	}
	if ch.Time != "" {
		fields["time"] = ch.Time
	}
	if ch.Status != "" {
		fields["status"] = string(ch.Status)
	}

	if len(fields) > 0 {
		res := r.db.WithContext(ctx).
			Model(&models.Appointment{}).
			Where("id = ?", id).
			Updates(fields)
		if res.Error != nil {
			return nil, classify(res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, domain.ErrNotFound
		}
	}

	var ap models.Appointment
	if err := r.db.WithContext(ctx).Preload("Service").First(&ap, id).Error; err != nil {
		return nil, classify(err)
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) DeleteAppointment(ctx context.Context, id uint) error {
	return classify(r.db.WithContext(ctx).Delete(&models.Appointment{}, id).Error)
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *AppointmentGormRepository) FindClientByName(
	ctx context.Context,
	name string,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("nome = ?", name).
		Order("id ASC").
		First(&client).Error; err != nil {
		return nil, classify(err)
	}
	return &client, nil
}

func (r *AppointmentGormRepository) ListClients(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&clients).Error; err != nil {
		return nil, classify(err)
	}
	return clients, nil
}

func (r *AppointmentGormRepository) CountClients(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Client{}).Count(&count).Error; err != nil {
		return 0, classify(err)
	}
	return count, nil
}

func (r *AppointmentGormRepository) CreateClient(ctx context.Context, c *models.Client) error {
	return classify(r.db.WithContext(ctx).Create(c).Error)
}

// UpdateClient applies the non-empty fields of c.
func (r *AppointmentGormRepository) UpdateClient(
	ctx context.Context,
	id uint,
	c models.Client,
) (*models.Client, error) {

	c.ID = 0
	res := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ?", id).
		Updates(c)
	if res.Error != nil {
		return nil, classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, classify(err)
	}
	return &client, nil
}

func (r *AppointmentGormRepository) DeleteClient(ctx context.Context, id uint) error {
	return classify(r.db.WithContext(ctx).Delete(&models.Client{}, id).Error)
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *AppointmentGormRepository) FindServiceByType(
	ctx context.Context,
	serviceType string,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("tipo = ?", serviceType).
		Order("id ASC").
		First(&service).Error; err != nil {
		return nil, classify(err)
	}
	return &service, nil
}

func (r *AppointmentGormRepository) ListServices(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&services).Error; err != nil {
		return nil, classify(err)
	}
	return services, nil
}

// --------------------------------------------------
// Seeding
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateServices(ctx context.Context, services []models.Service) error {
	if len(services) == 0 {
		return nil
	}
	return classify(r.db.WithContext(ctx).Create(&services).Error)
}

func (r *AppointmentGormRepository) CreateClients(ctx context.Context, clients []models.Client) error {
	if len(clients) == 0 {
		return nil
	}
	return classify(r.db.WithContext(ctx).Create(&clients).Error)
}

func (r *AppointmentGormRepository) CreateAppointments(ctx context.Context, aps []models.Appointment) error {
	if len(aps) == 0 {
		return nil
	}
	return classify(r.db.WithContext(ctx).Create(&aps).Error)
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
