package agenda

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	dbpkg "github.com/BruksfildServices01/coldtech-agenda/internal/db"
	domain "github.com/BruksfildServices01/coldtech-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/coldtech-agenda/internal/infra/mirror"
	"github.com/BruksfildServices01/coldtech-agenda/internal/infra/repository"
	"github.com/BruksfildServices01/coldtech-agenda/internal/models"
	"github.com/BruksfildServices01/coldtech-agenda/internal/seed"
)

var fixedNow = time.Date(2026, 10, 19, 15, 0, 0, 0, time.Local)

const testSeed = `{
  "servicos": [{"tipo": "Instalação"}, {"tipo": "Manutenção"}],
  "clientes": [
    {"id": 1, "nome": "Maria Silva", "contato": "1111", "endereco": "Rua A", "agendamentos": 2},
    {"id": 2, "nome": "João Santos", "contato": "2222", "endereco": "Rua B"}
  ],
  "agendamentos": [
    {"id": 1, "cliente": "Maria Silva", "contato": "1111", "servico": "Instalação", "data": "2026-10-20", "time": "09:00", "local": "Rua A", "preco": "350,00", "status": "pendente"},
    {"id": 2, "cliente": "João Santos", "contato": "2222", "servico": "Manutenção", "data": "2026-10-05", "time": "14:00", "local": "Rua B", "preco": "180", "status": "concluido"},
    {"id": 3, "cliente": "Fulano", "servico": "Inexistente", "data": "2026-10-12", "time": "08:00", "local": "Rua C", "status": "pendente"}
  ]
}`

func testSeedLoader() (*seed.Dataset, error) {
	return seed.Parse([]byte(testSeed))
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "agenda.db")), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := dbpkg.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

func newFileStore(t *testing.T) *mirror.FileStore {
	t.Helper()

	fs, err := mirror.NewFileStore(filepath.Join(t.TempDir(), "mirror.json"))
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	return fs
}

func newService(repo domain.Repository, store mirror.Store) *Service {
	return New(repo, store, zerolog.Nop(),
		WithClock(func() time.Time { return fixedNow }),
		WithSeed(testSeedLoader),
	)
}

// newRemoteService returns a service over a migrated, empty sqlite store.
func newRemoteService(t *testing.T) (*Service, *repository.AppointmentGormRepository) {
	t.Helper()

	repo := repository.NewAppointmentGormRepository(newTestDB(t))
	return newService(repo, newFileStore(t)), repo
}

// insertServices stores services so appointments can reference them.
func insertServices(t *testing.T, repo domain.Repository, types ...string) {
	t.Helper()

	rows := make([]models.Service, 0, len(types))
	for _, typ := range types {
		rows = append(rows, models.Service{Type: typ})
	}
	if err := repo.CreateServices(context.Background(), rows); err != nil {
		t.Fatalf("insert services: %v", err)
	}
}

func countClients(t *testing.T, repo domain.Repository) int64 {
	t.Helper()

	n, err := repo.CountClients(context.Background())
	if err != nil {
		t.Fatalf("count clients: %v", err)
	}
	return n
}

var errDown = fmt.Errorf("%w: dial tcp 127.0.0.1:5433: connection refused", domain.ErrRemoteUnavailable)

// downRepo fails every call the way an unreachable database does.
type downRepo struct{}

func (downRepo) HasAppointments(context.Context) (bool, error) { return false, errDown }
func (downRepo) ListAppointments(context.Context, domain.Filter) ([]models.Appointment, error) {
	return nil, errDown
}
func (downRepo) GetAppointment(context.Context, uint) (*models.Appointment, error) {
	return nil, errDown
}
func (downRepo) CountAppointments(context.Context, domain.Filter) (int64, error) { return 0, errDown }
func (downRepo) ListPrices(context.Context, domain.Filter) ([]string, error)     { return nil, errDown }
func (downRepo) CreateAppointment(context.Context, *models.Appointment) error   { return errDown }
func (downRepo) UpdateAppointment(context.Context, uint, domain.Changes) (*models.Appointment, error) {
	return nil, errDown
}
func (downRepo) DeleteAppointment(context.Context, uint) error { return errDown }
func (downRepo) FindClientByName(context.Context, string) (*models.Client, error) {
	return nil, errDown
}
func (downRepo) ListClients(context.Context) ([]models.Client, error) { return nil, errDown }
func (downRepo) CountClients(context.Context) (int64, error)          { return 0, errDown }
func (downRepo) CreateClient(context.Context, *models.Client) error   { return errDown }
func (downRepo) UpdateClient(context.Context, uint, models.Client) (*models.Client, error) {
	return nil, errDown
}
func (downRepo) DeleteClient(context.Context, uint) error { return errDown }
func (downRepo) FindServiceByType(context.Context, string) (*models.Service, error) {
	return nil, errDown
}
func (downRepo) ListServices(context.Context) ([]models.Service, error)       { return nil, errDown }
func (downRepo) CreateServices(context.Context, []models.Service) error       { return errDown }
func (downRepo) CreateClients(context.Context, []models.Client) error         { return errDown }
func (downRepo) CreateAppointments(context.Context, []models.Appointment) error { return errDown }

var _ domain.Repository = downRepo{}

// brokenStore cannot read or write its slot.
type brokenStore struct{}

var errStoreDown = errors.New("redis: connection refused")

func (brokenStore) Load(context.Context) (*mirror.Snapshot, error) { return nil, errStoreDown }
func (brokenStore) Save(context.Context, *mirror.Snapshot) error   { return errStoreDown }

// memStore is a mirror slot held in memory, counting saves.
type memStore struct {
	snap  *mirror.Snapshot
	saves int
}

func (m *memStore) Load(context.Context) (*mirror.Snapshot, error) {
	if m.snap == nil {
		return nil, mirror.ErrEmpty
	}
	return m.snap.Clone(), nil
}

func (m *memStore) Save(_ context.Context, snap *mirror.Snapshot) error {
	m.snap = snap.Clone()
	m.saves++
	return nil
}
