package repository

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	dbpkg "github.com/BruksfildServices01/coldtech-agenda/internal/db"
	domain "github.com/BruksfildServices01/coldtech-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/coldtech-agenda/internal/models"
)

func newRepo(t *testing.T) (*AppointmentGormRepository, *gorm.DB) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "repo.db")), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := dbpkg.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewAppointmentGormRepository(gdb), gdb
}

func uintPtr(v uint) *uint { return &v }

func TestHasAppointments(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepo(t)

	has, err := repo.HasAppointments(ctx)
	if err != nil || has {
		t.Fatalf("expected empty store, got %v, %v", has, err)
	}

	if err := repo.CreateAppointment(ctx, &models.Appointment{Date: "2026-10-20"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	has, err = repo.HasAppointments(ctx)
	if err != nil || !has {
		t.Fatalf("expected rows, got %v, %v", has, err)
	}
}

func TestCreateAppointmentDefaultsStatus(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepo(t)

	ap := models.Appointment{Date: "2026-10-20", Time: "09:00"}
	if err := repo.CreateAppointment(ctx, &ap); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetAppointment(ctx, ap.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != "pendente" {
		t.Fatalf("expected default status, got %q", got.Status)
	}
	if got.Client != nil || got.Service != nil {
		t.Fatal("expected no joined rows")
	}
}

func TestListAppointmentsPreloadsAndOrders(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepo(t)

	client := models.Client{Name: "Maria", Contact: "1111"}
	if err := repo.CreateClient(ctx, &client); err != nil {
		t.Fatalf("create client: %v", err)
	}
	if err := repo.CreateServices(ctx, []models.Service{{Type: "Reparo"}}); err != nil {
		t.Fatalf("create services: %v", err)
	}
	svc, err := repo.FindServiceByType(ctx, "Reparo")
	if err != nil {
		t.Fatalf("find service: %v", err)
	}

	rows := []models.Appointment{
		{ClientID: uintPtr(client.ID), ServiceID: uintPtr(svc.ID), Date: "2026-10-20", Time: "15:00"},
		{ClientID: uintPtr(client.ID), ServiceID: uintPtr(svc.ID), Date: "2026-10-18", Time: "09:00"},
		{Date: "2026-10-20", Time: "08:00", Status: "concluido"},
	}
	if err := repo.CreateAppointments(ctx, rows); err != nil {
		t.Fatalf("create appointments: %v", err)
	}

	all, err := repo.ListAppointments(ctx, domain.Filter{OrderBy: domain.OrderByDate})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 || all[0].Date != "2026-10-18" {
		t.Fatalf("unexpected order: %+v", all)
	}
	if all[0].Client == nil || all[0].Client.Name != "Maria" || all[0].Service == nil || all[0].Service.Type != "Reparo" {
		t.Fatalf("expected preloaded joins, got %+v", all[0])
	}

	day, err := repo.ListAppointments(ctx, domain.Filter{Date: "2026-10-20", OrderBy: domain.OrderByTime})
	if err != nil {
		t.Fatalf("list day: %v", err)
	}
	if len(day) != 2 || day[0].Time != "08:00" || day[1].Time != "15:00" {
		t.Fatalf("unexpected day listing: %+v", day)
	}

	n, err := repo.CountAppointments(ctx, domain.Filter{Status: domain.StatusCompleted})
	if err != nil || n != 1 {
		t.Fatalf("expected 1 completed, got %d, %v", n, err)
	}
}

func TestListPricesWithinRange(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepo(t)

	rows := []models.Appointment{
		{Date: "2026-10-01", CustomPrice: "10,50"},
		{Date: "2026-10-31", CustomPrice: ""},
		{Date: "2026-11-01", CustomPrice: "99"},
	}
	if err := repo.CreateAppointments(ctx, rows); err != nil {
		t.Fatalf("create: %v", err)
	}

	prices, err := repo.ListPrices(ctx, domain.Filter{From: "2026-10-01", To: "2026-10-31"})
	if err != nil {
		t.Fatalf("list prices: %v", err)
	}
	if len(prices) != 2 {
		t.Fatalf("expected 2 prices, got %v", prices)
	}
	if domain.SumPrices(prices) != 10.5 {
		t.Fatalf("expected sum 10.5, got %v", domain.SumPrices(prices))
	}
}

func TestUpdateAppointment(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepo(t)

	ap := models.Appointment{Date: "2026-10-20", Time: "09:00", CustomPrice: "100"}
	if err := repo.CreateAppointment(ctx, &ap); err != nil {
		t.Fatalf("create: %v", err)
	}

	price := domain.Price(150.25)
	got, err := repo.UpdateAppointment(ctx, ap.ID, domain.Changes{
		Time:      "11:30",
		ServiceID: 0,
		Price:     &price,
		Status:    domain.StatusCompleted,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Date != "2026-10-20" {
		t.Fatalf("empty date must be left untouched, got %q", got.Date)
	}
	if got.Time != "11:30" || got.CustomPrice != "150.25" || got.Status != "concluido" {
		t.Fatalf("unexpected row: %+v", got)
	}

	if _, err := repo.UpdateAppointment(ctx, 999, domain.Changes{Time: "10:00"}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateAppointmentWithoutPriceKeepsStoredPrice(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepo(t)

	ap := models.Appointment{Date: "2026-10-20", Time: "09:00", CustomPrice: "350"}
	if err := repo.CreateAppointment(ctx, &ap); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.UpdateAppointment(ctx, ap.ID, domain.Changes{Status: domain.StatusCompleted})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.CustomPrice != "350" || got.Status != "concluido" {
		t.Fatalf("status-only update must keep the price, got %+v", got)
	}

	got, err = repo.UpdateAppointment(ctx, ap.ID, domain.Changes{})
	if err != nil || got.CustomPrice != "350" {
		t.Fatalf("empty update must read the row back, got %+v, %v", got, err)
	}
	if _, err := repo.UpdateAppointment(ctx, 999, domain.Changes{}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClientLookupAndUpdate(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepo(t)

	if _, err := repo.FindClientByName(ctx, "Ana"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := repo.CreateClients(ctx, []models.Client{
		{Name: "Ana", Contact: "1"},
		{Name: "Ana", Contact: "2"},
	}); err != nil {
		t.Fatalf("create clients: %v", err)
	}

	found, err := repo.FindClientByName(ctx, "Ana")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found.Contact != "1" {
		t.Fatalf("expected the oldest match, got %+v", found)
	}

	updated, err := repo.UpdateClient(ctx, found.ID, models.Client{ID: 42, Contact: "3"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != found.ID || updated.Name != "Ana" || updated.Contact != "3" {
		t.Fatalf("unexpected update: %+v", updated)
	}

	if _, err := repo.UpdateClient(ctx, 999, models.Client{Contact: "x"}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSeedInsertsIgnoreEmptySlices(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepo(t)

	if err := repo.CreateServices(ctx, nil); err != nil {
		t.Fatalf("services: %v", err)
	}
	if err := repo.CreateClients(ctx, nil); err != nil {
		t.Fatalf("clients: %v", err)
	}
	if err := repo.CreateAppointments(ctx, nil); err != nil {
		t.Fatalf("appointments: %v", err)
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		is   error
	}{
		{"not found", gorm.ErrRecordNotFound, domain.ErrNotFound},
		{"postgres error", &pgconn.PgError{Code: "23505", Message: "duplicate key"}, domain.ErrRemoteRejected},
		{"wrapped postgres error", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "42P01"}), domain.ErrRemoteRejected},
		{"translated constraint", gorm.ErrDuplicatedKey, domain.ErrRemoteRejected},
		{"connection", errors.New("dial tcp 127.0.0.1:5433: connect: connection refused"), domain.ErrRemoteUnavailable},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := classify(c.err); !errors.Is(got, c.is) {
				t.Fatalf("classify(%v) = %v, want %v", c.err, got, c.is)
			}
		})
	}

	if classify(nil) != nil {
		t.Fatal("classify(nil) must be nil")
	}
}
