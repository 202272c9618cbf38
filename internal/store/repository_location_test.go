package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/idfinder-gh/idfinder/internal/logger"
	"github.com/idfinder-gh/idfinder/models"
)

func newTestLocationRepo(t *testing.T) (*locationRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &locationRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

var locationTestColumns = []string{"id", "name", "address", "region", "phone", "hours", "created_at"}

func TestCreateLocation_Success(t *testing.T) {
	repo, mock, db := newTestLocationRepo(t)
	defer db.Close()

	ctx := context.Background()
	loc := models.Location{
		ID:        "loc-1",
		Name:      "Accra Central Office",
		Address:   "1 High Street",
		Region:    "Greater Accra",
		Phone:     "+233302000000",
		Hours:     "Mon-Fri 8:00-17:00",
		CreatedAt: time.Now(),
	}

	rows := sqlmock.NewRows(locationTestColumns).
		AddRow(loc.ID, loc.Name, loc.Address, loc.Region, loc.Phone, loc.Hours, loc.CreatedAt)

	mock.ExpectQuery("INSERT INTO locations").
		WithArgs(loc.ID, loc.Name, loc.Address, loc.Region, loc.Phone, loc.Hours, loc.CreatedAt).
		WillReturnRows(rows)

	created, err := repo.CreateLocation(ctx, loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Name != loc.Name {
		t.Errorf("expected name %s, got %s", loc.Name, created.Name)
	}
}

func TestListLocations_Success(t *testing.T) {
	repo, mock, db := newTestLocationRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.NewRows(locationTestColumns).
		AddRow("loc-1", "Accra Central Office", "1 High Street", "Greater Accra", "+233302000000", "Mon-Fri 8:00-17:00", now).
		AddRow("loc-2", "Kumasi Regional Office", "12 Harper Road", "Ashanti", "+233322000000", "Mon-Fri 8:00-17:00", now)

	mock.ExpectQuery("SELECT id").
		WillReturnRows(rows)

	locations, err := repo.ListLocations(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(locations) != 2 {
		t.Fatalf("expected 2 locations, got %d", len(locations))
	}
	if locations[1].Region != "Ashanti" {
		t.Errorf("unexpected region %s", locations[1].Region)
	}
}

func TestListLocations_QueryError(t *testing.T) {
	repo, mock, db := newTestLocationRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id").
		WillReturnError(errors.New("db failure"))

	_, err := repo.ListLocations(ctx)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestFindLocationByName_Success(t *testing.T) {
	repo, mock, db := newTestLocationRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.NewRows(locationTestColumns).
		AddRow("loc-1", "Accra Central Office", "1 High Street", "Greater Accra", "+233302000000", "Mon-Fri 8:00-17:00", now)

	mock.ExpectQuery("SELECT id").
		WithArgs("Accra Central Office").
		WillReturnRows(rows)

	found, err := repo.FindLocationByName(ctx, "Accra Central Office")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != "loc-1" {
		t.Errorf("expected loc-1, got %s", found.ID)
	}
}

func TestFindLocationByName_NotFound(t *testing.T) {
	repo, mock, db := newTestLocationRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id").
		WithArgs("Nowhere").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindLocationByName(ctx, "Nowhere")
	if !errors.Is(err, ErrLocationNotFound) {
		t.Fatalf("expected ErrLocationNotFound, got %v", err)
	}
}
