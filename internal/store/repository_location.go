package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/idfinder-gh/idfinder/internal/logger"
	"github.com/idfinder-gh/idfinder/models"
)

// locationRepository is the PostgreSQL-backed implementation of
// [LocationRepository]. It manages the small, mostly static set of pickup
// locations in the "locations" table.
type locationRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewLocationRepository constructs a [LocationRepository] backed by the
// provided database connection and logger.
func NewLocationRepository(db *DB, logger *logger.Logger) LocationRepository {
	logger.Debug().Msg("creating location repository")
	return &locationRepository{
		db:     db,
		logger: logger,
	}
}

// CreateLocation persists a new pickup location and returns the fully
// populated [models.Location].
func (r *locationRepository) CreateLocation(ctx context.Context, location models.Location) (models.Location, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createLocation,
		location.ID, location.Name, location.Address, location.Region,
		location.Phone, location.Hours, location.CreatedAt,
	)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*locationRepository.CreateLocation").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Location{}, fmt.Errorf("location %q already exists: %w", location.Name, err)
		default:
			return models.Location{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := row.Scan(
		&location.ID, &location.Name, &location.Address, &location.Region,
		&location.Phone, &location.Hours, &location.CreatedAt,
	); err != nil {
		log.Err(err).Str("func", "*locationRepository.CreateLocation").Msg("error: scanning error")
		return models.Location{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return location, nil
}

// ListLocations returns every pickup location ordered by name.
func (r *locationRepository) ListLocations(ctx context.Context) ([]models.Location, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listLocations)
	if err != nil {
		log.Err(err).
			Str("func", "*locationRepository.ListLocations").
			Msg("failed to execute location list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	locations := make([]models.Location, 0, 8)

	for rows.Next() {
		var loc models.Location
		if scanErr := rows.Scan(
			&loc.ID, &loc.Name, &loc.Address, &loc.Region,
			&loc.Phone, &loc.Hours, &loc.CreatedAt,
		); scanErr != nil {
			log.Err(scanErr).
				Str("func", "*locationRepository.ListLocations").
				Msg("failed to scan location row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		locations = append(locations, loc)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*locationRepository.ListLocations").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return locations, nil
}

// FindLocationByName retrieves a single location by its exact name.
// Returns [ErrLocationNotFound] when no row matches.
func (r *locationRepository) FindLocationByName(ctx context.Context, name string) (models.Location, error) {
	log := logger.FromContext(ctx)

	var loc models.Location
	row := r.db.QueryRowContext(ctx, findLocationByName, name)

	if err := row.Scan(
		&loc.ID, &loc.Name, &loc.Address, &loc.Region,
		&loc.Phone, &loc.Hours, &loc.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Location{}, ErrLocationNotFound
		}
		log.Err(err).
			Str("func", "*locationRepository.FindLocationByName").
			Str("name", name).
			Msg("error: scanning error")
		return models.Location{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return loc, nil
}
