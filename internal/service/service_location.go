package service

import (
	"context"
	"fmt"
	"time"

	"github.com/idfinder-gh/idfinder/internal/logger"
	"github.com/idfinder-gh/idfinder/internal/store"
	"github.com/idfinder-gh/idfinder/internal/utils"
	"github.com/idfinder-gh/idfinder/internal/validators"
	"github.com/idfinder-gh/idfinder/models"
)

// locationService is the concrete implementation of LocationService.
type locationService struct {
	locationRepository store.LocationRepository
	ids                *utils.UUIDGenerator
	logger             *logger.Logger
}

// NewLocationService constructs a LocationService backed by the given
// location repository.
func NewLocationService(locationRepository store.LocationRepository, logger *logger.Logger) LocationService {
	return &locationService{
		locationRepository: locationRepository,
		ids:                utils.NewUUIDGenerator(),
		logger:             logger,
	}
}

// CreateLocation registers a new holding site.
func (s *locationService) CreateLocation(ctx context.Context, in models.LocationCreate) (models.Location, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateLocationCreate(in); err != nil {
		return models.Location{}, err
	}

	location := models.Location{
		ID:        s.ids.Generate(),
		Name:      in.Name,
		Address:   in.Address,
		Region:    in.Region,
		Phone:     in.Phone,
		Hours:     in.Hours,
		CreatedAt: time.Now(),
	}

	created, err := s.locationRepository.CreateLocation(ctx, location)
	if err != nil {
		log.Err(err).Str("name", in.Name).Msg("location creation failed")
		return models.Location{}, fmt.Errorf("location creation failed: %w", err)
	}

	return created, nil
}

// ListLocations returns every holding site ordered by name.
func (s *locationService) ListLocations(ctx context.Context) ([]models.Location, error) {
	log := logger.FromContext(ctx)

	locations, err := s.locationRepository.ListLocations(ctx)
	if err != nil {
		log.Err(err).Msg("location listing failed")
		return nil, fmt.Errorf("location listing failed: %w", err)
	}

	return locations, nil
}
