package store

import (
	"github.com/idfinder-gh/idfinder/internal/logger"
)

// Repositories bundles every repository implementation behind its interface
// so the service layer receives one injectable unit.
type Repositories struct {
	Cards     CardRepository
	Claims    ClaimRepository
	Locations LocationRepository
	Users     UserRepository
}

// NewRepositories wires all PostgreSQL-backed repositories onto the shared
// database handle.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		Cards:     NewCardRepository(db, logger),
		Claims:    NewClaimRepository(db, logger),
		Locations: NewLocationRepository(db, logger),
		Users:     NewUserRepository(db, logger),
	}
}
