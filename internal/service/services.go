package service

import (
	"github.com/idfinder-gh/idfinder/internal/config"
	"github.com/idfinder-gh/idfinder/internal/logger"
	"github.com/idfinder-gh/idfinder/internal/notify"
	"github.com/idfinder-gh/idfinder/internal/store"
)

// Services bundles every application service behind its interface.
type Services struct {
	AuthService     AuthService
	SearchService   SearchService
	CardService     CardService
	ClaimService    ClaimService
	LocationService LocationService
}

// NewServices wires the services to the given repositories, configuration
// and delivery collaborator.
func NewServices(repos *store.Repositories, cfg config.StructuredConfig, notifier notify.Notifier, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(repos.Users, cfg.Auth, logger),
		SearchService:   NewSearchService(repos.Cards, logger),
		CardService:     NewCardService(repos.Cards, logger),
		ClaimService:    NewClaimService(repos.Claims, repos.Cards, notifier, logger),
		LocationService: NewLocationService(repos.Locations, logger),
	}
}
