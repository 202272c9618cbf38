package service

import (
	"context"

	"github.com/idfinder-gh/idfinder/models"
)

// SearchService answers the two public lookup modes. Results are always
// sanitized; no raw Card ever crosses this interface.
type SearchService interface {
	SearchByID(ctx context.Context, q models.SearchByIDQuery) ([]models.PublicCard, error)
	SearchByPerson(ctx context.Context, q models.SearchByPersonQuery) ([]models.PublicCard, error)
}

// ClaimService runs the claim lifecycle: public opening, staff listing, and
// the terminal staff decisions.
type ClaimService interface {
	OpenClaim(ctx context.Context, req models.ClaimRequest) (models.ClaimReceipt, error)
	ListClaims(ctx context.Context, opts models.ClaimListOptions) (models.ClaimPage, error)
	DecideClaim(ctx context.Context, id string, update models.ClaimUpdate, principal models.Principal) (models.Claim, error)
}

// CardService covers staff card intake and maintenance.
type CardService interface {
	RegisterCard(ctx context.Context, in models.CardCreate) (models.Card, error)
	GetCard(ctx context.Context, id string) (models.Card, error)
	UpdateCard(ctx context.Context, id string, update models.CardUpdate) (models.Card, error)
	ListCards(ctx context.Context, opts models.CardListOptions) (models.CardPage, error)
}

// LocationService manages the holding-location reference data.
type LocationService interface {
	CreateLocation(ctx context.Context, in models.LocationCreate) (models.Location, error)
	ListLocations(ctx context.Context) ([]models.Location, error)
}

// AuthService authenticates staff and resolves request principals.
type AuthService interface {
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	ResolvePrincipal(ctx context.Context, userID string) (models.Principal, error)
}
