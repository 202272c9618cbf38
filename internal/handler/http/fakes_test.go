package http

import (
	"context"
	"testing"

	"github.com/idfinder-gh/idfinder/internal/config"
	"github.com/idfinder-gh/idfinder/internal/logger"
	"github.com/idfinder-gh/idfinder/internal/service"
	"github.com/idfinder-gh/idfinder/models"
)

// Func-field fakes for the service interfaces. Tests set only the calls
// they expect; an unset field panics and flags the unexpected call.

type fakeAuthService struct {
	loginFn            func(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)
	parseTokenFn       func(ctx context.Context, tokenString string) (models.Token, error)
	resolvePrincipalFn func(ctx context.Context, userID string) (models.Principal, error)
}

func (f *fakeAuthService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	return f.loginFn(ctx, req)
}

func (f *fakeAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return f.parseTokenFn(ctx, tokenString)
}

func (f *fakeAuthService) ResolvePrincipal(ctx context.Context, userID string) (models.Principal, error) {
	return f.resolvePrincipalFn(ctx, userID)
}

type fakeSearchService struct {
	searchByIDFn     func(ctx context.Context, q models.SearchByIDQuery) ([]models.PublicCard, error)
	searchByPersonFn func(ctx context.Context, q models.SearchByPersonQuery) ([]models.PublicCard, error)
}

func (f *fakeSearchService) SearchByID(ctx context.Context, q models.SearchByIDQuery) ([]models.PublicCard, error) {
	return f.searchByIDFn(ctx, q)
}

func (f *fakeSearchService) SearchByPerson(ctx context.Context, q models.SearchByPersonQuery) ([]models.PublicCard, error) {
	return f.searchByPersonFn(ctx, q)
}

type fakeClaimService struct {
	openClaimFn   func(ctx context.Context, req models.ClaimRequest) (models.ClaimReceipt, error)
	listClaimsFn  func(ctx context.Context, opts models.ClaimListOptions) (models.ClaimPage, error)
	decideClaimFn func(ctx context.Context, id string, update models.ClaimUpdate, principal models.Principal) (models.Claim, error)
}

func (f *fakeClaimService) OpenClaim(ctx context.Context, req models.ClaimRequest) (models.ClaimReceipt, error) {
	return f.openClaimFn(ctx, req)
}

func (f *fakeClaimService) ListClaims(ctx context.Context, opts models.ClaimListOptions) (models.ClaimPage, error) {
	return f.listClaimsFn(ctx, opts)
}

func (f *fakeClaimService) DecideClaim(ctx context.Context, id string, update models.ClaimUpdate, principal models.Principal) (models.Claim, error) {
	return f.decideClaimFn(ctx, id, update, principal)
}

type fakeCardService struct {
	registerCardFn func(ctx context.Context, in models.CardCreate) (models.Card, error)
	getCardFn      func(ctx context.Context, id string) (models.Card, error)
	updateCardFn   func(ctx context.Context, id string, update models.CardUpdate) (models.Card, error)
	listCardsFn    func(ctx context.Context, opts models.CardListOptions) (models.CardPage, error)
}

func (f *fakeCardService) RegisterCard(ctx context.Context, in models.CardCreate) (models.Card, error) {
	return f.registerCardFn(ctx, in)
}

func (f *fakeCardService) GetCard(ctx context.Context, id string) (models.Card, error) {
	return f.getCardFn(ctx, id)
}

func (f *fakeCardService) UpdateCard(ctx context.Context, id string, update models.CardUpdate) (models.Card, error) {
	return f.updateCardFn(ctx, id, update)
}

func (f *fakeCardService) ListCards(ctx context.Context, opts models.CardListOptions) (models.CardPage, error) {
	return f.listCardsFn(ctx, opts)
}

type fakeLocationService struct {
	createLocationFn func(ctx context.Context, in models.LocationCreate) (models.Location, error)
	listLocationsFn  func(ctx context.Context) ([]models.Location, error)
}

func (f *fakeLocationService) CreateLocation(ctx context.Context, in models.LocationCreate) (models.Location, error) {
	return f.createLocationFn(ctx, in)
}

func (f *fakeLocationService) ListLocations(ctx context.Context) ([]models.Location, error) {
	return f.listLocationsFn(ctx)
}

// staffAuth returns a fakeAuthService that accepts the token "valid-token"
// and resolves it to a principal with the given role.
func staffAuth(role models.Role) *fakeAuthService {
	return &fakeAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString != "valid-token" {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{UserID: "staff-1"}, nil
		},
		resolvePrincipalFn: func(_ context.Context, userID string) (models.Principal, error) {
			return models.Principal{UserID: userID, Role: role}, nil
		},
	}
}

func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()
	return NewHandler(services, config.Server{}, logger.Nop())
}
