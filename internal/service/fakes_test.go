package service

import (
	"context"
	"time"

	"github.com/idfinder-gh/idfinder/models"
)

// Func-field fakes for the repository interfaces. Tests set only the calls
// they expect; an unset field panics and flags the unexpected call.

type fakeCardRepository struct {
	createCardFn     func(ctx context.Context, card models.Card) (models.Card, error)
	getCardByIDFn    func(ctx context.Context, id string) (models.Card, error)
	updateCardFn     func(ctx context.Context, id string, update models.CardUpdate) (models.Card, error)
	listCardsFn      func(ctx context.Context, opts models.CardListOptions) ([]models.Card, int, error)
	searchByIDFn     func(ctx context.Context, q models.SearchByIDQuery) ([]models.Card, error)
	searchByPersonFn func(ctx context.Context, q models.SearchByPersonQuery, from, to time.Time) ([]models.Card, error)
}

func (f *fakeCardRepository) CreateCard(ctx context.Context, card models.Card) (models.Card, error) {
	return f.createCardFn(ctx, card)
}

func (f *fakeCardRepository) GetCardByID(ctx context.Context, id string) (models.Card, error) {
	return f.getCardByIDFn(ctx, id)
}

func (f *fakeCardRepository) UpdateCard(ctx context.Context, id string, update models.CardUpdate) (models.Card, error) {
	return f.updateCardFn(ctx, id, update)
}

func (f *fakeCardRepository) ListCards(ctx context.Context, opts models.CardListOptions) ([]models.Card, int, error) {
	return f.listCardsFn(ctx, opts)
}

func (f *fakeCardRepository) SearchByID(ctx context.Context, q models.SearchByIDQuery) ([]models.Card, error) {
	return f.searchByIDFn(ctx, q)
}

func (f *fakeCardRepository) SearchByPerson(ctx context.Context, q models.SearchByPersonQuery, from, to time.Time) ([]models.Card, error) {
	return f.searchByPersonFn(ctx, q, from, to)
}

type fakeClaimRepository struct {
	createClaimFn  func(ctx context.Context, claim models.Claim) (models.Claim, error)
	getClaimByIDFn func(ctx context.Context, id string) (models.Claim, error)
	listClaimsFn   func(ctx context.Context, opts models.ClaimListOptions) ([]models.Claim, int, error)
	updateClaimFn  func(ctx context.Context, id string, update models.ClaimUpdate) (models.Claim, error)
	collectClaimFn func(ctx context.Context, id, handledByID string, notes *string, collectedAt time.Time) (models.Claim, error)
}

func (f *fakeClaimRepository) CreateClaim(ctx context.Context, claim models.Claim) (models.Claim, error) {
	return f.createClaimFn(ctx, claim)
}

func (f *fakeClaimRepository) GetClaimByID(ctx context.Context, id string) (models.Claim, error) {
	return f.getClaimByIDFn(ctx, id)
}

func (f *fakeClaimRepository) ListClaims(ctx context.Context, opts models.ClaimListOptions) ([]models.Claim, int, error) {
	return f.listClaimsFn(ctx, opts)
}

func (f *fakeClaimRepository) UpdateClaim(ctx context.Context, id string, update models.ClaimUpdate) (models.Claim, error) {
	return f.updateClaimFn(ctx, id, update)
}

func (f *fakeClaimRepository) CollectClaim(ctx context.Context, id, handledByID string, notes *string, collectedAt time.Time) (models.Claim, error) {
	return f.collectClaimFn(ctx, id, handledByID, notes, collectedAt)
}

type fakeLocationRepository struct {
	createLocationFn     func(ctx context.Context, loc models.Location) (models.Location, error)
	listLocationsFn      func(ctx context.Context) ([]models.Location, error)
	findLocationByNameFn func(ctx context.Context, name string) (models.Location, error)
}

func (f *fakeLocationRepository) CreateLocation(ctx context.Context, loc models.Location) (models.Location, error) {
	return f.createLocationFn(ctx, loc)
}

func (f *fakeLocationRepository) ListLocations(ctx context.Context) ([]models.Location, error) {
	return f.listLocationsFn(ctx)
}

func (f *fakeLocationRepository) FindLocationByName(ctx context.Context, name string) (models.Location, error) {
	return f.findLocationByNameFn(ctx, name)
}

type fakeUserRepository struct {
	createUserFn      func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmailFn func(ctx context.Context, email string) (models.User, error)
	getUserByIDFn     func(ctx context.Context, id string) (models.User, error)
	recordLastLoginFn func(ctx context.Context, id string, at time.Time) error
}

func (f *fakeUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return f.createUserFn(ctx, user)
}

func (f *fakeUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return f.findUserByEmailFn(ctx, email)
}

func (f *fakeUserRepository) GetUserByID(ctx context.Context, id string) (models.User, error) {
	return f.getUserByIDFn(ctx, id)
}

func (f *fakeUserRepository) RecordLastLogin(ctx context.Context, id string, at time.Time) error {
	return f.recordLastLoginFn(ctx, id, at)
}
