package store

import (
	"context"
	"time"

	"github.com/idfinder-gh/idfinder/models"
)

// CardRepository is the persistence boundary for recovered cards.
//
// Reads that return a full card always join the holding location so callers
// can tell searchers where a card can be collected.
type CardRepository interface {
	// CreateCard persists a new card. Returns [ErrCardIDExists] when the
	// full identifier is already registered and [ErrLocationNotFound] when
	// the holding location reference is dangling.
	CreateCard(ctx context.Context, card models.Card) (models.Card, error)

	// GetCardByID fetches a single card. Returns [ErrCardNotFound] when
	// absent.
	GetCardByID(ctx context.Context, id string) (models.Card, error)

	// UpdateCard applies a partial staff edit and returns the updated card.
	// Setting status to CLAIMED stamps claimed_at; setting it back to
	// AVAILABLE clears claimed_at so the status/claimed_at pairing holds.
	UpdateCard(ctx context.Context, id string, update models.CardUpdate) (models.Card, error)

	// ListCards returns one page of cards matching the options plus the
	// total match count, newest first.
	ListCards(ctx context.Context, opts models.CardListOptions) ([]models.Card, int, error)

	// SearchByID returns AVAILABLE cards of the queried type whose full
	// identifier equals the query exactly or whose masked identifier
	// contains it.
	SearchByID(ctx context.Context, q models.SearchByIDQuery) ([]models.Card, error)

	// SearchByPerson returns AVAILABLE cards whose holder matches the name
	// filters and whose date of birth falls within [from, to].
	SearchByPerson(ctx context.Context, q models.SearchByPersonQuery, from, to time.Time) ([]models.Card, error)
}

// ClaimRepository is the persistence boundary for claims.
type ClaimRepository interface {
	// CreateClaim persists a new pending claim. Returns [ErrCardNotFound]
	// when the referenced card does not exist.
	CreateClaim(ctx context.Context, claim models.Claim) (models.Claim, error)

	// GetClaimByID fetches a single claim joined with its card (including
	// the card's holding location) and handler. Returns [ErrClaimNotFound]
	// when absent.
	GetClaimByID(ctx context.Context, id string) (models.Claim, error)

	// ListClaims returns one page of claims matching the options plus the
	// total match count, newest first, joined like GetClaimByID.
	ListClaims(ctx context.Context, opts models.ClaimListOptions) ([]models.Claim, int, error)

	// UpdateClaim applies a staff decision that does not finalize the card
	// (e.g. REJECTED). The card row is never touched.
	UpdateClaim(ctx context.Context, id string, update models.ClaimUpdate) (models.Claim, error)

	// CollectClaim finalizes a claim and its card as a single transaction:
	// the claim becomes COLLECTED with handledByID recorded, the card
	// becomes CLAIMED with claimedAt set. The card row is locked and its
	// status re-checked inside the transaction; a claim whose card is no
	// longer AVAILABLE fails with [ErrCardNotAvailable] and nothing is
	// mutated.
	CollectClaim(ctx context.Context, id, handledByID string, notes *string, collectedAt time.Time) (models.Claim, error)
}

// LocationRepository is the persistence boundary for holding locations.
type LocationRepository interface {
	// CreateLocation persists a new holding site.
	CreateLocation(ctx context.Context, loc models.Location) (models.Location, error)

	// ListLocations returns all holding sites ordered by name.
	ListLocations(ctx context.Context) ([]models.Location, error)

	// FindLocationByName fetches a location by its exact name. Returns
	// [ErrLocationNotFound] when absent. Used for idempotent seeding.
	FindLocationByName(ctx context.Context, name string) (models.Location, error)
}

// UserRepository is the persistence boundary for staff accounts.
type UserRepository interface {
	// CreateUser persists a new staff account. Returns
	// [ErrEmailAlreadyExists] when the email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail fetches an account by its unique email. Returns
	// [ErrUserNotFound] when absent.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// GetUserByID fetches an account by id. Returns [ErrUserNotFound] when
	// absent.
	GetUserByID(ctx context.Context, id string) (models.User, error)

	// RecordLastLogin stamps the account's most recent successful login.
	RecordLastLogin(ctx context.Context, id string, at time.Time) error
}
