package models

import "time"

// CardType enumerates the kinds of identification documents the registry
// accepts. Values are stored verbatim in the database and on the wire.
type CardType string

const (
	CardTypeGhanaCard      CardType = "GHANA_CARD"
	CardTypeDriversLicense CardType = "DRIVERS_LICENSE"
	CardTypeVoterID        CardType = "VOTER_ID"
	CardTypeNHISCard       CardType = "NHIS_CARD"
	CardTypePassport       CardType = "PASSPORT"
)

// Valid reports whether t is one of the known card types.
func (t CardType) Valid() bool {
	switch t {
	case CardTypeGhanaCard, CardTypeDriversLicense, CardTypeVoterID, CardTypeNHISCard, CardTypePassport:
		return true
	}
	return false
}

// CardStatus is the lifecycle state of a recovered card.
//
// A card starts as AVAILABLE when registered by intake staff and becomes
// CLAIMED exactly once, when a claim against it is collected. There is no
// reverse transition.
type CardStatus string

const (
	CardStatusAvailable CardStatus = "AVAILABLE"
	CardStatusClaimed   CardStatus = "CLAIMED"
)

// Valid reports whether s is a known card status.
func (s CardStatus) Valid() bool {
	return s == CardStatusAvailable || s == CardStatusClaimed
}

// Card is a recovered physical identification document held at one of the
// registry's locations until its owner collects it.
//
// FullID is the raw identifier printed on the document and must never leave
// the staff boundary; unauthenticated callers only ever see the PublicCard
// projection.
type Card struct {
	// ID is the opaque unique identifier of the card record.
	ID string `json:"id"`

	// CardType identifies the kind of document.
	CardType CardType `json:"cardType"`

	// FullID is the sensitive raw identifier string. Globally unique.
	FullID string `json:"fullId"`

	// MaskedPublicID is the redacted form of FullID shown to searchers.
	// Precomputed at intake; if empty it is re-derivable from FullID by
	// the redaction rule (see service.MaskIdentifier).
	MaskedPublicID string `json:"maskedPublicId"`

	// FirstName and LastName are the holder's names as printed on the card.
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// DateOfBirth is the holder's full date of birth. Only the year is
	// ever exposed publicly.
	DateOfBirth time.Time `json:"dob"`

	// Gender is optional and never exposed publicly.
	Gender string `json:"gender,omitempty"`

	// ImageURL optionally points at a photograph of the found document.
	ImageURL string `json:"imageUrl,omitempty"`

	// HoldingLocationID references the Location where the card is kept.
	HoldingLocationID string `json:"holdingLocationId"`

	// HoldingLocation is populated on reads that join the locations table.
	HoldingLocation *Location `json:"holdingLocation,omitempty"`

	// Status is the card's lifecycle state.
	Status CardStatus `json:"status"`

	// ClaimedAt is set exactly when Status becomes CLAIMED.
	ClaimedAt *time.Time `json:"claimedAt,omitempty"`

	// CreatedAt is the intake timestamp.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Card model.
func (c Card) TableName() string {
	return "cards"
}

// CardCreate carries the fields staff supply when registering a found card.
type CardCreate struct {
	CardType          CardType  `json:"cardType"`
	FullID            string    `json:"fullId"`
	FirstName         string    `json:"firstName"`
	LastName          string    `json:"lastName"`
	DateOfBirth       time.Time `json:"dob"`
	Gender            string    `json:"gender,omitempty"`
	ImageURL          string    `json:"imageUrl,omitempty"`
	HoldingLocationID string    `json:"holdingLocationId"`
}

// CardUpdate carries a partial staff edit of a card. Nil fields are left
// untouched. Setting Status to CLAIMED also stamps ClaimedAt at the
// persistence layer.
type CardUpdate struct {
	Status            *CardStatus `json:"status,omitempty"`
	FirstName         *string     `json:"firstName,omitempty"`
	LastName          *string     `json:"lastName,omitempty"`
	DateOfBirth       *time.Time  `json:"dob,omitempty"`
	Gender            *string     `json:"gender,omitempty"`
	ImageURL          *string     `json:"imageUrl,omitempty"`
	HoldingLocationID *string     `json:"holdingLocationId,omitempty"`
}

// Empty reports whether the update contains no fields to apply.
func (u CardUpdate) Empty() bool {
	return u.Status == nil && u.FirstName == nil && u.LastName == nil &&
		u.DateOfBirth == nil && u.Gender == nil && u.ImageURL == nil &&
		u.HoldingLocationID == nil
}
