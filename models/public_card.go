package models

// PublicCard is the disclosure-controlled projection of a Card returned to
// unauthenticated searchers.
//
// It never carries the full identifier, the full date of birth, the holder's
// gender, or any claim history. The projection is produced exclusively by the
// sanitizer (see service.SanitizeCard); nothing else constructs one from a
// Card.
type PublicCard struct {
	// ID is the card record identifier, safe to reference in a claim.
	ID string `json:"id"`

	// CardType identifies the kind of document.
	CardType CardType `json:"cardType"`

	// MaskedPublicID is the redacted identifier: all but the last four
	// characters replaced with asterisks.
	MaskedPublicID string `json:"maskedPublicId"`

	// FirstNameInitial is the first character of the holder's first name,
	// or empty when the first name is absent.
	FirstNameInitial string `json:"firstNameInitial"`

	// LastName is exposed in full; last names are not treated as sensitive.
	LastName string `json:"lastName"`

	// DOBYear is the calendar year of birth. Month and day are never exposed.
	DOBYear int `json:"dobYear"`

	// ImageURL passes through when present, null otherwise.
	ImageURL *string `json:"imageUrl"`

	// HoldingLocation tells the searcher where the card can be collected.
	HoldingLocation *Location `json:"holdingLocation"`

	// Status is the card's lifecycle state. Public search only ever yields
	// AVAILABLE cards, but the field is kept so a claimant can re-check a
	// card they already referenced.
	Status CardStatus `json:"status"`
}
