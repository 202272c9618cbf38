package service

import (
	"strings"

	"github.com/idfinder-gh/idfinder/models"
)

// maskVisibleSuffix is how many trailing characters of an identifier survive
// redaction.
const maskVisibleSuffix = 4

// MaskIdentifier redacts a raw document identifier for public display.
//
// Identifiers longer than four characters keep their last four characters
// verbatim, with everything before them replaced by asterisks, one per
// character: "GHA-123456789-0" becomes "***********89-0". Identifiers of
// four characters or fewer are fully redacted to "****" so the public form
// never narrows a short identifier down.
func MaskIdentifier(fullID string) string {
	runes := []rune(fullID)
	if len(runes) <= maskVisibleSuffix {
		return strings.Repeat("*", maskVisibleSuffix)
	}

	hidden := len(runes) - maskVisibleSuffix
	return strings.Repeat("*", hidden) + string(runes[hidden:])
}

// SanitizeCard projects a Card into its public, disclosure-controlled form.
//
// The projection is the only path from Card to PublicCard. It exposes the
// masked identifier, the first-name initial, the full last name, the birth
// year, and the holding location; the raw identifier, full birth date and
// gender never leave it. An empty MaskedPublicID is re-derived from FullID
// so a card written before masks were precomputed still sanitizes correctly.
func SanitizeCard(card models.Card) models.PublicCard {
	masked := card.MaskedPublicID
	if masked == "" {
		masked = MaskIdentifier(card.FullID)
	}

	var initial string
	if first := []rune(card.FirstName); len(first) > 0 {
		initial = string(first[0])
	}

	var imageURL *string
	if card.ImageURL != "" {
		u := card.ImageURL
		imageURL = &u
	}

	return models.PublicCard{
		ID:               card.ID,
		CardType:         card.CardType,
		MaskedPublicID:   masked,
		FirstNameInitial: initial,
		LastName:         card.LastName,
		DOBYear:          card.DateOfBirth.Year(),
		ImageURL:         imageURL,
		HoldingLocation:  card.HoldingLocation,
		Status:           card.Status,
	}
}

// SanitizeCards projects every card in the slice. Always returns a non-nil
// slice so empty search results serialize as [] rather than null.
func SanitizeCards(cards []models.Card) []models.PublicCard {
	out := make([]models.PublicCard, 0, len(cards))
	for _, card := range cards {
		out = append(out, SanitizeCard(card))
	}
	return out
}
