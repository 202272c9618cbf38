package models

// Pagination defaults for all staff list endpoints. Pages are 1-indexed.
const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// Caps on public search result sets.
const (
	SearchByIDLimit     = 10
	SearchByPersonLimit = 25
)

// PageOptions is the common page/limit pair for paginated listings.
type PageOptions struct {
	Page  int
	Limit int
}

// Normalize clamps the options to sane bounds, applying defaults for
// zero/negative values.
func (p PageOptions) Normalize() PageOptions {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Offset returns the row offset corresponding to the 1-indexed page.
func (p PageOptions) Offset() int {
	return (p.Page - 1) * p.Limit
}

// CardListOptions enumerates the recognized filters for the staff card
// listing. Zero values mean "no filter".
type CardListOptions struct {
	Status   CardStatus
	CardType CardType
	Page     PageOptions
}

// ClaimListOptions enumerates the recognized filters for the staff claim
// listing. Zero values mean "no filter".
type ClaimListOptions struct {
	Status ClaimStatus
	Page   PageOptions
}

// SearchByIDQuery is the public by-id search input: an exact or partial
// identifier plus the document type it belongs to.
type SearchByIDQuery struct {
	IDNumber string
	CardType CardType
}

// SearchByPersonQuery is the public by-person search input. DOBMonth is
// 1-12, or 0 when the searcher only knows the year.
type SearchByPersonQuery struct {
	FirstName string
	LastName  string
	DOBYear   int
	DOBMonth  int
}
