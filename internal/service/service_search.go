package service

import (
	"context"
	"fmt"
	"time"

	"github.com/idfinder-gh/idfinder/internal/logger"
	"github.com/idfinder-gh/idfinder/internal/store"
	"github.com/idfinder-gh/idfinder/internal/validators"
	"github.com/idfinder-gh/idfinder/models"
)

// searchService is the concrete implementation of SearchService. It
// validates public search input, delegates matching to the card repository,
// and sanitizes every hit before it leaves the service.
type searchService struct {
	cardRepository store.CardRepository
	logger         *logger.Logger
}

// NewSearchService constructs a SearchService backed by the given card
// repository.
func NewSearchService(cardRepository store.CardRepository, logger *logger.Logger) SearchService {
	return &searchService{
		cardRepository: cardRepository,
		logger:         logger,
	}
}

// SearchByID looks up available cards of the requested type whose raw
// identifier matches exactly or whose masked identifier contains the given
// fragment. Results are sanitized and capped by the repository.
func (s *searchService) SearchByID(ctx context.Context, q models.SearchByIDQuery) ([]models.PublicCard, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateSearchByID(q); err != nil {
		return nil, err
	}

	cards, err := s.cardRepository.SearchByID(ctx, q)
	if err != nil {
		log.Err(err).Str("card_type", string(q.CardType)).Msg("search by id failed")
		return nil, fmt.Errorf("search by id failed: %w", err)
	}

	return SanitizeCards(cards), nil
}

// SearchByPerson looks up available cards by holder name and birth period.
// The birth period is the whole given year, or the whole given month when
// dobMonth is supplied.
func (s *searchService) SearchByPerson(ctx context.Context, q models.SearchByPersonQuery) ([]models.PublicCard, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateSearchByPerson(q); err != nil {
		return nil, err
	}

	from, to := birthPeriod(q.DOBYear, q.DOBMonth)

	cards, err := s.cardRepository.SearchByPerson(ctx, q, from, to)
	if err != nil {
		log.Err(err).Str("last_name", q.LastName).Msg("search by person failed")
		return nil, fmt.Errorf("search by person failed: %w", err)
	}

	return SanitizeCards(cards), nil
}

// birthPeriod returns the inclusive UTC bounds of the search window: the
// whole calendar year, or the whole calendar month when month is 1-12. The
// upper bound is the first instant of the following period minus one
// millisecond, so every month ends on its true last day.
func birthPeriod(year, month int) (from, to time.Time) {
	if month >= 1 && month <= 12 {
		from = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		to = from.AddDate(0, 1, 0).Add(-time.Millisecond)
		return from, to
	}

	from = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to = from.AddDate(1, 0, 0).Add(-time.Millisecond)
	return from, to
}
