package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"

	"github.com/idfinder-gh/idfinder/internal/logger"
	"github.com/idfinder-gh/idfinder/models"
)

// cardRepository is the PostgreSQL-backed implementation of [CardRepository].
// It executes all card intake, lookup, search and update operations against
// the "cards" table, joining "locations" on every read so callers always
// receive the holding location alongside the card.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type cardRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCardRepository constructs a [CardRepository] backed by the provided
// database connection and logger.
func NewCardRepository(db *DB, logger *logger.Logger) CardRepository {
	logger.Debug().Msg("creating card repository")
	return &cardRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCard persists a new card record and returns the fully populated
// [models.Card] with server-assigned fields.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrCardIDExists].
//   - PostgreSQL foreign_key_violation (23503) → [ErrLocationNotFound]
//     (the referenced holding location does not exist).
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *cardRepository) CreateCard(ctx context.Context, card models.Card) (models.Card, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createCard,
		card.ID, card.CardType, card.FullID, card.MaskedPublicID,
		card.FirstName, card.LastName, card.DateOfBirth, card.Gender,
		card.ImageURL, card.HoldingLocationID, card.Status, card.CreatedAt,
	)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*cardRepository.CreateCard").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Card{}, ErrCardIDExists
		case pgerrcode.ForeignKeyViolation:
			return models.Card{}, ErrLocationNotFound
		default:
			log.Debug().Bool("retryable", r.db.Retryable(err)).Msg("classified DB error")
			return models.Card{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := scanCard(row, &card); err != nil {
		log.Err(err).Str("func", "*cardRepository.CreateCard").Msg("error: scanning error")
		return models.Card{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return card, nil
}

// GetCardByID retrieves a single card with its holding location joined.
// Returns [ErrCardNotFound] when no row matches.
func (r *cardRepository) GetCardByID(ctx context.Context, id string) (models.Card, error) {
	log := logger.FromContext(ctx)

	var card models.Card
	row := r.db.QueryRowContext(ctx, getCardByID, id)

	if err := scanCardWithLocation(row, &card); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Card{}, ErrCardNotFound
		}
		log.Err(err).
			Str("func", "*cardRepository.GetCardByID").
			Str("card_id", id).
			Msg("error: scanning error")
		return models.Card{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return card, nil
}

// UpdateCard applies the non-nil fields of update to the card identified by
// id and returns the updated record with its location joined.
//
// Setting Status to CLAIMED stamps claimed_at with the current time; setting
// it back to AVAILABLE clears the stamp. Returns [ErrCardNotFound] when the
// card does not exist.
func (r *cardRepository) UpdateCard(ctx context.Context, id string, update models.CardUpdate) (models.Card, error) {
	log := logger.FromContext(ctx)

	if update.Empty() {
		return r.GetCardByID(ctx, id)
	}

	query, args, err := buildCardUpdateQuery(id, update, time.Now())
	if err != nil {
		log.Err(err).
			Str("func", "*cardRepository.UpdateCard").
			Str("card_id", id).
			Msg("failed to create query")
		return models.Card{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updatedID string
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Card{}, ErrCardNotFound
		}

		log.Err(err).
			Str("func", "*cardRepository.UpdateCard").
			Str("card_id", id).
			Msg("failed to execute card update")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Card{}, ErrLocationNotFound
		default:
			return models.Card{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return r.GetCardByID(ctx, id)
}

// ListCards returns one page of cards matching opts plus the total number of
// matching rows before pagination.
func (r *cardRepository) ListCards(ctx context.Context, opts models.CardListOptions) ([]models.Card, int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCardListQuery(opts)
	if err != nil {
		log.Err(err).
			Str("func", "*cardRepository.ListCards").
			Msg("failed to create query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	cards, err := r.queryCards(ctx, "*cardRepository.ListCards", query, args)
	if err != nil {
		return nil, 0, err
	}

	countQuery, countArgs, err := buildCardCountQuery(opts)
	if err != nil {
		log.Err(err).
			Str("func", "*cardRepository.ListCards").
			Msg("failed to create count query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).
			Str("func", "*cardRepository.ListCards").
			Msg("failed to count cards")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return cards, total, nil
}

// SearchByID runs the public identifier lookup. Only AVAILABLE cards of the
// requested type are matched, by exact raw identifier or masked fragment.
func (r *cardRepository) SearchByID(ctx context.Context, q models.SearchByIDQuery) ([]models.Card, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSearchByIDQuery(q)
	if err != nil {
		log.Err(err).
			Str("func", "*cardRepository.SearchByID").
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryCards(ctx, "*cardRepository.SearchByID", query, args)
}

// SearchByPerson runs the public name and birth-date lookup over the
// inclusive [from, to] range.
func (r *cardRepository) SearchByPerson(ctx context.Context, q models.SearchByPersonQuery, from, to time.Time) ([]models.Card, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSearchByPersonQuery(q, from, to)
	if err != nil {
		log.Err(err).
			Str("func", "*cardRepository.SearchByPerson").
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryCards(ctx, "*cardRepository.SearchByPerson", query, args)
}

// queryCards executes a card+location select and scans the full result set.
func (r *cardRepository) queryCards(ctx context.Context, caller string, query string, args []any) ([]models.Card, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", caller).
			Msg("failed to execute card query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	cards := make([]models.Card, 0, 16)

	for rows.Next() {
		var card models.Card
		if scanErr := scanCardWithLocation(rows, &card); scanErr != nil {
			log.Err(scanErr).
				Str("func", caller).
				Msg("failed to scan card row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		cards = append(cards, card)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", caller).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return cards, nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for the shared scan helpers.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanCard scans a bare card row produced by a RETURNING clause.
func scanCard(row rowScanner, card *models.Card) error {
	return row.Scan(
		&card.ID, &card.CardType, &card.FullID, &card.MaskedPublicID,
		&card.FirstName, &card.LastName, &card.DateOfBirth, &card.Gender,
		&card.ImageURL, &card.HoldingLocationID, &card.Status,
		&card.ClaimedAt, &card.CreatedAt,
	)
}

// scanCardWithLocation scans a card row joined with its holding location.
func scanCardWithLocation(row rowScanner, card *models.Card) error {
	var loc models.Location
	if err := row.Scan(
		&card.ID, &card.CardType, &card.FullID, &card.MaskedPublicID,
		&card.FirstName, &card.LastName, &card.DateOfBirth, &card.Gender,
		&card.ImageURL, &card.HoldingLocationID, &card.Status,
		&card.ClaimedAt, &card.CreatedAt,
		&loc.ID, &loc.Name, &loc.Address, &loc.Region, &loc.Phone,
		&loc.Hours, &loc.CreatedAt,
	); err != nil {
		return err
	}
	card.HoldingLocation = &loc
	return nil
}
