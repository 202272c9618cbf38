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

// claimRepository is the PostgreSQL-backed implementation of [ClaimRepository].
// It executes all claim lifecycle operations against the "claims" table.
// Staff reads join "cards", "locations" and "users" so one query yields the
// full picture of what is being claimed and who handled it.
type claimRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewClaimRepository constructs a [ClaimRepository] backed by the provided
// database connection and logger.
func NewClaimRepository(db *DB, logger *logger.Logger) ClaimRepository {
	logger.Debug().Msg("creating claim repository")
	return &claimRepository{
		db:     db,
		logger: logger,
	}
}

// CreateClaim persists a new claim record and returns the fully populated
// [models.Claim].
//
// Error handling:
//   - PostgreSQL foreign_key_violation (23503) → [ErrCardNotFound]
//     (the referenced card does not exist).
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *claimRepository) CreateClaim(ctx context.Context, claim models.Claim) (models.Claim, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createClaim,
		claim.ID, claim.CardID, claim.ContactEmail, claim.ContactPhone,
		claim.ReferenceCode, claim.OTPCode, claim.OTPExpiresAt,
		claim.Status, claim.Notes, claim.CreatedAt,
	)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*claimRepository.CreateClaim").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Claim{}, ErrCardNotFound
		default:
			return models.Claim{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	var handledBy sql.NullString
	if err := row.Scan(
		&claim.ID, &claim.CardID, &claim.ContactEmail, &claim.ContactPhone,
		&claim.ReferenceCode, &claim.OTPCode, &claim.OTPExpiresAt,
		&claim.Status, &claim.Notes, &handledBy, &claim.CreatedAt,
	); err != nil {
		log.Err(err).Str("func", "*claimRepository.CreateClaim").Msg("error: scanning error")
		return models.Claim{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	claim.HandledByID = handledBy.String

	return claim, nil
}

// GetClaimByID retrieves a single claim with the claimed card, its holding
// location and the handling staff member (when set) joined in.
// Returns [ErrClaimNotFound] when no row matches.
func (r *claimRepository) GetClaimByID(ctx context.Context, id string) (models.Claim, error) {
	log := logger.FromContext(ctx)

	var claim models.Claim
	row := r.db.QueryRowContext(ctx, getClaimByID, id)

	if err := scanClaimJoined(row, &claim); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Claim{}, ErrClaimNotFound
		}
		log.Err(err).
			Str("func", "*claimRepository.GetClaimByID").
			Str("claim_id", id).
			Msg("error: scanning error")
		return models.Claim{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return claim, nil
}

// ListClaims returns one page of claims matching opts, each joined with its
// card, location and handling staff member, plus the total number of matching
// rows before pagination.
func (r *claimRepository) ListClaims(ctx context.Context, opts models.ClaimListOptions) ([]models.Claim, int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildClaimListQuery(opts)
	if err != nil {
		log.Err(err).
			Str("func", "*claimRepository.ListClaims").
			Msg("failed to create query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*claimRepository.ListClaims").
			Msg("failed to execute claim list query")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	claims := make([]models.Claim, 0, 16)

	for rows.Next() {
		var claim models.Claim
		if scanErr := scanClaimJoined(rows, &claim); scanErr != nil {
			log.Err(scanErr).
				Str("func", "*claimRepository.ListClaims").
				Msg("failed to scan claim row")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		claims = append(claims, claim)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*claimRepository.ListClaims").
			Msg("error occurred during rows iteration")
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	countQuery, countArgs, err := buildClaimCountQuery(opts)
	if err != nil {
		log.Err(err).
			Str("func", "*claimRepository.ListClaims").
			Msg("failed to create count query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).
			Str("func", "*claimRepository.ListClaims").
			Msg("failed to count claims")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return claims, total, nil
}

// UpdateClaim applies a status change (and optional notes) to the claim
// identified by id and returns the updated record fully joined.
// Returns [ErrClaimNotFound] when the claim does not exist.
//
// This method does not touch the card; collection must go through
// [claimRepository.CollectClaim] so claim and card change together.
func (r *claimRepository) UpdateClaim(ctx context.Context, id string, update models.ClaimUpdate) (models.Claim, error) {
	log := logger.FromContext(ctx)

	var updatedID string
	err := r.db.QueryRowContext(ctx, updateClaimStatus, update.Status, update.Notes, id).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Claim{}, ErrClaimNotFound
		}
		log.Err(err).
			Str("func", "*claimRepository.UpdateClaim").
			Str("claim_id", id).
			Msg("failed to execute claim update")
		return models.Claim{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return r.GetClaimByID(ctx, id)
}

// CollectClaim finalizes a claim and its card atomically: the claim becomes
// COLLECTED with the handling staff member recorded, and the card becomes
// CLAIMED with collectedAt stamped.
//
// Both rows are locked with SELECT ... FOR UPDATE before either is
// rewritten. If the claim is already in a terminal state when the lock is
// acquired, a concurrent decision won the race and [ErrClaimDecided] is
// returned. If the card is no longer AVAILABLE, a concurrent collection won
// and [ErrCardNotAvailable] is returned. Either way nothing is changed.
func (r *claimRepository) CollectClaim(ctx context.Context, id string, handledByID string, notes *string, collectedAt time.Time) (models.Claim, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "*claimRepository.CollectClaim").
			Str("claim_id", id).
			Msg("failed to begin transaction")
		return models.Claim{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var (
		claimID     string
		cardID      string
		claimStatus models.ClaimStatus
	)
	if err := tx.QueryRowContext(ctx, selectClaimForUpdate, id).Scan(&claimID, &cardID, &claimStatus); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Claim{}, ErrClaimNotFound
		}
		log.Err(err).
			Str("func", "*claimRepository.CollectClaim").
			Str("claim_id", id).
			Msg("failed to lock claim row")
		return models.Claim{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if claimStatus.Terminal() {
		log.Warn().
			Str("func", "*claimRepository.CollectClaim").
			Str("claim_id", id).
			Str("claim_status", string(claimStatus)).
			Msg("claim was decided by a concurrent transaction")
		return models.Claim{}, ErrClaimDecided
	}

	var cardStatus models.CardStatus
	if err := tx.QueryRowContext(ctx, selectCardStatusForUpdate, cardID).Scan(&cardStatus); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Claim{}, ErrCardNotFound
		}
		log.Err(err).
			Str("func", "*claimRepository.CollectClaim").
			Str("claim_id", id).
			Str("card_id", cardID).
			Msg("failed to lock card row")
		return models.Claim{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if cardStatus != models.CardStatusAvailable {
		log.Warn().
			Str("func", "*claimRepository.CollectClaim").
			Str("claim_id", id).
			Str("card_id", cardID).
			Str("card_status", string(cardStatus)).
			Msg("card is no longer available for collection")
		return models.Claim{}, ErrCardNotAvailable
	}

	if _, err := tx.ExecContext(ctx, collectClaimUpdate, models.ClaimStatusCollected, notes, handledByID, id); err != nil {
		log.Err(err).
			Str("func", "*claimRepository.CollectClaim").
			Str("claim_id", id).
			Msg("failed to mark claim collected")
		return models.Claim{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if _, err := tx.ExecContext(ctx, collectCardUpdate, models.CardStatusClaimed, collectedAt, cardID); err != nil {
		log.Err(err).
			Str("func", "*claimRepository.CollectClaim").
			Str("claim_id", id).
			Str("card_id", cardID).
			Msg("failed to mark card claimed")
		return models.Claim{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "*claimRepository.CollectClaim").
			Str("claim_id", id).
			Msg("failed to commit transaction")
		return models.Claim{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return r.GetClaimByID(ctx, id)
}

// scanClaimJoined scans a claim row joined with card, location and handler.
func scanClaimJoined(row rowScanner, claim *models.Claim) error {
	var (
		card      models.Card
		loc       models.Location
		handledBy sql.NullString

		handlerID    sql.NullString
		handlerName  sql.NullString
		handlerEmail sql.NullString
		handlerRole  sql.NullString
	)

	if err := row.Scan(
		&claim.ID, &claim.CardID, &claim.ContactEmail, &claim.ContactPhone,
		&claim.ReferenceCode, &claim.OTPCode, &claim.OTPExpiresAt,
		&claim.Status, &claim.Notes, &handledBy, &claim.CreatedAt,
		&card.ID, &card.CardType, &card.FullID, &card.MaskedPublicID,
		&card.FirstName, &card.LastName, &card.DateOfBirth, &card.Gender,
		&card.ImageURL, &card.HoldingLocationID, &card.Status,
		&card.ClaimedAt, &card.CreatedAt,
		&loc.ID, &loc.Name, &loc.Address, &loc.Region, &loc.Phone,
		&loc.Hours, &loc.CreatedAt,
		&handlerID, &handlerName, &handlerEmail, &handlerRole,
	); err != nil {
		return err
	}

	claim.HandledByID = handledBy.String
	card.HoldingLocation = &loc
	claim.Card = &card

	if handlerID.Valid {
		claim.HandledBy = &models.User{
			ID:    handlerID.String,
			Name:  handlerName.String,
			Email: handlerEmail.String,
			Role:  models.Role(handlerRole.String),
		}
	}

	return nil
}
