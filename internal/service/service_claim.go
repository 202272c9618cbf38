package service

import (
	"context"
	"fmt"
	"time"

	"github.com/idfinder-gh/idfinder/internal/logger"
	"github.com/idfinder-gh/idfinder/internal/notify"
	"github.com/idfinder-gh/idfinder/internal/store"
	"github.com/idfinder-gh/idfinder/internal/utils"
	"github.com/idfinder-gh/idfinder/internal/validators"
	"github.com/idfinder-gh/idfinder/models"
)

// otpValidity bounds how long a claim's one-time code can be used for a
// contact verification step.
const otpValidity = 7 * 24 * time.Hour

// claimService is the concrete implementation of ClaimService.
//
// Opening a claim is public and only requires the card to be AVAILABLE;
// deciding one is a staff operation. The COLLECTED decision is delegated to
// the repository's transactional collect so the claim and its card always
// change together.
type claimService struct {
	claimRepository store.ClaimRepository
	cardRepository  store.CardRepository
	notifier        notify.Notifier
	ids             *utils.UUIDGenerator
	logger          *logger.Logger
}

// NewClaimService constructs a ClaimService backed by the given
// repositories. notifier delivers claim codes out of band; delivery failure
// is logged and never fails the claim.
func NewClaimService(claimRepository store.ClaimRepository, cardRepository store.CardRepository, notifier notify.Notifier, logger *logger.Logger) ClaimService {
	return &claimService{
		claimRepository: claimRepository,
		cardRepository:  cardRepository,
		notifier:        notifier,
		ids:             utils.NewUUIDGenerator(),
		logger:          logger,
	}
}

// OpenClaim opens a claim against an AVAILABLE card.
//
// A card that does not exist and a card that is no longer available are both
// reported to the public caller the same way, as a not-found condition; the
// public API never confirms that a card was claimed by someone else.
//
// The receipt reports OTPSent=true whenever a code was generated and handed
// to the delivery collaborator; it is not an acknowledgement of delivery.
func (s *claimService) OpenClaim(ctx context.Context, req models.ClaimRequest) (models.ClaimReceipt, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateClaimRequest(req); err != nil {
		return models.ClaimReceipt{}, err
	}

	card, err := s.cardRepository.GetCardByID(ctx, req.CardID)
	if err != nil {
		return models.ClaimReceipt{}, fmt.Errorf("card lookup failed: %w", err)
	}
	if card.Status != models.CardStatusAvailable {
		log.Warn().Str("card_id", card.ID).Msg("claim attempt against unavailable card")
		return models.ClaimReceipt{}, ErrCardUnavailable
	}

	referenceCode, err := utils.NewReferenceCode()
	if err != nil {
		return models.ClaimReceipt{}, fmt.Errorf("reference code generation failed: %w", err)
	}
	otpCode, err := utils.NewOTPCode()
	if err != nil {
		return models.ClaimReceipt{}, fmt.Errorf("one-time code generation failed: %w", err)
	}

	now := time.Now()
	claim := models.Claim{
		ID:            s.ids.Generate(),
		CardID:        card.ID,
		ContactEmail:  req.ContactEmail,
		ContactPhone:  req.ContactPhone,
		ReferenceCode: referenceCode,
		OTPCode:       otpCode,
		OTPExpiresAt:  now.Add(otpValidity),
		Status:        models.ClaimStatusPending,
		CreatedAt:     now,
	}

	created, err := s.claimRepository.CreateClaim(ctx, claim)
	if err != nil {
		log.Err(err).Str("card_id", card.ID).Msg("claim creation failed")
		return models.ClaimReceipt{}, fmt.Errorf("claim creation failed: %w", err)
	}

	if err := s.notifier.SendClaimCodes(ctx, created); err != nil {
		log.Warn().Err(err).Str("claim_id", created.ID).Msg("claim code delivery failed")
	}

	return models.ClaimReceipt{
		ID:            created.ID,
		ReferenceCode: created.ReferenceCode,
		OTPSent:       true,
	}, nil
}

// ListClaims returns one page of the staff claim listing, each claim joined
// with its card and holding location.
func (s *claimService) ListClaims(ctx context.Context, opts models.ClaimListOptions) (models.ClaimPage, error) {
	log := logger.FromContext(ctx)

	opts.Page = opts.Page.Normalize()

	claims, total, err := s.claimRepository.ListClaims(ctx, opts)
	if err != nil {
		log.Err(err).Msg("claim listing failed")
		return models.ClaimPage{}, fmt.Errorf("claim listing failed: %w", err)
	}

	return models.ClaimPage{
		Claims: claims,
		Total:  total,
		Page:   opts.Page.Page,
		Limit:  opts.Page.Limit,
	}, nil
}

// DecideClaim applies a terminal staff decision to a claim.
//
// COLLECTED goes through the repository's transactional collect: the claim
// is finalized with the acting principal recorded and the card flips to
// CLAIMED in the same transaction. A concurrent collect of the same card
// loses with store.ErrCardNotAvailable. REJECTED touches only the claim.
//
// Claims already in a terminal state cannot be re-decided.
//
// The one-time code is not checked here. The VERIFIED status and the stored
// otp fields are the seam for a contact verification step ahead of
// collection; wiring that check in takes a status transition, not a reshape.
func (s *claimService) DecideClaim(ctx context.Context, id string, update models.ClaimUpdate, principal models.Principal) (models.Claim, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateClaimUpdate(update); err != nil {
		return models.Claim{}, err
	}

	claim, err := s.claimRepository.GetClaimByID(ctx, id)
	if err != nil {
		return models.Claim{}, fmt.Errorf("claim lookup failed: %w", err)
	}
	if claim.Status.Terminal() {
		log.Warn().
			Str("claim_id", claim.ID).
			Str("status", string(claim.Status)).
			Msg("decision attempt on already decided claim")
		return models.Claim{}, ErrClaimAlreadyDecided
	}

	if update.Status == models.ClaimStatusCollected {
		decided, err := s.claimRepository.CollectClaim(ctx, id, principal.UserID, update.Notes, time.Now())
		if err != nil {
			log.Err(err).Str("claim_id", id).Msg("claim collection failed")
			return models.Claim{}, fmt.Errorf("claim collection failed: %w", err)
		}
		return decided, nil
	}

	decided, err := s.claimRepository.UpdateClaim(ctx, id, update)
	if err != nil {
		log.Err(err).Str("claim_id", id).Msg("claim update failed")
		return models.Claim{}, fmt.Errorf("claim update failed: %w", err)
	}

	return decided, nil
}
