package service

import (
	"context"
	"fmt"
	"time"

	"github.com/idfinder-gh/idfinder/internal/logger"
	"github.com/idfinder-gh/idfinder/internal/store"
	"github.com/idfinder-gh/idfinder/internal/utils"
	"github.com/idfinder-gh/idfinder/internal/validators"
	"github.com/idfinder-gh/idfinder/models"
)

// cardService is the concrete implementation of CardService. It owns card
// intake rules: identifier masking happens exactly once, at registration.
type cardService struct {
	cardRepository store.CardRepository
	ids            *utils.UUIDGenerator
	logger         *logger.Logger
}

// NewCardService constructs a CardService backed by the given card
// repository.
func NewCardService(cardRepository store.CardRepository, logger *logger.Logger) CardService {
	return &cardService{
		cardRepository: cardRepository,
		ids:            utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// RegisterCard validates the intake payload, derives the masked public
// identifier from the raw one, and persists the card as AVAILABLE.
//
// A duplicate raw identifier surfaces as store.ErrCardIDExists; an unknown
// holding location as store.ErrLocationNotFound.
func (s *cardService) RegisterCard(ctx context.Context, in models.CardCreate) (models.Card, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateCardCreate(in); err != nil {
		return models.Card{}, err
	}

	card := models.Card{
		ID:                s.ids.Generate(),
		CardType:          in.CardType,
		FullID:            in.FullID,
		MaskedPublicID:    MaskIdentifier(in.FullID),
		FirstName:         in.FirstName,
		LastName:          in.LastName,
		DateOfBirth:       in.DateOfBirth,
		Gender:            in.Gender,
		ImageURL:          in.ImageURL,
		HoldingLocationID: in.HoldingLocationID,
		Status:            models.CardStatusAvailable,
		CreatedAt:         time.Now(),
	}

	created, err := s.cardRepository.CreateCard(ctx, card)
	if err != nil {
		log.Err(err).Str("card_type", string(in.CardType)).Msg("card registration failed")
		return models.Card{}, fmt.Errorf("card registration failed: %w", err)
	}

	return created, nil
}

// GetCard returns a single card with its holding location joined.
func (s *cardService) GetCard(ctx context.Context, id string) (models.Card, error) {
	card, err := s.cardRepository.GetCardByID(ctx, id)
	if err != nil {
		return models.Card{}, fmt.Errorf("card lookup failed: %w", err)
	}

	return card, nil
}

// UpdateCard applies a partial staff edit. The raw identifier is immutable
// after intake, so the masked form never needs re-deriving here.
func (s *cardService) UpdateCard(ctx context.Context, id string, update models.CardUpdate) (models.Card, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateCardUpdate(update); err != nil {
		return models.Card{}, err
	}

	updated, err := s.cardRepository.UpdateCard(ctx, id, update)
	if err != nil {
		log.Err(err).Str("card_id", id).Msg("card update failed")
		return models.Card{}, fmt.Errorf("card update failed: %w", err)
	}

	return updated, nil
}

// ListCards returns one page of the staff card listing.
func (s *cardService) ListCards(ctx context.Context, opts models.CardListOptions) (models.CardPage, error) {
	log := logger.FromContext(ctx)

	opts.Page = opts.Page.Normalize()

	cards, total, err := s.cardRepository.ListCards(ctx, opts)
	if err != nil {
		log.Err(err).Msg("card listing failed")
		return models.CardPage{}, fmt.Errorf("card listing failed: %w", err)
	}

	return models.CardPage{
		Cards: cards,
		Total: total,
		Page:  opts.Page.Page,
		Limit: opts.Page.Limit,
	}, nil
}
