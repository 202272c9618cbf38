package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/idfinder-gh/idfinder/internal/logger"
	"github.com/idfinder-gh/idfinder/internal/utils"
	"github.com/idfinder-gh/idfinder/models"
)

func (h *Handler) createCard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var in models.CardCreate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.CardService.RegisterCard(ctx, in)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	log.Info().Str("card_id", created.ID).Str("card_type", string(created.CardType)).Msg("card registered")

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getCard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	card, err := h.services.CardService.GetCard(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, card, http.StatusOK)
}

func (h *Handler) updateCard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var update models.CardUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	cardID := chi.URLParam(r, "id")
	updated, err := h.services.CardService.UpdateCard(ctx, cardID, update)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	log.Info().Str("card_id", updated.ID).Msg("card updated")

	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) listCards(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	page, _ := strconv.Atoi(query.Get("page"))
	limit, _ := strconv.Atoi(query.Get("limit"))

	opts := models.CardListOptions{
		Status:   models.CardStatus(query.Get("status")),
		CardType: models.CardType(query.Get("cardType")),
		Page:     models.PageOptions{Page: page, Limit: limit},
	}

	cardPage, err := h.services.CardService.ListCards(ctx, opts)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, cardPage, http.StatusOK)
}
