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

func (h *Handler) openClaim(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	receipt, err := h.services.ClaimService.OpenClaim(ctx, req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	log.Info().Str("claim_id", receipt.ID).Str("card_id", req.CardID).Msg("claim opened")

	_, _ = utils.WriteJSON(w, receipt, http.StatusCreated)
}

func (h *Handler) listClaims(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	page, _ := strconv.Atoi(query.Get("page"))
	limit, _ := strconv.Atoi(query.Get("limit"))

	opts := models.ClaimListOptions{
		Status: models.ClaimStatus(query.Get("status")),
		Page:   models.PageOptions{Page: page, Limit: limit},
	}

	claimPage, err := h.services.ClaimService.ListClaims(ctx, opts)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, claimPage, http.StatusOK)
}

func (h *Handler) decideClaim(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		log.Error().Msg("decision endpoint reached without an authenticated principal")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var update models.ClaimUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	claimID := chi.URLParam(r, "id")
	decided, err := h.services.ClaimService.DecideClaim(ctx, claimID, update, principal)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	log.Info().
		Str("claim_id", decided.ID).
		Str("status", string(decided.Status)).
		Str("handled_by", principal.UserID).
		Msg("claim decided")

	_, _ = utils.WriteJSON(w, decided, http.StatusOK)
}
