package http

import (
	"encoding/json"
	"net/http"

	"github.com/idfinder-gh/idfinder/internal/logger"
	"github.com/idfinder-gh/idfinder/internal/utils"
	"github.com/idfinder-gh/idfinder/models"
)

func (h *Handler) createLocation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var in models.LocationCreate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.LocationService.CreateLocation(ctx, in)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	log.Info().Str("location_id", created.ID).Str("name", created.Name).Msg("location created")

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listLocations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	locations, err := h.services.LocationService.ListLocations(ctx)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, locations, http.StatusOK)
}
