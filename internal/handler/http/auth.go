package http

import (
	"encoding/json"
	"net/http"

	"github.com/idfinder-gh/idfinder/internal/logger"
	"github.com/idfinder-gh/idfinder/internal/utils"
	"github.com/idfinder-gh/idfinder/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	resp, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	log.Debug().Str("user_id", resp.User.ID).Msg("staff member logged in")

	_, _ = utils.WriteJSON(w, resp, http.StatusOK)
}
