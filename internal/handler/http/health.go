package http

import (
	"net/http"

	"github.com/idfinder-gh/idfinder/internal/utils"
)

type healthResponse struct {
	Status string `json:"status"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, healthResponse{Status: "ok"}, http.StatusOK)
}
