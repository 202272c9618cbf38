package http

import (
	"net/http"
	"strconv"

	"github.com/idfinder-gh/idfinder/internal/utils"
	"github.com/idfinder-gh/idfinder/models"
)

// searchResponse wraps public search hits so the result list always
// serializes as an object with a "results" array.
type searchResponse struct {
	Results []models.PublicCard `json:"results"`
}

func (h *Handler) searchByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q := models.SearchByIDQuery{
		IDNumber: r.URL.Query().Get("idNumber"),
		CardType: models.CardType(r.URL.Query().Get("cardType")),
	}

	results, err := h.services.SearchService.SearchByID(ctx, q)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, searchResponse{Results: results}, http.StatusOK)
}

func (h *Handler) searchByPerson(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	// Malformed numbers fall through as zero and fail validation in the
	// service with a field-keyed message.
	dobYear, _ := strconv.Atoi(query.Get("dobYear"))
	dobMonth, _ := strconv.Atoi(query.Get("dobMonth"))

	q := models.SearchByPersonQuery{
		FirstName: query.Get("firstName"),
		LastName:  query.Get("lastName"),
		DOBYear:   dobYear,
		DOBMonth:  dobMonth,
	}

	results, err := h.services.SearchService.SearchByPerson(ctx, q)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, searchResponse{Results: results}, http.StatusOK)
}
