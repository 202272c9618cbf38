package http

import (
	"errors"
	"net/http"

	"github.com/idfinder-gh/idfinder/internal/logger"
	"github.com/idfinder-gh/idfinder/internal/service"
	"github.com/idfinder-gh/idfinder/internal/store"
	"github.com/idfinder-gh/idfinder/internal/utils"
	"github.com/idfinder-gh/idfinder/internal/validators"
)

// errorResponse is the JSON error envelope every failure is serialized
// into. Fields is populated only for validation failures.
type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

var errorStatusMap = map[error]int{
	service.ErrInvalidCredentials:     http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	// An unavailable card is reported to the public caller as absent; the
	// API never confirms a card was claimed by someone else.
	service.ErrCardUnavailable:    http.StatusNotFound,
	service.ErrClaimAlreadyDecided: http.StatusConflict,

	store.ErrCardNotFound:     http.StatusNotFound,
	store.ErrClaimNotFound:    http.StatusNotFound,
	store.ErrLocationNotFound: http.StatusNotFound,
	store.ErrUserNotFound:     http.StatusNotFound,

	store.ErrCardIDExists:       http.StatusConflict,
	store.ErrCardNotAvailable:   http.StatusConflict,
	store.ErrClaimDecided:       http.StatusConflict,
	store.ErrEmailAlreadyExists: http.StatusConflict,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// respondError maps err onto the error envelope and writes it.
//
// Validation failures become 400 with the per-field breakdown. Mapped
// sentinels keep their message; anything unmapped is logged and collapsed
// to a bare 500 so internals never leak to the client.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var validationErr *validators.Error
	if errors.As(err, &validationErr) {
		_, _ = utils.WriteJSON(w, errorResponse{
			Error:  "validation failed",
			Fields: validationErr.Fields,
		}, http.StatusBadRequest)
		return
	}

	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error")
		_, _ = utils.WriteJSON(w, errorResponse{
			Error: http.StatusText(http.StatusInternalServerError),
		}, http.StatusInternalServerError)
		return
	}

	_, _ = utils.WriteJSON(w, errorResponse{Error: err.Error()}, status)
}
