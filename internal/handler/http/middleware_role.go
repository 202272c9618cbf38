package http

import (
	"net/http"

	"github.com/idfinder-gh/idfinder/internal/logger"
	"github.com/idfinder-gh/idfinder/internal/utils"
	"github.com/idfinder-gh/idfinder/models"
)

// requireRole gates a route group on a minimum staff role. Roles are
// ordered, so an ADMIN passes every gate an INTAKE_OFFICER passes.
//
// Must run after the auth middleware; a request without a resolved
// principal is rejected with 401 rather than 403.
func (h *Handler) requireRole(required models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			principal, ok := utils.GetPrincipalFromContext(r.Context())
			if !ok {
				log.Error().Msg("role check reached without an authenticated principal")
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			if !principal.Role.Satisfies(required) {
				log.Warn().
					Str("user_id", principal.UserID).
					Str("role", string(principal.Role)).
					Str("required", string(required)).
					Msg("insufficient role")
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
