package http

import (
	"context"
	"net/http"

	"github.com/idfinder-gh/idfinder/internal/logger"
	"github.com/idfinder-gh/idfinder/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication on the
// staff surface.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], resolves the account
// behind the token subject into a [models.Principal], and stores the
// principal in the request context under [utils.PrincipalCtxKey] before
// delegating to the next handler.
//
// The role inside the principal comes from storage on every request, so a
// demoted account loses access immediately rather than at token expiry.
//
// The middleware rejects requests with HTTP 401 Unauthorized when:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header value cannot be parsed as a bearer token
//     ([utils.ParseBearerToken] rejects it).
//   - The token is expired, malformed, or carries a bad signature.
//   - The account behind the token no longer exists.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		principal, err := h.services.AuthService.ResolvePrincipal(ctx, token.UserID)
		if err != nil {
			log.Err(err).Str("user_id", token.UserID).Msg("token subject could not be resolved")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		// Store the resolved principal in the context so that downstream
		// handlers can authorize without re-parsing the token.
		ctx = context.WithValue(ctx, utils.PrincipalCtxKey, principal)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
