package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-pass-envelope/internal/logger"
	"github.com/MKhiriev/go-pass-envelope/internal/utils"
)

// auth validates the bearer JWT and stores its subject (the account id) in
// the request context. Any failure is 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Msg("error parsing authorization header")
			utils.WriteError(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		token, err := utils.ValidateAndParseJWTToken(tokenString, h.tokenSignKey, h.tokenIssuer)
		if err != nil {
			log.Err(err).Msg("token rejected")
			utils.WriteError(w, ErrTokenRejected.Error(), http.StatusUnauthorized)
			return
		}

		ctx := utils.WithAccountID(r.Context(), token.AccountID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ownAccountOnly lets a request through only if the authenticated account is
// the {accountID} of the route.
func (h *Handler) ownAccountOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID, ok := utils.GetAccountIDFromContext(r.Context())
		if !ok || accountID != chi.URLParam(r, "accountID") {
			logger.FromRequest(r).Warn().
				Str("token_account", accountID).
				Str("path_account", chi.URLParam(r, "accountID")).
				Msg("access to a foreign envelope denied")
			utils.WriteError(w, ErrForeignAccount.Error(), http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
