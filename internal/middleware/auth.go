package middleware

import (
	"net/http"
	"strings"

	"airline-ops/tower/internal/auth"
	"airline-ops/tower/internal/common"
	"airline-ops/tower/internal/constants"
)

// AuthMiddleware verifies the bearer token and stores its claims in the
// request context for the role gates and handlers downstream.
func AuthMiddleware(issuer *auth.TokenIssuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")

			token, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || token == "" {
				common.RespondError(w, http.StatusUnauthorized, constants.MsgMissingAuthHeader)
				return
			}

			claims, err := issuer.Verify(token)
			if err != nil {
				common.RespondError(w, http.StatusUnauthorized, constants.MsgInvalidToken)
				return
			}

			ctx := auth.SetUserClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
