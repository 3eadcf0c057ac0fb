package middleware

import (
	"net/http"

	"airline-ops/tower/internal/auth"
	"airline-ops/tower/internal/common"
	"airline-ops/tower/internal/constants"
)

func IsAgentMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := auth.GetUserClaims(r.Context())

			if claims == nil || claims.Role() != constants.RoleAgent {
				common.RespondError(w, http.StatusForbidden, constants.MsgForbiddenRole)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
