package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/agendei/professional-api/pkg/utils"
)

type ContextKey string

const ProfessionalIDKey ContextKey = "professionalID"

// TokenKey keeps the raw bearer token reachable for logout revocation.
const TokenKey ContextKey = "token"

func AuthMiddleware(denylist DenylistInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			jwtService := &JWTService{}
			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			if denylist != nil {
				revoked, err := denylist.IsRevoked(r.Context(), token)
				if err != nil || revoked {
					utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
					return
				}
			}

			ctx := context.WithValue(r.Context(), ProfessionalIDKey, claims.ProfessionalID)
			ctx = context.WithValue(ctx, TokenKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
