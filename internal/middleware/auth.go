package middleware

import (
	"context"
	"net/http"
	"slices"
	"strings"

	"github.com/andrevlb/sushi-api/pkg/auth"
	"github.com/andrevlb/sushi-api/pkg/utils"
)

type TokenParser interface {
	Parse(token string) (auth.Claims, error)
}

type claimsKey struct{}

// ClaimsFromContext returns the verified claims stored by the guard.
func ClaimsFromContext(ctx context.Context) (auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(auth.Claims)
	return claims, ok
}

// Guard authenticates bearer tokens and gates routes by role.
type Guard struct {
	tokens TokenParser
}

func NewGuard(tokens TokenParser) Guard {
	return Guard{tokens: tokens}
}

// RequireRole verifies the bearer token and rejects callers whose role claim
// is not one of roles: 401 for a missing/invalid token, 403 for a wrong role.
func (g Guard) RequireRole(roles ...string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				utils.WriteError(w, "missing credentials", http.StatusUnauthorized)
				return
			}

			claims, err := g.tokens.Parse(token)
			if err != nil {
				utils.WriteError(w, "invalid credentials", http.StatusUnauthorized)
				return
			}

			if !slices.Contains(roles, claims.Role) {
				utils.WriteError(w, "forbidden", http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return "", false
	}
	return token, true
}
