package router

import (
	"net/http"
	"strings"

	"github.com/RaveKev/security-jwt-service/internal/pkg/config"
	"github.com/RaveKev/security-jwt-service/internal/pkg/token"
	"github.com/samber/lo"
)

func middlewareAuthentication(codec *token.Codec, cfg config.Config, publicEndpoints map[string]map[string]struct{}) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := matchedRoutePath(r)

			if s, ok := publicEndpoints[r.Method]; ok {
				if _, skip := s[path]; skip {
					next.ServeHTTP(w, r)
					return
				}
			}

			p := strings.Fields(r.Header.Get("Authorization"))
			if len(p) != 2 || !strings.EqualFold(p[0], "Bearer") {
				writeJSON(w, map[string]string{"message": "Authentication required"}, http.StatusUnauthorized)
				return
			}

			secret := cfg.GetBinary("jwt.secret")
			if !codec.IsValid(p[1], secret) {
				writeJSON(w, map[string]string{"message": "Invalid or expired token"}, http.StatusUnauthorized)
				return
			}

			claims, err := codec.Verify(p[1], secret)
			if err != nil {
				writeJSON(w, map[string]string{"message": "Invalid or expired token"}, http.StatusUnauthorized)
				return
			}

			username := claims.GetString(cfg.GetString("jwt.username_claim"))
			roles := claims.GetStrings(cfg.GetString("jwt.roles_claim"))

			ctx := token.SetAuth(r.Context(), token.Identity{
				Username: username,
				Roles:    lo.Uniq(roles),
				Claims:   claims,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
