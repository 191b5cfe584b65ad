package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"stayhub/internal/app"
	"stayhub/internal/domain"
)

type ctxKey int

const actorKey ctxKey = iota

// ActorFrom pulls the authenticated actor installed by Protect.
func ActorFrom(ctx context.Context) (app.Actor, bool) {
	a, ok := ctx.Value(actorKey).(app.Actor)
	return a, ok
}

// tokenFrom accepts either an Authorization bearer header or the
// "token" cookie set at login.
func tokenFrom(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	if c, err := r.Cookie("token"); err == nil {
		return c.Value
	}
	return ""
}

// Protect rejects unauthenticated requests and stores the verified
// actor in the request context for handlers downstream.
func Protect(tokens domain.TokenIssuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := tokenFrom(r)
			if raw == "" {
				writeErrMsg(w, http.StatusUnauthorized, "not authorized to access this route")
				return
			}
			claims, err := tokens.Verify(raw)
			if err != nil {
				writeErrMsg(w, http.StatusUnauthorized, "not authorized to access this route")
				return
			}
			actor := app.Actor{ID: claims.UserID, Role: claims.Role}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), actorKey, actor)))
		})
	}
}

// RequireRole gates a route to the given roles. Must sit inside Protect.
func RequireRole(roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := ActorFrom(r.Context())
			if !ok {
				writeErrMsg(w, http.StatusUnauthorized, "not authorized to access this route")
				return
			}
			for _, role := range roles {
				if actor.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			writeErrMsg(w, http.StatusForbidden,
				fmt.Sprintf("role %s is not authorized to access this route", actor.Role))
		})
	}
}
