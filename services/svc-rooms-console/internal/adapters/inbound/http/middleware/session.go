package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/architeacher/rooms-console/pkg/logger"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/config"
	"github.com/architeacher/rooms-console/services/svc-rooms-console/internal/console"
)

const sessionKey contextKey = "console_session"

// Sessions attaches the operator's console session to the request. Safe
// requests with an unknown or expired cookie get a fresh session and a new
// cookie. Mutations never create one: browsers are sent back to landing and
// JSON clients get a 403.
func Sessions(registry *console.Sessions, cfg config.Sessions, landing string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := sessionCookie(r, cfg.CookieName)

			session, known := registry.Get(id)
			if !known {
				if !isSafeMethod(r.Method) {
					rejectWithoutSession(w, r, landing)

					return
				}

				session, _ = registry.GetOrCreate("")
				http.SetCookie(w, &http.Cookie{
					Name:     cfg.CookieName,
					Value:    session.ID,
					Path:     "/",
					HttpOnly: true,
					Secure:   cfg.CookieSecure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), sessionKey, session)
			ctx = context.WithValue(ctx, logger.ContextKeySessionID, session.ID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func SessionFromContext(ctx context.Context) *console.Session {
	session, _ := ctx.Value(sessionKey).(*console.Session)

	return session
}

func sessionCookie(r *http.Request, name string) string {
	cookie, err := r.Cookie(name)
	if err != nil {
		return ""
	}

	return cookie.Value
}

func rejectWithoutSession(w http.ResponseWriter, r *http.Request, landing string) {
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		writeJSONError(w, http.StatusForbidden, "NO_SESSION", "console session expired, reload the rooms page")

		return
	}

	http.Redirect(w, r, landing, http.StatusSeeOther)
}
