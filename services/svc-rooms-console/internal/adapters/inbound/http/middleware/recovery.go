package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/architeacher/rooms-console/pkg/logger"
)

// Recovery turns a panic in a handler into a 500 with the JSON error body.
func Recovery(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}

				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}

				var msg string
				switch v := rvr.(type) {
				case string:
					msg = v
				case error:
					msg = v.Error()
				default:
					msg = fmt.Sprintf("%v", v)
				}

				log.WithContext(r.Context()).Error().
					Str("panic", msg).
					Str("stack", string(debug.Stack())).
					Str("path", r.URL.Path).
					Str("method", r.Method).
					Msg("panic recovered")

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"code":"INTERNAL_ERROR","message":"internal server error"}`))
			}()

			next.ServeHTTP(w, r)
		})
	}
}
