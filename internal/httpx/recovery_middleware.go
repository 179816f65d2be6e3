package httpx

import (
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog"
)

// RecoveryMiddleware turns a panic into a 500. fallback writes the response
// when nothing has been written yet; nil falls back to a plain-text error.
func RecoveryMiddleware(fallback http.HandlerFunc) func(http.Handler) http.Handler {
	if fallback == nil {
		fallback = func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "An internal error occurred", http.StatusInternalServerError)
		}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler {
						panic(err)
					}
					zerolog.Ctx(r.Context()).Error().
						Interface("panic", err).
						Bytes("stack", debug.Stack()).
						Msg("panic recovered")

					var wroteHeader bool
					if rw, ok := w.(*responseWriter); ok {
						wroteHeader = rw.wroteHeader()
					}

					if !wroteHeader {
						fallback(w, r)
					}
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
