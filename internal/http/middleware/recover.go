package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Recover converts an unhandled panic into a structured internal error
// instead of tearing down the connection.
func Recover(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("panic recovered",
						slog.Any("panic", rec),
						slog.String("path", r.URL.Path))

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					json.NewEncoder(w).Encode(map[string]string{
						"error": "internal server error",
						"code":  "internal",
					})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
