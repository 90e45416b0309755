package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/cors"
)

// AllowedOrigins rejects browser requests coming from origins outside the
// allow list and adds CORS headers for the ones inside it. Requests without
// an Origin header pass through untouched.
func AllowedOrigins(origins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(origins))
	normalized := make([]string, 0, len(origins))
	for _, o := range origins {
		o = normalizeOrigin(o)
		allowed[o] = struct{}{}
		normalized = append(normalized, o)
	}

	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins: normalized,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         1800,
	})

	return func(next http.Handler) http.Handler {
		withCORS := corsHandler(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}
			if _, ok := allowed[normalizeOrigin(origin)]; !ok {
				http.Error(w, "invalid CORS request", http.StatusForbidden)
				return
			}
			withCORS.ServeHTTP(w, r)
		})
	}
}

// Scheme and host are case-insensitive, and go-chi/cors compares lowercased.
func normalizeOrigin(o string) string {
	return strings.ToLower(strings.TrimRight(strings.TrimSpace(o), "/"))
}
