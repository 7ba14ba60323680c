package api

import (
	"net/http"
	"strings"
)

// CORS applies the configured allowed origins to every response. An empty
// origin list allows all. OPTIONS preflights are answered directly.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	origins := strings.Join(allowedOrigins, ", ")
	if origins == "" {
		origins = "*"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", origins)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
