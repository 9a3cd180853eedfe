package middleware

import (
	"net/http"

	"github.com/Arnesh-pal/random-ranking/internal/utils"
)

// OriginChecker valide l'en-tête Origin contre la liste blanche. Une requête
// sans Origin (curl, health checks) est toujours acceptée.
func OriginChecker(allowedOrigins []string) func(r *http.Request) bool {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		if origin != "" {
			allowed[origin] = true
		}
	}

	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || allowed[origin]
	}
}

// CORSMiddleware rejette les origines hors liste blanche avant le routage
func CORSMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	checkOrigin := OriginChecker(allowedOrigins)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !checkOrigin(r) {
				utils.Error(w, http.StatusForbidden, "origin not allowed")
				return
			}

			if origin := r.Header.Get("Origin"); origin != "" {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
