package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/boldbank-backend/internal/config"
)

// Origins is a parsed allowed-origin list. "*" matches any origin.
type Origins []string

// ParseOrigins splits a comma separated origin list.
func ParseOrigins(list string) Origins {
	var out Origins
	for _, o := range strings.Split(list, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// Allows reports whether origin may access the API.
func (o Origins) Allows(origin string) bool {
	for _, a := range o {
		if a == "*" || strings.EqualFold(a, origin) {
			return true
		}
	}
	return false
}

// CORS answers preflight requests and echoes allowed origins. The origin is
// echoed rather than "*" so that the session cookie can be sent.
func CORS(cfg config.CORSConfig) Middleware {
	origins := ParseOrigins(cfg.AllowedOrigins)
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("Vary", "Origin")

			origin := r.Header.Get("Origin")
			if origin != "" && origins.Allows(origin) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				if cfg.AllowCredentials {
					w.Header().Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
				w.Header().Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
				w.Header().Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
