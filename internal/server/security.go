package server

import (
	"net/http"
	"strconv"
)

// SecurityConfig controls the headers and CORS behavior SecurityMiddleware
// applies to every request.
type SecurityConfig struct {
	EnableCORS     bool
	AllowedOrigins []string
	AllowedMethods []string
	// MaxOperandDigits bounds the size of an operand /calc will accept,
	// preventing a single request from forcing an unbounded-size multiply.
	MaxOperandDigits int
}

// DefaultSecurityConfig returns bigcalc's baseline security posture: CORS
// open to any origin for GET/OPTIONS only, and a billion-digit operand cap.
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		EnableCORS:       true,
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		MaxOperandDigits: 1_000_000_000,
	}
}

// SecurityMiddleware sets standard defensive headers on every response,
// applies CORS per config, and short-circuits OPTIONS preflight requests.
func SecurityMiddleware(config SecurityConfig, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		w.Header().Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		if config.EnableCORS {
			origin := r.Header.Get("Origin")
			if allowed, matched := matchOrigin(config.AllowedOrigins, origin); allowed {
				w.Header().Set("Access-Control-Allow-Origin", matched)
				w.Header().Set("Access-Control-Allow-Methods", joinStrings(config.AllowedMethods, ", "))
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
				w.Header().Set("Access-Control-Max-Age", strconv.Itoa(86400))
			}
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next(w, r)
	}
}

// matchOrigin reports whether origin is permitted, and the value to echo
// back in Access-Control-Allow-Origin. A wildcard entry always matches,
// including when the request carried no Origin header at all.
func matchOrigin(allowed []string, origin string) (bool, string) {
	for _, a := range allowed {
		if a == "*" {
			return true, "*"
		}
		if a == origin && origin != "" {
			return true, origin
		}
	}
	return false, ""
}

func joinStrings(items []string, sep string) string {
	out := ""
	for i, s := range items {
		if i > 0 {
			out += sep
		}
		out += s
	}
	return out
}
