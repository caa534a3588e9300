package chi

import (
	"net/http"
	"strings"
)

// exemptPaths are routes that bypass authentication (health, metrics).
var exemptPaths = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
}

// APIKeyMiddleware returns a middleware that validates API keys. Keys are
// accepted either as a Bearer token or in the X-API-Key header the ingestion
// agent sends. If apiKeys is empty, authentication is disabled (pass-through).
func APIKeyMiddleware(apiKeys []string) func(http.Handler) http.Handler {
	validKeys := make(map[string]struct{}, len(apiKeys))
	for _, k := range apiKeys {
		if k != "" {
			validKeys[k] = struct{}{}
		}
	}

	return func(next http.Handler) http.Handler {
		// Auth disabled — pass everything through
		if len(validKeys) == 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Exempt paths
			if _, ok := exemptPaths[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			key, errMsg := extractKey(r)
			if key == "" {
				writeError(w, http.StatusUnauthorized, codeUnauthorized, errMsg)
				return
			}

			if _, ok := validKeys[key]; !ok {
				writeError(w, http.StatusUnauthorized, codeUnauthorized, "invalid api key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// extractKey pulls the API key from the request, or returns the reason none
// was found.
func extractKey(r *http.Request) (key, errMsg string) {
	if k := r.Header.Get("X-API-Key"); k != "" {
		return k, ""
	}

	auth := r.Header.Get("Authorization")
	if auth == "" {
		return "", "missing credentials: set Authorization or X-API-Key"
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(auth, bearerPrefix) {
		return "", "authorization header must use Bearer scheme"
	}
	if token := auth[len(bearerPrefix):]; token != "" {
		return token, ""
	}
	return "", "empty bearer token"
}
