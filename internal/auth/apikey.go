package auth

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
)

// APIKeyMiddleware gates requests behind a single pre-shared key carried
// in a fixed header. The 401 body never hints whether the header was
// missing or merely wrong.
type APIKeyMiddleware struct {
	headerName string
	secret     string
}

func NewAPIKeyMiddleware(headerName, secret string) *APIKeyMiddleware {
	return &APIKeyMiddleware{
		headerName: headerName,
		secret:     secret,
	}
}

func (m *APIKeyMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get(m.headerName)
		if key == "" || subtle.ConstantTimeCompare([]byte(key), []byte(m.secret)) != 1 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
			return
		}

		next.ServeHTTP(w, r)
	})
}
