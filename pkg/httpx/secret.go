package httpx

import (
	"crypto/subtle"
	"net/http"
)

// RequireSharedSecret rejects requests whose header does not carry secret.
// An empty secret disables the check. reject writes the failure response.
func RequireSharedSecret(header, secret string, reject http.HandlerFunc) Middleware {
	return func(next http.Handler) http.Handler {
		if secret == "" {
			return next
		}
		want := []byte(secret)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := []byte(r.Header.Get(header))
			if subtle.ConstantTimeCompare(got, want) != 1 {
				reject(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
