package httpx

import (
	"net/http"
	"strings"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "access_token"

const bearerPrefix = "Bearer "

// SessionCookieValue returns the raw session cookie value, or "" if absent.
func SessionCookieValue(r *http.Request) string {
	c, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

// SetSessionCookie stores token as "Bearer <token>". The cookie has no expiry;
// the token inside it does.
func SetSessionCookie(w http.ResponseWriter, token string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    bearerPrefix + token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie tells the client to drop the session cookie.
func ClearSessionCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ParseBearer splits "Bearer <token>" into the token. net/http quotes the value
// on the wire because of the space; surrounding quotes are accepted here too.
func ParseBearer(v string) (string, bool) {
	v = strings.Trim(v, `"`)
	if !strings.HasPrefix(v, bearerPrefix) {
		return "", false
	}
	tok := v[len(bearerPrefix):]
	if tok == "" || strings.ContainsAny(tok, " \t") {
		return "", false
	}
	return tok, true
}
