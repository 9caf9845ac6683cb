package http

import (
	"net/http"

	"github.com/spano-fitness/spano/pkg/httpx"
)

// handleRoot sends the caller wherever their session says they belong.
func (r *Router) handleRoot(w http.ResponseWriter, req *http.Request, s *Session) {
	switch {
	case s.Identity.IsAdmin():
		httpx.Found(w, req, "/admin/dashboard")
	case s.Identity.IsAuthenticated():
		httpx.Found(w, req, "/dashboard")
	default:
		httpx.Found(w, req, "/login")
	}
}
