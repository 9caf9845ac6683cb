package http

import (
	"net/http"

	"github.com/spano-fitness/spano/internal/fitness/domain"
	"github.com/spano-fitness/spano/internal/fitness/store"
	"github.com/spano-fitness/spano/pkg/httpx"
	"github.com/spano-fitness/spano/pkg/slogx"
	"github.com/spano-fitness/spano/pkg/spanosdk"
)

type routeClass int

const (
	// pageRoute failures render HTML or redirect to /login.
	pageRoute routeClass = iota
	// apiRoute failures are JSON spanosdk.APIError bodies.
	apiRoute
)

// Session is handed to every page and API handler. DB is a connection owned
// by the current request; handlers must not keep it past their return.
type Session struct {
	DB       store.Conn
	Identity domain.Identity
}

type sessionHandler func(w http.ResponseWriter, r *http.Request, s *Session)

// withSession checks out a connection, resolves the caller's identity from
// the session cookie and calls next. The connection is returned to the pool
// on every exit path. API routes refuse Rejected identities outright.
func (r *Router) withSession(class routeClass, next sessionHandler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		log := slogx.FromContext(ctx)

		conn, err := r.store.Conn(ctx)
		if err != nil {
			log.Error("checkout store connection", "err", err)
			writeInternal(w, req, class)
			return
		}
		defer func() {
			if err := conn.Close(); err != nil {
				log.Warn("release store connection", "err", err)
			}
		}()

		id, err := r.Sessions.Resolve(ctx, conn, httpx.SessionCookieValue(req))
		if err != nil {
			log.Error("resolve session", "err", err)
			writeInternal(w, req, class)
			return
		}

		ctx = slogx.Annotate(ctx, "identity", id.State.String())
		if id.IsAuthenticated() {
			ctx = slogx.Annotate(ctx, "user", id.User.Name)
		}
		req = req.WithContext(ctx)

		if class == apiRoute && id.State == domain.Rejected {
			spanosdk.ErrUnauthenticated.WithDescription("Could not validate credentials").WriteError(w)
			return
		}

		next(w, req, &Session{DB: conn, Identity: id})
	})
}

func writeInternal(w http.ResponseWriter, r *http.Request, class routeClass) {
	if class == apiRoute {
		spanosdk.ErrServerError.WriteError(w)
		return
	}
	renderError(w, r, http.StatusInternalServerError, "Something went wrong. Please try again.")
}
