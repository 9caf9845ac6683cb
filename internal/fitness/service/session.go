package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/spano-fitness/spano/internal/fitness/domain"
	"github.com/spano-fitness/spano/internal/fitness/store"
	"github.com/spano-fitness/spano/pkg/httpx"
	"github.com/spano-fitness/spano/pkg/slogx"
)

// SessionResolver turns the raw session cookie into an Identity.
type SessionResolver struct {
	Tokens *TokenService
}

// Resolve never fails for bad input: an absent cookie is Anonymous and a bad
// one is Rejected. Only store failures other than not-found are returned.
func (r *SessionResolver) Resolve(ctx context.Context, db store.Repos, cookie string) (domain.Identity, error) {
	if cookie == "" {
		return domain.AnonymousIdentity(), nil
	}

	log := slogx.FromContext(ctx)

	raw, ok := httpx.ParseBearer(cookie)
	if !ok {
		log.Debug("session cookie malformed")
		return domain.RejectedIdentity(), nil
	}

	name, err := r.Tokens.Verify(raw)
	if err != nil {
		log.Debug("session token rejected", "err", err)
		return domain.RejectedIdentity(), nil
	}

	user, err := db.Users().GetUserByName(ctx, name)
	if errors.Is(err, store.ErrNotFound) {
		log.Debug("session subject has no user", "user", name)
		return domain.RejectedIdentity(), nil
	}
	if err != nil {
		return domain.Identity{}, fmt.Errorf("load session user: %w", err)
	}

	return domain.AuthenticatedIdentity(user), nil
}

// RequireUser returns the authenticated user or ErrAuthenticationRequired.
func RequireUser(id domain.Identity) (domain.User, error) {
	if !id.IsAuthenticated() {
		return domain.User{}, ErrAuthenticationRequired
	}
	return *id.User, nil
}

// RequireAdmin lets only authenticated admins through.
func RequireAdmin(id domain.Identity) (domain.Identity, error) {
	if !id.IsAuthenticated() {
		return id, ErrAuthenticationRequired
	}
	if !id.User.IsAdmin {
		return id, ErrForbidden
	}
	return id, nil
}
