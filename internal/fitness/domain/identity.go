package domain

// IdentityState says what the session cookie told us about the caller.
type IdentityState int

const (
	// Anonymous callers sent no session cookie.
	Anonymous IdentityState = iota
	// Authenticated callers sent a valid token for an existing user.
	Authenticated
	// Rejected callers sent a cookie that is malformed, expired, badly signed
	// or names a user that no longer exists.
	Rejected
)

func (s IdentityState) String() string {
	switch s {
	case Anonymous:
		return "anonymous"
	case Authenticated:
		return "authenticated"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Identity is resolved once per request and handed to route handlers.
// User is set only when State is Authenticated.
type Identity struct {
	State IdentityState
	User  *User
}

func AnonymousIdentity() Identity { return Identity{State: Anonymous} }

func RejectedIdentity() Identity { return Identity{State: Rejected} }

func AuthenticatedIdentity(u User) Identity {
	return Identity{State: Authenticated, User: &u}
}

func (id Identity) IsAuthenticated() bool {
	return id.State == Authenticated && id.User != nil
}

func (id Identity) IsAdmin() bool {
	return id.IsAuthenticated() && id.User.IsAdmin
}
