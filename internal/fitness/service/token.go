package service

import (
	"fmt"
	"time"

	"github.com/spano-fitness/spano/pkg/jwtx"
)

// TokenService issues and checks session tokens whose subject is a username.
type TokenService struct {
	Signer   jwtx.Signer
	Verifier jwtx.Verifier
	Issuer   string
	// TTL falls back to jwtx.DefaultSessionTTL when zero.
	TTL      time.Duration
	Now      func() time.Time
}

// Issue signs a token for subject valid for TTL from now.
func (s *TokenService) Issue(subject string) (string, error) {
	ttl := s.TTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}
	tok, err := s.Signer.Sign(jwtx.NewSessionClaims(subject, s.Issuer, ttl, s.now()))
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return tok, nil
}

// Verify returns the token's subject, or ErrInvalidToken wrapping the reason.
func (s *TokenService) Verify(token string) (string, error) {
	claims, err := s.Verifier.Verify(token)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return claims.Subject, nil
}

func (s *TokenService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}
