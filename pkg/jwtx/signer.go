package jwtx

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Signer is anything that can sign session claims.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
}

// HMACSigner signs tokens with a shared process secret.
type HMACSigner struct {
	method *jwt.SigningMethodHMAC
	key    []byte
}

// NewSignerHMAC creates a signer for HS256, HS384 or HS512.
func NewSignerHMAC(alg string, secret []byte) (*HMACSigner, error) {
	method, err := hmacMethod(alg)
	if err != nil {
		return nil, err
	}
	if len(secret) == 0 {
		return nil, errors.New("jwtx: empty signing secret")
	}
	return &HMACSigner{method: method, key: secret}, nil
}

func (s *HMACSigner) Alg() string { return s.method.Alg() }

func (s *HMACSigner) Sign(claims Claims) (string, error) {
	return jwt.NewWithClaims(s.method, claims).SignedString(s.key)
}

func hmacMethod(alg string) (*jwt.SigningMethodHMAC, error) {
	switch alg {
	case "", jwt.SigningMethodHS256.Alg():
		return jwt.SigningMethodHS256, nil
	case jwt.SigningMethodHS384.Alg():
		return jwt.SigningMethodHS384, nil
	case jwt.SigningMethodHS512.Alg():
		return jwt.SigningMethodHS512, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlg, alg)
	}
}
