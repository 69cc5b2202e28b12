// Package token issues and verifies the signed session tokens used for
// stateless authentication.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Sentinel errors returned by Parse. Callers treat all three as "not
// authenticated"; the distinction exists for server-side logging only.
var (
	// ErrTokenExpired indicates the token's expiry is in the past.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenMalformed indicates the token could not be decoded into the
	// expected shape.
	ErrTokenMalformed = errors.New("token malformed")

	// ErrBadSignature indicates the signature does not match the secret.
	ErrBadSignature = errors.New("token signature invalid")
)

// Claims is the verified payload of a session token.
type Claims struct {
	// Subject is the user ID the token asserts ownership of.
	Subject string

	// IssuedAt is when the token was created.
	IssuedAt time.Time

	// ExpiresAt is when the token stops being valid.
	ExpiresAt time.Time
}

// Codec creates and parses signed session tokens.
// The secret and ttl are fixed at construction; rotating the secret
// invalidates every outstanding token.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec creates a new Codec with the provided secret and token lifetime.
func NewCodec(secret string, ttl time.Duration) *Codec {
	return &Codec{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue creates a signed token for the given subject, valid from now until
// now + ttl.
func (c *Codec) Issue(subject string) (string, error) {
	return c.IssueAt(subject, time.Now())
}

// IssueAt is Issue with an explicit issue time.
func (c *Codec) IssueAt(subject string, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Parse verifies the signature and expiry of a token and returns its claims.
// The signature is checked before any payload field is trusted. Expiry is
// strict with no grace window.
func (c *Codec) Parse(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC is accepted; anything else is treated as forged.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrBadSignature
		default:
			return nil, ErrTokenMalformed
		}
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || !parsed.Valid || claims.Subject == "" || claims.ExpiresAt == nil {
		return nil, ErrTokenMalformed
	}

	out := &Claims{
		Subject:   claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	return out, nil
}
