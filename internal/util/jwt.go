package util

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// The backend issues ASP.NET-style tokens; role and subject may live under
// the long-form Microsoft claim URIs instead of the short names.
const (
	msRoleClaimURI   = "http://schemas.microsoft.com/ws/2008/06/identity/claims/role"
	msNameIDClaimURI = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/nameidentifier"
)

var ErrMalformedToken = errors.New("malformed bearer token")

// TokenClaims is what the gateway reads out of the backend-issued bearer
// token. The token is decoded, never verified: the backend holds the
// signing key and is the actual verifier, the gateway only inspects the
// middle segment for routing and identity hints.
type TokenClaims struct {
	Subject   string
	Role      string
	Email     string
	ExpiresAt time.Time
}

// DecodeToken base64-decodes the payload segment of a three-part token
// without checking its signature.
func DecodeToken(tokenString string) (*TokenClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, ErrMalformedToken
	}

	tc := &TokenClaims{
		Subject: stringClaim(claims, "sub", msNameIDClaimURI),
		Role:    stringClaim(claims, "role", msRoleClaimURI),
		Email:   stringClaim(claims, "email"),
	}

	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		tc.ExpiresAt = exp.Time
	}

	return tc, nil
}

// Expired reports whether the token carries an expiry claim that has
// passed. Tokens without one never expire from the gateway's point of view.
func (c *TokenClaims) Expired() bool {
	return !c.ExpiresAt.IsZero() && time.Now().After(c.ExpiresAt)
}

func stringClaim(claims jwt.MapClaims, keys ...string) string {
	for _, k := range keys {
		if v, ok := claims[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
