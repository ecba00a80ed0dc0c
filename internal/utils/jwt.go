package utils // package utils provides helper functions for session token and cookie handling

import (
	"net/http" // net/http provides the Cookie type set on responses
	"time"     // time utilities for computing expirations

	"github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "token"

// SessionTTL is the lifetime of a session token. Sessions are long-lived by
// contract; there is no server-side revocation, logout only clears the
// client's cookie.
const SessionTTL = 365 * 24 * time.Hour

// NewSessionToken builds and signs an HS256 JWT embedding the caller-supplied
// identity claim (expected shape: {email}). The claim is embedded verbatim —
// any JSON object is accepted, no shape validation is performed. Expiration
// (exp) and issued-at (iat) claims are added on top.
func NewSessionToken(secret string, identity map[string]interface{}) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{}
	for k, v := range identity {
		claims[k] = v
	}
	claims["exp"] = now.Add(SessionTTL).Unix()
	claims["iat"] = now.Unix()

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// ParseSessionToken verifies the token's signature and expiry and returns the
// embedded claims. Only HMAC-signed tokens are accepted; a token signed with
// a different method is rejected the same way as a bad signature.
func ParseSessionToken(secret, raw string) (jwt.MapClaims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok || !tok.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// NewSessionCookie wraps a signed token in the session cookie. HttpOnly keeps
// it away from scripts, Secure restricts it to HTTPS, and SameSite=None lets
// the enumerated cross-site frontends send it with credentials.
func NewSessionCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(SessionTTL / time.Second),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
}

// ExpiredSessionCookie produces the instruction for the client to discard the
// session cookie. No server state is touched; invalidation is stateless.
func ExpiredSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
}
