package services

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the authenticated state restored at startup or established by a
// successful OTP or magic-link verification.
type Session struct {
	Email       string
	AccessToken string
	DeviceID    string
	ExpiresAt   time.Time
}

// Expired reports whether the session's token lifetime has passed. Tokens
// without an exp claim never expire client-side; the server still rejects
// them when it sees fit.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

type tokenInfo struct {
	subject   string
	expiresAt time.Time
}

// tokenClaims reads the registered claims of a bearer token without
// verifying the signature. The server is the authority on validity; the
// client only needs the subject and lifetime for display and proactive
// re-login.
func tokenClaims(token string) (tokenInfo, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return tokenInfo{}, err
	}

	var info tokenInfo
	if sub, err := claims.GetSubject(); err == nil {
		info.subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.expiresAt = exp.Time
	}
	return info, nil
}
