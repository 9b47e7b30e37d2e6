package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// checkExpiry rejects tokens that are JWTs with an exp claim in the past.
// Tokens that do not parse as JWTs are opaque to the client and accepted;
// the signature is never verified here, only the server can do that.
func checkExpiry(token string, now time.Time) error {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return nil
	}
	if claims.ExpiresAt == nil {
		return nil
	}
	if !claims.ExpiresAt.Time.After(now) {
		return errTokenExpired
	}
	return nil
}
