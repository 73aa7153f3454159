package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpired reports whether the access token's exp claim has passed.
// The token is decoded without signature verification: the client does
// not hold the server secret, and the check exists only to fail fast
// with a "sign in again" message instead of a 401 round-trip. Tokens
// without an exp claim never expire client-side.
func TokenExpired(accessToken string, now time.Time) (bool, error) {
	token, _, err := jwt.NewParser().ParseUnverified(accessToken, jwt.MapClaims{})
	if err != nil {
		return false, fmt.Errorf("decode token: %w", err)
	}
	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return false, fmt.Errorf("token exp claim: %w", err)
	}
	if exp == nil {
		return false, nil
	}
	return now.After(exp.Time), nil
}
