package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return tok
}

func TestTokenExpired(t *testing.T) {
	now := time.Now()

	live := signedToken(t, jwt.MapClaims{"user_id": "s1", "exp": now.Add(time.Hour).Unix()})
	expired, err := TokenExpired(live, now)
	if err != nil {
		t.Fatalf("TokenExpired: %v", err)
	}
	if expired {
		t.Error("token expiring in an hour reported expired")
	}

	stale := signedToken(t, jwt.MapClaims{"user_id": "s1", "exp": now.Add(-time.Hour).Unix()})
	expired, err = TokenExpired(stale, now)
	if err != nil {
		t.Fatalf("TokenExpired: %v", err)
	}
	if !expired {
		t.Error("token that expired an hour ago reported live")
	}
}

func TestTokenExpired_NoExpClaim(t *testing.T) {
	tok := signedToken(t, jwt.MapClaims{"user_id": "s1"})
	expired, err := TokenExpired(tok, time.Now())
	if err != nil {
		t.Fatalf("TokenExpired: %v", err)
	}
	if expired {
		t.Error("token without exp must never expire client-side")
	}
}

func TestTokenExpired_Garbage(t *testing.T) {
	if _, err := TokenExpired("not-a-jwt", time.Now()); err == nil {
		t.Error("expected error for malformed token")
	}
}
