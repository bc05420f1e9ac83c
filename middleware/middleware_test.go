package middleware

import (
	"testing"
	"time"

	"voyago/globals"

	"github.com/golang-jwt/jwt/v5"
)

func signToken(t *testing.T, email string, ttl time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(globals.JwtSecret)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func TestValidateJWTRoundTrip(t *testing.T) {
	token := signToken(t, "tourist@example.com", time.Hour)

	claims, err := ValidateJWT("Bearer " + token)
	if err != nil {
		t.Fatalf("expected valid token, got %v", err)
	}
	if claims.Email != "tourist@example.com" {
		t.Fatalf("expected email round trip, got %q", claims.Email)
	}
}

func TestValidateJWTExpired(t *testing.T) {
	token := signToken(t, "tourist@example.com", -time.Minute)

	if _, err := ValidateJWT("Bearer " + token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestValidateJWTMalformed(t *testing.T) {
	cases := []string{
		"",
		"Bearer ",
		"Bearer not.a.token",
		"Basic abcdef",
		signToken(t, "x@example.com", time.Hour), // missing Bearer prefix
	}
	for _, tc := range cases {
		if _, err := ValidateJWT(tc); err == nil {
			t.Errorf("expected %q to be rejected", tc)
		}
	}
}

func TestValidateJWTWrongKey(t *testing.T) {
	claims := &Claims{Email: "x@example.com", RegisteredClaims: jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("some-other-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	if _, err := ValidateJWT("Bearer " + signed); err == nil {
		t.Fatal("expected token signed with wrong key to be rejected")
	}
}
