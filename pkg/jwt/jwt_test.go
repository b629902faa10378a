package jwt

import (
	"strings"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret-key-0123456789abcdefgh"

func newTestManager(t *testing.T) IManager {
	t.Helper()
	m, err := New(Config{
		SecretKey: testSecret,
		Issuer:    "smap-auth-service",
		Audience:  []string{"monitor-srv"},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func mint(t *testing.T, claims Claims) string {
	t.Helper()
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return token
}

func baseClaims() Claims {
	return Claims{
		Email: "an.nguyen@hcmut.edu.vn",
		Role:  "analyst",
		RegisteredClaims: jwtlib.RegisteredClaims{
			Issuer:    "smap-auth-service",
			Subject:   "user-42",
			Audience:  jwtlib.ClaimStrings{"monitor-srv"},
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwtlib.NewNumericDate(time.Now()),
		},
	}
}

func TestVerify(t *testing.T) {
	m := newTestManager(t)

	t.Run("valid token", func(t *testing.T) {
		payload, err := m.Verify(mint(t, baseClaims()))
		if err != nil {
			t.Fatalf("Verify: %v", err)
		}
		if payload.UserID != "user-42" || payload.Role != "analyst" {
			t.Fatalf("payload = %+v", payload)
		}
		if payload.Email != "an.nguyen@hcmut.edu.vn" {
			t.Fatalf("email = %q", payload.Email)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		claims := baseClaims()
		claims.ExpiresAt = jwtlib.NewNumericDate(time.Now().Add(-time.Minute))
		if _, err := m.Verify(mint(t, claims)); err == nil {
			t.Fatal("expired token accepted")
		}
	})

	t.Run("wrong issuer", func(t *testing.T) {
		claims := baseClaims()
		claims.Issuer = "someone-else"
		_, err := m.Verify(mint(t, claims))
		if err == nil || !strings.Contains(err.Error(), "issuer") {
			t.Fatalf("err = %v, want issuer rejection", err)
		}
	})

	t.Run("audience mismatch", func(t *testing.T) {
		claims := baseClaims()
		claims.Audience = jwtlib.ClaimStrings{"report-srv"}
		if _, err := m.Verify(mint(t, claims)); err == nil {
			t.Fatal("foreign audience accepted")
		}
	})

	t.Run("tampered signature", func(t *testing.T) {
		token := mint(t, baseClaims())
		if _, err := m.Verify(token + "x"); err == nil {
			t.Fatal("tampered token accepted")
		}
	})

	t.Run("unsigned token rejected", func(t *testing.T) {
		token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, baseClaims()).
			SignedString(jwtlib.UnsafeAllowNoneSignatureType)
		if err != nil {
			t.Fatalf("sign none: %v", err)
		}
		if _, err := m.Verify(token); err == nil {
			t.Fatal("alg=none token accepted")
		}
	})
}

func TestNewRejectsShortSecret(t *testing.T) {
	if _, err := New(Config{SecretKey: "short"}); err == nil {
		t.Fatal("short secret accepted")
	}
}
