package token

import (
	"strings"
	"testing"
	"time"

	customErrors "github.com/plateful/backend/internal/auth/errors"
	"github.com/plateful/backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func testCodec(t *testing.T) *Codec {
	t.Helper()
	c, err := NewCodec(&config.Config{
		JWTSecret:       "test-secret",
		JWTIssuer:       "test",
		VerifyTokenTTL:  24 * time.Hour,
		SessionTokenTTL: time.Hour,
	})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestCodec_IssueDecode(t *testing.T) {
	c := testCodec(t)
	uid := uuid.New()

	raw, err := c.Issue(uid, PurposeSession, c.SessionTTL())
	if err != nil {
		t.Fatal(err)
	}
	claims, err := c.Decode(raw)
	if err != nil {
		t.Fatal(err)
	}
	if claims.Subject != uid.String() {
		t.Fatalf("want %s got %s", uid, claims.Subject)
	}
	if claims.Purpose != PurposeSession {
		t.Fatalf("want session purpose, got %q", claims.Purpose)
	}
}

func TestCodec_MissingSecret(t *testing.T) {
	if _, err := NewCodec(&config.Config{}); err == nil {
		t.Fatal("expected error for empty secret")
	}
}

func TestCodec_Expired(t *testing.T) {
	c := testCodec(t)

	for _, ttl := range []time.Duration{0, -time.Minute} {
		raw, err := c.Issue(uuid.New(), PurposeSession, ttl)
		if err != nil {
			t.Fatal(err)
		}
		_, err = c.Decode(raw)
		if !customErrors.IsExpiredToken(err) {
			t.Fatalf("ttl=%v: want expired, got %v", ttl, err)
		}
	}
}

func TestCodec_Tampered(t *testing.T) {
	c := testCodec(t)
	raw, _ := c.Issue(uuid.New(), PurposeSession, time.Hour)

	// flip one byte inside the payload segment
	parts := strings.Split(raw, ".")
	payload := []byte(parts[1])
	payload[len(payload)/2] ^= 0x01
	parts[1] = string(payload)
	tampered := strings.Join(parts, ".")

	_, err := c.Decode(tampered)
	if !customErrors.IsInvalidToken(err) {
		t.Fatalf("want invalid token, got %v", err)
	}
}

func TestCodec_WrongSecret(t *testing.T) {
	c := testCodec(t)
	other, _ := NewCodec(&config.Config{JWTSecret: "other-secret", JWTIssuer: "test"})

	raw, _ := other.Issue(uuid.New(), PurposeSession, time.Hour)
	if _, err := c.Decode(raw); !customErrors.IsInvalidToken(err) {
		t.Fatalf("want invalid token, got %v", err)
	}
}

func TestCodec_WrongAlg(t *testing.T) {
	c := testCodec(t)
	raw, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	if _, err := c.Decode(raw); !customErrors.IsInvalidToken(err) {
		t.Fatalf("want invalid token, got %v", err)
	}
}

func TestCodec_MissingSubject(t *testing.T) {
	c := testCodec(t)

	now := time.Now()
	raw, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "test",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}).SignedString(c.secret)

	if _, err := c.Decode(raw); !customErrors.IsInvalidTokenPayload(err) {
		t.Fatalf("want invalid token payload, got %v", err)
	}
}

func TestCodec_WrongIssuer(t *testing.T) {
	c := testCodec(t)
	other, _ := NewCodec(&config.Config{JWTSecret: "test-secret", JWTIssuer: "someone-else"})

	raw, _ := other.Issue(uuid.New(), PurposeSession, time.Hour)
	if _, err := c.Decode(raw); !customErrors.IsInvalidToken(err) {
		t.Fatalf("want invalid token, got %v", err)
	}
}
