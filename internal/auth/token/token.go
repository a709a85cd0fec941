package token

import (
	"errors"
	"time"

	customErrors "github.com/plateful/backend/internal/auth/errors"
	"github.com/plateful/backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Purpose marks what a token was issued for. It does not change the signing
// mechanism, only the TTL chosen at issue time.
type Purpose string

const (
	PurposeVerify  Purpose = "verify"
	PurposeSession Purpose = "session"
)

type Claims struct {
	jwt.RegisteredClaims
	Purpose Purpose `json:"purpose,omitempty"`
}

// Codec issues and verifies HS256-signed bearer tokens. The signing secret is
// loaded once at startup and never leaves this struct.
type Codec struct {
	secret     []byte
	issuer     string
	verifyTTL  time.Duration
	sessionTTL time.Duration
}

func NewCodec(cfg *config.Config) (*Codec, error) {
	if cfg.JWTSecret == "" {
		return nil, customErrors.WrapInternal(errors.New("empty JWT_SECRET"), "NewCodec")
	}
	return &Codec{
		secret:     []byte(cfg.JWTSecret),
		issuer:     cfg.JWTIssuer,
		verifyTTL:  cfg.VerifyTokenTTL,
		sessionTTL: cfg.SessionTokenTTL,
	}, nil
}

// VerifyTTL is the lifetime of email-verification tokens.
func (c *Codec) VerifyTTL() time.Duration { return c.verifyTTL }

// SessionTTL is the lifetime of session tokens.
func (c *Codec) SessionTTL() time.Duration { return c.sessionTTL }

// Issue signs a token asserting subject, valid for ttl from now.
func (c *Codec) Issue(subject uuid.UUID, purpose Purpose, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject.String(),
			Issuer:    c.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Purpose: purpose,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", customErrors.WrapInternal(err, "sign token")
	}
	return signed, nil
}

// Decode verifies signature and expiry and returns the claims.
//
// Failure kinds: ErrExpiredToken for a well-signed token past its expiry,
// ErrInvalidToken for anything structurally broken or signed with a different
// secret, ErrInvalidTokenPayload for a valid token without a subject claim.
func (c *Codec) Decode(raw string) (Claims, error) {
	parsed, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, customErrors.ErrInvalidToken
		}
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, customErrors.ErrExpiredToken
		}
		return Claims{}, customErrors.ErrInvalidToken
	}
	if !parsed.Valid {
		return Claims{}, customErrors.ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return Claims{}, customErrors.ErrInvalidToken
	}
	if c.issuer != "" && claims.Issuer != c.issuer {
		return Claims{}, customErrors.ErrInvalidToken
	}
	if claims.Subject == "" {
		return Claims{}, customErrors.ErrInvalidTokenPayload
	}
	return *claims, nil
}
