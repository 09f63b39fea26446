package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verification failure families. All three surface to the caller as the
// same 401 response shape; only the message differs.
var (
	ErrMissingToken   = errors.New("token not provided")
	ErrMalformedToken = errors.New("malformed token")
	ErrExpiredToken   = errors.New("token expired")
)

// Config holds the signing parameters for issuing and verifying tokens.
// It is built once at startup from AppConfig and passed by reference;
// there is no process-wide secret.
type Config struct {
	Secret string
	TTL    time.Duration
}

// DefaultTokenTTL matches the 7-day expiry the web client expects.
const DefaultTokenTTL = 7 * 24 * time.Hour

// tokenClaims is the wire shape of the JWT payload.
type tokenClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// IssueToken signs an HS256 token for the given trainer identity, expiring
// Config.TTL from now.
func (c Config) IssueToken(userID, email, role string) (string, error) {
	ttl := c.TTL
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	now := time.Now()
	claims := tokenClaims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(c.Secret))
}

// VerifyToken validates a raw token string and returns the identity claims.
// It is stateless and deterministic for a fixed secret and clock: no I/O
// happens beyond the HMAC check.
//
// The literal strings "undefined" and "null" count as missing; the web
// client sends those when its stored token was never set.
func (c Config) VerifyToken(raw string) (Claims, error) {
	if raw == "" || raw == "undefined" || raw == "null" {
		return Claims{}, ErrMissingToken
	}

	var tc tokenClaims
	_, err := jwt.ParseWithClaims(raw, &tc, func(t *jwt.Token) (any, error) {
		return []byte(c.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrExpiredToken
		}
		return Claims{}, ErrMalformedToken
	}
	if tc.UserID == "" {
		return Claims{}, ErrMalformedToken
	}

	return Claims{UserID: tc.UserID, Email: tc.Email, Role: tc.Role}, nil
}

// TokenFromHeader extracts the raw token from an Authorization header
// value. Both a bare token and the "Bearer <token>" form are accepted;
// the prefix match is case-sensitive with exactly one space, anything
// else is treated as a bare token and fails verification on its own.
func TokenFromHeader(header string) string {
	if strings.HasPrefix(header, "Bearer ") {
		return header[len("Bearer "):]
	}
	return header
}
