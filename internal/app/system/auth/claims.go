package auth

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Claims is the identity extracted from a verified bearer token. It is
// immutable once attached to a request context; handlers read it, nothing
// writes it back.
type Claims struct {
	UserID string
	Email  string
	Role   string
}

type ctxKey string

const claimsKey ctxKey = "trainerClaims"

// WithClaims returns a context carrying the verified claims.
func WithClaims(ctx context.Context, c Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

// ClaimsFrom returns the claims attached by the auth middleware and a
// found flag.
func ClaimsFrom(ctx context.Context) (Claims, bool) {
	c, ok := ctx.Value(claimsKey).(Claims)
	return c, ok
}

// TrainerID returns the caller's trainer ObjectID. The second return is
// false when the request carries no claims or the subject is not a valid
// ObjectID hex.
func TrainerID(r *http.Request) (primitive.ObjectID, bool) {
	c, ok := ClaimsFrom(r.Context())
	if !ok {
		return primitive.NilObjectID, false
	}
	oid, err := primitive.ObjectIDFromHex(c.UserID)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}

// WithTestClaims injects claims directly into a request for handler tests,
// bypassing token verification.
func WithTestClaims(r *http.Request, c Claims) *http.Request {
	return r.WithContext(WithClaims(r.Context(), c))
}
