package http

import (
	"context"

	"meetingdesk-backend/internal/security"
)

type contextKey string

const claimsKey contextKey = "claims"

// withClaims stores the authenticated actor's claims on the request context.
func withClaims(ctx context.Context, claims *security.UserClaims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// claimsFrom returns the claims set by the auth middleware, or nil on
// unauthenticated routes.
func claimsFrom(ctx context.Context) *security.UserClaims {
	claims, _ := ctx.Value(claimsKey).(*security.UserClaims)
	return claims
}
