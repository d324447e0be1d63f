package auth

import (
	"context"

	"github.com/google/uuid"
)

// Principal is the authenticated caller, extracted from JWT claims by
// the router middleware and passed through the request context.
type Principal struct {
	ID      uuid.UUID
	Email   string
	IsAdmin bool
}

type principalKey struct{}

// WithPrincipal returns a context carrying the principal.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the principal, or nil for anonymous requests.
func PrincipalFromContext(ctx context.Context) *Principal {
	p, _ := ctx.Value(principalKey{}).(*Principal)
	return p
}
