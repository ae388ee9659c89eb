package ports

import (
	"context"

	"artmarket/internal/core/domain/services"
)

// IdentityVerifier resolves an opaque bearer token into an authenticated
// actor. Token issuance and session management belong to the identity
// subsystem; the fulfillment core only consumes verification results.
type IdentityVerifier interface {
	Verify(ctx context.Context, token string) (services.Actor, error)
}
