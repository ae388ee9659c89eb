package ports

import "context"

// PartnerDirectory checks delivery-partner identities against the partner
// registry. Partner accounts are managed by the out-of-scope profile
// subsystem; the fulfillment core only needs existence checks before
// assigning a partner to an order.
type PartnerDirectory interface {
	// PartnerExists reports whether a delivery partner with the given id is
	// registered.
	PartnerExists(ctx context.Context, partnerID int64) (bool, error)
}
