package services

import (
	"context"

	"artmarket/internal/core/domain/model/kernel"
	"artmarket/internal/core/domain/model/order"
)

// ArtistAddressProvider looks up an artist's registered address from the
// profile store. Implemented by the postgres profile adapter.
type ArtistAddressProvider interface {
	// GetArtistAddress returns the artist's registered address.
	// Returns ObjectNotFoundError if the artist has no profile.
	GetArtistAddress(ctx context.Context, artistID int64) (kernel.Address, error)
}

// AddressResolver derives the two endpoints of a delivery. The pickup address
// is the artist's registered address, looked up live from the profile record
// so it never goes stale if the artist moves; the drop-off address is the
// buyer-supplied shipping address captured on the order at creation.
//
// The resolver is read-only. The status engine does not need addresses to
// transition; the resolver exists to surface them to callers and list views.
type AddressResolver struct {
	artists ArtistAddressProvider
}

// NewAddressResolver creates an AddressResolver over the given profile lookup.
func NewAddressResolver(artists ArtistAddressProvider) AddressResolver {
	return AddressResolver{artists: artists}
}

// ResolvePickupAddress returns the registered address of the order's pickup
// artist. Returns ObjectNotFoundError when the artist has no profile record.
func (r AddressResolver) ResolvePickupAddress(ctx context.Context, o order.Order) (kernel.Address, error) {
	return r.artists.GetArtistAddress(ctx, o.PickupArtistID())
}

// ResolveDropoffAddress returns the shipping address captured on the order.
// It is always present; orders cannot be created without one.
func (r AddressResolver) ResolveDropoffAddress(o order.Order) kernel.Address {
	return o.ShippingAddress()
}
