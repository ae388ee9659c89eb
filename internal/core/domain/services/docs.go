// Package services contains stateless domain services that coordinate rules
// spanning more than one aggregate or role.
//
// The package includes:
//   - AccessPolicy: the authorization gate deciding whether a caller has a
//     legitimate relationship to an order before a transition or read
//   - AddressResolver: derives the pickup address (artist profile, resolved
//     live) and the drop-off address (captured on the order) for a delivery
//
// Services hold no mutable state and are safe for concurrent use.
package services
