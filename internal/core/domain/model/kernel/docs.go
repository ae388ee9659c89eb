// Package kernel contains the shared value objects of the fulfillment core.
//
// The package includes:
//   - Money: a fixed-point monetary amount in minor units, never floating binary
//   - Address: a postal address captured on orders and resolved from profiles
//   - OrderKind: the discriminator between catalog purchases and commissions
//   - OrderRef: an order identity, which is only meaningful together with its kind
//
// All value objects are immutable, constructed through validating factory
// functions, and carry a constructor guard so zero values fail validation.
package kernel
