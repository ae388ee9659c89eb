// Package order provides the domain model for the two marketplace order kinds
// and the delivery lifecycle they share.
//
// The package includes:
//   - DeliveryStatus: the state machine
//     NotApplicable -> Pending -> Accepted -> OutForDelivery -> Delivered
//   - Delivery: a value object grouping status, shipping fee, and assigned
//     delivery partner, keeping the three consistent under every transition
//   - DeliveryFields: the lifecycle fields embedded in both aggregates
//   - CatalogOrder: a purchase of pre-existing artworks, possibly spanning
//     multiple artists, with an ordered item list
//   - CommissionOrder: a bespoke negotiated artwork request between one buyer
//     and one artist
//   - Order: the contract both kinds satisfy, so the status engine, the
//     authorization gate, and the address resolver work on either kind
//
// Key business rules:
//   - The shipping fee and the delivery partner are set atomically when a
//     request is accepted, and never while the status is earlier than Accepted
//   - Status moves monotonically forward; OverrideDeliveryStatus is the one
//     deliberate exception, reserved for operational tooling and audited
//   - An order's kind is immutable; ids are only comparable within a kind
//
// Aggregates use private fields with validating constructors. Restore
// constructors rebuild aggregates from persistence and remember the loaded
// delivery status, which repositories use as the expected pre-state for
// conditional updates.
package order
