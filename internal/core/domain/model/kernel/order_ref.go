package kernel

import (
	"fmt"

	"artmarket/internal/pkg/errs"
	"artmarket/internal/pkg/guard"
)

// OrderKind discriminates the two structurally different order kinds the
// marketplace fulfills. Order ids are scoped per kind — a catalog order and a
// commission order may share the same numeric id — so an id is only a valid
// reference together with its kind (see OrderRef).
type OrderKind int

const (
	// UnknownKind represents an invalid or undefined kind.
	// This value (0) helps catch uninitialized OrderKind values.
	UnknownKind OrderKind = iota

	// CatalogOrder is a purchase of one or more pre-existing artworks,
	// possibly spanning multiple artists.
	CatalogOrder

	// CommissionOrder is a bespoke, negotiated artwork request between one
	// buyer and one artist.
	CommissionOrder
)

// getKindStrings returns a map of OrderKind values to their wire names.
func getKindStrings() map[OrderKind]string {
	return map[OrderKind]string{
		UnknownKind:     "unknown",
		CatalogOrder:    "catalog",
		CommissionOrder: "commission",
	}
}

// getValidKindStrings returns only valid kinds, to support validation and parsing.
func getValidKindStrings() map[OrderKind]string {
	//nolint:exhaustive // UnknownKind is intentionally excluded as it's invalid
	return map[OrderKind]string{
		CatalogOrder:    "catalog",
		CommissionOrder: "commission",
	}
}

// ParseOrderKind converts a wire name ("catalog", "commission") to an
// OrderKind. Returns ValueIsInvalidError for anything else.
func ParseOrderKind(s string) (OrderKind, error) {
	for kind, name := range getValidKindStrings() {
		if name == s {
			return kind, nil
		}
	}
	return UnknownKind, errs.NewValueIsInvalidErrorWithCause("orderKind",
		fmt.Errorf("%q is not a valid order kind", s))
}

// Validate checks if the OrderKind value is valid.
// Valid kinds are CatalogOrder and CommissionOrder.
func (k OrderKind) Validate() error {
	if _, ok := getValidKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("orderKind",
			fmt.Errorf("%d is not a valid order kind", k))
	}
	return nil
}

// String returns the wire name of the kind, or "unknown" for invalid values.
// Implements fmt.Stringer.
func (k OrderKind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "unknown"
}

// ErrOrderRefIsNotConstructed is returned when validating a zero-value OrderRef.
// OrderRefs must be created via NewOrderRef.
var ErrOrderRefIsNotConstructed = errs.NewValueIsRequiredError("order reference must be created via NewOrderRef constructor")

// OrderRef is the complete identity of an order: a positive numeric id plus
// the kind that scopes it. Two refs with the same id but different kinds
// reference different orders and never compare equal.
//
// Example:
//
//	ref, err := kernel.NewOrderRef(101, kernel.CatalogOrder)
//	if err != nil {
//	    // invalid id or kind
//	}
//	fmt.Println(ref) // Output: catalog/101
type OrderRef struct {
	id    int64
	kind  OrderKind
	guard guard.ConstructorGuard
}

// NewOrderRef creates an OrderRef from a positive id and a valid kind.
//
// Returns:
//   - OrderRef: a valid reference
//   - error: ValueIsInvalidError if the id is not positive or the kind is invalid
func NewOrderRef(id int64, kind OrderKind) (OrderRef, error) {
	if id <= 0 {
		return OrderRef{}, errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("%d is not a positive id", id))
	}
	if err := kind.Validate(); err != nil {
		return OrderRef{}, err
	}

	return OrderRef{
		id:    id,
		kind:  kind,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the OrderRef was created through NewOrderRef.
// Returns ErrOrderRefIsNotConstructed for zero values.
func (r OrderRef) Validate() error {
	return r.guard.Validate(ErrOrderRefIsNotConstructed)
}

// ID returns the kind-scoped numeric id.
func (r OrderRef) ID() int64 {
	return r.id
}

// Kind returns the order kind that scopes the id.
func (r OrderRef) Kind() OrderKind {
	return r.kind
}

// IsEqual compares two references. Both the id and the kind must match;
// colliding ids across kinds are distinct references.
func (r OrderRef) IsEqual(other OrderRef) bool {
	return r.id == other.id && r.kind == other.kind
}

// String renders the reference as "<kind>/<id>".
func (r OrderRef) String() string {
	return fmt.Sprintf("%s/%d", r.kind, r.id)
}
