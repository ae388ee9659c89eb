package kernel

import (
	"fmt"

	"artmarket/internal/pkg/errs"
	"artmarket/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when validating a zero-value Address.
// Addresses must be created via NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("address must be created via NewAddress constructor")

// Address is a postal address value object. Buyer shipping addresses are
// captured on orders at creation time; artist pickup addresses are resolved
// live from profile records and pass through this same type.
//
// Address is immutable. The zero value is invalid and fails validation.
//
// Example:
//
//	addr, err := kernel.NewAddress("12 Gallery Lane", "Portland", "OR", "97201")
//	if err != nil {
//	    // street or city missing
//	}
type Address struct {
	street string
	city   string
	state  string
	zip    string
	guard  guard.ConstructorGuard
}

// NewAddress creates an Address. Street and city are required; state and zip
// may be empty for deployments that do not use them.
//
// Returns:
//   - Address: a valid address
//   - error: ValueIsRequiredError if street or city is empty
func NewAddress(street, city, state, zip string) (Address, error) {
	if street == "" {
		return Address{}, errs.NewValueIsRequiredError("street")
	}
	if city == "" {
		return Address{}, errs.NewValueIsRequiredError("city")
	}

	return Address{
		street: street,
		city:   city,
		state:  state,
		zip:    zip,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Address was created through NewAddress.
// Returns ErrAddressIsNotConstructed for zero values.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street line.
func (a Address) Street() string {
	return a.street
}

// City returns the city.
func (a Address) City() string {
	return a.city
}

// State returns the state or region, possibly empty.
func (a Address) State() string {
	return a.state
}

// Zip returns the postal code, possibly empty.
func (a Address) Zip() string {
	return a.zip
}

// IsEqual compares two addresses field by field.
func (a Address) IsEqual(other Address) bool {
	return a.street == other.street &&
		a.city == other.city &&
		a.state == other.state &&
		a.zip == other.zip
}

// String renders the address as a single comma-separated line.
func (a Address) String() string {
	return fmt.Sprintf("%s, %s, %s %s", a.street, a.city, a.state, a.zip)
}
