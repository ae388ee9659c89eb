package kernel

import (
	"fmt"
	"math"

	"artmarket/internal/pkg/errs"
	"artmarket/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
// Money must be created via NewMoney.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("money must be created via NewMoney constructor")

// Money is a fixed-point monetary amount expressed in minor currency units
// (cents). Amounts are never represented in binary floating point, so totals
// and shipping fees stay exact.
//
// Money is an immutable value object. The zero value is invalid and fails
// validation; use NewMoney to create instances.
//
// Example:
//
//	fee, err := kernel.NewMoney(1500) // 15.00
//	if err != nil {
//	    // negative amount
//	}
//	fmt.Println(fee) // Output: 15.00
type Money struct {
	cents int64
	guard guard.ConstructorGuard
}

// NewMoney creates a Money amount from minor units.
// Negative amounts are rejected.
//
// Returns:
//   - Money: a valid amount
//   - error: ValueIsOutOfRangeError if cents is negative
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("money amount", cents, 0, int64(math.MaxInt64))
	}

	return Money{
		cents: cents,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Money was created through NewMoney.
// Returns ErrMoneyIsNotConstructed for zero values.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Cents returns the amount in minor units.
func (m Money) Cents() int64 {
	return m.cents
}

// IsEqual compares two amounts by value.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String renders the amount with two decimal places, e.g. "15.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
