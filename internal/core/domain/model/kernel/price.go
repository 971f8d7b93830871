package kernel

import (
	"fmt"

	"orderflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrPriceIsNotConstructed indicates a zero-value Price that was not created
// through NewPrice or PriceFromString.
var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError(
	"Price must be created via NewPrice or PriceFromString",
)

// Price is a non-negative monetary amount with exact decimal semantics.
// It wraps shopspring decimal so monetary totals never accumulate binary
// floating point rounding drift.
//
// Price is immutable; the zero value is invalid and fails Validate.
type Price struct {
	amount decimal.Decimal

	guard ConstructorGuard
}

// NewPrice creates a Price from a decimal amount.
// The amount must not be negative; zero is a valid price.
func NewPrice(amount decimal.Decimal) (Price, error) {
	if amount.IsNegative() {
		return Price{}, errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}

	return Price{
		amount: amount,
		guard:  NewConstructorGuard(),
	}, nil
}

// PriceFromString parses a decimal string such as "9.99" into a Price.
// Used when rehydrating amounts from transport or persistence.
func PriceFromString(s string) (Price, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price", err)
	}

	return NewPrice(amount)
}

// Amount returns the underlying decimal value.
func (p Price) Amount() decimal.Decimal {
	return p.amount
}

// String returns the amount rendered with two decimal places,
// the fixed-point currency form used in responses and storage.
func (p Price) String() string {
	return p.amount.StringFixed(2)
}

// IsEqual reports whether two prices represent the same amount.
// Trailing zeros are not significant: 9.9 equals 9.90.
func (p Price) IsEqual(other Price) bool {
	return p.amount.Equal(other.amount)
}

// Validate returns ErrPriceIsNotConstructed for a zero-value Price.
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}
