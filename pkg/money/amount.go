package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Amount is an immutable monetary value that always renders with exactly two
// decimal places, as a bare JSON number ("2687.50"). It accepts both JSON
// numbers and quoted decimal strings on input.
type Amount struct {
	value decimal.Decimal
}

// NewAmount wraps d, rounding it to whole cents.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{value: Round(d)}
}

// ParseAmount parses a decimal string such as "10000" or "2687.50".
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Amount{value: d}, nil
}

// Decimal returns the underlying decimal value.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// IsZero reports whether the amount is zero.
func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

// Equal compares two amounts by value.
func (a Amount) Equal(other Amount) bool {
	return a.value.Equal(other.value)
}

// String formats the amount with two decimal places.
func (a Amount) String() string {
	return a.value.StringFixed(Cents)
}

// MarshalJSON implements json.Marshaler.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}
	a.value = d
	return nil
}
