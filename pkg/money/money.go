// Package money holds the decimal helpers shared by every calculation in the
// service: cent rounding, percentage conversion, bounded integer powers, the
// remainder-absorbing split and the two-decimal Amount wire type.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Cents is the number of decimal places carried by every reported amount.
const Cents int32 = 2

// RateScale is the number of decimal places kept for intermediate rates,
// growth factors and per-period shares.
const RateScale int32 = 24

var (
	One     = decimal.NewFromInt(1)
	Hundred = decimal.NewFromInt(100)
)

// Round rounds d half away from zero to whole cents.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Cents)
}

// Floor rounds d towards negative infinity to whole cents.
func Floor(d decimal.Decimal) decimal.Decimal {
	return d.RoundFloor(Cents)
}

// IsCents reports whether d carries no more than two decimal places.
func IsCents(d decimal.Decimal) bool {
	return d.Equal(d.Round(Cents))
}

// Ratio converts a percentage (5 for 5%) into its ratio (0.05). The shift is
// exact, no division precision is involved.
func Ratio(percent decimal.Decimal) decimal.Decimal {
	return percent.Shift(-2)
}

// PercentOf returns base * percent / 100 without rounding.
func PercentOf(base, percent decimal.Decimal) decimal.Decimal {
	return base.Mul(Ratio(percent))
}

// Div divides at RateScale precision.
func Div(d, by decimal.Decimal) decimal.Decimal {
	return d.DivRound(by, RateScale)
}

// PowInt raises base to a non-negative integer power by squaring, rounding
// every intermediate product to RateScale so the digit count stays bounded.
func PowInt(base decimal.Decimal, n int) decimal.Decimal {
	if n < 0 {
		panic(fmt.Sprintf("money: negative exponent %d", n))
	}
	result := One
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base).Round(RateScale)
		}
		n >>= 1
		if n > 0 {
			base = base.Mul(base).Round(RateScale)
		}
	}
	return result
}

// Split divides a cent total into n parts: n-1 equal regular parts and a final
// part that absorbs the rounding remainder, so regular*(n-1)+last == total.
// The regular part is the half-up rounded quotient unless that would
// over-collect before the final part, in which case the floored quotient is
// used instead.
func Split(total decimal.Decimal, n int) (regular, last decimal.Decimal) {
	if n <= 0 {
		panic(fmt.Sprintf("money: split into %d parts", n))
	}
	count := decimal.NewFromInt(int64(n))
	regular = Round(total.DivRound(count, RateScale))
	if regular.Mul(count.Sub(One)).GreaterThan(total) {
		regular = Floor(total.DivRound(count, RateScale))
	}
	last = total.Sub(regular.Mul(count.Sub(One)))
	return regular, last
}
