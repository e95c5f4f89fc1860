// Package testutil holds assertions shared by the package tests.
package testutil

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// AssertDecimal checks that got equals the decimal literal want by value, so
// "2687.5" and "2687.50" compare equal.
func AssertDecimal(t assert.TestingT, want string, got decimal.Decimal, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	expected, err := decimal.NewFromString(want)
	if err != nil {
		return assert.Fail(t, fmt.Sprintf("bad expected decimal %q: %v", want, err), msgAndArgs...)
	}
	if expected.Equal(got) {
		return true
	}
	return assert.Fail(t, fmt.Sprintf("decimals differ\nexpected: %s\nactual  : %s", want, got), msgAndArgs...)
}
