package testutil_test

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/bibbank/loancalc/pkg/testutil"
)

type recordingT struct {
	failures []string
}

func (r *recordingT) Errorf(format string, args ...any) {
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
}

func TestAssertDecimal(t *testing.T) {
	tests := []struct {
		name string
		want string
		got  decimal.Decimal
		ok   bool
	}{
		{"equal scale", "2687.50", decimal.RequireFromString("2687.50"), true},
		{"trailing zeros ignored", "2687.5", decimal.RequireFromString("2687.50"), true},
		{"different value", "2687.50", decimal.RequireFromString("2687.49"), false},
		{"unparseable expectation", "abc", decimal.Zero, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recordingT{}
			assert.Equal(t, tt.ok, testutil.AssertDecimal(rec, tt.want, tt.got))
			assert.Equal(t, tt.ok, len(rec.failures) == 0)
		})
	}
}
