package money

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
)

// TestHelpers_Concurrent runs the shared helpers against the same inputs from
// many goroutines. Decimal values are immutable, so every goroutine must see
// identical results and the inputs must remain unchanged.
func TestHelpers_Concurrent(t *testing.T) {
	base := decimal.RequireFromString("1.0041666666666666666667")
	total := decimal.RequireFromString("10661.85")
	originalBase := base.String()

	wantPow := PowInt(base, 360)
	wantRegular, wantLast := Split(total, 12)

	const goroutines = 100

	type result struct {
		pow     decimal.Decimal
		regular decimal.Decimal
		last    decimal.Decimal
	}

	results := make([]result, goroutines)
	var wg sync.WaitGroup
	wg.Add(goroutines)

	for i := 0; i < goroutines; i++ {
		go func(idx int) {
			defer wg.Done()
			regular, last := Split(total, 12)
			results[idx] = result{pow: PowInt(base, 360), regular: regular, last: last}
		}(i)
	}
	wg.Wait()

	for i, r := range results {
		if !r.pow.Equal(wantPow) {
			t.Errorf("goroutine %d: PowInt = %s, want %s", i, r.pow, wantPow)
		}
		if !r.regular.Equal(wantRegular) || !r.last.Equal(wantLast) {
			t.Errorf("goroutine %d: Split = (%s, %s), want (%s, %s)", i, r.regular, r.last, wantRegular, wantLast)
		}
	}

	if base.String() != originalBase {
		t.Errorf("base was mutated: %s, want %s", base.String(), originalBase)
	}
}
