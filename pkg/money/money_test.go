package money

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// ---------------------------------------------------------------------------
// Rounding
// ---------------------------------------------------------------------------

func TestRound(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2687.5", "2687.5"},
		{"2687.505", "2687.51"},
		{"2687.504999", "2687.5"},
		{"-1.005", "-1.01"},
		{"0.001", "0"},
	}
	for _, tt := range tests {
		if got := Round(d(tt.in)); !got.Equal(d(tt.want)) {
			t.Errorf("Round(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestFloor(t *testing.T) {
	if got := Floor(d("0.2799")); !got.Equal(d("0.27")) {
		t.Errorf("Floor(0.2799) = %s, want 0.27", got)
	}
}

func TestIsCents(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"10000", true},
		{"10000.5", true},
		{"10000.50", true},
		{"10000.500", true},
		{"10000.505", false},
	}
	for _, tt := range tests {
		if got := IsCents(d(tt.in)); got != tt.want {
			t.Errorf("IsCents(%s) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRatioAndPercentOf(t *testing.T) {
	if got := Ratio(d("5")); !got.Equal(d("0.05")) {
		t.Errorf("Ratio(5) = %s, want 0.05", got)
	}
	if got := PercentOf(d("10000"), d("2")); !got.Equal(d("200")) {
		t.Errorf("PercentOf(10000, 2) = %s, want 200", got)
	}
	if got := PercentOf(d("2687.50"), d("1")); !got.Equal(d("26.875")) {
		t.Errorf("PercentOf(2687.50, 1) = %s, want 26.875", got)
	}
}

// ---------------------------------------------------------------------------
// PowInt
// ---------------------------------------------------------------------------

func TestPowInt(t *testing.T) {
	tests := []struct {
		name string
		base string
		n    int
		want string
	}{
		{"zero exponent", "1.05", 0, "1"},
		{"one", "1.05", 1, "1.05"},
		{"exact twelfth power", "1.01", 12, "1.126825030131969720661201"},
		{"cube", "1.02", 3, "1.061208"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PowInt(d(tt.base), tt.n); !got.Equal(d(tt.want)) {
				t.Errorf("PowInt(%s, %d) = %s, want %s", tt.base, tt.n, got, tt.want)
			}
		})
	}
}

func TestPowInt_LargeExponentStaysBounded(t *testing.T) {
	got := PowInt(d("1.000333333333333333333333"), 10800)
	if got.Exponent() < -RateScale {
		t.Errorf("PowInt kept %d decimal places, want at most %d", -got.Exponent(), RateScale)
	}
	if !got.GreaterThan(One) {
		t.Errorf("PowInt result %s should exceed 1", got)
	}
}

func TestPowInt_NegativePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("PowInt with a negative exponent did not panic")
		}
	}()
	PowInt(One, -1)
}

// ---------------------------------------------------------------------------
// Split
// ---------------------------------------------------------------------------

func TestSplit(t *testing.T) {
	tests := []struct {
		name        string
		total       string
		n           int
		wantRegular string
		wantLast    string
	}{
		{"even", "10750", 4, "2687.5", "2687.5"},
		{"remainder goes last", "100", 3, "33.33", "33.34"},
		{"half-up regular", "2", 3, "0.67", "0.66"},
		{"floored when half-up over-collects", "100", 360, "0.27", "3.07"},
		{"single part", "99.99", 1, "99.99", "99.99"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			regular, last := Split(d(tt.total), tt.n)
			if !regular.Equal(d(tt.wantRegular)) {
				t.Errorf("regular = %s, want %s", regular, tt.wantRegular)
			}
			if !last.Equal(d(tt.wantLast)) {
				t.Errorf("last = %s, want %s", last, tt.wantLast)
			}
			sum := regular.Mul(decimal.NewFromInt(int64(tt.n - 1))).Add(last)
			if !sum.Equal(d(tt.total)) {
				t.Errorf("parts sum to %s, want %s", sum, tt.total)
			}
		})
	}
}

func TestSplit_ZeroPartsPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Split into zero parts did not panic")
		}
	}()
	Split(d("1"), 0)
}

// ---------------------------------------------------------------------------
// Amount
// ---------------------------------------------------------------------------

func TestAmount_MarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2687.5", "2687.50"},
		{"10750", "10750.00"},
		{"107.499", "107.50"},
		{"0", "0.00"},
	}
	for _, tt := range tests {
		b, err := json.Marshal(NewAmount(d(tt.in)))
		if err != nil {
			t.Fatalf("Marshal(%s): %v", tt.in, err)
		}
		if string(b) != tt.want {
			t.Errorf("Marshal(%s) = %s, want %s", tt.in, b, tt.want)
		}
	}
}

func TestAmount_UnmarshalJSON(t *testing.T) {
	var payload struct {
		Number Amount `json:"number"`
		Quoted Amount `json:"quoted"`
	}
	if err := json.Unmarshal([]byte(`{"number": 10000.25, "quoted": "2687.505"}`), &payload); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !payload.Number.Decimal().Equal(d("10000.25")) {
		t.Errorf("number = %s, want 10000.25", payload.Number.Decimal())
	}
	// Input precision is preserved so callers can reject sub-cent values.
	if !payload.Quoted.Decimal().Equal(d("2687.505")) {
		t.Errorf("quoted = %s, want 2687.505", payload.Quoted.Decimal())
	}
}

func TestAmount_UnmarshalJSON_Invalid(t *testing.T) {
	var a Amount
	if err := json.Unmarshal([]byte(`"ten"`), &a); err == nil {
		t.Error("expected error for non-numeric amount")
	}
}

func TestParseAmount(t *testing.T) {
	a, err := ParseAmount("2687.50")
	if err != nil {
		t.Fatalf("ParseAmount: %v", err)
	}
	if a.String() != "2687.50" {
		t.Errorf("String() = %q, want 2687.50", a.String())
	}
	if _, err := ParseAmount("abc"); err == nil {
		t.Error("expected error for invalid amount string")
	}
}
