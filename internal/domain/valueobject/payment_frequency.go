package valueobject

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownPaymentFrequency is returned when a frequency string is outside
// the supported set.
var ErrUnknownPaymentFrequency = errors.New("unknown payment frequency")

// ---------------------------------------------------------------------------
// PaymentFrequency – immutable value object
// ---------------------------------------------------------------------------

// PaymentFrequency is the cadence at which installments fall due.
type PaymentFrequency struct {
	value string
}

const (
	frequencyDaily    = "daily"
	frequencyWeekly   = "weekly"
	frequencyBiweekly = "biweekly"
	frequencyMonthly  = "monthly"
)

// DaysPerTermMonth is the 30-day month convention used to turn a term in
// months into a day count.
const DaysPerTermMonth = 30

var (
	PaymentFrequencyDaily    = PaymentFrequency{value: frequencyDaily}
	PaymentFrequencyWeekly   = PaymentFrequency{value: frequencyWeekly}
	PaymentFrequencyBiweekly = PaymentFrequency{value: frequencyBiweekly}
	PaymentFrequencyMonthly  = PaymentFrequency{value: frequencyMonthly}
)

var validPaymentFrequencies = map[string]PaymentFrequency{
	frequencyDaily:    PaymentFrequencyDaily,
	frequencyWeekly:   PaymentFrequencyWeekly,
	frequencyBiweekly: PaymentFrequencyBiweekly,
	frequencyMonthly:  PaymentFrequencyMonthly,
}

// NewPaymentFrequency creates a PaymentFrequency from its wire name.
func NewPaymentFrequency(s string) (PaymentFrequency, error) {
	v, ok := validPaymentFrequencies[s]
	if !ok {
		return PaymentFrequency{}, fmt.Errorf("%w: %q", ErrUnknownPaymentFrequency, s)
	}
	return v, nil
}

// String returns the wire name of the frequency.
func (f PaymentFrequency) String() string { return f.value }

// IsZero returns true if the frequency has not been initialised.
func (f PaymentFrequency) IsZero() bool { return f.value == "" }

// Equal returns true when both frequencies carry the same value.
func (f PaymentFrequency) Equal(other PaymentFrequency) bool {
	return f.value == other.value
}

// PaymentsPerMonth is the number of installments that fall in one term month.
func (f PaymentFrequency) PaymentsPerMonth() int {
	switch f.value {
	case frequencyDaily:
		return DaysPerTermMonth
	case frequencyWeekly:
		return 4
	case frequencyBiweekly:
		return 2
	case frequencyMonthly:
		return 1
	default:
		return 0
	}
}

// NumPayments derives the installment count for a term of termMonths.
//
//	daily    -> termMonths * 30
//	weekly   -> termMonths * 4
//	biweekly -> ceil(termMonths * 30 / 14)
//	monthly  -> termMonths
func (f PaymentFrequency) NumPayments(termMonths int) int {
	if termMonths <= 0 {
		return 0
	}
	switch f.value {
	case frequencyDaily:
		return termMonths * DaysPerTermMonth
	case frequencyWeekly:
		return termMonths * 4
	case frequencyBiweekly:
		days := termMonths * DaysPerTermMonth
		return (days + 13) / 14
	case frequencyMonthly:
		return termMonths
	default:
		return 0
	}
}

// DefaultGracePeriodDays is the grace period of a penalty assessment that
// names a frequency but no grace period.
func (f PaymentFrequency) DefaultGracePeriodDays() int {
	switch f.value {
	case frequencyWeekly:
		return 1
	case frequencyBiweekly:
		return 2
	case frequencyMonthly:
		return 3
	default:
		return 0
	}
}

// DueDate returns the due date of installment number period (1-indexed)
// for a loan disbursed on start. Dates are computed from start rather than
// from the previous due date, so monthly schedules return to the original
// day of month after a short month.
func (f PaymentFrequency) DueDate(start time.Time, period int) time.Time {
	switch f.value {
	case frequencyDaily:
		return start.AddDate(0, 0, period)
	case frequencyWeekly:
		return start.AddDate(0, 0, 7*period)
	case frequencyBiweekly:
		return start.AddDate(0, 0, 14*period)
	default:
		return AddMonthsClamped(start, period)
	}
}

// AddMonthsClamped adds months to t, clamping the day to the last valid day
// of the target month (Jan 31 + 1 month = Feb 28 or 29).
func AddMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	firstOfTarget := time.Date(year, month+time.Month(months), 1,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	return firstOfTarget.AddDate(0, 0, day-1)
}
