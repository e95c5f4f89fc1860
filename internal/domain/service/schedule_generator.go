package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bibbank/loancalc/internal/domain/model"
	"github.com/bibbank/loancalc/pkg/money"
)

// ScheduleGenerator expands a calculation result into its installments.
type ScheduleGenerator struct {
	now func() time.Time
}

// NewScheduleGenerator creates a ScheduleGenerator. now supplies "today" for
// requests without a disbursement date; nil means time.Now.
func NewScheduleGenerator(now func() time.Time) *ScheduleGenerator {
	if now == nil {
		now = time.Now
	}
	return &ScheduleGenerator{now: now}
}

// Generate returns the NumPayments installments of result in payment order.
//
// Installments sum exactly to TotalRepayable, the last one absorbing the
// rounding remainder. Principal shares sum to the loan amount plus financed
// fees and interest shares sum to InterestAmount, so the final remaining
// balance is always zero. No row carries negative principal or interest:
// interest shares are capped by the interest not yet allocated, so per-row
// rounding drift on long reducing schedules ends in a smaller tail of
// interest rather than a negative final share.
func (g *ScheduleGenerator) Generate(req model.CalculationRequest, result model.CalculationResult) ([]model.ScheduleItem, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := mustMatch(req, result); err != nil {
		return nil, err
	}
	scheme, err := schemeFor(req.InterestType)
	if err != nil {
		return nil, err
	}

	n := result.NumPayments
	start := g.startDate(req.DisbursementDate)
	regular, last := money.Split(result.TotalRepayable, n)

	balance := result.TotalRepayable.Sub(result.InterestAmount)
	financedFees := balance.Sub(req.LoanAmount)
	alloc := scheme.allocator(termsOf(req), result.InterestAmount, financedFees)

	items := make([]model.ScheduleItem, 0, n)
	cumulative := decimal.Zero
	interestLeft := result.InterestAmount
	for k := 1; k <= n; k++ {
		installment := regular
		var principal, interest decimal.Decimal
		if k == n {
			installment = last
			principal = balance
			interest = installment.Sub(principal)
		} else {
			interest = clamp(alloc.share(), decimal.Zero, interestLeft)
			principal = installment.Sub(interest)
			if principal.GreaterThan(balance) {
				principal = balance
			}
			if principal.IsNegative() {
				principal = decimal.Zero
			}
			interest = installment.Sub(principal)
			interestLeft = interestLeft.Sub(interest)
			alloc.repaid(principal)
		}
		balance = balance.Sub(principal)
		cumulative = cumulative.Add(installment)

		items = append(items, model.ScheduleItem{
			PaymentNumber:     k,
			DueDate:           req.PaymentFrequency.DueDate(start, k),
			InstallmentAmount: installment,
			Principal:         principal,
			Interest:          interest,
			RemainingBalance:  balance,
			CumulativePaid:    cumulative,
		})
	}
	return items, nil
}

func clamp(d, lo, hi decimal.Decimal) decimal.Decimal {
	return decimal.Max(lo, decimal.Min(d, hi))
}

// startDate keeps the calendar date of t (or of today) at UTC midnight.
func (g *ScheduleGenerator) startDate(t time.Time) time.Time {
	if t.IsZero() {
		t = g.now().UTC()
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
