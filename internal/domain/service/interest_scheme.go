package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/bibbank/loancalc/internal/domain/model"
	"github.com/bibbank/loancalc/internal/domain/valueobject"
	"github.com/bibbank/loancalc/pkg/money"
)

// loanTerms are the request values every interest scheme works from.
type loanTerms struct {
	principal   decimal.Decimal
	monthlyRate decimal.Decimal // ratio per term month, 0.05 for 5%
	termMonths  int
	numPayments int
	perMonth    int
}

func termsOf(req model.CalculationRequest) loanTerms {
	return loanTerms{
		principal:   req.LoanAmount,
		monthlyRate: money.Ratio(req.InterestRate),
		termMonths:  req.TermMonths,
		numPayments: req.PaymentFrequency.NumPayments(req.TermMonths),
		perMonth:    req.PaymentFrequency.PaymentsPerMonth(),
	}
}

// periodRate scales the monthly rate down to one payment period.
func (t loanTerms) periodRate() decimal.Decimal {
	return money.Div(t.monthlyRate, decimal.NewFromInt(int64(t.perMonth)))
}

// interestScheme is one way of charging interest. Each scheme prices the total
// interest of a loan and decides how that interest is spread over the
// installments of its schedule.
type interestScheme interface {
	totalInterest(t loanTerms) decimal.Decimal
	allocator(t loanTerms, interest, financedFees decimal.Decimal) interestAllocator
}

// interestAllocator hands out the interest share of each non-final
// installment. The final installment takes whatever interest is left.
type interestAllocator interface {
	share() decimal.Decimal
	repaid(principal decimal.Decimal)
}

var schemes = map[valueobject.InterestType]interestScheme{
	valueobject.InterestTypeFlat:     flatScheme{},
	valueobject.InterestTypeReducing: reducingScheme{},
	valueobject.InterestTypeCompound: compoundScheme{},
}

func schemeFor(t valueobject.InterestType) (interestScheme, error) {
	s, ok := schemes[t]
	if !ok {
		return nil, fmt.Errorf("no interest scheme for %q", t)
	}
	return s, nil
}

// ---------------------------------------------------------------------------
// flat: principal * rate * termMonths, spread evenly
// ---------------------------------------------------------------------------

type flatScheme struct{}

func (flatScheme) totalInterest(t loanTerms) decimal.Decimal {
	return t.principal.Mul(t.monthlyRate).Mul(decimal.NewFromInt(int64(t.termMonths)))
}

func (flatScheme) allocator(t loanTerms, interest, _ decimal.Decimal) interestAllocator {
	return newEvenAllocator(interest, t.numPayments)
}

// ---------------------------------------------------------------------------
// compound: monthly compounding over the term, spread evenly
// ---------------------------------------------------------------------------

type compoundScheme struct{}

func (compoundScheme) totalInterest(t loanTerms) decimal.Decimal {
	growth := money.PowInt(money.One.Add(t.monthlyRate), t.termMonths)
	return t.principal.Mul(growth).Sub(t.principal)
}

func (compoundScheme) allocator(t loanTerms, interest, _ decimal.Decimal) interestAllocator {
	return newEvenAllocator(interest, t.numPayments)
}

// ---------------------------------------------------------------------------
// reducing: fixed amortizing installment, interest on the outstanding balance
// ---------------------------------------------------------------------------

type reducingScheme struct{}

// amortizingInstallment solves P * r * (1+r)^n / ((1+r)^n - 1).
func amortizingInstallment(t loanTerms) decimal.Decimal {
	r := t.periodRate()
	if r.IsZero() {
		return money.Div(t.principal, decimal.NewFromInt(int64(t.numPayments)))
	}
	factor := money.PowInt(money.One.Add(r), t.numPayments)
	return money.Div(t.principal.Mul(r).Mul(factor), factor.Sub(money.One))
}

func (reducingScheme) totalInterest(t loanTerms) decimal.Decimal {
	if t.periodRate().IsZero() {
		return decimal.Zero
	}
	return amortizingInstallment(t).Mul(decimal.NewFromInt(int64(t.numPayments))).Sub(t.principal)
}

func (reducingScheme) allocator(t loanTerms, interest, financedFees decimal.Decimal) interestAllocator {
	if interest.IsZero() {
		return newEvenAllocator(interest, t.numPayments)
	}
	return &amortizingAllocator{
		rate:        t.periodRate(),
		loanBalance: t.principal,
		feeShare:    money.Div(financedFees, decimal.NewFromInt(int64(t.numPayments))),
	}
}

// ---------------------------------------------------------------------------
// Allocators
// ---------------------------------------------------------------------------

type evenAllocator struct {
	perInstallment decimal.Decimal
}

func newEvenAllocator(interest decimal.Decimal, n int) *evenAllocator {
	regular, _ := money.Split(interest, n)
	return &evenAllocator{perInstallment: regular}
}

func (a *evenAllocator) share() decimal.Decimal { return a.perInstallment }

func (a *evenAllocator) repaid(decimal.Decimal) {}

// amortizingAllocator charges interest on the loan balance only. Financed fees
// are repaid in equal shares and never bear interest.
type amortizingAllocator struct {
	rate        decimal.Decimal
	loanBalance decimal.Decimal
	feeShare    decimal.Decimal
}

func (a *amortizingAllocator) share() decimal.Decimal {
	return money.Round(a.loanBalance.Mul(a.rate))
}

func (a *amortizingAllocator) repaid(principal decimal.Decimal) {
	a.loanBalance = a.loanBalance.Sub(principal.Sub(a.feeShare))
}
