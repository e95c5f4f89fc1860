package service

import (
	"github.com/shopspring/decimal"

	"github.com/bibbank/loancalc/internal/domain/model"
)

// SettlementCalculator quotes early payoff of a scheduled loan.
type SettlementCalculator struct{}

// NewSettlementCalculator creates a SettlementCalculator.
func NewSettlementCalculator() *SettlementCalculator {
	return &SettlementCalculator{}
}

// Quote prices settling schedule after paymentsMade installments. The unpaid
// installments are due less their interest shares, which leaves exactly the
// remaining principal.
func (c *SettlementCalculator) Quote(schedule []model.ScheduleItem, paymentsMade int) (model.SettlementQuote, error) {
	if paymentsMade < 0 || paymentsMade > len(schedule) {
		return model.SettlementQuote{}, model.NewValidationError(model.CodeInvalidPaymentsMade, "paymentsMade",
			"must be between 0 and %d, got %d", len(schedule), paymentsMade)
	}

	outstanding := decimal.Zero
	rebate := decimal.Zero
	for _, item := range schedule[paymentsMade:] {
		outstanding = outstanding.Add(item.InstallmentAmount)
		rebate = rebate.Add(item.Interest)
	}

	remaining := decimal.Zero
	switch {
	case paymentsMade > 0:
		remaining = schedule[paymentsMade-1].RemainingBalance
	case len(schedule) > 0:
		remaining = schedule[0].RemainingBalance.Add(schedule[0].Principal)
	}

	return model.SettlementQuote{
		PaymentsMade:       paymentsMade,
		PaymentsRemaining:  len(schedule) - paymentsMade,
		OutstandingAmount:  outstanding,
		InterestRebate:     rebate,
		RemainingPrincipal: remaining,
		TotalDue:           outstanding.Sub(rebate),
	}, nil
}
