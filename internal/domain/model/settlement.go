package model

import "github.com/shopspring/decimal"

// SettlementQuote prices paying off a loan early, after PaymentsMade
// installments. The interest share of every unpaid installment is rebated.
type SettlementQuote struct {
	PaymentsMade       int
	PaymentsRemaining  int
	OutstandingAmount  decimal.Decimal
	InterestRebate     decimal.Decimal
	RemainingPrincipal decimal.Decimal
	TotalDue           decimal.Decimal
}
