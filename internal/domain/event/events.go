package event

import (
	"github.com/shopspring/decimal"

	"github.com/bibbank/loancalc/internal/domain/model"
	"github.com/bibbank/loancalc/pkg/events"
)

// Event is an alias for the shared pkg/events.Event interface.
type Event = events.Event

const (
	TypeQuoteCalculated = "loancalc.quote.calculated"
	TypePenaltyAssessed = "loancalc.penalty.assessed"
)

// QuoteCalculated is raised when a loan calculation succeeds.
type QuoteCalculated struct {
	events.BaseEvent
	LoanAmount        decimal.Decimal `json:"loanAmount"`
	TermMonths        int             `json:"termMonths"`
	PaymentFrequency  string          `json:"paymentFrequency"`
	InterestType      string          `json:"interestType"`
	InterestAmount    decimal.Decimal `json:"interestAmount"`
	TotalDeductions   decimal.Decimal `json:"totalDeductions"`
	NetProceeds       decimal.Decimal `json:"netProceeds"`
	TotalRepayable    decimal.Decimal `json:"totalRepayable"`
	NumPayments       int             `json:"numPayments"`
	InstallmentAmount decimal.Decimal `json:"installmentAmount"`
}

func NewQuoteCalculated(quoteID string, r model.CalculationResult) QuoteCalculated {
	return QuoteCalculated{
		BaseEvent:         events.NewBaseEvent(TypeQuoteCalculated, quoteID),
		LoanAmount:        r.LoanAmount,
		TermMonths:        r.TermMonths,
		PaymentFrequency:  r.PaymentFrequency.String(),
		InterestType:      r.InterestType.String(),
		InterestAmount:    r.InterestAmount,
		TotalDeductions:   r.TotalDeductions,
		NetProceeds:       r.NetProceeds,
		TotalRepayable:    r.TotalRepayable,
		NumPayments:       r.NumPayments,
		InstallmentAmount: r.InstallmentAmount,
	}
}

// PenaltyAssessed is raised when a late installment has been priced.
type PenaltyAssessed struct {
	events.BaseEvent
	InstallmentAmount decimal.Decimal `json:"installmentAmount"`
	EffectiveLateDays int             `json:"effectiveLateDays"`
	PenaltyAmount     decimal.Decimal `json:"penaltyAmount"`
	TotalDue          decimal.Decimal `json:"totalDue"`
	Capped            bool            `json:"capped"`
}

func NewPenaltyAssessed(assessmentID string, r model.PenaltyResult) PenaltyAssessed {
	return PenaltyAssessed{
		BaseEvent:         events.NewBaseEvent(TypePenaltyAssessed, assessmentID),
		InstallmentAmount: r.InstallmentAmount,
		EffectiveLateDays: r.EffectiveLateDays,
		PenaltyAmount:     r.PenaltyAmount,
		TotalDue:          r.TotalDue,
		Capped:            r.Capped,
	}
}
