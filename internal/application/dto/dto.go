package dto

import (
	"github.com/shopspring/decimal"

	"github.com/bibbank/loancalc/pkg/money"
)

// DateLayout is the wire form of calendar dates.
const DateLayout = "2006-01-02"

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// CalculateLoanRequest carries the parameters of a loan calculation. Decimal
// fields accept JSON numbers or quoted decimal strings. An omitted
// GracePeriodDays is 0.
type CalculateLoanRequest struct {
	LoanAmount                   decimal.Decimal `json:"loanAmount"`
	TermMonths                   int             `json:"termMonths"`
	PaymentFrequency             string          `json:"paymentFrequency"`
	InterestRate                 decimal.Decimal `json:"interestRate"`
	InterestType                 string          `json:"interestType"`
	ProcessingFeePercentage      decimal.Decimal `json:"processingFeePercentage"`
	PlatformFee                  decimal.Decimal `json:"platformFee"`
	LatePenaltyPercentage        decimal.Decimal `json:"latePenaltyPercentage"`
	GracePeriodDays              *int            `json:"gracePeriodDays,omitempty"`
	DeductPlatformFeeInAdvance   bool            `json:"deductPlatformFeeInAdvance"`
	DeductProcessingFeeInAdvance bool            `json:"deductProcessingFeeInAdvance"`
	DeductInterestInAdvance      bool            `json:"deductInterestInAdvance"`
	DisbursementDate             string          `json:"disbursementDate,omitempty"`
}

// CalculatePenaltyRequest prices one late installment. Lateness is given
// either as DaysLate or as DueDate plus PaymentDate (default today).
type CalculatePenaltyRequest struct {
	InstallmentAmount     decimal.Decimal `json:"installmentAmount"`
	LatePenaltyPercentage decimal.Decimal `json:"latePenaltyPercentage"`
	GracePeriodDays       *int            `json:"gracePeriodDays,omitempty"`
	PaymentFrequency      string          `json:"paymentFrequency,omitempty"`
	DaysLate              *int            `json:"daysLate,omitempty"`
	DueDate               string          `json:"dueDate,omitempty"`
	PaymentDate           string          `json:"paymentDate,omitempty"`
	MaxPenaltyPercentage  decimal.Decimal `json:"maxPenaltyPercentage"`
}

// QuoteSettlementRequest asks for the early payoff of a loan after
// PaymentsMade installments.
type QuoteSettlementRequest struct {
	CalculateLoanRequest
	PaymentsMade int `json:"paymentsMade"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// CalculationResponse is the outcome of a loan calculation.
type CalculationResponse struct {
	QuoteID     string            `json:"quoteId"`
	Calculation CalculationResult `json:"calculation"`
	Schedule    []ScheduleItem    `json:"schedule"`
}

// CalculationResult is the external representation of a calculation result.
type CalculationResult struct {
	LoanAmount            money.Amount    `json:"loanAmount"`
	TermMonths            int             `json:"termMonths"`
	PaymentFrequency      string          `json:"paymentFrequency"`
	InterestType          string          `json:"interestType"`
	InterestAmount        money.Amount    `json:"interestAmount"`
	ProcessingFeeAmount   money.Amount    `json:"processingFeeAmount"`
	PlatformFee           money.Amount    `json:"platformFee"`
	TotalDeductions       money.Amount    `json:"totalDeductions"`
	NetProceeds           money.Amount    `json:"netProceeds"`
	TotalRepayable        money.Amount    `json:"totalRepayable"`
	NumPayments           int             `json:"numPayments"`
	InstallmentAmount     money.Amount    `json:"installmentAmount"`
	EffectiveInterestRate money.Amount    `json:"effectiveInterestRate"`
	GracePeriodDays       int             `json:"gracePeriodDays"`
	LatePenaltyPercentage decimal.Decimal `json:"latePenaltyPercentage"`
	PenaltyPerDay         money.Amount    `json:"penaltyPerDay"`
	MonthlyEquivalent     *money.Amount   `json:"monthlyEquivalent,omitempty"`
}

// ScheduleItem represents a single installment of a repayment schedule.
type ScheduleItem struct {
	PaymentNumber     int          `json:"paymentNumber"`
	DueDate           string       `json:"dueDate"`
	InstallmentAmount money.Amount `json:"installmentAmount"`
	Principal         money.Amount `json:"principal"`
	Interest          money.Amount `json:"interest"`
	RemainingBalance  money.Amount `json:"remainingBalance"`
	CumulativePaid    money.Amount `json:"cumulativePaid"`
}

// PenaltyResponse is the priced late fee of one installment.
type PenaltyResponse struct {
	AssessmentID          string          `json:"assessmentId"`
	InstallmentAmount     money.Amount    `json:"installmentAmount"`
	LatePenaltyPercentage decimal.Decimal `json:"latePenaltyPercentage"`
	DaysLate              int             `json:"daysLate"`
	GracePeriodDays       int             `json:"gracePeriodDays"`
	EffectiveLateDays     int             `json:"effectiveLateDays"`
	PenaltyAmount         money.Amount    `json:"penaltyAmount"`
	TotalDue              money.Amount    `json:"totalDue"`
	Capped                bool            `json:"capped"`
}

// SettlementResponse is an early payoff quote.
type SettlementResponse struct {
	PaymentsMade       int          `json:"paymentsMade"`
	PaymentsRemaining  int          `json:"paymentsRemaining"`
	InstallmentAmount  money.Amount `json:"installmentAmount"`
	OutstandingAmount  money.Amount `json:"outstandingAmount"`
	InterestRebate     money.Amount `json:"interestRebate"`
	RemainingPrincipal money.Amount `json:"remainingPrincipal"`
	TotalDue           money.Amount `json:"totalDue"`
}
