package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bibbank/loancalc/internal/domain/valueobject"
	"github.com/bibbank/loancalc/pkg/money"
)

// ---------------------------------------------------------------------------
// CalculationRequest
// ---------------------------------------------------------------------------

// MaxTermMonths bounds TermMonths. A daily loan at the maximum term has
// 10800 installments.
const MaxTermMonths = 360

// CalculationRequest is the immutable input of a loan calculation.
//
// InterestRate is a nominal percentage per term month. PlatformFee is a fixed
// amount charged per month of term. The Deduct* flags choose whether each
// charge is taken from the disbursed proceeds (true) or repaid with the
// installments (false). A zero DisbursementDate means "today".
type CalculationRequest struct {
	LoanAmount                   decimal.Decimal
	TermMonths                   int
	PaymentFrequency             valueobject.PaymentFrequency
	InterestRate                 decimal.Decimal
	InterestType                 valueobject.InterestType
	ProcessingFeePercentage      decimal.Decimal
	PlatformFee                  decimal.Decimal
	LatePenaltyPercentage        decimal.Decimal
	GracePeriodDays              int
	DeductPlatformFeeInAdvance   bool
	DeductProcessingFeeInAdvance bool
	DeductInterestInAdvance      bool
	DisbursementDate             time.Time
}

// Validate checks every field in a fixed order and returns the first
// violation as a *ValidationError. It never adjusts a value.
func (r CalculationRequest) Validate() error {
	switch {
	case !r.LoanAmount.IsPositive():
		return NewValidationError(CodeInvalidAmount, "loanAmount", "must be greater than zero, got %s", r.LoanAmount)
	case !money.IsCents(r.LoanAmount):
		return NewValidationError(CodeInvalidAmount, "loanAmount", "must have at most two decimal places, got %s", r.LoanAmount)
	case r.TermMonths < 1:
		return NewValidationError(CodeInvalidTerm, "termMonths", "must be at least 1, got %d", r.TermMonths)
	case r.TermMonths > MaxTermMonths:
		return NewValidationError(CodeInvalidTerm, "termMonths", "must be at most %d, got %d", MaxTermMonths, r.TermMonths)
	case r.PaymentFrequency.IsZero():
		return NewValidationError(CodeInvalidFrequency, "paymentFrequency", "must be one of daily, weekly, biweekly, monthly")
	case r.InterestType.IsZero():
		return NewValidationError(CodeInvalidInterestType, "interestType", "must be one of flat, reducing, compound")
	case r.InterestRate.IsNegative():
		return NewValidationError(CodeInvalidRate, "interestRate", "must not be negative, got %s", r.InterestRate)
	case r.ProcessingFeePercentage.IsNegative():
		return NewValidationError(CodeInvalidRate, "processingFeePercentage", "must not be negative, got %s", r.ProcessingFeePercentage)
	case r.PlatformFee.IsNegative():
		return NewValidationError(CodeInvalidFee, "platformFee", "must not be negative, got %s", r.PlatformFee)
	case !money.IsCents(r.PlatformFee):
		return NewValidationError(CodeInvalidFee, "platformFee", "must have at most two decimal places, got %s", r.PlatformFee)
	case r.LatePenaltyPercentage.IsNegative():
		return NewValidationError(CodeInvalidRate, "latePenaltyPercentage", "must not be negative, got %s", r.LatePenaltyPercentage)
	case r.GracePeriodDays < 0:
		return NewValidationError(CodeInvalidGracePeriod, "gracePeriodDays", "must not be negative, got %d", r.GracePeriodDays)
	}
	if r.PaymentFrequency.NumPayments(r.TermMonths) <= 0 {
		return NewValidationError(CodeInvalidTerm, "termMonths", "yields zero payments for %s frequency", r.PaymentFrequency)
	}
	return nil
}

// ---------------------------------------------------------------------------
// CalculationResult
// ---------------------------------------------------------------------------

// CalculationResult is the aggregate outcome of a calculation. Every amount
// is rounded to whole cents. MonthlyEquivalent is nil for monthly loans.
type CalculationResult struct {
	LoanAmount            decimal.Decimal
	TermMonths            int
	PaymentFrequency      valueobject.PaymentFrequency
	InterestType          valueobject.InterestType
	InterestAmount        decimal.Decimal
	ProcessingFeeAmount   decimal.Decimal
	PlatformFee           decimal.Decimal
	TotalDeductions       decimal.Decimal
	NetProceeds           decimal.Decimal
	TotalRepayable        decimal.Decimal
	NumPayments           int
	InstallmentAmount     decimal.Decimal
	EffectiveInterestRate decimal.Decimal
	GracePeriodDays       int
	LatePenaltyPercentage decimal.Decimal
	PenaltyPerDay         decimal.Decimal
	MonthlyEquivalent     *decimal.Decimal
}

// ---------------------------------------------------------------------------
// ScheduleItem
// ---------------------------------------------------------------------------

// ScheduleItem is one installment of a repayment schedule. Principal covers
// the loan amount plus any fees repaid with the installments; Interest is the
// interest share of the installment.
type ScheduleItem struct {
	PaymentNumber     int
	DueDate           time.Time
	InstallmentAmount decimal.Decimal
	Principal         decimal.Decimal
	Interest          decimal.Decimal
	RemainingBalance  decimal.Decimal
	CumulativePaid    decimal.Decimal
}
