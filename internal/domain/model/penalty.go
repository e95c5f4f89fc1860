package model

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bibbank/loancalc/pkg/money"
)

// PenaltyInput carries everything needed to price one late installment.
// MaxPenaltyPercentage caps the penalty at that share of the installment;
// zero leaves it uncapped.
type PenaltyInput struct {
	InstallmentAmount     decimal.Decimal
	LatePenaltyPercentage decimal.Decimal
	GracePeriodDays       int
	DaysLate              int
	MaxPenaltyPercentage  decimal.Decimal
}

// Validate returns the first violated constraint as a *ValidationError.
func (in PenaltyInput) Validate() error {
	switch {
	case in.InstallmentAmount.IsNegative():
		return NewValidationError(CodeInvalidAmount, "installmentAmount", "must not be negative, got %s", in.InstallmentAmount)
	case !money.IsCents(in.InstallmentAmount):
		return NewValidationError(CodeInvalidAmount, "installmentAmount", "must have at most two decimal places, got %s", in.InstallmentAmount)
	case in.LatePenaltyPercentage.IsNegative():
		return NewValidationError(CodeInvalidRate, "latePenaltyPercentage", "must not be negative, got %s", in.LatePenaltyPercentage)
	case in.MaxPenaltyPercentage.IsNegative():
		return NewValidationError(CodeInvalidRate, "maxPenaltyPercentage", "must not be negative, got %s", in.MaxPenaltyPercentage)
	case in.GracePeriodDays < 0:
		return NewValidationError(CodeInvalidGracePeriod, "gracePeriodDays", "must not be negative, got %d", in.GracePeriodDays)
	case in.DaysLate < 0:
		return NewValidationError(CodeInvalidLateDays, "daysLate", "must not be negative, got %d", in.DaysLate)
	}
	return nil
}

// PenaltyResult is the priced late fee for one installment.
type PenaltyResult struct {
	InstallmentAmount     decimal.Decimal
	LatePenaltyPercentage decimal.Decimal
	DaysLate              int
	GracePeriodDays       int
	EffectiveLateDays     int
	PenaltyAmount         decimal.Decimal
	TotalDue              decimal.Decimal
	Capped                bool
}

// DaysLateBetween counts the started days between dueDate and paymentDate,
// rounding partial days up. Payments on or before the due date are 0 days late.
func DaysLateBetween(dueDate, paymentDate time.Time) int {
	diff := paymentDate.Sub(dueDate)
	if diff <= 0 {
		return 0
	}
	return int(math.Ceil(diff.Hours() / 24))
}
