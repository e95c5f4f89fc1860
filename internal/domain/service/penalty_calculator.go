package service

import (
	"github.com/shopspring/decimal"

	"github.com/bibbank/loancalc/internal/domain/model"
	"github.com/bibbank/loancalc/pkg/money"
)

// PenaltyCalculator prices late installments.
type PenaltyCalculator struct{}

// NewPenaltyCalculator creates a PenaltyCalculator.
func NewPenaltyCalculator() *PenaltyCalculator {
	return &PenaltyCalculator{}
}

// Compute charges LatePenaltyPercentage of the installment for every day late
// beyond the grace period. A positive MaxPenaltyPercentage caps the charge.
func (c *PenaltyCalculator) Compute(in model.PenaltyInput) (model.PenaltyResult, error) {
	if err := in.Validate(); err != nil {
		return model.PenaltyResult{}, err
	}

	effectiveDays := in.DaysLate - in.GracePeriodDays
	if effectiveDays < 0 {
		effectiveDays = 0
	}

	penalty := money.Round(
		money.PercentOf(in.InstallmentAmount, in.LatePenaltyPercentage).Mul(decimal.NewFromInt(int64(effectiveDays))),
	)
	capped := false
	if in.MaxPenaltyPercentage.IsPositive() {
		ceiling := money.Round(money.PercentOf(in.InstallmentAmount, in.MaxPenaltyPercentage))
		if penalty.GreaterThan(ceiling) {
			penalty = ceiling
			capped = true
		}
	}

	return model.PenaltyResult{
		InstallmentAmount:     in.InstallmentAmount,
		LatePenaltyPercentage: in.LatePenaltyPercentage,
		DaysLate:              in.DaysLate,
		GracePeriodDays:       in.GracePeriodDays,
		EffectiveLateDays:     effectiveDays,
		PenaltyAmount:         penalty,
		TotalDue:              in.InstallmentAmount.Add(penalty),
		Capped:                capped,
	}, nil
}
