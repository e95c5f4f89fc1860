package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/bibbank/loancalc/internal/domain/model"
	"github.com/bibbank/loancalc/internal/domain/valueobject"
	"github.com/bibbank/loancalc/pkg/money"
)

// Calculator prices the interest, fees and installments of a loan request.
// It is stateless and safe for concurrent use.
type Calculator struct{}

// NewCalculator creates a Calculator.
func NewCalculator() *Calculator {
	return &Calculator{}
}

// Compute validates req and returns its calculation result. Invalid requests
// yield a *model.ValidationError and no partial result.
func (c *Calculator) Compute(req model.CalculationRequest) (model.CalculationResult, error) {
	if err := req.Validate(); err != nil {
		return model.CalculationResult{}, err
	}
	scheme, err := schemeFor(req.InterestType)
	if err != nil {
		return model.CalculationResult{}, err
	}

	terms := termsOf(req)
	n := decimal.NewFromInt(int64(terms.numPayments))

	interest := money.Round(scheme.totalInterest(terms))
	processingFee := money.Round(money.PercentOf(req.LoanAmount, req.ProcessingFeePercentage))
	platformFee := money.Round(req.PlatformFee.Mul(decimal.NewFromInt(int64(req.TermMonths))))

	// Charges taken in advance shrink the proceeds; fees not taken in advance
	// are repaid with the installments. Interest is repaid either way.
	advance := decimal.Zero
	financedFees := decimal.Zero
	if req.DeductProcessingFeeInAdvance {
		advance = advance.Add(processingFee)
	} else {
		financedFees = financedFees.Add(processingFee)
	}
	if req.DeductPlatformFeeInAdvance {
		advance = advance.Add(platformFee)
	} else {
		financedFees = financedFees.Add(platformFee)
	}
	if req.DeductInterestInAdvance {
		advance = advance.Add(interest)
	}

	netProceeds := decimal.Max(decimal.Zero, req.LoanAmount.Sub(advance))
	totalRepayable := req.LoanAmount.Add(interest).Add(financedFees)
	installment := money.Round(money.Div(totalRepayable, n))

	effectiveRate := money.Round(
		money.Div(totalRepayable.Sub(req.LoanAmount), req.LoanAmount).Mul(money.Hundred),
	)

	var monthlyEquivalent *decimal.Decimal
	if !req.PaymentFrequency.Equal(valueobject.PaymentFrequencyMonthly) {
		m := money.Round(installment.Mul(decimal.NewFromInt(int64(terms.perMonth))))
		monthlyEquivalent = &m
	}

	return model.CalculationResult{
		LoanAmount:            req.LoanAmount,
		TermMonths:            req.TermMonths,
		PaymentFrequency:      req.PaymentFrequency,
		InterestType:          req.InterestType,
		InterestAmount:        interest,
		ProcessingFeeAmount:   processingFee,
		PlatformFee:           platformFee,
		TotalDeductions:       interest.Add(processingFee).Add(platformFee),
		NetProceeds:           netProceeds,
		TotalRepayable:        totalRepayable,
		NumPayments:           terms.numPayments,
		InstallmentAmount:     installment,
		EffectiveInterestRate: effectiveRate,
		GracePeriodDays:       req.GracePeriodDays,
		LatePenaltyPercentage: req.LatePenaltyPercentage,
		PenaltyPerDay:         money.Round(money.PercentOf(installment, req.LatePenaltyPercentage)),
		MonthlyEquivalent:     monthlyEquivalent,
	}, nil
}

// mustMatch reports ErrResultMismatch when result was not computed from req.
func mustMatch(req model.CalculationRequest, result model.CalculationResult) error {
	switch {
	case !result.LoanAmount.Equal(req.LoanAmount),
		result.TermMonths != req.TermMonths,
		!result.PaymentFrequency.Equal(req.PaymentFrequency),
		!result.InterestType.Equal(req.InterestType),
		result.NumPayments != req.PaymentFrequency.NumPayments(req.TermMonths):
		return fmt.Errorf("%w: result for %s over %d months does not fit request for %s over %d months",
			model.ErrResultMismatch, result.LoanAmount, result.TermMonths, req.LoanAmount, req.TermMonths)
	}
	return nil
}
