package usecase

import (
	"strings"
	"time"

	"github.com/bibbank/loancalc/internal/application/dto"
	"github.com/bibbank/loancalc/internal/domain/model"
	"github.com/bibbank/loancalc/internal/domain/valueobject"
	"github.com/bibbank/loancalc/pkg/money"
)

// toCalculationRequest maps the wire request onto the domain request.
// Unknown frequency or interest type names stay zero and are reported by
// model validation in its usual field order.
func toCalculationRequest(req dto.CalculateLoanRequest) (model.CalculationRequest, error) {
	freq, _ := valueobject.NewPaymentFrequency(normalize(req.PaymentFrequency))
	interestType, _ := valueobject.NewInterestType(normalize(req.InterestType))

	disbursed, err := parseDate("disbursementDate", req.DisbursementDate)
	if err != nil {
		return model.CalculationRequest{}, err
	}

	grace := 0
	if req.GracePeriodDays != nil {
		grace = *req.GracePeriodDays
	}

	return model.CalculationRequest{
		LoanAmount:                   req.LoanAmount,
		TermMonths:                   req.TermMonths,
		PaymentFrequency:             freq,
		InterestRate:                 req.InterestRate,
		InterestType:                 interestType,
		ProcessingFeePercentage:      req.ProcessingFeePercentage,
		PlatformFee:                  req.PlatformFee,
		LatePenaltyPercentage:        req.LatePenaltyPercentage,
		GracePeriodDays:              grace,
		DeductPlatformFeeInAdvance:   req.DeductPlatformFeeInAdvance,
		DeductProcessingFeeInAdvance: req.DeductProcessingFeeInAdvance,
		DeductInterestInAdvance:      req.DeductInterestInAdvance,
		DisbursementDate:             disbursed,
	}, nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// parseDate accepts a calendar date or an RFC 3339 timestamp. An empty string
// yields the zero time.
func parseDate(field, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(dto.DateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, model.NewValidationError(model.CodeInvalidDate, field,
		"must be a YYYY-MM-DD date or RFC 3339 timestamp, got %q", s)
}

func toCalculationResult(r model.CalculationResult) dto.CalculationResult {
	out := dto.CalculationResult{
		LoanAmount:            money.NewAmount(r.LoanAmount),
		TermMonths:            r.TermMonths,
		PaymentFrequency:      r.PaymentFrequency.String(),
		InterestType:          r.InterestType.String(),
		InterestAmount:        money.NewAmount(r.InterestAmount),
		ProcessingFeeAmount:   money.NewAmount(r.ProcessingFeeAmount),
		PlatformFee:           money.NewAmount(r.PlatformFee),
		TotalDeductions:       money.NewAmount(r.TotalDeductions),
		NetProceeds:           money.NewAmount(r.NetProceeds),
		TotalRepayable:        money.NewAmount(r.TotalRepayable),
		NumPayments:           r.NumPayments,
		InstallmentAmount:     money.NewAmount(r.InstallmentAmount),
		EffectiveInterestRate: money.NewAmount(r.EffectiveInterestRate),
		GracePeriodDays:       r.GracePeriodDays,
		LatePenaltyPercentage: r.LatePenaltyPercentage,
		PenaltyPerDay:         money.NewAmount(r.PenaltyPerDay),
	}
	if r.MonthlyEquivalent != nil {
		m := money.NewAmount(*r.MonthlyEquivalent)
		out.MonthlyEquivalent = &m
	}
	return out
}

func toSchedule(items []model.ScheduleItem) []dto.ScheduleItem {
	out := make([]dto.ScheduleItem, 0, len(items))
	for _, it := range items {
		out = append(out, dto.ScheduleItem{
			PaymentNumber:     it.PaymentNumber,
			DueDate:           it.DueDate.Format(dto.DateLayout),
			InstallmentAmount: money.NewAmount(it.InstallmentAmount),
			Principal:         money.NewAmount(it.Principal),
			Interest:          money.NewAmount(it.Interest),
			RemainingBalance:  money.NewAmount(it.RemainingBalance),
			CumulativePaid:    money.NewAmount(it.CumulativePaid),
		})
	}
	return out
}

func toPenaltyResponse(id string, r model.PenaltyResult) dto.PenaltyResponse {
	return dto.PenaltyResponse{
		AssessmentID:          id,
		InstallmentAmount:     money.NewAmount(r.InstallmentAmount),
		LatePenaltyPercentage: r.LatePenaltyPercentage,
		DaysLate:              r.DaysLate,
		GracePeriodDays:       r.GracePeriodDays,
		EffectiveLateDays:     r.EffectiveLateDays,
		PenaltyAmount:         money.NewAmount(r.PenaltyAmount),
		TotalDue:              money.NewAmount(r.TotalDue),
		Capped:                r.Capped,
	}
}

func toSettlementResponse(installment money.Amount, q model.SettlementQuote) dto.SettlementResponse {
	return dto.SettlementResponse{
		PaymentsMade:       q.PaymentsMade,
		PaymentsRemaining:  q.PaymentsRemaining,
		InstallmentAmount:  installment,
		OutstandingAmount:  money.NewAmount(q.OutstandingAmount),
		InterestRebate:     money.NewAmount(q.InterestRebate),
		RemainingPrincipal: money.NewAmount(q.RemainingPrincipal),
		TotalDue:           money.NewAmount(q.TotalDue),
	}
}
