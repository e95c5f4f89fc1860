package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/bibbank/loancalc/internal/application/dto"
	"github.com/bibbank/loancalc/internal/domain/event"
	"github.com/bibbank/loancalc/internal/domain/model"
	"github.com/bibbank/loancalc/internal/domain/port"
	"github.com/bibbank/loancalc/internal/domain/service"
	"github.com/bibbank/loancalc/internal/domain/valueobject"
)

// CalculatePenaltyUseCase prices a late installment.
type CalculatePenaltyUseCase struct {
	calculator *service.PenaltyCalculator
	publisher  port.EventPublisher
	metrics    port.Metrics
	now        func() time.Time
}

// NewCalculatePenaltyUseCase wires dependencies. now supplies the default
// payment date; nil means time.Now.
func NewCalculatePenaltyUseCase(
	calculator *service.PenaltyCalculator,
	publisher port.EventPublisher,
	metrics port.Metrics,
	now func() time.Time,
) *CalculatePenaltyUseCase {
	if now == nil {
		now = time.Now
	}
	return &CalculatePenaltyUseCase{
		calculator: calculator,
		publisher:  publisher,
		metrics:    metrics,
		now:        now,
	}
}

// Execute computes the penalty for req.
func (uc *CalculatePenaltyUseCase) Execute(
	ctx context.Context,
	req dto.CalculatePenaltyRequest,
) (resp dto.PenaltyResponse, err error) {
	ctx, span := tracer().Start(ctx, OpCalculatePenalty)
	defer span.End()
	defer func(start time.Time) { observe(ctx, span, uc.metrics, OpCalculatePenalty, start, err) }(time.Now())

	// 1. Resolve grace period and lateness.
	in, err := uc.toPenaltyInput(req)
	if err != nil {
		return dto.PenaltyResponse{}, fmt.Errorf("map request: %w", err)
	}

	// 2. Price the penalty.
	result, err := uc.calculator.Compute(in)
	if err != nil {
		return dto.PenaltyResponse{}, fmt.Errorf("compute penalty: %w", err)
	}
	span.SetAttributes(
		attribute.Int("penalty.effective_late_days", result.EffectiveLateDays),
		attribute.Bool("penalty.capped", result.Capped),
	)

	// 3. Announce the assessment.
	id := uuid.NewString()
	publish(ctx, uc.publisher, event.NewPenaltyAssessed(id, result))

	return toPenaltyResponse(id, result), nil
}

func (uc *CalculatePenaltyUseCase) toPenaltyInput(req dto.CalculatePenaltyRequest) (model.PenaltyInput, error) {
	grace := 0
	switch {
	case req.GracePeriodDays != nil:
		grace = *req.GracePeriodDays
	case req.PaymentFrequency != "":
		freq, err := valueobject.NewPaymentFrequency(normalize(req.PaymentFrequency))
		if err != nil {
			return model.PenaltyInput{}, model.NewValidationError(model.CodeInvalidFrequency, "paymentFrequency",
				"must be one of daily, weekly, biweekly, monthly, got %q", req.PaymentFrequency)
		}
		grace = freq.DefaultGracePeriodDays()
	}

	daysLate, err := uc.daysLate(req)
	if err != nil {
		return model.PenaltyInput{}, err
	}

	return model.PenaltyInput{
		InstallmentAmount:     req.InstallmentAmount,
		LatePenaltyPercentage: req.LatePenaltyPercentage,
		GracePeriodDays:       grace,
		DaysLate:              daysLate,
		MaxPenaltyPercentage:  req.MaxPenaltyPercentage,
	}, nil
}

// daysLate prefers an explicit count and falls back to the distance between
// the due date and the payment date.
func (uc *CalculatePenaltyUseCase) daysLate(req dto.CalculatePenaltyRequest) (int, error) {
	if req.DaysLate != nil {
		return *req.DaysLate, nil
	}
	if req.DueDate == "" {
		return 0, model.NewValidationError(model.CodeInvalidLateDays, "daysLate", "daysLate or dueDate is required")
	}
	due, err := parseDate("dueDate", req.DueDate)
	if err != nil {
		return 0, err
	}
	paid, err := parseDate("paymentDate", req.PaymentDate)
	if err != nil {
		return 0, err
	}
	if paid.IsZero() {
		y, m, d := uc.now().UTC().Date()
		paid = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	return model.DaysLateBetween(due, paid), nil
}
