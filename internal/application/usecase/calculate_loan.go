package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/bibbank/loancalc/internal/application/dto"
	"github.com/bibbank/loancalc/internal/domain/event"
	"github.com/bibbank/loancalc/internal/domain/model"
	"github.com/bibbank/loancalc/internal/domain/port"
	"github.com/bibbank/loancalc/internal/domain/service"
)

// CalculateLoanUseCase prices a loan and expands it into its repayment
// schedule.
type CalculateLoanUseCase struct {
	calculator *service.Calculator
	scheduler  *service.ScheduleGenerator
	publisher  port.EventPublisher
	metrics    port.Metrics
}

// NewCalculateLoanUseCase wires dependencies.
func NewCalculateLoanUseCase(
	calculator *service.Calculator,
	scheduler *service.ScheduleGenerator,
	publisher port.EventPublisher,
	metrics port.Metrics,
) *CalculateLoanUseCase {
	return &CalculateLoanUseCase{
		calculator: calculator,
		scheduler:  scheduler,
		publisher:  publisher,
		metrics:    metrics,
	}
}

// Execute computes the calculation result and schedule for req.
func (uc *CalculateLoanUseCase) Execute(
	ctx context.Context,
	req dto.CalculateLoanRequest,
) (resp dto.CalculationResponse, err error) {
	ctx, span := tracer().Start(ctx, OpCalculateLoan)
	defer span.End()
	defer func(start time.Time) { observe(ctx, span, uc.metrics, OpCalculateLoan, start, err) }(time.Now())

	// 1. Map and compute.
	calcReq, err := toCalculationRequest(req)
	if err != nil {
		return dto.CalculationResponse{}, fmt.Errorf("map request: %w", err)
	}
	result, schedule, err := computeWithSchedule(uc.calculator, uc.scheduler, calcReq)
	if err != nil {
		return dto.CalculationResponse{}, err
	}
	annotate(span, result)

	// 2. Announce the quote.
	quoteID := uuid.NewString()
	publish(ctx, uc.publisher, event.NewQuoteCalculated(quoteID, result))

	return dto.CalculationResponse{
		QuoteID:     quoteID,
		Calculation: toCalculationResult(result),
		Schedule:    toSchedule(schedule),
	}, nil
}

func computeWithSchedule(
	calculator *service.Calculator,
	scheduler *service.ScheduleGenerator,
	req model.CalculationRequest,
) (model.CalculationResult, []model.ScheduleItem, error) {
	result, err := calculator.Compute(req)
	if err != nil {
		return model.CalculationResult{}, nil, fmt.Errorf("compute: %w", err)
	}
	schedule, err := scheduler.Generate(req, result)
	if err != nil {
		return model.CalculationResult{}, nil, fmt.Errorf("generate schedule: %w", err)
	}
	return result, schedule, nil
}

func annotate(span trace.Span, r model.CalculationResult) {
	span.SetAttributes(
		attribute.String("loan.payment_frequency", r.PaymentFrequency.String()),
		attribute.String("loan.interest_type", r.InterestType.String()),
		attribute.Int("loan.term_months", r.TermMonths),
		attribute.Int("loan.num_payments", r.NumPayments),
	)
}
