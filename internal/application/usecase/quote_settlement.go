package usecase

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/bibbank/loancalc/internal/application/dto"
	"github.com/bibbank/loancalc/internal/domain/port"
	"github.com/bibbank/loancalc/internal/domain/service"
	"github.com/bibbank/loancalc/pkg/money"
)

// QuoteSettlementUseCase quotes early payoff of a loan.
type QuoteSettlementUseCase struct {
	calculator *service.Calculator
	scheduler  *service.ScheduleGenerator
	settlement *service.SettlementCalculator
	metrics    port.Metrics
}

// NewQuoteSettlementUseCase wires dependencies.
func NewQuoteSettlementUseCase(
	calculator *service.Calculator,
	scheduler *service.ScheduleGenerator,
	settlement *service.SettlementCalculator,
	metrics port.Metrics,
) *QuoteSettlementUseCase {
	return &QuoteSettlementUseCase{
		calculator: calculator,
		scheduler:  scheduler,
		settlement: settlement,
		metrics:    metrics,
	}
}

// Execute rebuilds the schedule of req and quotes settling it after
// req.PaymentsMade installments.
func (uc *QuoteSettlementUseCase) Execute(
	ctx context.Context,
	req dto.QuoteSettlementRequest,
) (resp dto.SettlementResponse, err error) {
	ctx, span := tracer().Start(ctx, OpQuoteSettlement)
	defer span.End()
	defer func(start time.Time) { observe(ctx, span, uc.metrics, OpQuoteSettlement, start, err) }(time.Now())

	calcReq, err := toCalculationRequest(req.CalculateLoanRequest)
	if err != nil {
		return dto.SettlementResponse{}, fmt.Errorf("map request: %w", err)
	}
	result, schedule, err := computeWithSchedule(uc.calculator, uc.scheduler, calcReq)
	if err != nil {
		return dto.SettlementResponse{}, err
	}
	annotate(span, result)
	span.SetAttributes(attribute.Int("settlement.payments_made", req.PaymentsMade))

	quote, err := uc.settlement.Quote(schedule, req.PaymentsMade)
	if err != nil {
		return dto.SettlementResponse{}, fmt.Errorf("quote settlement: %w", err)
	}
	return toSettlementResponse(money.NewAmount(result.InstallmentAmount), quote), nil
}
