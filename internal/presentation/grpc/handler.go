package grpc

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/bibbank/loancalc/internal/application/usecase"
	"github.com/bibbank/loancalc/internal/domain/model"
)

const errorDomain = "loancalc"

// LoanCalculatorHandler serves LoanCalculatorService from the use cases.
type LoanCalculatorHandler struct {
	UnimplementedLoanCalculatorServiceServer

	calculateUC  *usecase.CalculateLoanUseCase
	penaltyUC    *usecase.CalculatePenaltyUseCase
	settlementUC *usecase.QuoteSettlementUseCase
	logger       *slog.Logger
}

// NewLoanCalculatorHandler creates a new handler with all use-case dependencies.
func NewLoanCalculatorHandler(
	calculate *usecase.CalculateLoanUseCase,
	penalty *usecase.CalculatePenaltyUseCase,
	settlement *usecase.QuoteSettlementUseCase,
	logger *slog.Logger,
) *LoanCalculatorHandler {
	return &LoanCalculatorHandler{
		calculateUC:  calculate,
		penaltyUC:    penalty,
		settlementUC: settlement,
		logger:       logger,
	}
}

// Calculate prices a loan and returns its schedule.
func (h *LoanCalculatorHandler) Calculate(ctx context.Context, req *CalculateRequest) (*CalculateResponse, error) {
	resp, err := h.calculateUC.Execute(ctx, *req)
	if err != nil {
		return nil, h.toStatus(ctx, "Calculate", err)
	}
	return &resp, nil
}

// CalculatePenalty assesses a late-payment penalty.
func (h *LoanCalculatorHandler) CalculatePenalty(ctx context.Context, req *CalculatePenaltyRequest) (*CalculatePenaltyResponse, error) {
	resp, err := h.penaltyUC.Execute(ctx, *req)
	if err != nil {
		return nil, h.toStatus(ctx, "CalculatePenalty", err)
	}
	return &resp, nil
}

// QuoteSettlement quotes the early payoff after a number of installments.
func (h *LoanCalculatorHandler) QuoteSettlement(ctx context.Context, req *QuoteSettlementRequest) (*QuoteSettlementResponse, error) {
	resp, err := h.settlementUC.Execute(ctx, *req)
	if err != nil {
		return nil, h.toStatus(ctx, "QuoteSettlement", err)
	}
	return &resp, nil
}

// toStatus maps validation failures to InvalidArgument carrying the field
// and code as details. Anything else is Internal.
func (h *LoanCalculatorHandler) toStatus(ctx context.Context, method string, err error) error {
	var vErr *model.ValidationError
	if !errors.As(err, &vErr) {
		h.logger.ErrorContext(ctx, "unhandled error", "method", method, "error", err)
		return status.Error(codes.Internal, "internal server error")
	}

	st := status.New(codes.InvalidArgument, vErr.Error())
	detailed, detailErr := st.WithDetails(
		&errdetails.BadRequest{
			FieldViolations: []*errdetails.BadRequest_FieldViolation{
				{Field: vErr.Field, Description: vErr.Message},
			},
		},
		&errdetails.ErrorInfo{
			Reason: string(vErr.Code),
			Domain: errorDomain,
		},
	)
	if detailErr != nil {
		return st.Err()
	}
	return detailed.Err()
}
