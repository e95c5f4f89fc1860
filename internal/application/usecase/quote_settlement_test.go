package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/loancalc/internal/application/dto"
	"github.com/bibbank/loancalc/internal/application/usecase"
	"github.com/bibbank/loancalc/internal/domain/model"
	"github.com/bibbank/loancalc/internal/domain/port"
	"github.com/bibbank/loancalc/internal/domain/service"
)

func newQuoteSettlement(metrics *mockMetrics) *usecase.QuoteSettlementUseCase {
	return usecase.NewQuoteSettlementUseCase(
		service.NewCalculator(),
		service.NewScheduleGenerator(fixedNow),
		service.NewSettlementCalculator(),
		metrics,
	)
}

func TestQuoteSettlement_Execute(t *testing.T) {
	t.Run("rebates unpaid interest", func(t *testing.T) {
		metrics := &mockMetrics{}
		resp, err := newQuoteSettlement(metrics).Execute(context.Background(), dto.QuoteSettlementRequest{
			CalculateLoanRequest: validLoanRequest(),
			PaymentsMade:         2,
		})
		require.NoError(t, err)

		assert.Equal(t, 2, resp.PaymentsRemaining)
		assert.Equal(t, "2687.50", resp.InstallmentAmount.String())
		assert.Equal(t, "5375.00", resp.OutstandingAmount.String())
		assert.Equal(t, "250.00", resp.InterestRebate.String())
		assert.Equal(t, "5125.00", resp.RemainingPrincipal.String())
		assert.Equal(t, "5125.00", resp.TotalDue.String())
		assert.Equal(t, port.OutcomeSuccess, metrics.operations[0].outcome)
	})

	t.Run("rejects payments beyond the schedule", func(t *testing.T) {
		metrics := &mockMetrics{}
		_, err := newQuoteSettlement(metrics).Execute(context.Background(), dto.QuoteSettlementRequest{
			CalculateLoanRequest: validLoanRequest(),
			PaymentsMade:         5,
		})
		var vErr *model.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, model.CodeInvalidPaymentsMade, vErr.Code)
		assert.Equal(t, []string{"INVALID_PAYMENTS_MADE"}, metrics.failures)
	})

	t.Run("validates the loan before quoting", func(t *testing.T) {
		req := validLoanRequest()
		req.TermMonths = 0
		_, err := newQuoteSettlement(&mockMetrics{}).Execute(context.Background(), dto.QuoteSettlementRequest{
			CalculateLoanRequest: req,
		})
		var vErr *model.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, model.CodeInvalidTerm, vErr.Code)
	})
}
