package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/loancalc/internal/application/dto"
	"github.com/bibbank/loancalc/internal/application/usecase"
	"github.com/bibbank/loancalc/internal/domain/event"
	"github.com/bibbank/loancalc/internal/domain/model"
	"github.com/bibbank/loancalc/internal/domain/port"
	"github.com/bibbank/loancalc/internal/domain/service"
)

func newCalculatePenalty(publisher port.EventPublisher, metrics port.Metrics) *usecase.CalculatePenaltyUseCase {
	return usecase.NewCalculatePenaltyUseCase(service.NewPenaltyCalculator(), publisher, metrics, fixedNow)
}

func penaltyRequest() dto.CalculatePenaltyRequest {
	return dto.CalculatePenaltyRequest{
		InstallmentAmount:     decimal.RequireFromString("2687.50"),
		LatePenaltyPercentage: decimal.NewFromInt(1),
		GracePeriodDays:       intPtr(1),
		DaysLate:              intPtr(5),
	}
}

func TestCalculatePenalty_Execute(t *testing.T) {
	t.Run("prices days beyond grace", func(t *testing.T) {
		publisher := &mockEventPublisher{}
		resp, err := newCalculatePenalty(publisher, &mockMetrics{}).Execute(context.Background(), penaltyRequest())
		require.NoError(t, err)

		assert.Equal(t, 4, resp.EffectiveLateDays)
		assert.Equal(t, "107.50", resp.PenaltyAmount.String())
		assert.Equal(t, "2795.00", resp.TotalDue.String())
		require.Len(t, publisher.publishedEvents, 1)
		assert.Equal(t, event.TypePenaltyAssessed, publisher.publishedEvents[0].EventType())
		assert.Equal(t, resp.AssessmentID, publisher.publishedEvents[0].SubjectID())
	})

	t.Run("derives days late from dates", func(t *testing.T) {
		req := penaltyRequest()
		req.DaysLate = nil
		req.DueDate = "2025-03-01"
		req.PaymentDate = "2025-03-06"

		resp, err := newCalculatePenalty(&mockEventPublisher{}, &mockMetrics{}).Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 5, resp.DaysLate)
		assert.Equal(t, "107.50", resp.PenaltyAmount.String())
	})

	t.Run("payment date defaults to today", func(t *testing.T) {
		req := penaltyRequest()
		req.DaysLate = nil
		req.DueDate = "2025-03-07"

		resp, err := newCalculatePenalty(&mockEventPublisher{}, &mockMetrics{}).Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 3, resp.DaysLate)
	})

	t.Run("early payment is not late", func(t *testing.T) {
		req := penaltyRequest()
		req.DaysLate = nil
		req.DueDate = "2025-03-20"

		resp, err := newCalculatePenalty(&mockEventPublisher{}, &mockMetrics{}).Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 0, resp.DaysLate)
		assert.True(t, resp.PenaltyAmount.IsZero())
	})

	t.Run("grace defaults from payment frequency", func(t *testing.T) {
		req := penaltyRequest()
		req.GracePeriodDays = nil
		req.PaymentFrequency = "monthly"

		resp, err := newCalculatePenalty(&mockEventPublisher{}, &mockMetrics{}).Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 3, resp.GracePeriodDays)
		assert.Equal(t, 2, resp.EffectiveLateDays)
	})

	t.Run("grace defaults to zero without frequency", func(t *testing.T) {
		req := penaltyRequest()
		req.GracePeriodDays = nil

		resp, err := newCalculatePenalty(&mockEventPublisher{}, &mockMetrics{}).Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 5, resp.EffectiveLateDays)
	})

	t.Run("caps the penalty", func(t *testing.T) {
		req := penaltyRequest()
		req.DaysLate = intPtr(60)
		req.MaxPenaltyPercentage = decimal.NewFromInt(10)

		resp, err := newCalculatePenalty(&mockEventPublisher{}, &mockMetrics{}).Execute(context.Background(), req)
		require.NoError(t, err)
		assert.True(t, resp.Capped)
		assert.Equal(t, "268.75", resp.PenaltyAmount.String())
	})

	t.Run("requires days late or due date", func(t *testing.T) {
		metrics := &mockMetrics{}
		req := penaltyRequest()
		req.DaysLate = nil

		_, err := newCalculatePenalty(&mockEventPublisher{}, metrics).Execute(context.Background(), req)
		var vErr *model.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, model.CodeInvalidLateDays, vErr.Code)
		assert.Equal(t, []string{"INVALID_LATE_DAYS"}, metrics.failures)
	})

	t.Run("rejects negative days late", func(t *testing.T) {
		req := penaltyRequest()
		req.DaysLate = intPtr(-2)

		_, err := newCalculatePenalty(&mockEventPublisher{}, &mockMetrics{}).Execute(context.Background(), req)
		assert.ErrorIs(t, err, model.ErrValidation)
	})

	t.Run("rejects unknown frequency", func(t *testing.T) {
		req := penaltyRequest()
		req.GracePeriodDays = nil
		req.PaymentFrequency = "yearly"

		_, err := newCalculatePenalty(&mockEventPublisher{}, &mockMetrics{}).Execute(context.Background(), req)
		var vErr *model.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, model.CodeInvalidFrequency, vErr.Code)
	})
}
