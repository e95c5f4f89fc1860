package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/loancalc/internal/domain/model"
	"github.com/bibbank/loancalc/internal/domain/service"
	"github.com/bibbank/loancalc/pkg/testutil"
)

func TestSettlementCalculator_Quote(t *testing.T) {
	_, items := generate(t, weeklyFlatRequest())
	calc := service.NewSettlementCalculator()

	q, err := calc.Quote(items, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, q.PaymentsRemaining)
	testutil.AssertDecimal(t, "8062.50", q.OutstandingAmount)
	testutil.AssertDecimal(t, "375", q.InterestRebate)
	testutil.AssertDecimal(t, "7687.50", q.RemainingPrincipal)
	testutil.AssertDecimal(t, "7687.50", q.TotalDue)
}

func TestSettlementCalculator_Boundaries(t *testing.T) {
	res, items := generate(t, weeklyFlatRequest())
	calc := service.NewSettlementCalculator()

	q, err := calc.Quote(items, 0)
	require.NoError(t, err)
	testutil.AssertDecimal(t, res.TotalRepayable.String(), q.OutstandingAmount)
	testutil.AssertDecimal(t, res.InterestAmount.String(), q.InterestRebate)
	testutil.AssertDecimal(t, "10250", q.RemainingPrincipal)

	q, err = calc.Quote(items, len(items))
	require.NoError(t, err)
	assert.Equal(t, 0, q.PaymentsRemaining)
	testutil.AssertDecimal(t, "0", q.TotalDue)
}

func TestSettlementCalculator_TotalDueIsRemainingPrincipal(t *testing.T) {
	req := weeklyFlatRequest()
	req.TermMonths = 4
	_, items := generate(t, req)
	calc := service.NewSettlementCalculator()

	for made := 0; made <= len(items); made++ {
		q, err := calc.Quote(items, made)
		require.NoError(t, err)
		assert.True(t, q.TotalDue.Equal(q.RemainingPrincipal), "after %d payments", made)
	}
}

func TestSettlementCalculator_RejectsOutOfRange(t *testing.T) {
	_, items := generate(t, weeklyFlatRequest())
	for _, made := range []int{-1, len(items) + 1} {
		_, err := service.NewSettlementCalculator().Quote(items, made)
		var vErr *model.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, model.CodeInvalidPaymentsMade, vErr.Code)
	}
}
