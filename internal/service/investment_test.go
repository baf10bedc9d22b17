package service

import (
	"testing"
	"time"

	"github.com/leon37/FinLedger/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvestmentPerformance(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "ana")
	svc := NewInvestmentService(repository.NewInvestmentRepository(db))

	currentA := 1100.0
	currentB := 2200.0
	for _, in := range []InvestmentInput{
		{Name: "ETF Global", InvestmentType: "etf", AmountInvested: 1000, CurrentValue: &currentA, PurchaseDate: time.Now()},
		{Name: "CDT", InvestmentType: "cdt", AmountInvested: 2000, CurrentValue: &currentB, PurchaseDate: time.Now()},
	} {
		_, err := svc.Create(testCtx(), user.ID, in)
		require.NoError(t, err)
	}

	perf, err := svc.Performance(testCtx(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, 3000.0, perf.TotalInvested)
	assert.Equal(t, 3300.0, perf.TotalCurrentValue)
	assert.Equal(t, 300.0, perf.TotalPerformance)
	assert.Equal(t, 10.0, perf.PerformancePercentage)
}

func TestInvestmentPerformanceEmpty(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "ana")
	svc := NewInvestmentService(repository.NewInvestmentRepository(db))

	perf, err := svc.Performance(testCtx(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, perf.TotalInvested)
	assert.Equal(t, 0.0, perf.PerformancePercentage)
}

func TestInvestmentSummaryExcludesInactive(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "ana")
	svc := NewInvestmentService(repository.NewInvestmentRepository(db))

	inv, err := svc.Create(testCtx(), user.ID, InvestmentInput{
		Name: "Acciones", InvestmentType: "stock", AmountInvested: 500, PurchaseDate: time.Now(),
	})
	require.NoError(t, err)
	_, err = svc.Create(testCtx(), user.ID, InvestmentInput{
		Name: "ETF", InvestmentType: "etf", AmountInvested: 1000, PurchaseDate: time.Now(),
	})
	require.NoError(t, err)

	inactive := false
	_, err = svc.Update(testCtx(), user.ID, inv.ID, InvestmentPatch{IsActive: &inactive})
	require.NoError(t, err)

	summary, err := svc.SummaryByType(testCtx(), user.ID)
	require.NoError(t, err)
	require.Len(t, summary, 1)
	assert.Equal(t, "etf", summary[0].InvestmentType)
}
