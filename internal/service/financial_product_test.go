package service

import (
	"testing"

	"github.com/leon37/FinLedger/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinancialProductTotalsOnlyActive(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "ana")
	svc := NewFinancialProductService(repository.NewFinancialProductRepository(db))

	p, err := svc.Create(testCtx(), user.ID, FinancialProductInput{
		Name:        "Cuenta ahorros",
		ProductType: "savings",
		Institution: "Banco X",
		Balance:     1200,
	})
	require.NoError(t, err)
	assert.Equal(t, "COP", p.Currency)

	closed, err := svc.Create(testCtx(), user.ID, FinancialProductInput{
		Name:        "CDT vencido",
		ProductType: "cdt",
		Institution: "Banco X",
		Balance:     5000,
	})
	require.NoError(t, err)

	inactive := false
	_, err = svc.Update(testCtx(), user.ID, closed.ID, FinancialProductPatch{IsActive: &inactive})
	require.NoError(t, err)

	total, err := svc.TotalBalance(testCtx(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1200.0, total)

	summary, err := svc.SummaryByType(testCtx(), user.ID)
	require.NoError(t, err)
	require.Len(t, summary, 1)
	assert.Equal(t, "savings", summary[0].ProductType)
}
