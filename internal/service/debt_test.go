package service

import (
	"testing"
	"time"

	"github.com/leon37/FinLedger/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDebtService(t *testing.T) (*DebtService, uint) {
	db := newTestDB(t)
	user := createTestUser(t, db, "ana")
	return NewDebtService(repository.NewDebtRepository(db)), user.ID
}

func TestDebtCreateDefaultsBalance(t *testing.T) {
	svc, userID := newDebtService(t)

	d, err := svc.Create(testCtx(), userID, DebtInput{
		Name:           "Credito carro",
		DebtType:       "auto_loan",
		Lender:         "Banco X",
		OriginalAmount: 30000,
		LoanStartDate:  time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, 30000.0, d.CurrentBalance)
	assert.Equal(t, "COP", d.Currency)
	assert.False(t, d.IsPaidOff)
}

func TestDebtPayOff(t *testing.T) {
	svc, userID := newDebtService(t)

	d, err := svc.Create(testCtx(), userID, DebtInput{
		Name:           "Tarjeta",
		DebtType:       "credit_card",
		Lender:         "Banco X",
		OriginalAmount: 1500,
		CurrentBalance: 800,
		LoanStartDate:  time.Now(),
	})
	require.NoError(t, err)

	paid, err := svc.PayOff(testCtx(), userID, d.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, paid.CurrentBalance)
	assert.True(t, paid.IsPaidOff)
	require.NotNil(t, paid.PaidOffDate)

	// 重复结清是业务错误
	_, err = svc.PayOff(testCtx(), userID, d.ID)
	assert.True(t, IsRuleError(err))
}

func TestDebtSummaryOnlyOutstanding(t *testing.T) {
	svc, userID := newDebtService(t)

	open, err := svc.Create(testCtx(), userID, DebtInput{
		Name:           "Hipoteca",
		DebtType:       "mortgage",
		Lender:         "Banco X",
		OriginalAmount: 100000,
		CurrentBalance: 90000,
		LoanStartDate:  time.Now(),
	})
	require.NoError(t, err)

	closed, err := svc.Create(testCtx(), userID, DebtInput{
		Name:           "Tarjeta",
		DebtType:       "credit_card",
		Lender:         "Banco X",
		OriginalAmount: 1000,
		LoanStartDate:  time.Now(),
	})
	require.NoError(t, err)
	_, err = svc.PayOff(testCtx(), userID, closed.ID)
	require.NoError(t, err)

	summary, err := svc.SummaryByType(testCtx(), userID)
	require.NoError(t, err)
	require.Len(t, summary, 1)
	assert.Equal(t, "mortgage", summary[0].DebtType)
	assert.Equal(t, open.CurrentBalance, summary[0].TotalBalance)

	total, err := svc.TotalBalance(testCtx(), userID)
	require.NoError(t, err)
	assert.Equal(t, 90000.0, total)
}
