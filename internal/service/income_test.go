package service

import (
	"testing"
	"time"

	"github.com/leon37/FinLedger/internal/model"
	"github.com/leon37/FinLedger/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newIncomeService(t *testing.T) (*IncomeService, *gorm.DB, *model.User, *recordingPublisher) {
	db := newTestDB(t)
	user := createTestUser(t, db, "ana")
	pub := &recordingPublisher{}
	svc := NewIncomeService(
		repository.NewIncomeRepository(db),
		repository.NewCategoryRepository(db),
		repository.NewTagRepository(db),
		pub,
	)
	return svc, db, user, pub
}

func TestIncomeCreatePublishesEvent(t *testing.T) {
	svc, _, user, pub := newIncomeService(t)

	income, err := svc.Create(testCtx(), user.ID, IncomeInput{
		Amount:      2500,
		Description: "Nomina marzo",
		Source:      "salario",
		Date:        time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, pub.published, 1)
	assert.Equal(t, "income", pub.published[0].Kind)
	assert.Equal(t, income.ID, pub.published[0].TransactionID)
}

func TestIncomeCreateRejectsExpenseCategory(t *testing.T) {
	svc, db, user, _ := newIncomeService(t)
	expenseCat := createTestCategory(t, db, user.ID, "Comida", model.CategoryTypeExpense)

	_, err := svc.Create(testCtx(), user.ID, IncomeInput{
		Amount:      100,
		Description: "Error",
		Source:      "otro",
		Date:        time.Now(),
		CategoryID:  &expenseCat.ID,
	})
	assert.True(t, IsRuleError(err))
}

func TestIncomeListFiltersBySource(t *testing.T) {
	svc, _, user, _ := newIncomeService(t)

	for _, source := range []string{"salario", "freelance", "salario"} {
		_, err := svc.Create(testCtx(), user.ID, IncomeInput{
			Amount:      100,
			Description: "Ingreso",
			Source:      source,
			Date:        time.Now(),
		})
		require.NoError(t, err)
	}

	salaries, err := svc.List(testCtx(), repository.IncomeFilter{
		UserID: user.ID,
		Source: "salario",
		Limit:  100,
	})
	require.NoError(t, err)
	assert.Len(t, salaries, 2)
}

func TestIncomeSummaryBySource(t *testing.T) {
	svc, _, user, _ := newIncomeService(t)

	amounts := map[string][]float64{
		"salario":   {2500, 2500},
		"freelance": {400},
	}
	for source, list := range amounts {
		for _, amount := range list {
			_, err := svc.Create(testCtx(), user.ID, IncomeInput{
				Amount:      amount,
				Description: "Ingreso",
				Source:      source,
				Date:        time.Now(),
			})
			require.NoError(t, err)
		}
	}

	summary, err := svc.SummaryBySource(testCtx(), user.ID)
	require.NoError(t, err)
	require.Len(t, summary, 2)

	bySource := map[string]model.IncomeSourceSummary{}
	for _, row := range summary {
		bySource[row.Source] = row
	}
	assert.Equal(t, 5000.0, bySource["salario"].TotalAmount)
	assert.Equal(t, int64(2), bySource["salario"].Count)
	assert.Equal(t, 400.0, bySource["freelance"].TotalAmount)
}
