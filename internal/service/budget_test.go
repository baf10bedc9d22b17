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

func newBudgetService(t *testing.T) (*BudgetService, *gorm.DB, *model.User) {
	db := newTestDB(t)
	user := createTestUser(t, db, "ana")
	svc := NewBudgetService(
		repository.NewBudgetRepository(db),
		repository.NewCategoryRepository(db),
		repository.NewExpenseRepository(db),
	)
	return svc, db, user
}

func budgetPeriod() (time.Time, time.Time) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

func TestBudgetCreateComputesTotal(t *testing.T) {
	svc, db, user := newBudgetService(t)
	food := createTestCategory(t, db, user.ID, "Comida", model.CategoryTypeExpense)
	transport := createTestCategory(t, db, user.ID, "Transporte", model.CategoryTypeExpense)
	start, end := budgetPeriod()

	b, err := svc.Create(testCtx(), user.ID, BudgetInput{
		Name:      "Marzo",
		StartDate: start,
		EndDate:   end,
		Items: []BudgetItemInput{
			{CategoryID: food.ID, BudgetedAmount: 500},
			{CategoryID: transport.ID, BudgetedAmount: 200},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 700.0, b.TotalBudgeted)
	assert.Len(t, b.BudgetItems, 2)
}

func TestBudgetCreateValidation(t *testing.T) {
	svc, db, user := newBudgetService(t)
	food := createTestCategory(t, db, user.ID, "Comida", model.CategoryTypeExpense)
	income := createTestCategory(t, db, user.ID, "Salario", model.CategoryTypeIncome)
	start, end := budgetPeriod()

	// 结束不晚于开始
	_, err := svc.Create(testCtx(), user.ID, BudgetInput{
		Name:      "Invertido",
		StartDate: end,
		EndDate:   start,
	})
	assert.True(t, IsRuleError(err))

	// 条目分类重复
	_, err = svc.Create(testCtx(), user.ID, BudgetInput{
		Name:      "Duplicado",
		StartDate: start,
		EndDate:   end,
		Items: []BudgetItemInput{
			{CategoryID: food.ID, BudgetedAmount: 100},
			{CategoryID: food.ID, BudgetedAmount: 200},
		},
	})
	assert.True(t, IsRuleError(err))

	// 收入分类不能进预算
	_, err = svc.Create(testCtx(), user.ID, BudgetInput{
		Name:      "Tipo",
		StartDate: start,
		EndDate:   end,
		Items:     []BudgetItemInput{{CategoryID: income.ID, BudgetedAmount: 100}},
	})
	assert.True(t, IsRuleError(err))
}

func TestBudgetItemMutationsRecomputeTotal(t *testing.T) {
	svc, db, user := newBudgetService(t)
	food := createTestCategory(t, db, user.ID, "Comida", model.CategoryTypeExpense)
	transport := createTestCategory(t, db, user.ID, "Transporte", model.CategoryTypeExpense)
	start, end := budgetPeriod()

	b, err := svc.Create(testCtx(), user.ID, BudgetInput{
		Name:      "Marzo",
		StartDate: start,
		EndDate:   end,
		Items:     []BudgetItemInput{{CategoryID: food.ID, BudgetedAmount: 500}},
	})
	require.NoError(t, err)

	// 追加条目
	item, err := svc.AddItem(testCtx(), user.ID, b.ID, BudgetItemInput{
		CategoryID:     transport.ID,
		BudgetedAmount: 200,
	})
	require.NoError(t, err)

	b, err = svc.Get(testCtx(), user.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 700.0, b.TotalBudgeted)

	// 同一分类不能加第二个条目
	_, err = svc.AddItem(testCtx(), user.ID, b.ID, BudgetItemInput{
		CategoryID:     transport.ID,
		BudgetedAmount: 100,
	})
	assert.True(t, IsRuleError(err))

	// 改金额
	newAmount := 300.0
	_, err = svc.UpdateItem(testCtx(), user.ID, b.ID, item.ID, BudgetItemPatch{BudgetedAmount: &newAmount})
	require.NoError(t, err)
	b, err = svc.Get(testCtx(), user.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 800.0, b.TotalBudgeted)

	// 删条目
	require.NoError(t, svc.DeleteItem(testCtx(), user.ID, b.ID, item.ID))
	b, err = svc.Get(testCtx(), user.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 500.0, b.TotalBudgeted)
}

func TestBudgetComparison(t *testing.T) {
	svc, db, user := newBudgetService(t)
	food := createTestCategory(t, db, user.ID, "Comida", model.CategoryTypeExpense)
	transport := createTestCategory(t, db, user.ID, "Transporte", model.CategoryTypeExpense)
	leisure := createTestCategory(t, db, user.ID, "Ocio", model.CategoryTypeExpense)
	start, end := budgetPeriod()

	b, err := svc.Create(testCtx(), user.ID, BudgetInput{
		Name:      "Marzo",
		StartDate: start,
		EndDate:   end,
		Items: []BudgetItemInput{
			{CategoryID: food.ID, BudgetedAmount: 500},
			{CategoryID: transport.ID, BudgetedAmount: 200},
			{CategoryID: leisure.ID, BudgetedAmount: 100},
		},
	})
	require.NoError(t, err)

	inPeriod := start.AddDate(0, 0, 10)
	expenses := []model.Expense{
		{UserID: user.ID, CategoryID: &food.ID, Amount: 200, Description: "Mercado", Date: inPeriod},
		{UserID: user.ID, CategoryID: &transport.ID, Amount: 200, Description: "Gasolina", Date: inPeriod},
		{UserID: user.ID, CategoryID: &leisure.ID, Amount: 150, Description: "Cine", Date: inPeriod},
		// 周期外的支出不应计入
		{UserID: user.ID, CategoryID: &food.ID, Amount: 999, Description: "Fuera", Date: end.AddDate(0, 0, 5)},
	}
	for i := range expenses {
		require.NoError(t, db.Create(&expenses[i]).Error)
	}

	summary, err := svc.Comparison(testCtx(), user.ID, b.ID)
	require.NoError(t, err)

	byCategory := map[uint]model.BudgetComparison{}
	for _, cmp := range summary.Comparisons {
		byCategory[cmp.CategoryID] = cmp
	}

	foodCmp := byCategory[food.ID]
	assert.Equal(t, model.BudgetStatusUnder, foodCmp.Status)
	assert.Equal(t, 300.0, foodCmp.RemainingAmount)
	assert.Equal(t, 40.0, foodCmp.PercentageUsed)

	assert.Equal(t, model.BudgetStatusOn, byCategory[transport.ID].Status)
	assert.Equal(t, model.BudgetStatusOver, byCategory[leisure.ID].Status)

	assert.Equal(t, 800.0, summary.TotalBudgeted)
	assert.Equal(t, 550.0, summary.TotalSpent)
	assert.Equal(t, 250.0, summary.TotalRemaining)
	assert.Equal(t, 1, summary.CategoriesUnderBudget)
	assert.Equal(t, 1, summary.CategoriesOnBudget)
	assert.Equal(t, 1, summary.CategoriesOverBudget)

	// total_spent 要落库
	stored, err := svc.Get(testCtx(), user.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 550.0, stored.TotalSpent)
}

func TestBudgetDeleteRemovesItems(t *testing.T) {
	svc, db, user := newBudgetService(t)
	food := createTestCategory(t, db, user.ID, "Comida", model.CategoryTypeExpense)
	start, end := budgetPeriod()

	b, err := svc.Create(testCtx(), user.ID, BudgetInput{
		Name:      "Marzo",
		StartDate: start,
		EndDate:   end,
		Items:     []BudgetItemInput{{CategoryID: food.ID, BudgetedAmount: 500}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(testCtx(), user.ID, b.ID))

	var count int64
	require.NoError(t, db.Model(&model.BudgetItem{}).Where("budget_id = ?", b.ID).Count(&count).Error)
	assert.Zero(t, count)
}
