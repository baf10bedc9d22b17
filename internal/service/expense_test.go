package service

import (
	"context"
	"testing"
	"time"

	"github.com/leon37/FinLedger/internal/events"
	"github.com/leon37/FinLedger/internal/model"
	"github.com/leon37/FinLedger/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// recordingPublisher 记录发布过的事件
type recordingPublisher struct {
	published []events.TransactionCreated
}

func (p *recordingPublisher) PublishTransactionCreated(_ context.Context, ev events.TransactionCreated) error {
	p.published = append(p.published, ev)
	return nil
}

func newExpenseService(t *testing.T) (*ExpenseService, *gorm.DB, *model.User, *recordingPublisher) {
	db := newTestDB(t)
	user := createTestUser(t, db, "ana")
	pub := &recordingPublisher{}
	svc := NewExpenseService(
		repository.NewExpenseRepository(db),
		repository.NewCategoryRepository(db),
		repository.NewPaymentMethodRepository(db),
		repository.NewTagRepository(db),
		pub,
	)
	return svc, db, user, pub
}

func TestExpenseCreatePublishesEvent(t *testing.T) {
	svc, _, user, pub := newExpenseService(t)

	e, err := svc.Create(testCtx(), user.ID, ExpenseInput{
		Amount:      120.50,
		Description: "Mercado",
		Date:        time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, pub.published, 1)
	assert.Equal(t, "expense", pub.published[0].Kind)
	assert.Equal(t, e.ID, pub.published[0].TransactionID)
	assert.Equal(t, 120.50, pub.published[0].Amount)
}

func TestExpenseCreateRejectsIncomeCategory(t *testing.T) {
	svc, db, user, _ := newExpenseService(t)
	incomeCat := createTestCategory(t, db, user.ID, "Salario", model.CategoryTypeIncome)

	_, err := svc.Create(testCtx(), user.ID, ExpenseInput{
		Amount:      10,
		Description: "Error",
		Date:        time.Now(),
		CategoryID:  &incomeCat.ID,
	})
	assert.True(t, IsRuleError(err))
}

func TestExpenseCreateForeignCategory(t *testing.T) {
	svc, db, user, _ := newExpenseService(t)
	other := createTestUser(t, db, "bob")
	foreign := createTestCategory(t, db, other.ID, "Ajeno", model.CategoryTypeExpense)

	_, err := svc.Create(testCtx(), user.ID, ExpenseInput{
		Amount:      10,
		Description: "Error",
		Date:        time.Now(),
		CategoryID:  &foreign.ID,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExpenseCreateInactivePaymentMethod(t *testing.T) {
	svc, db, user, _ := newExpenseService(t)

	pm := &model.PaymentMethod{UserID: user.ID, Name: "Vieja", PaymentType: "debit_card", IsActive: false}
	require.NoError(t, db.Create(pm).Error)

	_, err := svc.Create(testCtx(), user.ID, ExpenseInput{
		Amount:          10,
		Description:     "Error",
		Date:            time.Now(),
		PaymentMethodID: &pm.ID,
	})
	assert.True(t, IsRuleError(err))
}

func TestExpenseCreateWithTags(t *testing.T) {
	svc, db, user, _ := newExpenseService(t)

	tag := &model.Tag{UserID: user.ID, Name: "viaje", IsActive: true}
	require.NoError(t, db.Create(tag).Error)

	e, err := svc.Create(testCtx(), user.ID, ExpenseInput{
		Amount:      45,
		Description: "Taxi",
		Date:        time.Now(),
		TagIDs:      []uint{tag.ID},
	})
	require.NoError(t, err)
	require.Len(t, e.Tags, 1)
	assert.Equal(t, "viaje", e.Tags[0].Name)

	// 不存在的标签按 404 处理
	_, err = svc.Create(testCtx(), user.ID, ExpenseInput{
		Amount:      45,
		Description: "Taxi",
		Date:        time.Now(),
		TagIDs:      []uint{tag.ID, 9999},
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExpenseUpdateReplacesTags(t *testing.T) {
	svc, db, user, _ := newExpenseService(t)

	tagA := &model.Tag{UserID: user.ID, Name: "a", IsActive: true}
	tagB := &model.Tag{UserID: user.ID, Name: "b", IsActive: true}
	require.NoError(t, db.Create(tagA).Error)
	require.NoError(t, db.Create(tagB).Error)

	e, err := svc.Create(testCtx(), user.ID, ExpenseInput{
		Amount:      45,
		Description: "Taxi",
		Date:        time.Now(),
		TagIDs:      []uint{tagA.ID},
	})
	require.NoError(t, err)

	newTags := []uint{tagB.ID}
	updated, err := svc.Update(testCtx(), user.ID, e.ID, ExpensePatch{TagIDs: &newTags})
	require.NoError(t, err)
	require.Len(t, updated.Tags, 1)
	assert.Equal(t, "b", updated.Tags[0].Name)

	// 空切片清空标签
	empty := []uint{}
	updated, err = svc.Update(testCtx(), user.ID, e.ID, ExpensePatch{TagIDs: &empty})
	require.NoError(t, err)
	assert.Empty(t, updated.Tags)
}

func TestExpenseOwnership(t *testing.T) {
	svc, db, user, _ := newExpenseService(t)
	other := createTestUser(t, db, "bob")

	e, err := svc.Create(testCtx(), user.ID, ExpenseInput{
		Amount:      45,
		Description: "Taxi",
		Date:        time.Now(),
	})
	require.NoError(t, err)

	_, err = svc.Get(testCtx(), other.ID, e.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	err = svc.Delete(testCtx(), other.ID, e.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExpenseSummaryByCategory(t *testing.T) {
	svc, db, user, _ := newExpenseService(t)
	food := createTestCategory(t, db, user.ID, "Comida", model.CategoryTypeExpense)

	for _, amount := range []float64{100, 50} {
		_, err := svc.Create(testCtx(), user.ID, ExpenseInput{
			Amount:      amount,
			Description: "Mercado",
			Date:        time.Now(),
			CategoryID:  &food.ID,
		})
		require.NoError(t, err)
	}

	summary, err := svc.SummaryByCategory(testCtx(), user.ID)
	require.NoError(t, err)
	require.Len(t, summary, 1)
	assert.Equal(t, "Comida", summary[0].CategoryName)
	assert.Equal(t, 150.0, summary[0].TotalAmount)
	assert.Equal(t, int64(2), summary[0].Count)
}
