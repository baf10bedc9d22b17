package service

import (
	"testing"

	"github.com/leon37/FinLedger/internal/model"
	"github.com/leon37/FinLedger/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCategoryService(t *testing.T) (*CategoryService, *gorm.DB, *model.User) {
	db := newTestDB(t)
	user := createTestUser(t, db, "ana")
	return NewCategoryService(repository.NewCategoryRepository(db)), db, user
}

func TestCategoryCreateWithParent(t *testing.T) {
	svc, _, user := newCategoryService(t)

	parent, err := svc.Create(testCtx(), user.ID, CategoryInput{
		Name:         "Hogar",
		CategoryType: model.CategoryTypeExpense,
	})
	require.NoError(t, err)

	child, err := svc.Create(testCtx(), user.ID, CategoryInput{
		Name:         "Servicios",
		CategoryType: model.CategoryTypeExpense,
		ParentID:     &parent.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, child.ParentID)
	assert.Equal(t, parent.ID, *child.ParentID)

	// 父子类型必须一致
	_, err = svc.Create(testCtx(), user.ID, CategoryInput{
		Name:         "Salario",
		CategoryType: model.CategoryTypeIncome,
		ParentID:     &parent.ID,
	})
	assert.True(t, IsRuleError(err))
}

func TestCategoryCreateForeignParent(t *testing.T) {
	svc, db, user := newCategoryService(t)
	other := createTestUser(t, db, "bob")
	foreign := createTestCategory(t, db, other.ID, "Ajeno", model.CategoryTypeExpense)

	_, err := svc.Create(testCtx(), user.ID, CategoryInput{
		Name:         "Hijo",
		CategoryType: model.CategoryTypeExpense,
		ParentID:     &foreign.ID,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategoryOwnershipHidesOthers(t *testing.T) {
	svc, db, user := newCategoryService(t)
	other := createTestUser(t, db, "bob")
	foreign := createTestCategory(t, db, other.ID, "Ajeno", model.CategoryTypeExpense)

	_, err := svc.Get(testCtx(), user.ID, foreign.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategoryDefaultIsProtected(t *testing.T) {
	svc, db, user := newCategoryService(t)

	c := &model.Category{
		UserID:       user.ID,
		Name:         "Otros",
		CategoryType: model.CategoryTypeExpense,
		IsDefault:    true,
		IsActive:     true,
	}
	require.NoError(t, db.Create(c).Error)

	name := "Renombrado"
	_, err := svc.Update(testCtx(), user.ID, c.ID, CategoryPatch{Name: &name})
	assert.True(t, IsRuleError(err))

	err = svc.Delete(testCtx(), user.ID, c.ID)
	assert.True(t, IsRuleError(err))
}

func TestCategoryDeleteBlockedByChildren(t *testing.T) {
	svc, _, user := newCategoryService(t)

	parent, err := svc.Create(testCtx(), user.ID, CategoryInput{
		Name:         "Hogar",
		CategoryType: model.CategoryTypeExpense,
	})
	require.NoError(t, err)
	_, err = svc.Create(testCtx(), user.ID, CategoryInput{
		Name:         "Servicios",
		CategoryType: model.CategoryTypeExpense,
		ParentID:     &parent.ID,
	})
	require.NoError(t, err)

	err = svc.Delete(testCtx(), user.ID, parent.ID)
	assert.True(t, IsRuleError(err))
}

func TestCategoryDeleteBlockedByTransactions(t *testing.T) {
	svc, db, user := newCategoryService(t)

	c, err := svc.Create(testCtx(), user.ID, CategoryInput{
		Name:         "Comida",
		CategoryType: model.CategoryTypeExpense,
	})
	require.NoError(t, err)

	expense := &model.Expense{
		UserID:      user.ID,
		CategoryID:  &c.ID,
		Amount:      50,
		Description: "Mercado",
	}
	require.NoError(t, db.Create(expense).Error)

	err = svc.Delete(testCtx(), user.ID, c.ID)
	assert.True(t, IsRuleError(err))
}

func TestCategoryTree(t *testing.T) {
	svc, _, user := newCategoryService(t)

	parent, err := svc.Create(testCtx(), user.ID, CategoryInput{
		Name:         "Hogar",
		CategoryType: model.CategoryTypeExpense,
	})
	require.NoError(t, err)
	child, err := svc.Create(testCtx(), user.ID, CategoryInput{
		Name:         "Servicios",
		CategoryType: model.CategoryTypeExpense,
		ParentID:     &parent.ID,
	})
	require.NoError(t, err)

	nodes, err := svc.Tree(testCtx(), user.ID, "")
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, parent.ID, nodes[0].ID)
	require.Len(t, nodes[0].Subcategories, 1)
	assert.Equal(t, child.ID, nodes[0].Subcategories[0].ID)
}
