package service

import (
	"testing"

	"github.com/leon37/FinLedger/internal/model"
	"github.com/leon37/FinLedger/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTagService(t *testing.T) (*TagService, *gorm.DB, *model.User) {
	db := newTestDB(t)
	user := createTestUser(t, db, "ana")
	return NewTagService(repository.NewTagRepository(db)), db, user
}

func TestTagDuplicateName(t *testing.T) {
	svc, _, user := newTagService(t)

	_, err := svc.Create(testCtx(), user.ID, TagInput{Name: "viaje"})
	require.NoError(t, err)

	_, err = svc.Create(testCtx(), user.ID, TagInput{Name: "viaje"})
	assert.True(t, IsRuleError(err))
}

func TestTagDeleteUnreferencedIsHard(t *testing.T) {
	svc, _, user := newTagService(t)

	tag, err := svc.Create(testCtx(), user.ID, TagInput{Name: "viaje"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(testCtx(), user.ID, tag.ID))

	_, err = svc.Get(testCtx(), user.ID, tag.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTagDeleteReferencedIsSoft(t *testing.T) {
	svc, db, user := newTagService(t)

	tag, err := svc.Create(testCtx(), user.ID, TagInput{Name: "viaje"})
	require.NoError(t, err)

	expense := &model.Expense{
		UserID:      user.ID,
		Amount:      30,
		Description: "Taxi",
		Tags:        []model.Tag{*tag},
	}
	require.NoError(t, db.Create(expense).Error)

	require.NoError(t, svc.Delete(testCtx(), user.ID, tag.ID))

	// 行还在，但被停用
	kept, err := svc.Get(testCtx(), user.ID, tag.ID)
	require.NoError(t, err)
	assert.False(t, kept.IsActive)

	// 停用后不再出现在列表里
	tags, err := svc.List(testCtx(), user.ID)
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestTagListWithUsage(t *testing.T) {
	svc, db, user := newTagService(t)

	tag, err := svc.Create(testCtx(), user.ID, TagInput{Name: "viaje"})
	require.NoError(t, err)

	expense := &model.Expense{
		UserID:      user.ID,
		Amount:      30,
		Description: "Taxi",
		Tags:        []model.Tag{*tag},
	}
	require.NoError(t, db.Create(expense).Error)

	withUsage, err := svc.ListWithUsage(testCtx(), user.ID)
	require.NoError(t, err)
	require.Len(t, withUsage, 1)
	assert.Equal(t, int64(1), withUsage[0].ExpenseCount)
	assert.Equal(t, int64(0), withUsage[0].IncomeCount)
}
