package repository

import (
	"context"

	"github.com/leon37/FinLedger/internal/model"
	"gorm.io/gorm"
)

type TagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

func (r *TagRepository) Create(ctx context.Context, t *model.Tag) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TagRepository) GetOwned(ctx context.Context, userID, id uint) (*model.Tag, error) {
	var t model.Tag
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetOwnedByName 同名唯一性检查用
func (r *TagRepository) GetOwnedByName(ctx context.Context, userID uint, name string) (*model.Tag, error) {
	var t model.Tag
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND name = ?", userID, name).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListActive 列表只含 is_active 的标签
func (r *TagRepository) ListActive(ctx context.Context, userID uint) ([]model.Tag, error) {
	var tags []model.Tag
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("name").
		Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// FindOwnedActiveByIDs 交易挂标签前的批量校验
func (r *TagRepository) FindOwnedActiveByIDs(ctx context.Context, userID uint, ids []uint) ([]model.Tag, error) {
	var tags []model.Tag
	err := r.db.WithContext(ctx).
		Where("id IN ? AND user_id = ? AND is_active = ?", ids, userID, true).
		Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *TagRepository) Updates(ctx context.Context, t *model.Tag, fields map[string]any) error {
	return r.db.WithContext(ctx).Model(t).Updates(fields).Error
}

func (r *TagRepository) HardDelete(ctx context.Context, t *model.Tag) error {
	return r.db.WithContext(ctx).Delete(t).Error
}

func (r *TagRepository) SoftDelete(ctx context.Context, t *model.Tag) error {
	return r.db.WithContext(ctx).Model(t).Update("is_active", false).Error
}

// UsageCounts 标签在支出 / 收入中间表里被引用的次数
func (r *TagRepository) UsageCounts(ctx context.Context, id uint) (expenseCount, incomeCount int64, err error) {
	if err = r.db.WithContext(ctx).Table("expense_tags").
		Where("tag_id = ?", id).Count(&expenseCount).Error; err != nil {
		return 0, 0, err
	}
	if err = r.db.WithContext(ctx).Table("income_tags").
		Where("tag_id = ?", id).Count(&incomeCount).Error; err != nil {
		return 0, 0, err
	}
	return expenseCount, incomeCount, nil
}
