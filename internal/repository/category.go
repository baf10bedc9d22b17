package repository

import (
	"context"

	"github.com/leon37/FinLedger/internal/model"
	"gorm.io/gorm"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, c *model.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

// GetOwned 主键 + user_id 双条件查找，属主不符和不存在一样返回 ErrRecordNotFound
func (r *CategoryRepository) GetOwned(ctx context.Context, userID, id uint) (*model.Category, error) {
	var c model.Category
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List categoryType 为空表示不过滤
func (r *CategoryRepository) List(ctx context.Context, userID uint, categoryType string) ([]model.Category, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if categoryType != "" {
		q = q.Where("category_type = ?", categoryType)
	}

	var cats []model.Category
	if err := q.Order("category_type, name").Find(&cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}

// FindOwnedByIDs 批量校验用：只返回属于该用户的那部分
func (r *CategoryRepository) FindOwnedByIDs(ctx context.Context, userID uint, ids []uint) ([]model.Category, error) {
	var cats []model.Category
	err := r.db.WithContext(ctx).
		Where("id IN ? AND user_id = ?", ids, userID).
		Find(&cats).Error
	if err != nil {
		return nil, err
	}
	return cats, nil
}

// Updates 只更新 fields 里出现的列
func (r *CategoryRepository) Updates(ctx context.Context, c *model.Category, fields map[string]any) error {
	return r.db.WithContext(ctx).Model(c).Updates(fields).Error
}

func (r *CategoryRepository) Delete(ctx context.Context, c *model.Category) error {
	return r.db.WithContext(ctx).Delete(c).Error
}

func (r *CategoryRepository) CountChildren(ctx context.Context, id uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Category{}).
		Where("parent_id = ?", id).Count(&n).Error
	return n, err
}

// CountTransactions 该分类被支出或收入引用的总次数
func (r *CategoryRepository) CountTransactions(ctx context.Context, id uint) (int64, error) {
	var expenses, incomes int64
	if err := r.db.WithContext(ctx).Model(&model.Expense{}).
		Where("category_id = ?", id).Count(&expenses).Error; err != nil {
		return 0, err
	}
	if err := r.db.WithContext(ctx).Model(&model.Income{}).
		Where("category_id = ?", id).Count(&incomes).Error; err != nil {
		return 0, err
	}
	return expenses + incomes, nil
}
