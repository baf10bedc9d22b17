package repository

import (
	"context"

	"github.com/leon37/FinLedger/internal/model"
	"gorm.io/gorm"
)

// IncomeFilter 列表筛选条件
type IncomeFilter struct {
	UserID     uint
	Source     string
	CategoryID *uint
	Skip       int
	Limit      int
}

type IncomeRepository struct {
	db *gorm.DB
}

func NewIncomeRepository(db *gorm.DB) *IncomeRepository {
	return &IncomeRepository{db: db}
}

func (r *IncomeRepository) Create(ctx context.Context, in *model.Income) error {
	return r.db.WithContext(ctx).Create(in).Error
}

func (r *IncomeRepository) GetOwned(ctx context.Context, userID, id uint) (*model.Income, error) {
	var in model.Income
	err := r.db.WithContext(ctx).Preload("Tags").
		Where("id = ? AND user_id = ?", id, userID).
		First(&in).Error
	if err != nil {
		return nil, err
	}
	return &in, nil
}

func (r *IncomeRepository) List(ctx context.Context, f IncomeFilter) ([]model.Income, error) {
	q := r.db.WithContext(ctx).Preload("Tags").Where("user_id = ?", f.UserID)
	if f.Source != "" {
		q = q.Where("source = ?", f.Source)
	}
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}

	var incomes []model.Income
	err := q.Order("date DESC").
		Offset(f.Skip).Limit(f.Limit).
		Find(&incomes).Error
	if err != nil {
		return nil, err
	}
	return incomes, nil
}

func (r *IncomeRepository) Updates(ctx context.Context, in *model.Income, fields map[string]any) error {
	return r.db.WithContext(ctx).Model(in).Updates(fields).Error
}

func (r *IncomeRepository) ReplaceTags(ctx context.Context, in *model.Income, tags []model.Tag) error {
	return r.db.WithContext(ctx).Model(in).Association("Tags").Replace(tags)
}

func (r *IncomeRepository) Delete(ctx context.Context, in *model.Income) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(in).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Delete(in).Error
	})
}

// SummaryBySource 按来源汇总
func (r *IncomeRepository) SummaryBySource(ctx context.Context, userID uint) ([]model.IncomeSourceSummary, error) {
	var result []model.IncomeSourceSummary
	err := r.db.WithContext(ctx).Model(&model.Income{}).
		Select("source, SUM(amount) AS total_amount, COUNT(id) AS count").
		Where("user_id = ?", userID).
		Group("source").
		Scan(&result).Error
	if err != nil {
		return nil, err
	}
	return result, nil
}
