package repository

import (
	"context"
	"time"

	"github.com/leon37/FinLedger/internal/model"
	"gorm.io/gorm"
)

// ExpenseFilter 列表筛选条件
type ExpenseFilter struct {
	UserID     uint
	CategoryID *uint
	Skip       int
	Limit      int
}

type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

// Create e.Tags 非空时 gorm 会一并写中间表
func (r *ExpenseRepository) Create(ctx context.Context, e *model.Expense) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *ExpenseRepository) GetOwned(ctx context.Context, userID, id uint) (*model.Expense, error) {
	var e model.Expense
	err := r.db.WithContext(ctx).Preload("Tags").
		Where("id = ? AND user_id = ?", id, userID).
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *ExpenseRepository) List(ctx context.Context, f ExpenseFilter) ([]model.Expense, error) {
	q := r.db.WithContext(ctx).Preload("Tags").Where("user_id = ?", f.UserID)
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}

	var expenses []model.Expense
	err := q.Order("date DESC").
		Offset(f.Skip).Limit(f.Limit).
		Find(&expenses).Error
	if err != nil {
		return nil, err
	}
	return expenses, nil
}

func (r *ExpenseRepository) Updates(ctx context.Context, e *model.Expense, fields map[string]any) error {
	return r.db.WithContext(ctx).Model(e).Updates(fields).Error
}

// ReplaceTags 整体替换标签关联
func (r *ExpenseRepository) ReplaceTags(ctx context.Context, e *model.Expense, tags []model.Tag) error {
	return r.db.WithContext(ctx).Model(e).Association("Tags").Replace(tags)
}

// Delete 先清掉中间表记录再删主行
func (r *ExpenseRepository) Delete(ctx context.Context, e *model.Expense) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(e).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Delete(e).Error
	})
}

// SummaryByCategory 按分类汇总，LEFT JOIN 拿分类名（无分类的归入一组）
func (r *ExpenseRepository) SummaryByCategory(ctx context.Context, userID uint) ([]model.ExpenseCategorySummary, error) {
	var result []model.ExpenseCategorySummary
	err := r.db.WithContext(ctx).Model(&model.Expense{}).
		Select("expenses.category_id, categories.name AS category_name, SUM(expenses.amount) AS total_amount, COUNT(expenses.id) AS count").
		Joins("LEFT JOIN categories ON categories.id = expenses.category_id").
		Where("expenses.user_id = ?", userID).
		Group("expenses.category_id, categories.name").
		Scan(&result).Error
	if err != nil {
		return nil, err
	}
	return result, nil
}

// SumByCategoryBetween 预算对比用：期间内每个分类的支出合计
func (r *ExpenseRepository) SumByCategoryBetween(ctx context.Context, userID uint, start, end time.Time) (map[uint]float64, error) {
	var rows []struct {
		CategoryID *uint
		Spent      float64
	}
	err := r.db.WithContext(ctx).Model(&model.Expense{}).
		Select("category_id, SUM(amount) AS spent").
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, start, end).
		Group("category_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	spent := make(map[uint]float64, len(rows))
	for _, row := range rows {
		if row.CategoryID != nil {
			spent[*row.CategoryID] = row.Spent
		}
	}
	return spent, nil
}
