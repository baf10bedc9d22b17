package repository

import (
	"context"

	"github.com/leon37/FinLedger/internal/model"
	"gorm.io/gorm"
)

// BudgetFilter 列表筛选条件
type BudgetFilter struct {
	UserID   uint
	IsActive *bool
	Skip     int
	Limit    int
}

type BudgetRepository struct {
	db *gorm.DB
}

func NewBudgetRepository(db *gorm.DB) *BudgetRepository {
	return &BudgetRepository{db: db}
}

// CreateWithItems 预算和条目在同一事务内落库，total_budgeted 以 SQL 重算为准
func (r *BudgetRepository) CreateWithItems(ctx context.Context, b *model.Budget) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(b).Error; err != nil {
			return err
		}
		return recomputeTotalBudgeted(tx, b.ID, &b.TotalBudgeted)
	})
}

func (r *BudgetRepository) GetOwned(ctx context.Context, userID, id uint) (*model.Budget, error) {
	var b model.Budget
	err := r.db.WithContext(ctx).
		Preload("BudgetItems.Category").
		Where("id = ? AND user_id = ?", id, userID).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BudgetRepository) List(ctx context.Context, f BudgetFilter) ([]model.Budget, error) {
	q := r.db.WithContext(ctx).
		Preload("BudgetItems.Category").
		Where("user_id = ?", f.UserID)
	if f.IsActive != nil {
		q = q.Where("is_active = ?", *f.IsActive)
	}

	var budgets []model.Budget
	err := q.Order("created_at DESC").
		Offset(f.Skip).Limit(f.Limit).
		Find(&budgets).Error
	if err != nil {
		return nil, err
	}
	return budgets, nil
}

func (r *BudgetRepository) Updates(ctx context.Context, b *model.Budget, fields map[string]any) error {
	return r.db.WithContext(ctx).Model(b).Updates(fields).Error
}

// Delete 条目和预算同一事务删除
func (r *BudgetRepository) Delete(ctx context.Context, b *model.Budget) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("budget_id = ?", b.ID).Delete(&model.BudgetItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(b).Error
	})
}

func (r *BudgetRepository) GetItem(ctx context.Context, budgetID, itemID uint) (*model.BudgetItem, error) {
	var item model.BudgetItem
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("id = ? AND budget_id = ?", itemID, budgetID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ItemByCategory 同一预算里一个分类只允许一个条目
func (r *BudgetRepository) ItemByCategory(ctx context.Context, budgetID, categoryID uint) (*model.BudgetItem, error) {
	var item model.BudgetItem
	err := r.db.WithContext(ctx).
		Where("budget_id = ? AND category_id = ?", budgetID, categoryID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateItem 写条目并在同一事务内重算 total_budgeted，
// 并发条目变更下不会丢更新
func (r *BudgetRepository) CreateItem(ctx context.Context, item *model.BudgetItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(item).Error; err != nil {
			return err
		}
		return recomputeTotalBudgeted(tx, item.BudgetID, nil)
	})
}

func (r *BudgetRepository) UpdateItem(ctx context.Context, item *model.BudgetItem, fields map[string]any) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(item).Updates(fields).Error; err != nil {
			return err
		}
		return recomputeTotalBudgeted(tx, item.BudgetID, nil)
	})
}

func (r *BudgetRepository) DeleteItem(ctx context.Context, item *model.BudgetItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(item).Error; err != nil {
			return err
		}
		return recomputeTotalBudgeted(tx, item.BudgetID, nil)
	})
}

// SetItemSpent 对比接口回写单个条目的 spent_amount
func (r *BudgetRepository) SetItemSpent(ctx context.Context, itemID uint, spent float64) error {
	return r.db.WithContext(ctx).Model(&model.BudgetItem{}).
		Where("id = ?", itemID).
		Update("spent_amount", spent).Error
}

// SetTotalSpent 对比接口回写 total_spent
func (r *BudgetRepository) SetTotalSpent(ctx context.Context, budgetID uint, totalSpent float64) error {
	return r.db.WithContext(ctx).Model(&model.Budget{}).
		Where("id = ?", budgetID).
		Update("total_spent", totalSpent).Error
}

// recomputeTotalBudgeted 在事务内用条目合计覆盖 total_budgeted；
// out 非 nil 时带回最新值
func recomputeTotalBudgeted(tx *gorm.DB, budgetID uint, out *float64) error {
	var total float64
	err := tx.Model(&model.BudgetItem{}).
		Select("COALESCE(SUM(budgeted_amount), 0)").
		Where("budget_id = ?", budgetID).
		Scan(&total).Error
	if err != nil {
		return err
	}
	if err := tx.Model(&model.Budget{}).
		Where("id = ?", budgetID).
		Update("total_budgeted", total).Error; err != nil {
		return err
	}
	if out != nil {
		*out = total
	}
	return nil
}
