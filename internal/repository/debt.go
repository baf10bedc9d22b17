package repository

import (
	"context"

	"github.com/leon37/FinLedger/internal/model"
	"gorm.io/gorm"
)

// DebtFilter 列表筛选条件
type DebtFilter struct {
	UserID    uint
	DebtType  string
	Lender    string
	IsPaidOff *bool
	Skip      int
	Limit     int
}

type DebtRepository struct {
	db *gorm.DB
}

func NewDebtRepository(db *gorm.DB) *DebtRepository {
	return &DebtRepository{db: db}
}

func (r *DebtRepository) Create(ctx context.Context, d *model.Debt) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DebtRepository) GetOwned(ctx context.Context, userID, id uint) (*model.Debt, error) {
	var d model.Debt
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DebtRepository) List(ctx context.Context, f DebtFilter) ([]model.Debt, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", f.UserID)
	if f.DebtType != "" {
		q = q.Where("debt_type = ?", f.DebtType)
	}
	if f.Lender != "" {
		q = q.Where("lender = ?", f.Lender)
	}
	if f.IsPaidOff != nil {
		q = q.Where("is_paid_off = ?", *f.IsPaidOff)
	}

	var debts []model.Debt
	err := q.Order("loan_start_date DESC").
		Offset(f.Skip).Limit(f.Limit).
		Find(&debts).Error
	if err != nil {
		return nil, err
	}
	return debts, nil
}

func (r *DebtRepository) Updates(ctx context.Context, d *model.Debt, fields map[string]any) error {
	return r.db.WithContext(ctx).Model(d).Updates(fields).Error
}

func (r *DebtRepository) Delete(ctx context.Context, d *model.Debt) error {
	return r.db.WithContext(ctx).Delete(d).Error
}

// SummaryByType 未还清债务按类型汇总
func (r *DebtRepository) SummaryByType(ctx context.Context, userID uint) ([]model.DebtTypeSummary, error) {
	var result []model.DebtTypeSummary
	err := r.db.WithContext(ctx).Model(&model.Debt{}).
		Select("debt_type, COALESCE(SUM(current_balance), 0) AS total_balance, COUNT(id) AS count").
		Where("user_id = ? AND is_paid_off = ?", userID, false).
		Group("debt_type").
		Scan(&result).Error
	if err != nil {
		return nil, err
	}
	return result, nil
}

// TotalBalance 未还清债务余额合计
func (r *DebtRepository) TotalBalance(ctx context.Context, userID uint) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&model.Debt{}).
		Select("COALESCE(SUM(current_balance), 0)").
		Where("user_id = ? AND is_paid_off = ?", userID, false).
		Scan(&total).Error
	return total, err
}
