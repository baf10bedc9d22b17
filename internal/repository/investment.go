package repository

import (
	"context"

	"github.com/leon37/FinLedger/internal/model"
	"gorm.io/gorm"
)

// InvestmentFilter 列表筛选条件
type InvestmentFilter struct {
	UserID         uint
	InvestmentType string
	IsActive       *bool
	Skip           int
	Limit          int
}

type InvestmentRepository struct {
	db *gorm.DB
}

func NewInvestmentRepository(db *gorm.DB) *InvestmentRepository {
	return &InvestmentRepository{db: db}
}

func (r *InvestmentRepository) Create(ctx context.Context, inv *model.Investment) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *InvestmentRepository) GetOwned(ctx context.Context, userID, id uint) (*model.Investment, error) {
	var inv model.Investment
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&inv).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *InvestmentRepository) List(ctx context.Context, f InvestmentFilter) ([]model.Investment, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", f.UserID)
	if f.InvestmentType != "" {
		q = q.Where("investment_type = ?", f.InvestmentType)
	}
	if f.IsActive != nil {
		q = q.Where("is_active = ?", *f.IsActive)
	}

	var investments []model.Investment
	err := q.Order("purchase_date DESC").
		Offset(f.Skip).Limit(f.Limit).
		Find(&investments).Error
	if err != nil {
		return nil, err
	}
	return investments, nil
}

func (r *InvestmentRepository) Updates(ctx context.Context, inv *model.Investment, fields map[string]any) error {
	return r.db.WithContext(ctx).Model(inv).Updates(fields).Error
}

func (r *InvestmentRepository) Delete(ctx context.Context, inv *model.Investment) error {
	return r.db.WithContext(ctx).Delete(inv).Error
}

// SummaryByType 活跃投资按类型汇总
func (r *InvestmentRepository) SummaryByType(ctx context.Context, userID uint) ([]model.InvestmentTypeSummary, error) {
	var result []model.InvestmentTypeSummary
	err := r.db.WithContext(ctx).Model(&model.Investment{}).
		Select("investment_type, COALESCE(SUM(amount_invested), 0) AS total_invested, COALESCE(SUM(current_value), 0) AS total_current_value, COUNT(id) AS count").
		Where("user_id = ? AND is_active = ?", userID, true).
		Group("investment_type").
		Scan(&result).Error
	if err != nil {
		return nil, err
	}
	return result, nil
}

// PerformanceTotals 活跃投资的投入总额和现值总额
func (r *InvestmentRepository) PerformanceTotals(ctx context.Context, userID uint) (invested, currentValue float64, err error) {
	var row struct {
		TotalInvested     float64
		TotalCurrentValue float64
	}
	err = r.db.WithContext(ctx).Model(&model.Investment{}).
		Select("COALESCE(SUM(amount_invested), 0) AS total_invested, COALESCE(SUM(current_value), 0) AS total_current_value").
		Where("user_id = ? AND is_active = ?", userID, true).
		Scan(&row).Error
	if err != nil {
		return 0, 0, err
	}
	return row.TotalInvested, row.TotalCurrentValue, nil
}
