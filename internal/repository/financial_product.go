package repository

import (
	"context"

	"github.com/leon37/FinLedger/internal/model"
	"gorm.io/gorm"
)

// FinancialProductFilter 列表筛选条件
type FinancialProductFilter struct {
	UserID      uint
	ProductType string
	Institution string
	IsActive    *bool
	Skip        int
	Limit       int
}

type FinancialProductRepository struct {
	db *gorm.DB
}

func NewFinancialProductRepository(db *gorm.DB) *FinancialProductRepository {
	return &FinancialProductRepository{db: db}
}

func (r *FinancialProductRepository) Create(ctx context.Context, p *model.FinancialProduct) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *FinancialProductRepository) GetOwned(ctx context.Context, userID, id uint) (*model.FinancialProduct, error) {
	var p model.FinancialProduct
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *FinancialProductRepository) List(ctx context.Context, f FinancialProductFilter) ([]model.FinancialProduct, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", f.UserID)
	if f.ProductType != "" {
		q = q.Where("product_type = ?", f.ProductType)
	}
	if f.Institution != "" {
		q = q.Where("institution = ?", f.Institution)
	}
	if f.IsActive != nil {
		q = q.Where("is_active = ?", *f.IsActive)
	}

	var products []model.FinancialProduct
	err := q.Order("opening_date DESC").
		Offset(f.Skip).Limit(f.Limit).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *FinancialProductRepository) Updates(ctx context.Context, p *model.FinancialProduct, fields map[string]any) error {
	return r.db.WithContext(ctx).Model(p).Updates(fields).Error
}

func (r *FinancialProductRepository) Delete(ctx context.Context, p *model.FinancialProduct) error {
	return r.db.WithContext(ctx).Delete(p).Error
}

// SummaryByType 活跃产品按类型汇总
func (r *FinancialProductRepository) SummaryByType(ctx context.Context, userID uint) ([]model.ProductTypeSummary, error) {
	var result []model.ProductTypeSummary
	err := r.db.WithContext(ctx).Model(&model.FinancialProduct{}).
		Select("product_type, COALESCE(SUM(balance), 0) AS total_balance, COUNT(id) AS count").
		Where("user_id = ? AND is_active = ?", userID, true).
		Group("product_type").
		Scan(&result).Error
	if err != nil {
		return nil, err
	}
	return result, nil
}

// TotalBalance 活跃产品余额合计
func (r *FinancialProductRepository) TotalBalance(ctx context.Context, userID uint) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&model.FinancialProduct{}).
		Select("COALESCE(SUM(balance), 0)").
		Where("user_id = ? AND is_active = ?", userID, true).
		Scan(&total).Error
	return total, err
}
