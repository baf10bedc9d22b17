package repository

import (
	"context"

	"github.com/leon37/FinLedger/internal/model"
	"gorm.io/gorm"
)

type PaymentMethodRepository struct {
	db *gorm.DB
}

func NewPaymentMethodRepository(db *gorm.DB) *PaymentMethodRepository {
	return &PaymentMethodRepository{db: db}
}

func (r *PaymentMethodRepository) Create(ctx context.Context, pm *model.PaymentMethod) error {
	return r.db.WithContext(ctx).Create(pm).Error
}

func (r *PaymentMethodRepository) GetOwned(ctx context.Context, userID, id uint) (*model.PaymentMethod, error) {
	var pm model.PaymentMethod
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&pm).Error
	if err != nil {
		return nil, err
	}
	return &pm, nil
}

func (r *PaymentMethodRepository) ListActive(ctx context.Context, userID uint, paymentType string) ([]model.PaymentMethod, error) {
	q := r.db.WithContext(ctx).Where("user_id = ? AND is_active = ?", userID, true)
	if paymentType != "" {
		q = q.Where("payment_type = ?", paymentType)
	}

	var pms []model.PaymentMethod
	if err := q.Order("name").Find(&pms).Error; err != nil {
		return nil, err
	}
	return pms, nil
}

func (r *PaymentMethodRepository) Updates(ctx context.Context, pm *model.PaymentMethod, fields map[string]any) error {
	return r.db.WithContext(ctx).Model(pm).Updates(fields).Error
}

func (r *PaymentMethodRepository) HardDelete(ctx context.Context, pm *model.PaymentMethod) error {
	return r.db.WithContext(ctx).Delete(pm).Error
}

func (r *PaymentMethodRepository) SoftDelete(ctx context.Context, pm *model.PaymentMethod) error {
	return r.db.WithContext(ctx).Model(pm).Update("is_active", false).Error
}

// CountExpenses 被多少条支出引用
func (r *PaymentMethodRepository) CountExpenses(ctx context.Context, id uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Expense{}).
		Where("payment_method_id = ?", id).Count(&n).Error
	return n, err
}
