package service

import (
	"context"

	"github.com/leon37/FinLedger/internal/model"
	"github.com/leon37/FinLedger/internal/repository"
)

// PaymentMethodInput 创建支付方式的请求体
type PaymentMethodInput struct {
	Name          string `json:"name" binding:"required,max=100"`
	Description   string `json:"description"`
	PaymentType   string `json:"payment_type" binding:"required,max=50"`
	Institution   string `json:"institution" binding:"omitempty,max=255"`
	AccountNumber string `json:"account_number" binding:"omitempty,max=100"`
	Color         string `json:"color" binding:"omitempty,hexcolor,len=7"`
	Icon          string `json:"icon" binding:"omitempty,max=50"`
	IsDefault     bool   `json:"is_default"`
}

// PaymentMethodPatch 部分更新
type PaymentMethodPatch struct {
	Name          *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description   *string `json:"description"`
	PaymentType   *string `json:"payment_type" binding:"omitempty,min=1,max=50"`
	Institution   *string `json:"institution" binding:"omitempty,max=255"`
	AccountNumber *string `json:"account_number" binding:"omitempty,max=100"`
	Color         *string `json:"color" binding:"omitempty,hexcolor,len=7"`
	Icon          *string `json:"icon" binding:"omitempty,max=50"`
	IsDefault     *bool   `json:"is_default"`
	IsActive      *bool   `json:"is_active"`
}

type PaymentMethodService struct {
	paymentMethodRepo *repository.PaymentMethodRepository
}

func NewPaymentMethodService(paymentMethodRepo *repository.PaymentMethodRepository) *PaymentMethodService {
	return &PaymentMethodService{paymentMethodRepo: paymentMethodRepo}
}

func (s *PaymentMethodService) Create(ctx context.Context, userID uint, in PaymentMethodInput) (*model.PaymentMethod, error) {
	pm := &model.PaymentMethod{
		UserID:        userID,
		Name:          in.Name,
		Description:   in.Description,
		PaymentType:   in.PaymentType,
		Institution:   in.Institution,
		AccountNumber: in.AccountNumber,
		Color:         in.Color,
		Icon:          in.Icon,
		IsDefault:     in.IsDefault,
		IsActive:      true,
	}
	if err := s.paymentMethodRepo.Create(ctx, pm); err != nil {
		return nil, err
	}
	return pm, nil
}

func (s *PaymentMethodService) Get(ctx context.Context, userID, id uint) (*model.PaymentMethod, error) {
	pm, err := s.paymentMethodRepo.GetOwned(ctx, userID, id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return pm, nil
}

func (s *PaymentMethodService) List(ctx context.Context, userID uint, paymentType string) ([]model.PaymentMethod, error) {
	return s.paymentMethodRepo.ListActive(ctx, userID, paymentType)
}

func (s *PaymentMethodService) Update(ctx context.Context, userID, id uint, patch PaymentMethodPatch) (*model.PaymentMethod, error) {
	pm, err := s.paymentMethodRepo.GetOwned(ctx, userID, id)
	if err != nil {
		return nil, notFoundOr(err)
	}

	fields := map[string]any{}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.PaymentType != nil {
		fields["payment_type"] = *patch.PaymentType
	}
	if patch.Institution != nil {
		fields["institution"] = *patch.Institution
	}
	if patch.AccountNumber != nil {
		fields["account_number"] = *patch.AccountNumber
	}
	if patch.Color != nil {
		fields["color"] = *patch.Color
	}
	if patch.Icon != nil {
		fields["icon"] = *patch.Icon
	}
	if patch.IsDefault != nil {
		fields["is_default"] = *patch.IsDefault
	}
	if patch.IsActive != nil {
		fields["is_active"] = *patch.IsActive
	}

	if len(fields) > 0 {
		if err := s.paymentMethodRepo.Updates(ctx, pm, fields); err != nil {
			return nil, err
		}
	}
	return s.paymentMethodRepo.GetOwned(ctx, userID, id)
}

// Delete 被支出引用过的支付方式只做软删除
func (s *PaymentMethodService) Delete(ctx context.Context, userID, id uint) error {
	pm, err := s.paymentMethodRepo.GetOwned(ctx, userID, id)
	if err != nil {
		return notFoundOr(err)
	}

	expenses, err := s.paymentMethodRepo.CountExpenses(ctx, pm.ID)
	if err != nil {
		return err
	}
	if expenses > 0 {
		return s.paymentMethodRepo.SoftDelete(ctx, pm)
	}
	return s.paymentMethodRepo.HardDelete(ctx, pm)
}
