package service

import (
	"context"
	"time"

	"github.com/leon37/FinLedger/internal/model"
	"github.com/leon37/FinLedger/internal/repository"
)

// FinancialProductInput 创建金融产品的请求体
type FinancialProductInput struct {
	Name            string     `json:"name" binding:"required,max=255"`
	ProductType     string     `json:"product_type" binding:"required,max=50"`
	Institution     string     `json:"institution" binding:"required,max=255"`
	AccountNumber   string     `json:"account_number" binding:"omitempty,max=100"`
	Balance         float64    `json:"balance"`
	InterestRate    *float64   `json:"interest_rate" binding:"omitempty,gte=0"`
	MinimumBalance  float64    `json:"minimum_balance" binding:"omitempty,gte=0"`
	MonthlyFee      float64    `json:"monthly_fee" binding:"omitempty,gte=0"`
	CreditLimit     *float64   `json:"credit_limit" binding:"omitempty,gte=0"`
	AvailableCredit *float64   `json:"available_credit" binding:"omitempty,gte=0"`
	PaymentDueDate  *int       `json:"payment_due_date" binding:"omitempty,min=1,max=31"`
	MinimumPayment  *float64   `json:"minimum_payment" binding:"omitempty,gte=0"`
	OpeningDate     *time.Time `json:"opening_date"`
	MaturityDate    *time.Time `json:"maturity_date"`
	Currency        string     `json:"currency" binding:"omitempty,len=3"`
	Notes           string     `json:"notes"`
}

// FinancialProductPatch 部分更新
type FinancialProductPatch struct {
	Name            *string    `json:"name" binding:"omitempty,min=1,max=255"`
	ProductType     *string    `json:"product_type" binding:"omitempty,min=1,max=50"`
	Institution     *string    `json:"institution" binding:"omitempty,min=1,max=255"`
	AccountNumber   *string    `json:"account_number" binding:"omitempty,max=100"`
	Balance         *float64   `json:"balance"`
	InterestRate    *float64   `json:"interest_rate" binding:"omitempty,gte=0"`
	MinimumBalance  *float64   `json:"minimum_balance" binding:"omitempty,gte=0"`
	MonthlyFee      *float64   `json:"monthly_fee" binding:"omitempty,gte=0"`
	CreditLimit     *float64   `json:"credit_limit" binding:"omitempty,gte=0"`
	AvailableCredit *float64   `json:"available_credit" binding:"omitempty,gte=0"`
	PaymentDueDate  *int       `json:"payment_due_date" binding:"omitempty,min=1,max=31"`
	MinimumPayment  *float64   `json:"minimum_payment" binding:"omitempty,gte=0"`
	IsActive        *bool      `json:"is_active"`
	OpeningDate     *time.Time `json:"opening_date"`
	MaturityDate    *time.Time `json:"maturity_date"`
	Currency        *string    `json:"currency" binding:"omitempty,len=3"`
	Notes           *string    `json:"notes"`
}

type FinancialProductService struct {
	productRepo *repository.FinancialProductRepository
}

func NewFinancialProductService(productRepo *repository.FinancialProductRepository) *FinancialProductService {
	return &FinancialProductService{productRepo: productRepo}
}

func (s *FinancialProductService) Create(ctx context.Context, userID uint, in FinancialProductInput) (*model.FinancialProduct, error) {
	currency := in.Currency
	if currency == "" {
		currency = "COP"
	}

	p := &model.FinancialProduct{
		UserID:          userID,
		Name:            in.Name,
		ProductType:     in.ProductType,
		Institution:     in.Institution,
		AccountNumber:   in.AccountNumber,
		Balance:         in.Balance,
		InterestRate:    in.InterestRate,
		MinimumBalance:  in.MinimumBalance,
		MonthlyFee:      in.MonthlyFee,
		CreditLimit:     in.CreditLimit,
		AvailableCredit: in.AvailableCredit,
		PaymentDueDate:  in.PaymentDueDate,
		MinimumPayment:  in.MinimumPayment,
		IsActive:        true,
		OpeningDate:     in.OpeningDate,
		MaturityDate:    in.MaturityDate,
		Currency:        currency,
		Notes:           in.Notes,
	}
	if err := s.productRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *FinancialProductService) Get(ctx context.Context, userID, id uint) (*model.FinancialProduct, error) {
	p, err := s.productRepo.GetOwned(ctx, userID, id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return p, nil
}

func (s *FinancialProductService) List(ctx context.Context, f repository.FinancialProductFilter) ([]model.FinancialProduct, error) {
	return s.productRepo.List(ctx, f)
}

func (s *FinancialProductService) Update(ctx context.Context, userID, id uint, patch FinancialProductPatch) (*model.FinancialProduct, error) {
	p, err := s.productRepo.GetOwned(ctx, userID, id)
	if err != nil {
		return nil, notFoundOr(err)
	}

	fields := map[string]any{}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.ProductType != nil {
		fields["product_type"] = *patch.ProductType
	}
	if patch.Institution != nil {
		fields["institution"] = *patch.Institution
	}
	if patch.AccountNumber != nil {
		fields["account_number"] = *patch.AccountNumber
	}
	if patch.Balance != nil {
		fields["balance"] = *patch.Balance
	}
	if patch.InterestRate != nil {
		fields["interest_rate"] = *patch.InterestRate
	}
	if patch.MinimumBalance != nil {
		fields["minimum_balance"] = *patch.MinimumBalance
	}
	if patch.MonthlyFee != nil {
		fields["monthly_fee"] = *patch.MonthlyFee
	}
	if patch.CreditLimit != nil {
		fields["credit_limit"] = *patch.CreditLimit
	}
	if patch.AvailableCredit != nil {
		fields["available_credit"] = *patch.AvailableCredit
	}
	if patch.PaymentDueDate != nil {
		fields["payment_due_date"] = *patch.PaymentDueDate
	}
	if patch.MinimumPayment != nil {
		fields["minimum_payment"] = *patch.MinimumPayment
	}
	if patch.IsActive != nil {
		fields["is_active"] = *patch.IsActive
	}
	if patch.OpeningDate != nil {
		fields["opening_date"] = *patch.OpeningDate
	}
	if patch.MaturityDate != nil {
		fields["maturity_date"] = *patch.MaturityDate
	}
	if patch.Currency != nil {
		fields["currency"] = *patch.Currency
	}
	if patch.Notes != nil {
		fields["notes"] = *patch.Notes
	}

	if len(fields) > 0 {
		if err := s.productRepo.Updates(ctx, p, fields); err != nil {
			return nil, err
		}
	}
	return s.productRepo.GetOwned(ctx, userID, id)
}

func (s *FinancialProductService) Delete(ctx context.Context, userID, id uint) error {
	p, err := s.productRepo.GetOwned(ctx, userID, id)
	if err != nil {
		return notFoundOr(err)
	}
	return s.productRepo.Delete(ctx, p)
}

func (s *FinancialProductService) SummaryByType(ctx context.Context, userID uint) ([]model.ProductTypeSummary, error) {
	return s.productRepo.SummaryByType(ctx, userID)
}

func (s *FinancialProductService) TotalBalance(ctx context.Context, userID uint) (float64, error) {
	return s.productRepo.TotalBalance(ctx, userID)
}
