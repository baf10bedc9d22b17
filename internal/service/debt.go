package service

import (
	"context"
	"time"

	"github.com/leon37/FinLedger/internal/model"
	"github.com/leon37/FinLedger/internal/repository"
)

// DebtInput 创建债务的请求体
type DebtInput struct {
	Name            string     `json:"name" binding:"required,max=255"`
	DebtType        string     `json:"debt_type" binding:"required,max=50"`
	Lender          string     `json:"lender" binding:"required,max=255"`
	OriginalAmount  float64    `json:"original_amount" binding:"required,gt=0"`
	CurrentBalance  float64    `json:"current_balance" binding:"omitempty,gte=0"`
	InterestRate    float64    `json:"interest_rate" binding:"omitempty,gte=0"`
	MinimumPayment  float64    `json:"minimum_payment" binding:"omitempty,gte=0"`
	PaymentDueDate  *int       `json:"payment_due_date" binding:"omitempty,min=1,max=31"`
	LoanStartDate   time.Time  `json:"loan_start_date" binding:"required"`
	ExpectedEndDate *time.Time `json:"expected_end_date"`
	Currency        string     `json:"currency" binding:"omitempty,len=3"`
	Collateral      string     `json:"collateral" binding:"omitempty,max=255"`
	Notes           string     `json:"notes"`
}

// DebtPatch 部分更新
type DebtPatch struct {
	Name            *string    `json:"name" binding:"omitempty,min=1,max=255"`
	DebtType        *string    `json:"debt_type" binding:"omitempty,min=1,max=50"`
	Lender          *string    `json:"lender" binding:"omitempty,min=1,max=255"`
	OriginalAmount  *float64   `json:"original_amount" binding:"omitempty,gt=0"`
	CurrentBalance  *float64   `json:"current_balance" binding:"omitempty,gte=0"`
	InterestRate    *float64   `json:"interest_rate" binding:"omitempty,gte=0"`
	MinimumPayment  *float64   `json:"minimum_payment" binding:"omitempty,gte=0"`
	PaymentDueDate  *int       `json:"payment_due_date" binding:"omitempty,min=1,max=31"`
	LoanStartDate   *time.Time `json:"loan_start_date"`
	ExpectedEndDate *time.Time `json:"expected_end_date"`
	Currency        *string    `json:"currency" binding:"omitempty,len=3"`
	Collateral      *string    `json:"collateral" binding:"omitempty,max=255"`
	Notes           *string    `json:"notes"`
}

type DebtService struct {
	debtRepo *repository.DebtRepository
}

func NewDebtService(debtRepo *repository.DebtRepository) *DebtService {
	return &DebtService{debtRepo: debtRepo}
}

func (s *DebtService) Create(ctx context.Context, userID uint, in DebtInput) (*model.Debt, error) {
	currency := in.Currency
	if currency == "" {
		currency = "COP"
	}
	// 未显式给余额时按原始金额算
	currentBalance := in.CurrentBalance
	if currentBalance == 0 {
		currentBalance = in.OriginalAmount
	}

	d := &model.Debt{
		UserID:          userID,
		Name:            in.Name,
		DebtType:        in.DebtType,
		Lender:          in.Lender,
		OriginalAmount:  in.OriginalAmount,
		CurrentBalance:  currentBalance,
		InterestRate:    in.InterestRate,
		MinimumPayment:  in.MinimumPayment,
		PaymentDueDate:  in.PaymentDueDate,
		LoanStartDate:   in.LoanStartDate,
		ExpectedEndDate: in.ExpectedEndDate,
		Currency:        currency,
		Collateral:      in.Collateral,
		Notes:           in.Notes,
	}
	if err := s.debtRepo.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *DebtService) Get(ctx context.Context, userID, id uint) (*model.Debt, error) {
	d, err := s.debtRepo.GetOwned(ctx, userID, id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return d, nil
}

func (s *DebtService) List(ctx context.Context, f repository.DebtFilter) ([]model.Debt, error) {
	return s.debtRepo.List(ctx, f)
}

func (s *DebtService) Update(ctx context.Context, userID, id uint, patch DebtPatch) (*model.Debt, error) {
	d, err := s.debtRepo.GetOwned(ctx, userID, id)
	if err != nil {
		return nil, notFoundOr(err)
	}

	fields := map[string]any{}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.DebtType != nil {
		fields["debt_type"] = *patch.DebtType
	}
	if patch.Lender != nil {
		fields["lender"] = *patch.Lender
	}
	if patch.OriginalAmount != nil {
		fields["original_amount"] = *patch.OriginalAmount
	}
	if patch.CurrentBalance != nil {
		fields["current_balance"] = *patch.CurrentBalance
	}
	if patch.InterestRate != nil {
		fields["interest_rate"] = *patch.InterestRate
	}
	if patch.MinimumPayment != nil {
		fields["minimum_payment"] = *patch.MinimumPayment
	}
	if patch.PaymentDueDate != nil {
		fields["payment_due_date"] = *patch.PaymentDueDate
	}
	if patch.LoanStartDate != nil {
		fields["loan_start_date"] = *patch.LoanStartDate
	}
	if patch.ExpectedEndDate != nil {
		fields["expected_end_date"] = *patch.ExpectedEndDate
	}
	if patch.Currency != nil {
		fields["currency"] = *patch.Currency
	}
	if patch.Collateral != nil {
		fields["collateral"] = *patch.Collateral
	}
	if patch.Notes != nil {
		fields["notes"] = *patch.Notes
	}

	if len(fields) > 0 {
		if err := s.debtRepo.Updates(ctx, d, fields); err != nil {
			return nil, err
		}
	}
	return s.debtRepo.GetOwned(ctx, userID, id)
}

func (s *DebtService) Delete(ctx context.Context, userID, id uint) error {
	d, err := s.debtRepo.GetOwned(ctx, userID, id)
	if err != nil {
		return notFoundOr(err)
	}
	return s.debtRepo.Delete(ctx, d)
}

// PayOff 结清债务：余额清零并打上还清标记，重复结清报业务错误
func (s *DebtService) PayOff(ctx context.Context, userID, id uint) (*model.Debt, error) {
	d, err := s.debtRepo.GetOwned(ctx, userID, id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	if d.IsPaidOff {
		return nil, ruleErrf("debt is already paid off")
	}

	now := time.Now()
	fields := map[string]any{
		"current_balance": 0.0,
		"is_paid_off":     true,
		"paid_off_date":   now,
	}
	if err := s.debtRepo.Updates(ctx, d, fields); err != nil {
		return nil, err
	}
	return s.debtRepo.GetOwned(ctx, userID, id)
}

func (s *DebtService) SummaryByType(ctx context.Context, userID uint) ([]model.DebtTypeSummary, error) {
	return s.debtRepo.SummaryByType(ctx, userID)
}

func (s *DebtService) TotalBalance(ctx context.Context, userID uint) (float64, error) {
	return s.debtRepo.TotalBalance(ctx, userID)
}
