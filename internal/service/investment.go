package service

import (
	"context"
	"math"
	"time"

	"github.com/leon37/FinLedger/internal/model"
	"github.com/leon37/FinLedger/internal/repository"
)

// InvestmentInput 创建投资的请求体
type InvestmentInput struct {
	Name            string     `json:"name" binding:"required,max=255"`
	Symbol          string     `json:"symbol" binding:"omitempty,max=20"`
	InvestmentType  string     `json:"investment_type" binding:"required,max=50"`
	AmountInvested  float64    `json:"amount_invested" binding:"required,gt=0"`
	CurrentValue    *float64   `json:"current_value" binding:"omitempty,gte=0"`
	PurchaseDate    time.Time  `json:"purchase_date" binding:"required"`
	Quantity        *float64   `json:"quantity" binding:"omitempty,gt=0"`
	PurchasePrice   *float64   `json:"purchase_price" binding:"omitempty,gt=0"`
	CurrentPrice    *float64   `json:"current_price" binding:"omitempty,gte=0"`
	BrokerPlatform  string     `json:"broker_platform" binding:"omitempty,max=100"`
	Fees            float64    `json:"fees" binding:"omitempty,gte=0"`
	Taxes           float64    `json:"taxes" binding:"omitempty,gte=0"`
	DividendsEarned float64    `json:"dividends_earned" binding:"omitempty,gte=0"`
	MaturityDate    *time.Time `json:"maturity_date"`
	RiskLevel       string     `json:"risk_level" binding:"omitempty,max=20"`
	Sector          string     `json:"sector" binding:"omitempty,max=100"`
	Notes           string     `json:"notes"`
}

// InvestmentPatch 部分更新
type InvestmentPatch struct {
	Name            *string    `json:"name" binding:"omitempty,min=1,max=255"`
	Symbol          *string    `json:"symbol" binding:"omitempty,max=20"`
	InvestmentType  *string    `json:"investment_type" binding:"omitempty,min=1,max=50"`
	AmountInvested  *float64   `json:"amount_invested" binding:"omitempty,gt=0"`
	CurrentValue    *float64   `json:"current_value" binding:"omitempty,gte=0"`
	PurchaseDate    *time.Time `json:"purchase_date"`
	Quantity        *float64   `json:"quantity" binding:"omitempty,gt=0"`
	PurchasePrice   *float64   `json:"purchase_price" binding:"omitempty,gt=0"`
	CurrentPrice    *float64   `json:"current_price" binding:"omitempty,gte=0"`
	BrokerPlatform  *string    `json:"broker_platform" binding:"omitempty,max=100"`
	Fees            *float64   `json:"fees" binding:"omitempty,gte=0"`
	Taxes           *float64   `json:"taxes" binding:"omitempty,gte=0"`
	DividendsEarned *float64   `json:"dividends_earned" binding:"omitempty,gte=0"`
	IsActive        *bool      `json:"is_active"`
	MaturityDate    *time.Time `json:"maturity_date"`
	RiskLevel       *string    `json:"risk_level" binding:"omitempty,max=20"`
	Sector          *string    `json:"sector" binding:"omitempty,max=100"`
	Notes           *string    `json:"notes"`
}

type InvestmentService struct {
	investmentRepo *repository.InvestmentRepository
}

func NewInvestmentService(investmentRepo *repository.InvestmentRepository) *InvestmentService {
	return &InvestmentService{investmentRepo: investmentRepo}
}

func (s *InvestmentService) Create(ctx context.Context, userID uint, in InvestmentInput) (*model.Investment, error) {
	inv := &model.Investment{
		UserID:          userID,
		Name:            in.Name,
		Symbol:          in.Symbol,
		InvestmentType:  in.InvestmentType,
		AmountInvested:  in.AmountInvested,
		CurrentValue:    in.CurrentValue,
		PurchaseDate:    in.PurchaseDate,
		Quantity:        in.Quantity,
		PurchasePrice:   in.PurchasePrice,
		CurrentPrice:    in.CurrentPrice,
		BrokerPlatform:  in.BrokerPlatform,
		Fees:            in.Fees,
		Taxes:           in.Taxes,
		DividendsEarned: in.DividendsEarned,
		IsActive:        true,
		MaturityDate:    in.MaturityDate,
		RiskLevel:       in.RiskLevel,
		Sector:          in.Sector,
		Notes:           in.Notes,
	}
	if err := s.investmentRepo.Create(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *InvestmentService) Get(ctx context.Context, userID, id uint) (*model.Investment, error) {
	inv, err := s.investmentRepo.GetOwned(ctx, userID, id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return inv, nil
}

func (s *InvestmentService) List(ctx context.Context, f repository.InvestmentFilter) ([]model.Investment, error) {
	return s.investmentRepo.List(ctx, f)
}

func (s *InvestmentService) Update(ctx context.Context, userID, id uint, patch InvestmentPatch) (*model.Investment, error) {
	inv, err := s.investmentRepo.GetOwned(ctx, userID, id)
	if err != nil {
		return nil, notFoundOr(err)
	}

	fields := map[string]any{}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Symbol != nil {
		fields["symbol"] = *patch.Symbol
	}
	if patch.InvestmentType != nil {
		fields["investment_type"] = *patch.InvestmentType
	}
	if patch.AmountInvested != nil {
		fields["amount_invested"] = *patch.AmountInvested
	}
	if patch.CurrentValue != nil {
		fields["current_value"] = *patch.CurrentValue
	}
	if patch.PurchaseDate != nil {
		fields["purchase_date"] = *patch.PurchaseDate
	}
	if patch.Quantity != nil {
		fields["quantity"] = *patch.Quantity
	}
	if patch.PurchasePrice != nil {
		fields["purchase_price"] = *patch.PurchasePrice
	}
	if patch.CurrentPrice != nil {
		fields["current_price"] = *patch.CurrentPrice
	}
	if patch.BrokerPlatform != nil {
		fields["broker_platform"] = *patch.BrokerPlatform
	}
	if patch.Fees != nil {
		fields["fees"] = *patch.Fees
	}
	if patch.Taxes != nil {
		fields["taxes"] = *patch.Taxes
	}
	if patch.DividendsEarned != nil {
		fields["dividends_earned"] = *patch.DividendsEarned
	}
	if patch.IsActive != nil {
		fields["is_active"] = *patch.IsActive
	}
	if patch.MaturityDate != nil {
		fields["maturity_date"] = *patch.MaturityDate
	}
	if patch.RiskLevel != nil {
		fields["risk_level"] = *patch.RiskLevel
	}
	if patch.Sector != nil {
		fields["sector"] = *patch.Sector
	}
	if patch.Notes != nil {
		fields["notes"] = *patch.Notes
	}

	if len(fields) > 0 {
		if err := s.investmentRepo.Updates(ctx, inv, fields); err != nil {
			return nil, err
		}
	}
	return s.investmentRepo.GetOwned(ctx, userID, id)
}

func (s *InvestmentService) Delete(ctx context.Context, userID, id uint) error {
	inv, err := s.investmentRepo.GetOwned(ctx, userID, id)
	if err != nil {
		return notFoundOr(err)
	}
	return s.investmentRepo.Delete(ctx, inv)
}

func (s *InvestmentService) SummaryByType(ctx context.Context, userID uint) ([]model.InvestmentTypeSummary, error) {
	return s.investmentRepo.SummaryByType(ctx, userID)
}

// Performance 活跃投资的整体表现，投入为 0 时收益率按 0 处理
func (s *InvestmentService) Performance(ctx context.Context, userID uint) (*model.InvestmentPerformance, error) {
	invested, currentValue, err := s.investmentRepo.PerformanceTotals(ctx, userID)
	if err != nil {
		return nil, err
	}

	performance := currentValue - invested
	var percentage float64
	if invested > 0 {
		percentage = roundTo2(performance / invested * 100)
	}

	return &model.InvestmentPerformance{
		TotalInvested:         invested,
		TotalCurrentValue:     currentValue,
		TotalPerformance:      performance,
		PerformancePercentage: percentage,
	}, nil
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
