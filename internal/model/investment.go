package model

import "time"

// Investment 投资表
// current_value / current_price 等都是客户端上报的，系统不做行情刷新
type Investment struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	UserID          uint       `gorm:"not null;index;constraint:OnDelete:CASCADE" json:"user_id"`
	Name            string     `gorm:"type:varchar(255);not null" json:"name"`
	Symbol          string     `gorm:"type:varchar(20)" json:"symbol"`
	InvestmentType  string     `gorm:"type:varchar(50);not null" json:"investment_type"`
	AmountInvested  float64    `gorm:"type:decimal(10,2);not null" json:"amount_invested"`
	CurrentValue    *float64   `gorm:"type:decimal(10,2)" json:"current_value"`
	PurchaseDate    time.Time  `gorm:"not null;index" json:"purchase_date"`
	Quantity        *float64   `json:"quantity"`
	PurchasePrice   *float64   `json:"purchase_price"`
	CurrentPrice    *float64   `json:"current_price"`
	BrokerPlatform  string     `gorm:"type:varchar(100)" json:"broker_platform"`
	Fees            float64    `gorm:"default:0" json:"fees"`
	Taxes           float64    `gorm:"default:0" json:"taxes"`
	DividendsEarned float64    `gorm:"default:0" json:"dividends_earned"`
	IsActive        bool       `gorm:"default:true" json:"is_active"`
	MaturityDate    *time.Time `json:"maturity_date"`
	RiskLevel       string     `gorm:"type:varchar(20)" json:"risk_level"`
	Sector          string     `gorm:"type:varchar(100)" json:"sector"`
	Notes           string     `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (Investment) TableName() string {
	return "investments"
}

// InvestmentTypeSummary 按类型汇总的查询结果
type InvestmentTypeSummary struct {
	InvestmentType    string  `json:"investment_type"`
	TotalInvested     float64 `json:"total_invested"`
	TotalCurrentValue float64 `json:"total_current_value"`
	Count             int64   `json:"count"`
}

// InvestmentPerformance 投资总体表现
type InvestmentPerformance struct {
	TotalInvested         float64 `json:"total_invested"`
	TotalCurrentValue     float64 `json:"total_current_value"`
	TotalPerformance      float64 `json:"total_performance"`
	PerformancePercentage float64 `json:"performance_percentage"`
}
