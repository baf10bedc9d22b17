package model

import "time"

// FinancialProduct 金融产品表（储蓄账户、信用卡、贷款等）
// balance / available_credit 由客户端维护，系统不对账
type FinancialProduct struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	UserID          uint       `gorm:"not null;index;constraint:OnDelete:CASCADE" json:"user_id"`
	Name            string     `gorm:"type:varchar(255);not null" json:"name"`
	ProductType     string     `gorm:"type:varchar(50);not null" json:"product_type"`
	Institution     string     `gorm:"type:varchar(255);not null" json:"institution"`
	AccountNumber   string     `gorm:"type:varchar(100)" json:"account_number"`
	Balance         float64    `gorm:"type:decimal(10,2);default:0" json:"balance"`
	InterestRate    *float64   `json:"interest_rate"`
	MinimumBalance  float64    `gorm:"default:0" json:"minimum_balance"`
	MonthlyFee      float64    `gorm:"default:0" json:"monthly_fee"`
	CreditLimit     *float64   `json:"credit_limit"`
	AvailableCredit *float64   `json:"available_credit"`
	PaymentDueDate  *int       `json:"payment_due_date"`
	MinimumPayment  *float64   `json:"minimum_payment"`
	IsActive        bool       `gorm:"default:true" json:"is_active"`
	OpeningDate     *time.Time `json:"opening_date"`
	MaturityDate    *time.Time `json:"maturity_date"`
	Currency        string     `gorm:"type:varchar(3);default:COP" json:"currency"`
	Notes           string     `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (FinancialProduct) TableName() string {
	return "financial_products"
}

// ProductTypeSummary 按产品类型汇总的查询结果
type ProductTypeSummary struct {
	ProductType  string  `json:"product_type"`
	TotalBalance float64 `json:"total_balance"`
	Count        int64   `json:"count"`
}
