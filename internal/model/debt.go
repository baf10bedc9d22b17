package model

import "time"

// Debt 债务表
type Debt struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	UserID          uint       `gorm:"not null;index;constraint:OnDelete:CASCADE" json:"user_id"`
	Name            string     `gorm:"type:varchar(255);not null" json:"name"`
	DebtType        string     `gorm:"type:varchar(50);not null" json:"debt_type"`
	Lender          string     `gorm:"type:varchar(255);not null" json:"lender"`
	OriginalAmount  float64    `gorm:"type:decimal(10,2);not null" json:"original_amount"`
	CurrentBalance  float64    `gorm:"type:decimal(10,2);not null" json:"current_balance"`
	InterestRate    float64    `gorm:"not null" json:"interest_rate"`
	MinimumPayment  float64    `gorm:"not null" json:"minimum_payment"`
	PaymentDueDate  *int       `json:"payment_due_date"`
	LoanStartDate   time.Time  `gorm:"not null;index" json:"loan_start_date"`
	ExpectedEndDate *time.Time `json:"expected_end_date"`
	IsPaidOff       bool       `gorm:"default:false" json:"is_paid_off"`
	PaidOffDate     *time.Time `json:"paid_off_date"`
	Currency        string     `gorm:"type:varchar(3);default:COP" json:"currency"`
	Collateral      string     `gorm:"type:varchar(255)" json:"collateral"`
	Notes           string     `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (Debt) TableName() string {
	return "debts"
}

// DebtTypeSummary 按债务类型汇总的查询结果（仅未还清的）
type DebtTypeSummary struct {
	DebtType     string  `json:"debt_type"`
	TotalBalance float64 `json:"total_balance"`
	Count        int64   `json:"count"`
}
