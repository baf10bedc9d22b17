package model

import "time"

// Income 收入表，source 为自由文本（salario / freelance / inversiones 等）
type Income struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	UserID             uint      `gorm:"not null;index;constraint:OnDelete:CASCADE" json:"user_id"`
	CategoryID         *uint     `gorm:"index" json:"category_id"`
	Amount             float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	Description        string    `gorm:"type:varchar(255);not null" json:"description"`
	Source             string    `gorm:"type:varchar(100);not null" json:"source"`
	Date               time.Time `gorm:"not null;index" json:"date"`
	IsRecurring        bool      `gorm:"default:false" json:"is_recurring"`
	RecurringFrequency string    `gorm:"type:varchar(20)" json:"recurring_frequency"`
	Notes              string    `gorm:"type:text" json:"notes"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	Tags []Tag `gorm:"many2many:income_tags" json:"tags"`
}

func (Income) TableName() string {
	return "incomes"
}

// IncomeSourceSummary 按来源汇总的查询结果
type IncomeSourceSummary struct {
	Source      string  `json:"source"`
	TotalAmount float64 `json:"total_amount"`
	Count       int64   `json:"count"`
}
