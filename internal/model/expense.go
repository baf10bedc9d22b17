package model

import "time"

// Expense 支出表
// recurring_frequency 只是原样存储的字符串（daily/weekly/monthly/yearly），
// 没有任何调度器会消费它
type Expense struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	UserID             uint      `gorm:"not null;index;constraint:OnDelete:CASCADE" json:"user_id"`
	CategoryID         *uint     `gorm:"index" json:"category_id"`
	PaymentMethodID    *uint     `gorm:"index" json:"payment_method_id"`
	Amount             float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	Description        string    `gorm:"type:varchar(255);not null" json:"description"`
	Date               time.Time `gorm:"not null;index" json:"date"`
	IsRecurring        bool      `gorm:"default:false" json:"is_recurring"`
	RecurringFrequency string    `gorm:"type:varchar(20)" json:"recurring_frequency"`
	Notes              string    `gorm:"type:text" json:"notes"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	Tags []Tag `gorm:"many2many:expense_tags" json:"tags"`
}

func (Expense) TableName() string {
	return "expenses"
}

// ExpenseCategorySummary 按分类汇总的查询结果
type ExpenseCategorySummary struct {
	CategoryID   *uint   `json:"category_id"`
	CategoryName string  `json:"category_name"`
	TotalAmount  float64 `json:"total_amount"`
	Count        int64   `json:"count"`
}
