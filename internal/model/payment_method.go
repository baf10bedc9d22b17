package model

import "time"

// PaymentMethod 支付方式表，Expense 可选引用
// 被任何支出引用过的支付方式删除时只做软删除
type PaymentMethod struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;index;constraint:OnDelete:CASCADE" json:"user_id"`
	Name          string    `gorm:"type:varchar(100);not null" json:"name"`
	Description   string    `gorm:"type:text" json:"description"`
	PaymentType   string    `gorm:"type:varchar(50);not null" json:"payment_type"`
	Institution   string    `gorm:"type:varchar(255)" json:"institution"`
	AccountNumber string    `gorm:"type:varchar(100)" json:"account_number"`
	Color         string    `gorm:"type:varchar(7)" json:"color"`
	Icon          string    `gorm:"type:varchar(50)" json:"icon"`
	IsDefault     bool      `gorm:"default:false" json:"is_default"`
	IsActive      bool      `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (PaymentMethod) TableName() string {
	return "payment_methods"
}
