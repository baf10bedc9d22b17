package model

import "time"

// Tag 标签表，和 Expense / Income 通过中间表多对多关联
// 一旦被交易引用过，删除时只做软删除（is_active=false），保证历史数据完整
type Tag struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index;constraint:OnDelete:CASCADE" json:"user_id"`
	Name        string    `gorm:"type:varchar(50);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Color       string    `gorm:"type:varchar(7)" json:"color"`
	Icon        string    `gorm:"type:varchar(50)" json:"icon"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Tag) TableName() string {
	return "tags"
}

// TagWithUsage 列表接口 include_usage=true 时的返回结构
type TagWithUsage struct {
	Tag
	ExpenseCount int64 `json:"expense_count"`
	IncomeCount  int64 `json:"income_count"`
}
