package model

import "time"

// 分类类型只有两种：支出 / 收入
const (
	CategoryTypeExpense = "expense"
	CategoryTypeIncome  = "income"
)

// Category 分类表，支持 parent_id 自引用形成树形子分类
// is_default 的系统默认分类不允许修改和删除
type Category struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index;constraint:OnDelete:CASCADE" json:"user_id"`
	Name         string    `gorm:"type:varchar(100);not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	Color        string    `gorm:"type:varchar(7)" json:"color"`
	Icon         string    `gorm:"type:varchar(50)" json:"icon"`
	IsDefault    bool      `gorm:"default:false" json:"is_default"`
	CategoryType string    `gorm:"type:varchar(20);not null" json:"category_type"`
	ParentID     *uint     `gorm:"index" json:"parent_id"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Category) TableName() string {
	return "categories"
}

// CategoryNode 带子分类的树节点，只用于序列化
type CategoryNode struct {
	Category
	Subcategories []CategoryNode `json:"subcategories"`
}
