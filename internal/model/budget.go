package model

import "time"

// 预算对比的三种状态
const (
	BudgetStatusUnder = "under_budget"
	BudgetStatusOn    = "on_budget"
	BudgetStatusOver  = "over_budget"
)

// Budget 预算表，total_budgeted / total_spent 由服务层在事务内重算，
// 不做增量维护
type Budget struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;index;constraint:OnDelete:CASCADE" json:"user_id"`
	Name          string    `gorm:"type:varchar(100);not null" json:"name"`
	Description   string    `gorm:"type:text" json:"description"`
	StartDate     time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate       time.Time `gorm:"type:date;not null" json:"end_date"`
	TotalBudgeted float64   `gorm:"type:decimal(10,2);not null;default:0" json:"total_budgeted"`
	TotalSpent    float64   `gorm:"type:decimal(10,2);not null;default:0" json:"total_spent"`
	Currency      string    `gorm:"type:varchar(3);default:COP" json:"currency"`
	IsActive      bool      `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	BudgetItems []BudgetItem `gorm:"constraint:OnDelete:CASCADE" json:"budget_items"`
}

func (Budget) TableName() string {
	return "budgets"
}

// BudgetItem 预算条目，每个预算里同一分类只能出现一次
type BudgetItem struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	BudgetID       uint      `gorm:"not null;index" json:"budget_id"`
	CategoryID     uint      `gorm:"not null;index" json:"category_id"`
	BudgetedAmount float64   `gorm:"type:decimal(10,2);not null" json:"budgeted_amount"`
	SpentAmount    float64   `gorm:"type:decimal(10,2);not null;default:0" json:"spent_amount"`
	Notes          string    `gorm:"type:text" json:"notes"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category"`
}

func (BudgetItem) TableName() string {
	return "budget_items"
}

// BudgetComparison 单个分类的预算 vs 实际支出
type BudgetComparison struct {
	BudgetID        uint    `json:"budget_id"`
	BudgetName      string  `json:"budget_name"`
	CategoryID      uint    `json:"category_id"`
	CategoryName    string  `json:"category_name"`
	BudgetedAmount  float64 `json:"budgeted_amount"`
	SpentAmount     float64 `json:"spent_amount"`
	RemainingAmount float64 `json:"remaining_amount"`
	PercentageUsed  float64 `json:"percentage_used"`
	Status          string  `json:"status"`
}

// BudgetSummary 整个预算的对比汇总
type BudgetSummary struct {
	TotalBudgeted         float64            `json:"total_budgeted"`
	TotalSpent            float64            `json:"total_spent"`
	TotalRemaining        float64            `json:"total_remaining"`
	PercentageUsed        float64            `json:"percentage_used"`
	CategoriesUnderBudget int                `json:"categories_under_budget"`
	CategoriesOnBudget    int                `json:"categories_on_budget"`
	CategoriesOverBudget  int                `json:"categories_over_budget"`
	Comparisons           []BudgetComparison `json:"comparisons"`
}
