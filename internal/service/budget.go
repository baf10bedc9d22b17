package service

import (
	"context"
	"errors"
	"time"

	"github.com/leon37/FinLedger/internal/model"
	"github.com/leon37/FinLedger/internal/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetItemInput 预算条目，每个分类在一个预算里只能出现一次
type BudgetItemInput struct {
	CategoryID     uint    `json:"category_id" binding:"required"`
	BudgetedAmount float64 `json:"budgeted_amount" binding:"required,gt=0"`
	Notes          string  `json:"notes"`
}

// BudgetInput 创建预算的请求体
type BudgetInput struct {
	Name        string            `json:"name" binding:"required,max=100"`
	Description string            `json:"description"`
	StartDate   time.Time         `json:"start_date" binding:"required"`
	EndDate     time.Time         `json:"end_date" binding:"required"`
	Currency    string            `json:"currency" binding:"omitempty,len=3"`
	Items       []BudgetItemInput `json:"items" binding:"omitempty,dive"`
}

// BudgetPatch 部分更新，不触碰条目
type BudgetPatch struct {
	Name        *string    `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string    `json:"description"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Currency    *string    `json:"currency" binding:"omitempty,len=3"`
	IsActive    *bool      `json:"is_active"`
}

// BudgetItemPatch 条目部分更新
type BudgetItemPatch struct {
	BudgetedAmount *float64 `json:"budgeted_amount" binding:"omitempty,gt=0"`
	Notes          *string  `json:"notes"`
}

type BudgetService struct {
	budgetRepo   *repository.BudgetRepository
	categoryRepo *repository.CategoryRepository
	expenseRepo  *repository.ExpenseRepository
}

func NewBudgetService(
	budgetRepo *repository.BudgetRepository,
	categoryRepo *repository.CategoryRepository,
	expenseRepo *repository.ExpenseRepository,
) *BudgetService {
	return &BudgetService{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
		expenseRepo:  expenseRepo,
	}
}

func (s *BudgetService) Create(ctx context.Context, userID uint, in BudgetInput) (*model.Budget, error) {
	if !in.EndDate.After(in.StartDate) {
		return nil, ruleErrf("end_date must be after start_date")
	}

	// 条目分类必须属于该用户、类型为支出、且在本预算内不重复
	seen := make(map[uint]bool, len(in.Items))
	for _, item := range in.Items {
		if seen[item.CategoryID] {
			return nil, ruleErrf("duplicate category in budget items")
		}
		seen[item.CategoryID] = true
		if err := s.checkExpenseCategory(ctx, userID, item.CategoryID); err != nil {
			return nil, err
		}
	}

	currency := in.Currency
	if currency == "" {
		currency = "COP"
	}

	items := make([]model.BudgetItem, 0, len(in.Items))
	for _, item := range in.Items {
		items = append(items, model.BudgetItem{
			CategoryID:     item.CategoryID,
			BudgetedAmount: item.BudgetedAmount,
			Notes:          item.Notes,
		})
	}

	b := &model.Budget{
		UserID:      userID,
		Name:        in.Name,
		Description: in.Description,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Currency:    currency,
		IsActive:    true,
		BudgetItems: items,
	}
	if err := s.budgetRepo.CreateWithItems(ctx, b); err != nil {
		return nil, err
	}
	return s.budgetRepo.GetOwned(ctx, userID, b.ID)
}

func (s *BudgetService) Get(ctx context.Context, userID, id uint) (*model.Budget, error) {
	b, err := s.budgetRepo.GetOwned(ctx, userID, id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return b, nil
}

func (s *BudgetService) List(ctx context.Context, f repository.BudgetFilter) ([]model.Budget, error) {
	return s.budgetRepo.List(ctx, f)
}

func (s *BudgetService) Update(ctx context.Context, userID, id uint, patch BudgetPatch) (*model.Budget, error) {
	b, err := s.budgetRepo.GetOwned(ctx, userID, id)
	if err != nil {
		return nil, notFoundOr(err)
	}

	// 日期校验按修改后的组合算
	startDate := b.StartDate
	endDate := b.EndDate
	if patch.StartDate != nil {
		startDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		endDate = *patch.EndDate
	}
	if !endDate.After(startDate) {
		return nil, ruleErrf("end_date must be after start_date")
	}

	fields := map[string]any{}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.StartDate != nil {
		fields["start_date"] = *patch.StartDate
	}
	if patch.EndDate != nil {
		fields["end_date"] = *patch.EndDate
	}
	if patch.Currency != nil {
		fields["currency"] = *patch.Currency
	}
	if patch.IsActive != nil {
		fields["is_active"] = *patch.IsActive
	}

	if len(fields) > 0 {
		if err := s.budgetRepo.Updates(ctx, b, fields); err != nil {
			return nil, err
		}
	}
	return s.budgetRepo.GetOwned(ctx, userID, id)
}

func (s *BudgetService) Delete(ctx context.Context, userID, id uint) error {
	b, err := s.budgetRepo.GetOwned(ctx, userID, id)
	if err != nil {
		return notFoundOr(err)
	}
	return s.budgetRepo.Delete(ctx, b)
}

// AddItem 向已有预算追加条目
func (s *BudgetService) AddItem(ctx context.Context, userID, budgetID uint, in BudgetItemInput) (*model.BudgetItem, error) {
	b, err := s.budgetRepo.GetOwned(ctx, userID, budgetID)
	if err != nil {
		return nil, notFoundOr(err)
	}
	if err := s.checkExpenseCategory(ctx, userID, in.CategoryID); err != nil {
		return nil, err
	}
	if _, err := s.budgetRepo.ItemByCategory(ctx, b.ID, in.CategoryID); err == nil {
		return nil, ruleErrf("category already has a budget item")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	item := &model.BudgetItem{
		BudgetID:       b.ID,
		CategoryID:     in.CategoryID,
		BudgetedAmount: in.BudgetedAmount,
		Notes:          in.Notes,
	}
	if err := s.budgetRepo.CreateItem(ctx, item); err != nil {
		return nil, err
	}
	return s.budgetRepo.GetItem(ctx, b.ID, item.ID)
}

func (s *BudgetService) UpdateItem(ctx context.Context, userID, budgetID, itemID uint, patch BudgetItemPatch) (*model.BudgetItem, error) {
	b, err := s.budgetRepo.GetOwned(ctx, userID, budgetID)
	if err != nil {
		return nil, notFoundOr(err)
	}
	item, err := s.budgetRepo.GetItem(ctx, b.ID, itemID)
	if err != nil {
		return nil, notFoundOr(err)
	}

	fields := map[string]any{}
	if patch.BudgetedAmount != nil {
		fields["budgeted_amount"] = *patch.BudgetedAmount
	}
	if patch.Notes != nil {
		fields["notes"] = *patch.Notes
	}

	if len(fields) > 0 {
		if err := s.budgetRepo.UpdateItem(ctx, item, fields); err != nil {
			return nil, err
		}
	}
	return s.budgetRepo.GetItem(ctx, b.ID, itemID)
}

func (s *BudgetService) DeleteItem(ctx context.Context, userID, budgetID, itemID uint) error {
	b, err := s.budgetRepo.GetOwned(ctx, userID, budgetID)
	if err != nil {
		return notFoundOr(err)
	}
	item, err := s.budgetRepo.GetItem(ctx, b.ID, itemID)
	if err != nil {
		return notFoundOr(err)
	}
	return s.budgetRepo.DeleteItem(ctx, item)
}

// Comparison 预算 vs 实际支出对比。
// 实际支出按预算周期内各分类的支出合计算，金额比较走 decimal，
// 避免 float 相等判断把刚好花完的分类误判成超支
func (s *BudgetService) Comparison(ctx context.Context, userID, budgetID uint) (*model.BudgetSummary, error) {
	b, err := s.budgetRepo.GetOwned(ctx, userID, budgetID)
	if err != nil {
		return nil, notFoundOr(err)
	}

	spentByCategory, err := s.expenseRepo.SumByCategoryBetween(ctx, userID, b.StartDate, b.EndDate)
	if err != nil {
		return nil, err
	}

	summary := &model.BudgetSummary{
		TotalBudgeted: b.TotalBudgeted,
		Comparisons:   make([]model.BudgetComparison, 0, len(b.BudgetItems)),
	}

	for _, item := range b.BudgetItems {
		spent := spentByCategory[item.CategoryID]
		summary.TotalSpent += spent

		cmp := decimal.NewFromFloat(spent).Cmp(decimal.NewFromFloat(item.BudgetedAmount))
		var status string
		switch {
		case cmp < 0:
			status = model.BudgetStatusUnder
			summary.CategoriesUnderBudget++
		case cmp == 0:
			status = model.BudgetStatusOn
			summary.CategoriesOnBudget++
		default:
			status = model.BudgetStatusOver
			summary.CategoriesOverBudget++
		}

		categoryName := ""
		if item.Category != nil {
			categoryName = item.Category.Name
		}

		summary.Comparisons = append(summary.Comparisons, model.BudgetComparison{
			BudgetID:        b.ID,
			BudgetName:      b.Name,
			CategoryID:      item.CategoryID,
			CategoryName:    categoryName,
			BudgetedAmount:  item.BudgetedAmount,
			SpentAmount:     spent,
			RemainingAmount: item.BudgetedAmount - spent,
			PercentageUsed:  roundTo2(spent / item.BudgetedAmount * 100),
			Status:          status,
		})

		// 回写条目的 spent_amount
		if err := s.budgetRepo.SetItemSpent(ctx, item.ID, spent); err != nil {
			return nil, err
		}
	}

	summary.TotalRemaining = summary.TotalBudgeted - summary.TotalSpent
	if summary.TotalBudgeted > 0 {
		summary.PercentageUsed = roundTo2(summary.TotalSpent / summary.TotalBudgeted * 100)
	}

	if err := s.budgetRepo.SetTotalSpent(ctx, b.ID, summary.TotalSpent); err != nil {
		return nil, err
	}
	return summary, nil
}

func (s *BudgetService) checkExpenseCategory(ctx context.Context, userID, categoryID uint) error {
	c, err := s.categoryRepo.GetOwned(ctx, userID, categoryID)
	if err != nil {
		return notFoundOr(err)
	}
	if c.CategoryType != model.CategoryTypeExpense {
		return ruleErrf("budget items require expense categories")
	}
	return nil
}
