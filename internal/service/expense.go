package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/leon37/FinLedger/internal/events"
	"github.com/leon37/FinLedger/internal/model"
	"github.com/leon37/FinLedger/internal/repository"
)

// ExpenseInput 创建支出的请求体
type ExpenseInput struct {
	Amount             float64   `json:"amount" binding:"required,gt=0"`
	Description        string    `json:"description" binding:"required,max=255"`
	Date               time.Time `json:"date" binding:"required"`
	CategoryID         *uint     `json:"category_id"`
	PaymentMethodID    *uint     `json:"payment_method_id"`
	IsRecurring        bool      `json:"is_recurring"`
	RecurringFrequency string    `json:"recurring_frequency" binding:"omitempty,oneof=daily weekly monthly yearly"`
	Notes              string    `json:"notes"`
	TagIDs             []uint    `json:"tag_ids"`
}

// ExpensePatch 部分更新；TagIDs 非 nil 时整体替换标签关联
type ExpensePatch struct {
	Amount             *float64   `json:"amount" binding:"omitempty,gt=0"`
	Description        *string    `json:"description" binding:"omitempty,min=1,max=255"`
	Date               *time.Time `json:"date"`
	CategoryID         *uint      `json:"category_id"`
	PaymentMethodID    *uint      `json:"payment_method_id"`
	IsRecurring        *bool      `json:"is_recurring"`
	RecurringFrequency *string    `json:"recurring_frequency" binding:"omitempty,oneof=daily weekly monthly yearly"`
	Notes              *string    `json:"notes"`
	TagIDs             *[]uint    `json:"tag_ids"`
}

type ExpenseService struct {
	expenseRepo       *repository.ExpenseRepository
	categoryRepo      *repository.CategoryRepository
	paymentMethodRepo *repository.PaymentMethodRepository
	tagRepo           *repository.TagRepository
	publisher         events.Publisher
}

func NewExpenseService(
	expenseRepo *repository.ExpenseRepository,
	categoryRepo *repository.CategoryRepository,
	paymentMethodRepo *repository.PaymentMethodRepository,
	tagRepo *repository.TagRepository,
	publisher events.Publisher,
) *ExpenseService {
	return &ExpenseService{
		expenseRepo:       expenseRepo,
		categoryRepo:      categoryRepo,
		paymentMethodRepo: paymentMethodRepo,
		tagRepo:           tagRepo,
		publisher:         publisher,
	}
}

func (s *ExpenseService) Create(ctx context.Context, userID uint, in ExpenseInput) (*model.Expense, error) {
	if err := s.checkCategory(ctx, userID, in.CategoryID); err != nil {
		return nil, err
	}
	if err := s.checkPaymentMethod(ctx, userID, in.PaymentMethodID); err != nil {
		return nil, err
	}
	tags, err := s.resolveTags(ctx, userID, in.TagIDs)
	if err != nil {
		return nil, err
	}

	e := &model.Expense{
		UserID:             userID,
		CategoryID:         in.CategoryID,
		PaymentMethodID:    in.PaymentMethodID,
		Amount:             in.Amount,
		Description:        in.Description,
		Date:               in.Date,
		IsRecurring:        in.IsRecurring,
		RecurringFrequency: in.RecurringFrequency,
		Notes:              in.Notes,
		Tags:               tags,
	}
	if err := s.expenseRepo.Create(ctx, e); err != nil {
		return nil, err
	}

	// 事件发布失败只记日志
	if err := s.publisher.PublishTransactionCreated(ctx, events.TransactionCreated{
		Kind:          "expense",
		UserID:        userID,
		TransactionID: e.ID,
		Amount:        e.Amount,
		Description:   e.Description,
		Date:          e.Date,
	}); err != nil {
		slog.Warn("publish expense event failed", "expenseID", e.ID, "err", err)
	}

	return e, nil
}

func (s *ExpenseService) Get(ctx context.Context, userID, id uint) (*model.Expense, error) {
	e, err := s.expenseRepo.GetOwned(ctx, userID, id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return e, nil
}

func (s *ExpenseService) List(ctx context.Context, f repository.ExpenseFilter) ([]model.Expense, error) {
	return s.expenseRepo.List(ctx, f)
}

func (s *ExpenseService) Update(ctx context.Context, userID, id uint, patch ExpensePatch) (*model.Expense, error) {
	e, err := s.expenseRepo.GetOwned(ctx, userID, id)
	if err != nil {
		return nil, notFoundOr(err)
	}

	fields := map[string]any{}
	if patch.Amount != nil {
		fields["amount"] = *patch.Amount
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.Date != nil {
		fields["date"] = *patch.Date
	}
	if patch.CategoryID != nil {
		if err := s.checkCategory(ctx, userID, patch.CategoryID); err != nil {
			return nil, err
		}
		fields["category_id"] = *patch.CategoryID
	}
	if patch.PaymentMethodID != nil {
		if err := s.checkPaymentMethod(ctx, userID, patch.PaymentMethodID); err != nil {
			return nil, err
		}
		fields["payment_method_id"] = *patch.PaymentMethodID
	}
	if patch.IsRecurring != nil {
		fields["is_recurring"] = *patch.IsRecurring
	}
	if patch.RecurringFrequency != nil {
		fields["recurring_frequency"] = *patch.RecurringFrequency
	}
	if patch.Notes != nil {
		fields["notes"] = *patch.Notes
	}

	if len(fields) > 0 {
		if err := s.expenseRepo.Updates(ctx, e, fields); err != nil {
			return nil, err
		}
	}
	if patch.TagIDs != nil {
		tags, err := s.resolveTags(ctx, userID, *patch.TagIDs)
		if err != nil {
			return nil, err
		}
		if err := s.expenseRepo.ReplaceTags(ctx, e, tags); err != nil {
			return nil, err
		}
	}
	return s.expenseRepo.GetOwned(ctx, userID, id)
}

func (s *ExpenseService) Delete(ctx context.Context, userID, id uint) error {
	e, err := s.expenseRepo.GetOwned(ctx, userID, id)
	if err != nil {
		return notFoundOr(err)
	}
	return s.expenseRepo.Delete(ctx, e)
}

func (s *ExpenseService) SummaryByCategory(ctx context.Context, userID uint) ([]model.ExpenseCategorySummary, error) {
	return s.expenseRepo.SummaryByCategory(ctx, userID)
}

func (s *ExpenseService) checkCategory(ctx context.Context, userID uint, categoryID *uint) error {
	if categoryID == nil {
		return nil
	}
	c, err := s.categoryRepo.GetOwned(ctx, userID, *categoryID)
	if err != nil {
		return notFoundOr(err)
	}
	if c.CategoryType != model.CategoryTypeExpense {
		return ruleErrf("category is not an expense category")
	}
	return nil
}

func (s *ExpenseService) checkPaymentMethod(ctx context.Context, userID uint, paymentMethodID *uint) error {
	if paymentMethodID == nil {
		return nil
	}
	pm, err := s.paymentMethodRepo.GetOwned(ctx, userID, *paymentMethodID)
	if err != nil {
		return notFoundOr(err)
	}
	if !pm.IsActive {
		return ruleErrf("payment method is inactive")
	}
	return nil
}

// resolveTags 标签必须全部属于该用户且处于激活状态，缺一个就按不存在处理
func (s *ExpenseService) resolveTags(ctx context.Context, userID uint, tagIDs []uint) ([]model.Tag, error) {
	if len(tagIDs) == 0 {
		return nil, nil
	}
	tags, err := s.tagRepo.FindOwnedActiveByIDs(ctx, userID, tagIDs)
	if err != nil {
		return nil, err
	}
	if len(tags) != len(tagIDs) {
		return nil, ErrNotFound
	}
	return tags, nil
}
