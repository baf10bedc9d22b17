package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/leon37/FinLedger/internal/events"
	"github.com/leon37/FinLedger/internal/model"
	"github.com/leon37/FinLedger/internal/repository"
)

// IncomeInput 创建收入的请求体，source 为自由文本
type IncomeInput struct {
	Amount             float64   `json:"amount" binding:"required,gt=0"`
	Description        string    `json:"description" binding:"required,max=255"`
	Source             string    `json:"source" binding:"required,max=100"`
	Date               time.Time `json:"date" binding:"required"`
	CategoryID         *uint     `json:"category_id"`
	IsRecurring        bool      `json:"is_recurring"`
	RecurringFrequency string    `json:"recurring_frequency" binding:"omitempty,oneof=daily weekly monthly yearly"`
	Notes              string    `json:"notes"`
	TagIDs             []uint    `json:"tag_ids"`
}

// IncomePatch 部分更新
type IncomePatch struct {
	Amount             *float64   `json:"amount" binding:"omitempty,gt=0"`
	Description        *string    `json:"description" binding:"omitempty,min=1,max=255"`
	Source             *string    `json:"source" binding:"omitempty,min=1,max=100"`
	Date               *time.Time `json:"date"`
	CategoryID         *uint      `json:"category_id"`
	IsRecurring        *bool      `json:"is_recurring"`
	RecurringFrequency *string    `json:"recurring_frequency" binding:"omitempty,oneof=daily weekly monthly yearly"`
	Notes              *string    `json:"notes"`
	TagIDs             *[]uint    `json:"tag_ids"`
}

type IncomeService struct {
	incomeRepo   *repository.IncomeRepository
	categoryRepo *repository.CategoryRepository
	tagRepo      *repository.TagRepository
	publisher    events.Publisher
}

func NewIncomeService(
	incomeRepo *repository.IncomeRepository,
	categoryRepo *repository.CategoryRepository,
	tagRepo *repository.TagRepository,
	publisher events.Publisher,
) *IncomeService {
	return &IncomeService{
		incomeRepo:   incomeRepo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
		publisher:    publisher,
	}
}

func (s *IncomeService) Create(ctx context.Context, userID uint, in IncomeInput) (*model.Income, error) {
	if err := s.checkCategory(ctx, userID, in.CategoryID); err != nil {
		return nil, err
	}
	tags, err := s.resolveTags(ctx, userID, in.TagIDs)
	if err != nil {
		return nil, err
	}

	income := &model.Income{
		UserID:             userID,
		CategoryID:         in.CategoryID,
		Amount:             in.Amount,
		Description:        in.Description,
		Source:             in.Source,
		Date:               in.Date,
		IsRecurring:        in.IsRecurring,
		RecurringFrequency: in.RecurringFrequency,
		Notes:              in.Notes,
		Tags:               tags,
	}
	if err := s.incomeRepo.Create(ctx, income); err != nil {
		return nil, err
	}

	if err := s.publisher.PublishTransactionCreated(ctx, events.TransactionCreated{
		Kind:          "income",
		UserID:        userID,
		TransactionID: income.ID,
		Amount:        income.Amount,
		Description:   income.Description,
		Date:          income.Date,
	}); err != nil {
		slog.Warn("publish income event failed", "incomeID", income.ID, "err", err)
	}

	return income, nil
}

func (s *IncomeService) Get(ctx context.Context, userID, id uint) (*model.Income, error) {
	income, err := s.incomeRepo.GetOwned(ctx, userID, id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return income, nil
}

func (s *IncomeService) List(ctx context.Context, f repository.IncomeFilter) ([]model.Income, error) {
	return s.incomeRepo.List(ctx, f)
}

func (s *IncomeService) Update(ctx context.Context, userID, id uint, patch IncomePatch) (*model.Income, error) {
	income, err := s.incomeRepo.GetOwned(ctx, userID, id)
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
	if patch.Source != nil {
		fields["source"] = *patch.Source
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
		if err := s.incomeRepo.Updates(ctx, income, fields); err != nil {
			return nil, err
		}
	}
	if patch.TagIDs != nil {
		tags, err := s.resolveTags(ctx, userID, *patch.TagIDs)
		if err != nil {
			return nil, err
		}
		if err := s.incomeRepo.ReplaceTags(ctx, income, tags); err != nil {
			return nil, err
		}
	}
	return s.incomeRepo.GetOwned(ctx, userID, id)
}

func (s *IncomeService) Delete(ctx context.Context, userID, id uint) error {
	income, err := s.incomeRepo.GetOwned(ctx, userID, id)
	if err != nil {
		return notFoundOr(err)
	}
	return s.incomeRepo.Delete(ctx, income)
}

func (s *IncomeService) SummaryBySource(ctx context.Context, userID uint) ([]model.IncomeSourceSummary, error) {
	return s.incomeRepo.SummaryBySource(ctx, userID)
}

func (s *IncomeService) checkCategory(ctx context.Context, userID uint, categoryID *uint) error {
	if categoryID == nil {
		return nil
	}
	c, err := s.categoryRepo.GetOwned(ctx, userID, *categoryID)
	if err != nil {
		return notFoundOr(err)
	}
	if c.CategoryType != model.CategoryTypeIncome {
		return ruleErrf("category is not an income category")
	}
	return nil
}

func (s *IncomeService) resolveTags(ctx context.Context, userID uint, tagIDs []uint) ([]model.Tag, error) {
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
