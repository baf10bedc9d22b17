package service

import (
	"context"
	"errors"

	"github.com/leon37/FinLedger/internal/model"
	"github.com/leon37/FinLedger/internal/repository"
	"gorm.io/gorm"
)

// TagInput 创建标签的请求体
type TagInput struct {
	Name        string `json:"name" binding:"required,max=50"`
	Description string `json:"description"`
	Color       string `json:"color" binding:"omitempty,hexcolor,len=7"`
	Icon        string `json:"icon" binding:"omitempty,max=50"`
}

// TagPatch 部分更新
type TagPatch struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=50"`
	Description *string `json:"description"`
	Color       *string `json:"color" binding:"omitempty,hexcolor,len=7"`
	Icon        *string `json:"icon" binding:"omitempty,max=50"`
	IsActive    *bool   `json:"is_active"`
}

type TagService struct {
	tagRepo *repository.TagRepository
}

func NewTagService(tagRepo *repository.TagRepository) *TagService {
	return &TagService{tagRepo: tagRepo}
}

func (s *TagService) Create(ctx context.Context, userID uint, in TagInput) (*model.Tag, error) {
	// 同一用户下标签名唯一
	if _, err := s.tagRepo.GetOwnedByName(ctx, userID, in.Name); err == nil {
		return nil, ruleErrf("tag name already in use")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	t := &model.Tag{
		UserID:      userID,
		Name:        in.Name,
		Description: in.Description,
		Color:       in.Color,
		Icon:        in.Icon,
		IsActive:    true,
	}
	if err := s.tagRepo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TagService) Get(ctx context.Context, userID, id uint) (*model.Tag, error) {
	t, err := s.tagRepo.GetOwned(ctx, userID, id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return t, nil
}

func (s *TagService) List(ctx context.Context, userID uint) ([]model.Tag, error) {
	return s.tagRepo.ListActive(ctx, userID)
}

// ListWithUsage 标签列表附带被交易引用的次数
func (s *TagService) ListWithUsage(ctx context.Context, userID uint) ([]model.TagWithUsage, error) {
	tags, err := s.tagRepo.ListActive(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]model.TagWithUsage, 0, len(tags))
	for _, t := range tags {
		expenseCount, incomeCount, err := s.tagRepo.UsageCounts(ctx, t.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, model.TagWithUsage{
			Tag:          t,
			ExpenseCount: expenseCount,
			IncomeCount:  incomeCount,
		})
	}
	return result, nil
}

func (s *TagService) Update(ctx context.Context, userID, id uint, patch TagPatch) (*model.Tag, error) {
	t, err := s.tagRepo.GetOwned(ctx, userID, id)
	if err != nil {
		return nil, notFoundOr(err)
	}

	fields := map[string]any{}
	if patch.Name != nil && *patch.Name != t.Name {
		if _, err := s.tagRepo.GetOwnedByName(ctx, userID, *patch.Name); err == nil {
			return nil, ruleErrf("tag name already in use")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		fields["name"] = *patch.Name
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.Color != nil {
		fields["color"] = *patch.Color
	}
	if patch.Icon != nil {
		fields["icon"] = *patch.Icon
	}
	if patch.IsActive != nil {
		fields["is_active"] = *patch.IsActive
	}

	if len(fields) > 0 {
		if err := s.tagRepo.Updates(ctx, t, fields); err != nil {
			return nil, err
		}
	}
	return s.tagRepo.GetOwned(ctx, userID, id)
}

// Delete 被交易引用过的标签只做软删除，干净的标签直接删行
func (s *TagService) Delete(ctx context.Context, userID, id uint) error {
	t, err := s.tagRepo.GetOwned(ctx, userID, id)
	if err != nil {
		return notFoundOr(err)
	}

	expenseCount, incomeCount, err := s.tagRepo.UsageCounts(ctx, t.ID)
	if err != nil {
		return err
	}
	if expenseCount+incomeCount > 0 {
		return s.tagRepo.SoftDelete(ctx, t)
	}
	return s.tagRepo.HardDelete(ctx, t)
}
