package service

import (
	"context"

	"github.com/leon37/FinLedger/internal/model"
	"github.com/leon37/FinLedger/internal/repository"
)

// CategoryInput 创建分类的请求体
type CategoryInput struct {
	Name         string `json:"name" binding:"required,max=100"`
	Description  string `json:"description"`
	Color        string `json:"color" binding:"omitempty,hexcolor,len=7"`
	Icon         string `json:"icon" binding:"omitempty,max=50"`
	CategoryType string `json:"category_type" binding:"required,oneof=expense income"`
	ParentID     *uint  `json:"parent_id"`
}

// CategoryPatch 部分更新，nil 字段表示不修改
type CategoryPatch struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
	Color       *string `json:"color" binding:"omitempty,hexcolor,len=7"`
	Icon        *string `json:"icon" binding:"omitempty,max=50"`
	ParentID    *uint   `json:"parent_id"`
	IsActive    *bool   `json:"is_active"`
}

type CategoryService struct {
	categoryRepo *repository.CategoryRepository
}

func NewCategoryService(categoryRepo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

func (s *CategoryService) Create(ctx context.Context, userID uint, in CategoryInput) (*model.Category, error) {
	// parent_id 传 0 等价于不传
	if in.ParentID != nil && *in.ParentID == 0 {
		in.ParentID = nil
	}
	// 父分类必须属于同一用户且类型一致
	if in.ParentID != nil {
		parent, err := s.categoryRepo.GetOwned(ctx, userID, *in.ParentID)
		if err != nil {
			return nil, notFoundOr(err)
		}
		if parent.CategoryType != in.CategoryType {
			return nil, ruleErrf("parent category has a different category_type")
		}
	}

	c := &model.Category{
		UserID:       userID,
		Name:         in.Name,
		Description:  in.Description,
		Color:        in.Color,
		Icon:         in.Icon,
		CategoryType: in.CategoryType,
		ParentID:     in.ParentID,
		IsActive:     true,
	}
	if err := s.categoryRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CategoryService) Get(ctx context.Context, userID, id uint) (*model.Category, error) {
	c, err := s.categoryRepo.GetOwned(ctx, userID, id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return c, nil
}

func (s *CategoryService) List(ctx context.Context, userID uint, categoryType string) ([]model.Category, error) {
	return s.categoryRepo.List(ctx, userID, categoryType)
}

// Tree 把扁平的分类列表组装成树，顶级分类为根
func (s *CategoryService) Tree(ctx context.Context, userID uint, categoryType string) ([]model.CategoryNode, error) {
	cats, err := s.categoryRepo.List(ctx, userID, categoryType)
	if err != nil {
		return nil, err
	}

	children := make(map[uint][]model.Category)
	var roots []model.Category
	for _, c := range cats {
		if c.ParentID == nil {
			roots = append(roots, c)
		} else {
			children[*c.ParentID] = append(children[*c.ParentID], c)
		}
	}

	var build func(c model.Category) model.CategoryNode
	build = func(c model.Category) model.CategoryNode {
		node := model.CategoryNode{Category: c, Subcategories: []model.CategoryNode{}}
		for _, child := range children[c.ID] {
			node.Subcategories = append(node.Subcategories, build(child))
		}
		return node
	}

	nodes := make([]model.CategoryNode, 0, len(roots))
	for _, root := range roots {
		nodes = append(nodes, build(root))
	}
	return nodes, nil
}

func (s *CategoryService) Update(ctx context.Context, userID, id uint, patch CategoryPatch) (*model.Category, error) {
	c, err := s.categoryRepo.GetOwned(ctx, userID, id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	if c.IsDefault {
		return nil, ruleErrf("default categories cannot be modified")
	}

	fields := map[string]any{}
	if patch.Name != nil {
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
	if patch.ParentID != nil && *patch.ParentID == 0 {
		fields["parent_id"] = nil
		patch.ParentID = nil
	}
	if patch.ParentID != nil {
		if *patch.ParentID == c.ID {
			return nil, ruleErrf("category cannot be its own parent")
		}
		parent, err := s.categoryRepo.GetOwned(ctx, userID, *patch.ParentID)
		if err != nil {
			return nil, notFoundOr(err)
		}
		if parent.CategoryType != c.CategoryType {
			return nil, ruleErrf("parent category has a different category_type")
		}
		fields["parent_id"] = *patch.ParentID
	}

	if len(fields) > 0 {
		if err := s.categoryRepo.Updates(ctx, c, fields); err != nil {
			return nil, err
		}
	}
	return s.categoryRepo.GetOwned(ctx, userID, id)
}

func (s *CategoryService) Delete(ctx context.Context, userID, id uint) error {
	c, err := s.categoryRepo.GetOwned(ctx, userID, id)
	if err != nil {
		return notFoundOr(err)
	}
	if c.IsDefault {
		return ruleErrf("default categories cannot be deleted")
	}

	children, err := s.categoryRepo.CountChildren(ctx, c.ID)
	if err != nil {
		return err
	}
	if children > 0 {
		return ruleErrf("category has subcategories")
	}

	transactions, err := s.categoryRepo.CountTransactions(ctx, c.ID)
	if err != nil {
		return err
	}
	if transactions > 0 {
		return ruleErrf("category is referenced by transactions")
	}

	return s.categoryRepo.Delete(ctx, c)
}
