package controller

import (
	"github.com/leon37/FinLedger/internal/api/response"
	"github.com/leon37/FinLedger/internal/service"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	service *service.CategoryService
}

func NewCategoryController(s *service.CategoryService) *CategoryController {
	return &CategoryController{service: s}
}

// Create 新建分类
func (ctrl *CategoryController) Create(c *gin.Context) {
	var in service.CategoryInput
	if !bindJSON(c, &in) {
		return
	}

	cat, err := ctrl.service.Create(c.Request.Context(), currentUserID(c), in)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, cat)
}

// List 分类列表，?category_type= 过滤；
// ?include_subcategories=true 时只返回顶级分类并递归挂上子分类
func (ctrl *CategoryController) List(c *gin.Context) {
	userID := currentUserID(c)
	if c.Query("include_subcategories") == "true" {
		nodes, err := ctrl.service.Tree(c.Request.Context(), userID, c.Query("category_type"))
		if err != nil {
			handleServiceError(c, err)
			return
		}
		response.OK(c, nodes)
		return
	}

	cats, err := ctrl.service.List(c.Request.Context(), userID, c.Query("category_type"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, cats)
}

// Get 单个分类
func (ctrl *CategoryController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	cat, err := ctrl.service.Get(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, cat)
}

// Update 部分更新
func (ctrl *CategoryController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var patch service.CategoryPatch
	if !bindJSON(c, &patch) {
		return
	}

	cat, err := ctrl.service.Update(c.Request.Context(), currentUserID(c), id, patch)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, cat)
}

// Delete 删除分类
func (ctrl *CategoryController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := ctrl.service.Delete(c.Request.Context(), currentUserID(c), id); err != nil {
		handleServiceError(c, err)
		return
	}
	response.NoContent(c)
}
