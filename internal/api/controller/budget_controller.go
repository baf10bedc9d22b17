package controller

import (
	"github.com/leon37/FinLedger/internal/api/response"
	"github.com/leon37/FinLedger/internal/repository"
	"github.com/leon37/FinLedger/internal/service"

	"github.com/gin-gonic/gin"
)

type BudgetController struct {
	service *service.BudgetService
}

func NewBudgetController(s *service.BudgetService) *BudgetController {
	return &BudgetController{service: s}
}

func (ctrl *BudgetController) Create(c *gin.Context) {
	var in service.BudgetInput
	if !bindJSON(c, &in) {
		return
	}

	b, err := ctrl.service.Create(c.Request.Context(), currentUserID(c), in)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, b)
}

// List ?is_active= 过滤
func (ctrl *BudgetController) List(c *gin.Context) {
	f := repository.BudgetFilter{
		UserID:   currentUserID(c),
		IsActive: queryBoolPtr(c, "is_active"),
		Skip:     queryInt(c, "skip", 0),
		Limit:    queryInt(c, "limit", 100),
	}

	budgets, err := ctrl.service.List(c.Request.Context(), f)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, budgets)
}

func (ctrl *BudgetController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	b, err := ctrl.service.Get(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, b)
}

func (ctrl *BudgetController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var patch service.BudgetPatch
	if !bindJSON(c, &patch) {
		return
	}

	b, err := ctrl.service.Update(c.Request.Context(), currentUserID(c), id, patch)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, b)
}

func (ctrl *BudgetController) Delete(c *gin.Context) {
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

// AddItem 向预算追加条目
func (ctrl *BudgetController) AddItem(c *gin.Context) {
	budgetID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var in service.BudgetItemInput
	if !bindJSON(c, &in) {
		return
	}

	item, err := ctrl.service.AddItem(c.Request.Context(), currentUserID(c), budgetID, in)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, item)
}

// UpdateItem 修改条目
func (ctrl *BudgetController) UpdateItem(c *gin.Context) {
	budgetID, ok := pathID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "item_id")
	if !ok {
		return
	}
	var patch service.BudgetItemPatch
	if !bindJSON(c, &patch) {
		return
	}

	item, err := ctrl.service.UpdateItem(c.Request.Context(), currentUserID(c), budgetID, itemID, patch)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, item)
}

// DeleteItem 删除条目
func (ctrl *BudgetController) DeleteItem(c *gin.Context) {
	budgetID, ok := pathID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "item_id")
	if !ok {
		return
	}

	if err := ctrl.service.DeleteItem(c.Request.Context(), currentUserID(c), budgetID, itemID); err != nil {
		handleServiceError(c, err)
		return
	}
	response.NoContent(c)
}

// Comparison 预算 vs 实际支出
func (ctrl *BudgetController) Comparison(c *gin.Context) {
	budgetID, ok := pathID(c, "id")
	if !ok {
		return
	}

	summary, err := ctrl.service.Comparison(c.Request.Context(), currentUserID(c), budgetID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, summary)
}
