package controller

import (
	"github.com/leon37/FinLedger/internal/api/response"
	"github.com/leon37/FinLedger/internal/repository"
	"github.com/leon37/FinLedger/internal/service"

	"github.com/gin-gonic/gin"
)

type ExpenseController struct {
	service *service.ExpenseService
}

func NewExpenseController(s *service.ExpenseService) *ExpenseController {
	return &ExpenseController{service: s}
}

func (ctrl *ExpenseController) Create(c *gin.Context) {
	var in service.ExpenseInput
	if !bindJSON(c, &in) {
		return
	}

	e, err := ctrl.service.Create(c.Request.Context(), currentUserID(c), in)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, e)
}

// List ?category_id= 过滤，skip/limit 分页
func (ctrl *ExpenseController) List(c *gin.Context) {
	f := repository.ExpenseFilter{
		UserID:     currentUserID(c),
		CategoryID: queryUintPtr(c, "category_id"),
		Skip:       queryInt(c, "skip", 0),
		Limit:      queryInt(c, "limit", 100),
	}

	expenses, err := ctrl.service.List(c.Request.Context(), f)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, expenses)
}

func (ctrl *ExpenseController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	e, err := ctrl.service.Get(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, e)
}

func (ctrl *ExpenseController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var patch service.ExpensePatch
	if !bindJSON(c, &patch) {
		return
	}

	e, err := ctrl.service.Update(c.Request.Context(), currentUserID(c), id, patch)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, e)
}

func (ctrl *ExpenseController) Delete(c *gin.Context) {
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

// SummaryByCategory 按分类汇总
func (ctrl *ExpenseController) SummaryByCategory(c *gin.Context) {
	summary, err := ctrl.service.SummaryByCategory(c.Request.Context(), currentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, summary)
}
