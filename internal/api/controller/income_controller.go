package controller

import (
	"github.com/leon37/FinLedger/internal/api/response"
	"github.com/leon37/FinLedger/internal/repository"
	"github.com/leon37/FinLedger/internal/service"

	"github.com/gin-gonic/gin"
)

type IncomeController struct {
	service *service.IncomeService
}

func NewIncomeController(s *service.IncomeService) *IncomeController {
	return &IncomeController{service: s}
}

func (ctrl *IncomeController) Create(c *gin.Context) {
	var in service.IncomeInput
	if !bindJSON(c, &in) {
		return
	}

	income, err := ctrl.service.Create(c.Request.Context(), currentUserID(c), in)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, income)
}

// List ?source= 和 ?category_id= 过滤，skip/limit 分页
func (ctrl *IncomeController) List(c *gin.Context) {
	f := repository.IncomeFilter{
		UserID:     currentUserID(c),
		Source:     c.Query("source"),
		CategoryID: queryUintPtr(c, "category_id"),
		Skip:       queryInt(c, "skip", 0),
		Limit:      queryInt(c, "limit", 100),
	}

	incomes, err := ctrl.service.List(c.Request.Context(), f)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, incomes)
}

func (ctrl *IncomeController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	income, err := ctrl.service.Get(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, income)
}

func (ctrl *IncomeController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var patch service.IncomePatch
	if !bindJSON(c, &patch) {
		return
	}

	income, err := ctrl.service.Update(c.Request.Context(), currentUserID(c), id, patch)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, income)
}

func (ctrl *IncomeController) Delete(c *gin.Context) {
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

// SummaryBySource 按来源汇总
func (ctrl *IncomeController) SummaryBySource(c *gin.Context) {
	summary, err := ctrl.service.SummaryBySource(c.Request.Context(), currentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, summary)
}
