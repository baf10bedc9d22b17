package controller

import (
	"github.com/leon37/FinLedger/internal/api/response"
	"github.com/leon37/FinLedger/internal/repository"
	"github.com/leon37/FinLedger/internal/service"

	"github.com/gin-gonic/gin"
)

type InvestmentController struct {
	service *service.InvestmentService
}

func NewInvestmentController(s *service.InvestmentService) *InvestmentController {
	return &InvestmentController{service: s}
}

func (ctrl *InvestmentController) Create(c *gin.Context) {
	var in service.InvestmentInput
	if !bindJSON(c, &in) {
		return
	}

	inv, err := ctrl.service.Create(c.Request.Context(), currentUserID(c), in)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, inv)
}

// List ?investment_type= 和 ?is_active= 过滤
func (ctrl *InvestmentController) List(c *gin.Context) {
	f := repository.InvestmentFilter{
		UserID:         currentUserID(c),
		InvestmentType: c.Query("investment_type"),
		IsActive:       queryBoolPtr(c, "is_active"),
		Skip:           queryInt(c, "skip", 0),
		Limit:          queryInt(c, "limit", 100),
	}

	investments, err := ctrl.service.List(c.Request.Context(), f)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, investments)
}

func (ctrl *InvestmentController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	inv, err := ctrl.service.Get(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, inv)
}

func (ctrl *InvestmentController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var patch service.InvestmentPatch
	if !bindJSON(c, &patch) {
		return
	}

	inv, err := ctrl.service.Update(c.Request.Context(), currentUserID(c), id, patch)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, inv)
}

func (ctrl *InvestmentController) Delete(c *gin.Context) {
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

// SummaryByType 活跃投资按类型汇总
func (ctrl *InvestmentController) SummaryByType(c *gin.Context) {
	summary, err := ctrl.service.SummaryByType(c.Request.Context(), currentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, summary)
}

// Performance 投资整体表现
func (ctrl *InvestmentController) Performance(c *gin.Context) {
	perf, err := ctrl.service.Performance(c.Request.Context(), currentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, perf)
}
