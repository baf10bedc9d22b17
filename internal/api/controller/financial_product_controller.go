package controller

import (
	"github.com/leon37/FinLedger/internal/api/response"
	"github.com/leon37/FinLedger/internal/repository"
	"github.com/leon37/FinLedger/internal/service"

	"github.com/gin-gonic/gin"
)

type FinancialProductController struct {
	service *service.FinancialProductService
}

func NewFinancialProductController(s *service.FinancialProductService) *FinancialProductController {
	return &FinancialProductController{service: s}
}

func (ctrl *FinancialProductController) Create(c *gin.Context) {
	var in service.FinancialProductInput
	if !bindJSON(c, &in) {
		return
	}

	p, err := ctrl.service.Create(c.Request.Context(), currentUserID(c), in)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, p)
}

// List ?product_type= / ?institution= / ?is_active= 过滤
func (ctrl *FinancialProductController) List(c *gin.Context) {
	f := repository.FinancialProductFilter{
		UserID:      currentUserID(c),
		ProductType: c.Query("product_type"),
		Institution: c.Query("institution"),
		IsActive:    queryBoolPtr(c, "is_active"),
		Skip:        queryInt(c, "skip", 0),
		Limit:       queryInt(c, "limit", 100),
	}

	products, err := ctrl.service.List(c.Request.Context(), f)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, products)
}

func (ctrl *FinancialProductController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	p, err := ctrl.service.Get(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, p)
}

func (ctrl *FinancialProductController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var patch service.FinancialProductPatch
	if !bindJSON(c, &patch) {
		return
	}

	p, err := ctrl.service.Update(c.Request.Context(), currentUserID(c), id, patch)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, p)
}

func (ctrl *FinancialProductController) Delete(c *gin.Context) {
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

// SummaryByType 活跃产品按类型汇总
func (ctrl *FinancialProductController) SummaryByType(c *gin.Context) {
	summary, err := ctrl.service.SummaryByType(c.Request.Context(), currentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, summary)
}

// TotalBalance 活跃产品余额合计
func (ctrl *FinancialProductController) TotalBalance(c *gin.Context) {
	total, err := ctrl.service.TotalBalance(c.Request.Context(), currentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, gin.H{"total_balance": total})
}
