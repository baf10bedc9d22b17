package controller

import (
	"github.com/leon37/FinLedger/internal/api/response"
	"github.com/leon37/FinLedger/internal/repository"
	"github.com/leon37/FinLedger/internal/service"

	"github.com/gin-gonic/gin"
)

type DebtController struct {
	service *service.DebtService
}

func NewDebtController(s *service.DebtService) *DebtController {
	return &DebtController{service: s}
}

func (ctrl *DebtController) Create(c *gin.Context) {
	var in service.DebtInput
	if !bindJSON(c, &in) {
		return
	}

	d, err := ctrl.service.Create(c.Request.Context(), currentUserID(c), in)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, d)
}

// List ?debt_type= / ?lender= / ?is_paid_off= 过滤
func (ctrl *DebtController) List(c *gin.Context) {
	f := repository.DebtFilter{
		UserID:    currentUserID(c),
		DebtType:  c.Query("debt_type"),
		Lender:    c.Query("lender"),
		IsPaidOff: queryBoolPtr(c, "is_paid_off"),
		Skip:      queryInt(c, "skip", 0),
		Limit:     queryInt(c, "limit", 100),
	}

	debts, err := ctrl.service.List(c.Request.Context(), f)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, debts)
}

func (ctrl *DebtController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	d, err := ctrl.service.Get(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, d)
}

func (ctrl *DebtController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var patch service.DebtPatch
	if !bindJSON(c, &patch) {
		return
	}

	d, err := ctrl.service.Update(c.Request.Context(), currentUserID(c), id, patch)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, d)
}

func (ctrl *DebtController) Delete(c *gin.Context) {
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

// PayOff 结清债务
func (ctrl *DebtController) PayOff(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	d, err := ctrl.service.PayOff(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, d)
}

// SummaryByType 未还清债务按类型汇总
func (ctrl *DebtController) SummaryByType(c *gin.Context) {
	summary, err := ctrl.service.SummaryByType(c.Request.Context(), currentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, summary)
}

// TotalBalance 未还清债务余额合计
func (ctrl *DebtController) TotalBalance(c *gin.Context) {
	total, err := ctrl.service.TotalBalance(c.Request.Context(), currentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, gin.H{"total_balance": total})
}
