package controller

import (
	"github.com/leon37/FinLedger/internal/api/response"
	"github.com/leon37/FinLedger/internal/service"

	"github.com/gin-gonic/gin"
)

type PaymentMethodController struct {
	service *service.PaymentMethodService
}

func NewPaymentMethodController(s *service.PaymentMethodService) *PaymentMethodController {
	return &PaymentMethodController{service: s}
}

func (ctrl *PaymentMethodController) Create(c *gin.Context) {
	var in service.PaymentMethodInput
	if !bindJSON(c, &in) {
		return
	}

	pm, err := ctrl.service.Create(c.Request.Context(), currentUserID(c), in)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, pm)
}

// List ?payment_type= 可选过滤
func (ctrl *PaymentMethodController) List(c *gin.Context) {
	pms, err := ctrl.service.List(c.Request.Context(), currentUserID(c), c.Query("payment_type"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, pms)
}

func (ctrl *PaymentMethodController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	pm, err := ctrl.service.Get(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, pm)
}

func (ctrl *PaymentMethodController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var patch service.PaymentMethodPatch
	if !bindJSON(c, &patch) {
		return
	}

	pm, err := ctrl.service.Update(c.Request.Context(), currentUserID(c), id, patch)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, pm)
}

func (ctrl *PaymentMethodController) Delete(c *gin.Context) {
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
