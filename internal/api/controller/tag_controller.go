package controller

import (
	"github.com/leon37/FinLedger/internal/api/response"
	"github.com/leon37/FinLedger/internal/service"

	"github.com/gin-gonic/gin"
)

type TagController struct {
	service *service.TagService
}

func NewTagController(s *service.TagService) *TagController {
	return &TagController{service: s}
}

func (ctrl *TagController) Create(c *gin.Context) {
	var in service.TagInput
	if !bindJSON(c, &in) {
		return
	}

	tag, err := ctrl.service.Create(c.Request.Context(), currentUserID(c), in)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, tag)
}

// List ?include_usage=true 时附带每个标签的引用次数
func (ctrl *TagController) List(c *gin.Context) {
	userID := currentUserID(c)
	if c.Query("include_usage") == "true" {
		tags, err := ctrl.service.ListWithUsage(c.Request.Context(), userID)
		if err != nil {
			handleServiceError(c, err)
			return
		}
		response.OK(c, tags)
		return
	}

	tags, err := ctrl.service.List(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, tags)
}

func (ctrl *TagController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	tag, err := ctrl.service.Get(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, tag)
}

func (ctrl *TagController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var patch service.TagPatch
	if !bindJSON(c, &patch) {
		return
	}

	tag, err := ctrl.service.Update(c.Request.Context(), currentUserID(c), id, patch)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, tag)
}

func (ctrl *TagController) Delete(c *gin.Context) {
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
