package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/leon37/FinLedger/internal/api/middleware"
	"github.com/leon37/FinLedger/internal/api/response"
	"github.com/leon37/FinLedger/internal/service"

	"github.com/gin-gonic/gin"
)

// currentUserID 认证中间件注入的用户 ID
func currentUserID(c *gin.Context) uint {
	return c.GetUint(middleware.ContextUserID)
}

// pathID 解析路径里的数字 ID，格式不对按 422 处理
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "invalid path parameter: "+name)
		return 0, false
	}
	return uint(id), true
}

// bindJSON 请求体解析失败统一返回 422
func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "invalid request body: "+err.Error())
		return false
	}
	return true
}

// handleServiceError 服务层错误到 HTTP 状态码的唯一映射点
func handleServiceError(c *gin.Context, err error) {
	switch {
	case service.IsRuleError(err):
		response.Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		response.Error(c, http.StatusNotFound, "resource not found")
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, "invalid credentials")
	default:
		slog.Error("internal error", "path", c.FullPath(), "err", err)
		response.Error(c, http.StatusInternalServerError, "internal server error")
	}
}

// queryInt 查询参数转 int，缺省或非法时用 def
func queryInt(c *gin.Context, name string, def int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return def
	}
	return v
}

// queryUintPtr 可选的数字查询参数
func queryUintPtr(c *gin.Context, name string) *uint {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil
	}
	id := uint(v)
	return &id
}

// queryBoolPtr 可选的布尔查询参数
func queryBoolPtr(c *gin.Context, name string) *bool {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}
