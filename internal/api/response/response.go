package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK 200，直接返回资源本体
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created 201
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// NoContent 204
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error 错误统一为 {"detail": "..."} 结构
func Error(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{"detail": msg})
}
