package controller

import (
	"github.com/leon37/FinLedger/internal/api/response"
	"github.com/leon37/FinLedger/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	service *service.AuthService
}

func NewAuthController(s *service.AuthService) *AuthController {
	return &AuthController{service: s}
}

// RegisterRequest 注册请求体
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,min=3,max=100"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"omitempty,max=255"`
}

// LoginRequest 登录请求体
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse 注册 / 登录统一返回
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Register 注册并直接签发 Token
func (ctrl *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	token, err := ctrl.service.Register(c.Request.Context(), req.Email, req.Username, req.Password, req.FullName)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Login 登录
func (ctrl *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	token, err := ctrl.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Me 当前登录用户信息
func (ctrl *AuthController) Me(c *gin.Context) {
	user, err := ctrl.service.GetUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, user)
}
