package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/leon37/InkwellBlog/internal/api/middleware"
	"github.com/leon37/InkwellBlog/internal/api/response"
	"github.com/leon37/InkwellBlog/internal/config"
	"github.com/leon37/InkwellBlog/internal/service"
)

// AuthController 处理用户认证
type AuthController struct {
	authService *service.AuthService
	transport   string // Token 下发方式：header 或 cookie
}

// NewAuthController 构造函数
func NewAuthController(authService *service.AuthService, transport string) *AuthController {
	return &AuthController{
		authService: authService,
		transport:   transport,
	}
}

// ==========================================
// DTOs (请求/响应参数定义)
// ==========================================

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=2,max=100"`
	Password string `json:"password" binding:"required,min=6"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	ID       string `json:"id"`
	Username string `json:"username"`
}

type ProfileResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// ==========================================
// Handlers
// ==========================================

// Register 用户注册
// @Summary 用户注册
// @Description 创建新用户，密码 bcrypt 加密存储，用户名唯一
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "注册参数"
// @Success 200 {object} response.Response{data=controller.UserResponse}
// @Failure 400 {object} response.Response "参数错误或用户名已存在"
// @Router /register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req RegisterRequest

	// 1. 参数校验
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("Register params invalid", "err", err)
		response.Error(c, http.StatusBadRequest, "参数校验失败: "+err.Error())
		return
	}

	// 2. 业务逻辑
	user, err := ctrl.authService.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			response.Error(c, http.StatusBadRequest, "注册失败: 用户名已被占用")
			return
		}
		slog.Error("Register failed", "username", req.Username, "err", err)
		response.Error(c, http.StatusInternalServerError, "注册失败")
		return
	}

	// 3. 成功响应，密码哈希永远不出库（model 里 json:"-" 兜底）
	slog.Info("User registered", "username", user.Username, "userID", user.ID)
	response.Success(c, UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	})
}

// Login 用户登录
// @Summary 用户登录
// @Description 校验账号密码，颁发 JWT Token；Cookie 模式下同时 Set-Cookie
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "登录参数"
// @Success 200 {object} response.Response{data=controller.LoginResponse}
// @Failure 400 {object} response.Response "账号或密码错误"
// @Router /login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req LoginRequest

	// 1. 参数校验
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "参数格式错误")
		return
	}

	// 2. 业务逻辑
	token, user, err := ctrl.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		slog.Warn("Login failed", "username", req.Username, "err", err)
		// 为了防止暴力破解，提示信息模糊化，不区分用户不存在还是密码错误
		response.Error(c, http.StatusBadRequest, "登录失败: 账号或密码错误")
		return
	}

	// 3. Cookie 模式下把 Token 同时种进 Cookie，Body 里也照常返回
	if ctrl.transport == config.TransportCookie {
		c.SetCookie(middleware.TokenCookieName, token, 0, "/", "", false, true)
	}

	slog.Info("User logged in", "userID", user.ID)
	response.Success(c, LoginResponse{
		Token:    token,
		ID:       user.ID,
		Username: user.Username,
	})
}

// Profile 当前登录用户信息
// @Summary 当前登录用户信息
// @Description 返回 Token 里解出来的用户身份
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=controller.ProfileResponse}
// @Failure 401 {object} response.Response "未登录或 Token 无效"
// @Router /profile [get]
func (ctrl *AuthController) Profile(c *gin.Context) {
	response.Success(c, ProfileResponse{
		ID:       c.GetString(middleware.CtxUserIDKey),
		Username: c.GetString(middleware.CtxUsernameKey),
	})
}

// Logout 退出登录
// @Summary 退出登录
// @Description 清掉 Token Cookie；Header 模式下由前端自己丢弃 Token
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response
// @Router /logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	c.SetCookie(middleware.TokenCookieName, "", -1, "/", "", false, true)
	response.Success(c, "ok")
}
