package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/leon37/InkwellBlog/internal/config"
	"github.com/leon37/InkwellBlog/internal/service"
)

// TokenCookieName Cookie 模式下存放 Token 的 Cookie 名
const TokenCookieName = "token"

// 注入 gin.Context 的键
const (
	CtxUserIDKey   = "userID"
	CtxUsernameKey = "username"
)

// JWTAuth 鉴权失败统一返回 401，不管是没带 Token 还是 Token 不合法
// 403 留给"登录了但不是作者"的场景，由 Controller 判
func JWTAuth(tokens *service.TokenService, transport string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c, transport)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"code": 401, "msg": "No token provided"})
			c.Abort()
			return
		}

		// 解析 Token
		claims, err := tokens.Verify(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"code": 401, "msg": "Invalid or expired token"})
			c.Abort()
			return
		}

		// 提取 Claims 并注入 Context
		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUsernameKey, claims.Username)

		c.Next()
	}
}

// extractToken Cookie 模式优先读 Cookie，读不到再退回 Authorization 头；
// Header 模式只认 "Bearer <token>" 格式
func extractToken(c *gin.Context, transport string) string {
	if transport == config.TransportCookie {
		if v, err := c.Cookie(TokenCookieName); err == nil && v != "" {
			return v
		}
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
