package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Cors frontendURL 非空时只放行这个来源（配合 Cookie 模式必须带具体域名），
// 为空时退回镜像 Origin 的宽松模式，方便本地联调
func Cors(frontendURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		method := c.Request.Method
		origin := c.Request.Header.Get("Origin")

		// 1. 设置允许的 Origin
		// 只有配置了具体前端域名才放行凭证（Cookie 模式依赖这一点）；
		// 镜像 Origin 的宽松模式下绝不能带 credentials，否则等于带凭证的通配
		switch {
		case frontendURL != "":
			c.Header("Access-Control-Allow-Origin", frontendURL)
			c.Header("Access-Control-Allow-Credentials", "true")
		case origin != "":
			c.Header("Access-Control-Allow-Origin", origin)
		default:
			c.Header("Access-Control-Allow-Origin", "*")
		}

		// 2. 设置其他允许的 Header
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		c.Header("Access-Control-Expose-Headers", "Content-Length, Content-Type")

		// 3. OPTIONS 预检请求直接终止并返回 204
		if method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		// 4. 非 OPTIONS 请求，继续处理业务
		c.Next()
	}
}
