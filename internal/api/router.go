package api

import (
	"github.com/gin-gonic/gin"
	"github.com/leon37/InkwellBlog/internal/api/controller"
)

// RegisterRoutes 注册所有路由
// 路径保持和老版前端的约定一致，不带 /api/v1 前缀
func RegisterRoutes(r *gin.Engine, authCtrl *controller.AuthController, postCtrl *controller.PostController, auth gin.HandlerFunc) {
	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// 公开路由
	r.POST("/register", authCtrl.Register)
	r.POST("/login", authCtrl.Login)
	r.POST("/logout", authCtrl.Logout)
	r.GET("/post", postCtrl.List)
	r.GET("/post/:id", postCtrl.Get)

	// 需要登录的路由
	r.GET("/profile", auth, authCtrl.Profile)
	r.POST("/post", auth, postCtrl.Create)
	r.PUT("/post/:id", auth, postCtrl.Update)
}
