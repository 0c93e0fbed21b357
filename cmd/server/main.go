package main

import (
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/leon37/InkwellBlog/internal/api"
	"github.com/leon37/InkwellBlog/internal/api/controller"
	"github.com/leon37/InkwellBlog/internal/api/middleware"
	"github.com/leon37/InkwellBlog/internal/config"
	"github.com/leon37/InkwellBlog/internal/infrastructure/database"
	"github.com/leon37/InkwellBlog/internal/infrastructure/storage"
	"github.com/leon37/InkwellBlog/internal/repository"
	"github.com/leon37/InkwellBlog/internal/service"
)

// @title           InkwellBlog API
// @version         1.0
// @description     基于 Go + Gin + GORM 的博客后端

// @host            localhost:3001
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description 请在输入框中输入 "Bearer <token>" (注意 Bearer 和 token 之间有空格)

func main() {
	// 1. 初始化 Logger
	// 使用 JSONHandler 可以让日志以 JSON 格式输出，方便解析
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: true,
		Level:     slog.LevelDebug, // 开发阶段设为 Debug，生产环境改为 Info
	}))

	// 设置为全局默认 logger
	slog.SetDefault(logger)

	slog.Info("InkwellBlog 系统启动中...")

	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("无法加载配置: %v", err)
	}
	if conf.JWT.Secret == "" {
		log.Fatalf("jwt.secret 未配置 (环境变量 INKWELL_JWT_SECRET)")
	}
	log.Println("配置加载成功")

	// 2. Infra Initialization
	db := database.NewMySQLConnection(conf.Database.DSN) // 这里会自动建表

	uploads, err := storage.NewLocalStore(conf.Upload.Dir)
	if err != nil {
		log.Fatalf("Fatal: 初始化上传目录失败: %v", err)
	}

	if conf.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 3. Layer Wiring (依赖注入)
	// JWT 密钥在这里注入一次，Service 和中间件里不再碰全局配置
	tokenSvc := service.NewTokenService(conf.JWT.Secret, time.Duration(conf.JWT.ExpireHours)*time.Hour)

	userRepo := repository.NewUserRepository(db)
	authSvc := service.NewAuthService(userRepo, tokenSvc)
	authController := controller.NewAuthController(authSvc, conf.Auth.TokenTransport)

	postRepo := repository.NewPostRepository(db)
	postSvc := service.NewPostService(postRepo, uploads)
	postController := controller.NewPostController(postSvc, uploads)

	// 4. Server Start
	r := gin.Default()
	r.Use(middleware.Cors(conf.CORS.FrontendURL))
	r.Static("/uploads", conf.Upload.Dir) // 封面文件只读对外

	authMW := middleware.JWTAuth(tokenSvc, conf.Auth.TokenTransport)
	api.RegisterRoutes(r, authController, postController, authMW)

	slog.Info("InkwellBlog Web Server 启动中", "port", conf.Server.Port, "tokenTransport", conf.Auth.TokenTransport)
	if err := r.Run(conf.Server.Port); err != nil {
		slog.Error("服务器启动失败", "error", err)
	}
}
