package database

import (
	"log"
	"time"

	"github.com/leon37/InkwellBlog/internal/model"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewMySQLConnection(dsn string) *gorm.DB {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info), // 开发阶段显示 SQL 日志
		// TranslateError 把驱动层的唯一键冲突翻译成 gorm.ErrDuplicatedKey，
		// 上层靠它判断用户名是否已被占用
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Fatal: 无法连接数据库: %v", err)
	}

	// 自动建表 (Auto Migrate)
	// users 表带 username 唯一索引，posts 表带 author_id 普通索引
	if err := db.AutoMigrate(&model.User{}, &model.Post{}); err != nil {
		log.Fatalf("Fatal: 数据库迁移失败: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db
}
