package model

import "time"

// Post 是映射数据库表的结构体
type Post struct {
	ID      string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Title   string `gorm:"type:varchar(255);not null" json:"title"`
	Summary string `gorm:"type:text;not null" json:"summary"`
	Content string `gorm:"type:longtext;not null" json:"content"`

	// Cover 存的是本地磁盘路径，例如 uploads/xxx.png
	// 静态路由 /uploads 直接按这个路径对外提供文件
	Cover string `gorm:"type:varchar(255);not null" json:"cover"`

	// AuthorID 创建后不可变，只有作者本人能更新帖子
	AuthorID string `gorm:"type:varchar(36);not null;index" json:"author_id"`
	Author   *User  `gorm:"foreignKey:AuthorID" json:"author,omitempty"`

	// 点赞字段：表结构里预留，当前没有任何路由会修改它们
	Likes   int      `gorm:"default:0" json:"likes"`
	LikedBy []string `gorm:"serializer:json;type:text" json:"liked_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName 强制指定表名
func (Post) TableName() string {
	return "posts"
}
