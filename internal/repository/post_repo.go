package repository

import (
	"context"

	"github.com/leon37/InkwellBlog/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

// Create 插入一条记录
func (r *PostRepository) Create(ctx context.Context, post *model.Post) error {
	// WithContext 确保请求超时能传递到数据库层
	return r.db.WithContext(ctx).Create(post).Error
}

// ListRecent 按创建时间倒序取最新的 limit 条，每次都是新查询
func (r *PostRepository) ListRecent(ctx context.Context, limit int) ([]model.Post, error) {
	var posts []model.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *PostRepository) GetByID(ctx context.Context, id string) (*model.Post, error) {
	var post model.Post
	err := r.db.WithContext(ctx).Preload("Author").Where("id = ?", id).First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Update 整行覆盖写，空字符串也会写进去（没有部分更新语义）
// Omit 掉关联，避免 Save 顺手把预加载的 Author 也写一遍
func (r *PostRepository) Update(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(post).Error
}
