package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/leon37/InkwellBlog/internal/infrastructure/storage"
	"github.com/leon37/InkwellBlog/internal/model"
	"github.com/leon37/InkwellBlog/internal/repository"
	"gorm.io/gorm"
)

// RecentPostLimit 首页列表最多返回的帖子数
const RecentPostLimit = 20

// PostInput 创建/更新帖子时的文本字段
type PostInput struct {
	Title   string
	Summary string
	Content string
}

type PostService struct {
	postRepo *repository.PostRepository
	uploads  *storage.LocalStore
}

func NewPostService(postRepo *repository.PostRepository, uploads *storage.LocalStore) *PostService {
	return &PostService{postRepo: postRepo, uploads: uploads}
}

// Create 新建帖子，四个必填字段缺一不可
// 封面文件此时已经落盘；入库失败就尽力把文件删掉，不留孤儿
func (s *PostService) Create(ctx context.Context, input PostInput, coverPath, authorID string) (*model.Post, error) {
	if err := validateRequired(input, coverPath); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	post := &model.Post{
		ID:       id.String(),
		Title:    input.Title,
		Summary:  input.Summary,
		Content:  input.Content,
		Cover:    coverPath,
		AuthorID: authorID,
		LikedBy:  []string{},
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		if rmErr := s.uploads.Remove(coverPath); rmErr != nil {
			slog.Warn("封面文件回滚失败", "path", coverPath, "err", rmErr)
		}
		return nil, err
	}
	return post, nil
}

// ListRecent 最新的 20 条，作者随行返回
func (s *PostService) ListRecent(ctx context.Context) ([]model.Post, error) {
	return s.postRepo.ListRecent(ctx, RecentPostLimit)
}

func (s *PostService) GetByID(ctx context.Context, id string) (*model.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

// Update 仅限作者本人；标题/摘要/正文无条件覆盖（传空就写空），
// 封面只在带了新文件时替换。并发更新是 last-write-wins，不做乐观锁
func (s *PostService) Update(ctx context.Context, id string, input PostInput, newCoverPath, callerID string) (*model.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	if post.AuthorID != callerID {
		return nil, ErrNotAuthor
	}

	post.Title = input.Title
	post.Summary = input.Summary
	post.Content = input.Content
	if newCoverPath != "" {
		post.Cover = newCoverPath
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func validateRequired(input PostInput, coverPath string) error {
	switch {
	case input.Title == "":
		return fmt.Errorf("%w: title", ErrMissingField)
	case input.Summary == "":
		return fmt.Errorf("%w: summary", ErrMissingField)
	case input.Content == "":
		return fmt.Errorf("%w: content", ErrMissingField)
	case coverPath == "":
		return fmt.Errorf("%w: cover", ErrMissingField)
	}
	return nil
}
