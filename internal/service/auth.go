package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/leon37/InkwellBlog/internal/model"
	"github.com/leon37/InkwellBlog/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	userRepo *repository.UserRepository
	tokens   *TokenService
}

func NewAuthService(userRepo *repository.UserRepository, tokens *TokenService) *AuthService {
	return &AuthService{userRepo: userRepo, tokens: tokens}
}

// Register 注册逻辑
func (s *AuthService) Register(ctx context.Context, username, password string) (*model.User, error) {
	// 1. 密码加密
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// 2. 落库，用户名唯一索引兜底
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	user := &model.User{
		ID:       id.String(),
		Username: username,
		Password: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return user, nil
}

// Login 登录逻辑，返回 Token 和用户
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	// 1. 查用户
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials // 模糊报错为了安全
		}
		return "", nil, err
	}

	// 2. 比对密码
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	// 3. 生成 JWT
	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
