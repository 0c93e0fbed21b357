package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/leon37/InkwellBlog/internal/model"
	"github.com/leon37/InkwellBlog/internal/repository"
)

// newTestDB 用文件型 SQLite 顶替 MySQL，TranslateError 行为两边一致
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Post{}))
	return db
}

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	return NewAuthService(repository.NewUserRepository(newTestDB(t)), NewTokenService("test-secret", 0))
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	user, err := svc.Register(ctx, "alice", "secret-pw")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice", user.Username)

	// 库里存的是 bcrypt 哈希，不是明文
	assert.NotEqual(t, "secret-pw", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret-pw")))
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	_, err := svc.Register(ctx, "alice", "secret-pw")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "other-pw")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestAuthService_Login_Roundtrip(t *testing.T) {
	ctx := context.Background()
	tokens := NewTokenService("test-secret", 0)
	svc := NewAuthService(repository.NewUserRepository(newTestDB(t)), tokens)

	registered, err := svc.Register(ctx, "alice", "secret-pw")
	require.NoError(t, err)

	token, user, err := svc.Login(ctx, "alice", "secret-pw")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	// 签出来的 Token 能被校验通过，且身份一致
	claims, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	_, err := svc.Register(ctx, "alice", "secret-pw")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "alice", "wrong-pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	// 用户不存在和密码错误必须是同一个错误，不能泄露是哪个字段错了
	_, _, err := svc.Login(ctx, "nobody", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
