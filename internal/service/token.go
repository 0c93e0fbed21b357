package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/leon37/InkwellBlog/internal/model"
)

// TokenService 负责签发和校验 JWT
// 密钥在构造时注入，不走全局状态
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService ttl 为 0 时签出的 Token 不带 exp，长期有效
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

type tokenClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Issue 生成 HS256 签名的 Token，Claims 里带用户 id 和用户名
func (s *TokenService) Issue(userID, username string) (string, error) {
	claims := tokenClaims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	if s.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(s.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	ss, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("签发 Token 失败: %w", err)
	}
	return ss, nil
}

// Verify 校验签名和结构，任何失败都只返回 ErrInvalidToken
// 客户端发来的烂 Token 绝不能把进程打崩；也不回查用户是否还存在
func (s *TokenService) Verify(tokenString string) (*model.AuthClaims, error) {
	var claims tokenClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == "" {
		return nil, ErrInvalidToken
	}

	return &model.AuthClaims{UserID: claims.UserID, Username: claims.Username}, nil
}
