package service

import "errors"

// 业务错误集中定义，Controller 层用 errors.Is 映射成 HTTP 状态码
var (
	// ErrInvalidCredentials 用户不存在和密码错误统一用它，不区分是哪个字段错了
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidToken       = errors.New("invalid token")
	ErrMissingField       = errors.New("missing required field")
	ErrPostNotFound       = errors.New("post not found")
	ErrNotAuthor          = errors.New("not the author of this post")
)
