package model

import "time"

type User struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Username  string    `gorm:"type:varchar(100);not null;unique" json:"username"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthClaims 是 Token 校验通过后注入请求上下文的用户身份
type AuthClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}
