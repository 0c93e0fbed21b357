package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Token 传输方式：从 Authorization 头或者同名 Cookie 里取
const (
	TransportHeader = "header"
	TransportCookie = "cookie"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Upload   UploadConfig   `mapstructure:"upload"`
	Auth     AuthConfig     `mapstructure:"auth"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	DSN string `mapstructure:"dsn"`
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	// ExpireHours 为 0 表示签发的 Token 不带 exp，长期有效
	ExpireHours int `mapstructure:"expire_hours"`
}

type CORSConfig struct {
	FrontendURL string `mapstructure:"frontend_url"`
}

type UploadConfig struct {
	Dir string `mapstructure:"dir"`
}

type AuthConfig struct {
	TokenTransport string `mapstructure:"token_transport"`
}

// LoadConfig 读取配置文件
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config") // 配置文件名 (不带扩展名)
	viper.SetConfigType("yaml")   // 文件类型
	viper.AddConfigPath(".")      // 查找路径：根目录

	viper.SetDefault("server.port", ":3001")
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("jwt.expire_hours", 0)
	viper.SetDefault("upload.dir", "uploads")
	viper.SetDefault("auth.token_transport", TransportHeader)

	// 这一步是为了支持环境变量覆盖 (例如在 Docker 中)
	// 比如设置环境变量 INKWELL_JWT_SECRET 可以覆盖 yaml 里的值
	viper.SetEnvPrefix("INKWELL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// AutomaticEnv 只对 viper 已知的键生效，
	// 没有默认值的键必须显式 BindEnv，否则无配置文件时环境变量会被忽略
	for _, key := range []string{"jwt.secret", "database.dsn", "cors.frontend_url"} {
		if err := viper.BindEnv(key); err != nil {
			return nil, fmt.Errorf("绑定环境变量失败: %w", err)
		}
	}

	// 配置文件允许不存在，纯靠环境变量 + 默认值也能跑
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	if cfg.Auth.TokenTransport != TransportHeader && cfg.Auth.TokenTransport != TransportCookie {
		return nil, fmt.Errorf("auth.token_transport 只支持 %q 或 %q", TransportHeader, TransportCookie)
	}

	return &cfg, nil
}
