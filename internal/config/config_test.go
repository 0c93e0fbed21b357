package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// viper 是全局单例，每个用例先清干净
func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

// chdir 等价于 Go 1.24 的 t.Chdir，当前工具链是 1.21
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoadConfig_EnvOnly(t *testing.T) {
	// 没有 config.yaml，纯环境变量 + 默认值也必须能跑起来
	resetViper(t)
	chdir(t, t.TempDir())
	t.Setenv("INKWELL_JWT_SECRET", "env-secret")
	t.Setenv("INKWELL_DATABASE_DSN", "env-dsn")
	t.Setenv("INKWELL_CORS_FRONTEND_URL", "https://blog.example.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, "env-dsn", cfg.Database.DSN)
	assert.Equal(t, "https://blog.example.com", cfg.CORS.FrontendURL)

	// 默认值照常生效
	assert.Equal(t, ":3001", cfg.Server.Port)
	assert.Equal(t, "uploads", cfg.Upload.Dir)
	assert.Equal(t, TransportHeader, cfg.Auth.TokenTransport)
	assert.Equal(t, 0, cfg.JWT.ExpireHours)
}

func TestLoadConfig_FileWithEnvOverride(t *testing.T) {
	resetViper(t)
	dir := t.TempDir()
	yaml := []byte("jwt:\n  secret: file-secret\ndatabase:\n  dsn: file-dsn\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o644))
	chdir(t, dir)
	t.Setenv("INKWELL_JWT_SECRET", "env-secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	// 环境变量优先于配置文件
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, "file-dsn", cfg.Database.DSN)
}

func TestLoadConfig_InvalidTransport(t *testing.T) {
	resetViper(t)
	chdir(t, t.TempDir())
	t.Setenv("INKWELL_AUTH_TOKEN_TRANSPORT", "carrier-pigeon")

	_, err := LoadConfig()
	assert.Error(t, err)
}
