package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doCors(t *testing.T, frontendURL, origin, method string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Cors(frontendURL))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	req := httptest.NewRequest(method, "/ping", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCors_ConfiguredOrigin(t *testing.T) {
	w := doCors(t, "https://blog.example.com", "https://evil.example.com", http.MethodGet)

	// 配置了前端域名就只认它，并放行凭证
	assert.Equal(t, "https://blog.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCors_MirrorFallbackHasNoCredentials(t *testing.T) {
	// 未配置时镜像 Origin 方便联调，但绝不能同时带 credentials
	w := doCors(t, "", "https://anywhere.example.com", http.MethodGet)

	assert.Equal(t, "https://anywhere.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))

	w = doCors(t, "", "", http.MethodGet)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCors_PreflightShortCircuits(t *testing.T) {
	w := doCors(t, "https://blog.example.com", "https://blog.example.com", http.MethodOptions)

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}
