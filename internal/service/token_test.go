package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_IssueVerify_Roundtrip(t *testing.T) {
	svc := NewTokenService("test-secret", 0)

	token, err := svc.Issue("user-1", "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestTokenService_Verify_WrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-a", 0).Issue("user-1", "alice")
	require.NoError(t, err)

	_, err = NewTokenService("secret-b", 0).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_Verify_Malformed(t *testing.T) {
	svc := NewTokenService("test-secret", 0)

	// 烂 Token 只能得到普通错误，绝不能 panic
	for _, bad := range []string{"", "garbage", "a.b", "a.b.c", "..."} {
		_, err := svc.Verify(bad)
		assert.ErrorIs(t, err, ErrInvalidToken, "token: %q", bad)
	}
}

func TestTokenService_Verify_NoneAlgRejected(t *testing.T) {
	// alg=none 的 Token 必须被拒
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"user_id": "user-1"})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenService("test-secret", 0).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_Verify_Expired(t *testing.T) {
	svc := NewTokenService("test-secret", -time.Minute)

	token, err := svc.Issue("user-1", "alice")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_ZeroTTLTokenHasNoExpiry(t *testing.T) {
	svc := NewTokenService("test-secret", 0)

	token, err := svc.Issue("user-1", "alice")
	require.NoError(t, err)

	var claims tokenClaims
	_, err = jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt, "ttl=0 时不应设置 exp")
}
