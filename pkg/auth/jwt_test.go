package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	manager := NewJWTManager("secret", "platform", time.Hour)

	token, err := manager.GenerateToken("5b8a0f5e-2f7c-4a4e-9d6a-1c2b3d4e5f60", "ann", "ann@example.com")
	require.NoError(t, err)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "5b8a0f5e-2f7c-4a4e-9d6a-1c2b3d4e5f60", claims.UserID)
	assert.Equal(t, "ann", claims.Username)
	assert.Equal(t, "ann@example.com", claims.Email)
	assert.Equal(t, time.Hour, manager.GetTokenDuration())
}

func TestJWTManager_Rejects(t *testing.T) {
	manager := NewJWTManager("secret", "", time.Hour)

	other, err := NewJWTManager("other", "", time.Hour).GenerateToken("u1", "", "")
	require.NoError(t, err)
	_, err = manager.ValidateToken(other)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired, err := NewJWTManager("secret", "", -time.Minute).GenerateToken("u1", "", "")
	require.NoError(t, err)
	_, err = manager.ValidateToken(expired)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = manager.ValidateToken("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)

	wrongIssuer, err := NewJWTManager("secret", "someone-else", time.Hour).GenerateToken("u1", "", "")
	require.NoError(t, err)
	_, err = NewJWTManager("secret", "platform", time.Hour).ValidateToken(wrongIssuer)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTManager_SubjectFallback(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user-42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)

	claims, err := NewJWTManager("secret", "", time.Hour).ValidateToken(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.UserID)
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("wrong")))
}
