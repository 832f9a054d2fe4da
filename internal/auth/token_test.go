package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenGenerator(t *testing.T) {
	tests := []struct {
		name           string
		secret         string
		accessExpiry   time.Duration
		expectedSecret string
	}{
		{
			name:           "standard initialization",
			secret:         "test-secret-key",
			accessExpiry:   1 * time.Hour,
			expectedSecret: "test-secret-key",
		},
		{
			name:           "short expiry time",
			secret:         "short-secret",
			accessExpiry:   1 * time.Minute,
			expectedSecret: "short-secret",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tg := NewTokenGenerator(tt.secret, tt.accessExpiry)

			assert.NotNil(t, tg)
			assert.Equal(t, tt.expectedSecret, tg.secret)
			assert.Equal(t, tt.accessExpiry, tg.accessTokenExpiry)
		})
	}
}

func TestTokenGenerator_GenerateAccessToken(t *testing.T) {
	secret := "b8a3c2267dc85f855dea9b46b452bf20"
	tg := NewTokenGenerator(secret, 1*time.Hour)

	t.Run("success with standard userID", func(t *testing.T) {
		token, err := tg.GenerateAccessToken(123)
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		// JWT tokens should have 3 parts separated by dots
		parts := strings.Split(token, ".")
		assert.Len(t, parts, 3)
	})

	t.Run("userID round-trips through validation", func(t *testing.T) {
		token, err := tg.GenerateAccessToken(456)
		require.NoError(t, err)

		userID, err := tg.ValidateAccessToken(token)
		require.NoError(t, err)
		assert.Equal(t, 456, userID)
	})

	t.Run("userID zero", func(t *testing.T) {
		token, err := tg.GenerateAccessToken(0)
		require.NoError(t, err)

		userID, err := tg.ValidateAccessToken(token)
		require.NoError(t, err)
		assert.Equal(t, 0, userID)
	})
}

func TestTokenGenerator_ValidateAccessToken(t *testing.T) {
	secret := "b8a3c2267dc85f855dea9b46b452bf20"
	tg := NewTokenGenerator(secret, 1*time.Hour)

	t.Run("valid token", func(t *testing.T) {
		token, err := tg.GenerateAccessToken(456)
		require.NoError(t, err)

		userID, err := tg.ValidateAccessToken(token)
		require.NoError(t, err)
		assert.Equal(t, 456, userID)
	})

	t.Run("empty string token", func(t *testing.T) {
		_, err := tg.ValidateAccessToken("")
		assert.Error(t, err)
	})

	t.Run("invalid token format", func(t *testing.T) {
		_, err := tg.ValidateAccessToken("invalid-token")
		assert.Error(t, err)
	})

	t.Run("malformed JWT - missing parts", func(t *testing.T) {
		_, err := tg.ValidateAccessToken("header.payload")
		assert.Error(t, err)
	})

	t.Run("wrong signature method - non-HMAC", func(t *testing.T) {
		claims := jwt.MapClaims{
			"user_id": 123,
			"exp":     time.Now().Add(1 * time.Hour).Unix(),
			"iat":     time.Now().Unix(),
			"type":    "access",
		}
		token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
		tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = tg.ValidateAccessToken(tokenString)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected signing method")
	})

	t.Run("token without user_id claim", func(t *testing.T) {
		claims := jwt.MapClaims{
			"exp":  time.Now().Add(1 * time.Hour).Unix(),
			"iat":  time.Now().Unix(),
			"type": "access",
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		tokenString, err := token.SignedString([]byte(secret))
		require.NoError(t, err)

		_, err = tg.ValidateAccessToken(tokenString)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "user_id not found")
	})

	t.Run("token with wrong type", func(t *testing.T) {
		claims := jwt.MapClaims{
			"user_id": 123,
			"exp":     time.Now().Add(1 * time.Hour).Unix(),
			"iat":     time.Now().Unix(),
			"type":    "refresh",
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		tokenString, err := token.SignedString([]byte(secret))
		require.NoError(t, err)

		_, err = tg.ValidateAccessToken(tokenString)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not an access token")
	})

	t.Run("expired token", func(t *testing.T) {
		claims := jwt.MapClaims{
			"user_id": 123,
			"exp":     time.Now().Add(-1 * time.Hour).Unix(),
			"iat":     time.Now().Add(-2 * time.Hour).Unix(),
			"type":    "access",
		}
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		tokenString, err := token.SignedString([]byte(secret))
		require.NoError(t, err)

		_, err = tg.ValidateAccessToken(tokenString)
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := tg.GenerateAccessToken(789)
		require.NoError(t, err)

		wrongTG := NewTokenGenerator("wrong-secret", 1*time.Hour)
		_, err = wrongTG.ValidateAccessToken(token)
		assert.Error(t, err)
	})
}
