package utility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"meta_content/internal/common"
)

// TestCreateAndParseToken kiểm tra vòng đời tạo và xác thực JWT token
func TestCreateAndParseToken(t *testing.T) {
	secret := "test-secret"
	userID := "507f1f77bcf86cd799439011"

	t.Run("Token hợp lệ parse ra đúng userID", func(t *testing.T) {
		token, err := CreateToken(secret, userID, 1*time.Hour)
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := ParseToken(secret, token)
		assert.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
	})

	t.Run("Sai secret bị từ chối", func(t *testing.T) {
		token, err := CreateToken(secret, userID, 1*time.Hour)
		assert.NoError(t, err)

		claims, err := ParseToken("secret-khác", token)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, common.ErrTokenInvalid)
	})

	t.Run("Token hết hạn trả về ErrTokenExpired", func(t *testing.T) {
		token, err := CreateToken(secret, userID, -1*time.Minute)
		assert.NoError(t, err)

		claims, err := ParseToken(secret, token)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, common.ErrTokenExpired)
	})

	t.Run("Chuỗi rác không phải JWT", func(t *testing.T) {
		claims, err := ParseToken(secret, "không-phải-token")
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, common.ErrTokenInvalid)
	})

	t.Run("Token thiếu userID bị từ chối", func(t *testing.T) {
		token, err := CreateToken(secret, "", 1*time.Hour)
		assert.NoError(t, err)

		claims, err := ParseToken(secret, token)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, common.ErrTokenInvalid)
	})
}
