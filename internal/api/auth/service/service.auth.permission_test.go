package authsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	authdto "meta_content/internal/api/auth/dto"
)

// TestPartitionPermissionInputs kiểm tra tách danh sách quyền cần tạo và bị bỏ qua
func TestPartitionPermissionInputs(t *testing.T) {
	inputs := []authdto.PermissionCreateInput{
		{Code: "articles:create", Name: "Tạo bài viết", Module: "articles"},
		{Code: "articles:read", Name: "Xem bài viết", Module: "articles"},
		{Code: "articles:create", Name: "Tạo bài viết (trùng)", Module: "articles"},
		{Code: "roles:read", Name: "Xem vai trò", Module: "roles"},
	}

	t.Run("Code đã tồn tại bị bỏ qua", func(t *testing.T) {
		existing := map[string]bool{"roles:read": true}
		toCreate, skipped := partitionPermissionInputs(inputs, existing)

		assert.Len(t, toCreate, 2)
		assert.Equal(t, "articles:create", toCreate[0].Code)
		assert.Equal(t, "articles:read", toCreate[1].Code)
		// Trùng trong batch và trùng với DB đều bị bỏ qua
		assert.Equal(t, []string{"articles:create", "roles:read"}, skipped)
	})

	t.Run("Không có gì tồn tại thì chỉ bỏ qua trùng trong batch", func(t *testing.T) {
		toCreate, skipped := partitionPermissionInputs(inputs, map[string]bool{})
		assert.Len(t, toCreate, 3)
		assert.Equal(t, []string{"articles:create"}, skipped)
	})

	t.Run("Toàn bộ đã tồn tại", func(t *testing.T) {
		existing := map[string]bool{
			"articles:create": true,
			"articles:read":   true,
			"roles:read":      true,
		}
		toCreate, skipped := partitionPermissionInputs(inputs, existing)
		assert.Empty(t, toCreate)
		assert.Len(t, skipped, 4)
	})

	t.Run("Gọi lại với kết quả lần trước là idempotent", func(t *testing.T) {
		toCreate, _ := partitionPermissionInputs(inputs, map[string]bool{})

		nowExisting := make(map[string]bool)
		for _, p := range toCreate {
			nowExisting[p.Code] = true
		}
		again, skipped := partitionPermissionInputs(inputs, nowExisting)
		assert.Empty(t, again)
		assert.Len(t, skipped, 4)
	})

	t.Run("Danh sách rỗng", func(t *testing.T) {
		toCreate, skipped := partitionPermissionInputs(nil, map[string]bool{})
		assert.Empty(t, toCreate)
		assert.Empty(t, skipped)
	})
}

// TestHashPassword kiểm tra băm mật khẩu bằng bcrypt
func TestHashPassword(t *testing.T) {
	hashed, err := hashPassword("mật-khẩu-bí-mật")
	assert.NoError(t, err)
	assert.NotEqual(t, "mật-khẩu-bí-mật", hashed)

	// Hash khớp với mật khẩu gốc
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hashed), []byte("mật-khẩu-bí-mật")))
	// Và không khớp với mật khẩu khác
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(hashed), []byte("mật-khẩu-sai")))

	// Hai lần băm cho ra hash khác nhau (salt ngẫu nhiên)
	hashed2, err := hashPassword("mật-khẩu-bí-mật")
	assert.NoError(t, err)
	assert.NotEqual(t, hashed, hashed2)
}
