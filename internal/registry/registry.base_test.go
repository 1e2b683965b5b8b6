package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"meta_content/internal/common"
)

// TestRegistryRegisterGet kiểm tra đăng ký và lấy item theo tên
func TestRegistryRegisterGet(t *testing.T) {
	reg := NewRegistry[string]()

	t.Run("Đăng ký và lấy item mới", func(t *testing.T) {
		isNew, err := reg.Register("articles", "collection-articles")
		assert.NoError(t, err)
		assert.True(t, isNew)

		item, err := reg.Get("articles")
		assert.NoError(t, err)
		assert.Equal(t, "collection-articles", item)
	})

	t.Run("Đăng ký trùng tên thì ghi đè", func(t *testing.T) {
		isNew, err := reg.Register("articles", "collection-mới")
		assert.NoError(t, err)
		assert.False(t, isNew)

		item, err := reg.Get("articles")
		assert.NoError(t, err)
		assert.Equal(t, "collection-mới", item)
	})

	t.Run("Tên rỗng báo lỗi", func(t *testing.T) {
		_, err := reg.Register("", "x")
		assert.ErrorIs(t, err, common.ErrRequiredField)
	})

	t.Run("Item không tồn tại trả về ErrNotFound", func(t *testing.T) {
		_, err := reg.Get("không-có")
		assert.ErrorIs(t, err, common.ErrNotFound)
	})
}

// TestRegistryGetOrCreate kiểm tra lấy hoặc tạo mới item
func TestRegistryGetOrCreate(t *testing.T) {
	reg := NewRegistry[int]()
	created := 0

	creator := func() (int, error) {
		created++
		return 42, nil
	}

	item, err := reg.GetOrCreate("counter", creator)
	assert.NoError(t, err)
	assert.Equal(t, 42, item)
	assert.Equal(t, 1, created)

	// Lần hai trả về item đã có, không gọi lại creator
	item, err = reg.GetOrCreate("counter", creator)
	assert.NoError(t, err)
	assert.Equal(t, 42, item)
	assert.Equal(t, 1, created)

	// Creator lỗi thì không lưu gì
	_, err = reg.GetOrCreate("hỏng", func() (int, error) {
		return 0, errors.New("lỗi khởi tạo")
	})
	assert.Error(t, err)
	_, err = reg.Get("hỏng")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

// TestRegistryClear kiểm tra xóa item kèm cleanup
func TestRegistryClear(t *testing.T) {
	reg := NewRegistry[string]()
	reg.Register("a", "1")
	reg.Register("b", "2")

	t.Run("Clear gọi cleanup trước khi xóa", func(t *testing.T) {
		cleaned := ""
		deleted, err := reg.Clear("a", func(item string) error {
			cleaned = item
			return nil
		})
		assert.NoError(t, err)
		assert.True(t, deleted)
		assert.Equal(t, "1", cleaned)

		_, err = reg.Get("a")
		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("Clear item không tồn tại không báo lỗi", func(t *testing.T) {
		deleted, err := reg.Clear("không-có", nil)
		assert.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("Cleanup lỗi thì giữ nguyên item", func(t *testing.T) {
		deleted, err := reg.Clear("b", func(string) error {
			return errors.New("đang được sử dụng")
		})
		assert.Error(t, err)
		assert.False(t, deleted)

		_, err = reg.Get("b")
		assert.NoError(t, err)
	})

	t.Run("ClearAll xóa toàn bộ", func(t *testing.T) {
		count, err := reg.ClearAll(nil)
		assert.NoError(t, err)
		assert.Equal(t, 1, count)

		_, err = reg.Get("b")
		assert.ErrorIs(t, err, common.ErrNotFound)
	})
}
