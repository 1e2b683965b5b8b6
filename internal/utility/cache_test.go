package utility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestCacheSetGet kiểm tra lưu và đọc giá trị từ cache
func TestCacheSetGet(t *testing.T) {
	cache := NewCache(1*time.Minute, 1*time.Minute)
	defer cache.Stop()

	t.Run("Key tồn tại", func(t *testing.T) {
		cache.Set("a", []string{"users:read"})
		value, found := cache.Get("a")
		assert.True(t, found)
		assert.Equal(t, []string{"users:read"}, value)
	})

	t.Run("Key không tồn tại", func(t *testing.T) {
		value, found := cache.Get("không-có")
		assert.False(t, found)
		assert.Nil(t, value)
	})

	t.Run("Set lại ghi đè giá trị cũ", func(t *testing.T) {
		cache.Set("a", 1)
		cache.Set("a", 2)
		value, found := cache.Get("a")
		assert.True(t, found)
		assert.Equal(t, 2, value)
	})
}

// TestCacheExpiry kiểm tra entry hết hạn không còn đọc được
func TestCacheExpiry(t *testing.T) {
	cache := NewCache(20*time.Millisecond, 1*time.Hour)
	defer cache.Stop()

	cache.Set("tạm", "x")
	_, found := cache.Get("tạm")
	assert.True(t, found)

	time.Sleep(50 * time.Millisecond)
	_, found = cache.Get("tạm")
	assert.False(t, found, "entry hết hạn phải coi như không tồn tại")
}

// TestCacheDeleteFlush kiểm tra invalidate từng key và toàn bộ
func TestCacheDeleteFlush(t *testing.T) {
	cache := NewCache(1*time.Minute, 1*time.Minute)
	defer cache.Stop()

	cache.Set("a", 1)
	cache.Set("b", 2)

	cache.Delete("a")
	_, found := cache.Get("a")
	assert.False(t, found)
	_, found = cache.Get("b")
	assert.True(t, found)

	cache.Flush()
	_, found = cache.Get("b")
	assert.False(t, found)
}
