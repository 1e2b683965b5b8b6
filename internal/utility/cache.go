package utility

import (
	"sync"
	"time"
)

type cacheEntry struct {
	value     interface{}
	expiresAt time.Time
}

// Cache là cache in-memory với thời gian sống per-key và dọn dẹp định kỳ.
// Dùng cho các dữ liệu đọc nhiều ghi ít (tập quyền hiệu lực của user, ...).
type Cache struct {
	items    map[string]cacheEntry
	mu       sync.RWMutex
	ttl      time.Duration
	cleanup  time.Duration
	stopChan chan struct{}
}

// NewCache tạo một instance mới của Cache và khởi động vòng dọn dẹp.
func NewCache(ttl, cleanup time.Duration) *Cache {
	cache := &Cache{
		items:    make(map[string]cacheEntry),
		ttl:      ttl,
		cleanup:  cleanup,
		stopChan: make(chan struct{}),
	}
	go cache.cleanupLoop()
	return cache
}

// Set lưu giá trị vào cache với TTL mặc định.
func (c *Cache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = cacheEntry{
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// Get lấy giá trị từ cache. Entry hết hạn coi như không tồn tại.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, exists := c.items[key]
	if !exists || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.value, true
}

// Delete xóa một key khỏi cache (dùng khi invalidate sau mutation).
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// Flush xóa toàn bộ cache.
func (c *Cache) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]cacheEntry)
}

// Stop dừng vòng dọn dẹp.
func (c *Cache) Stop() {
	close(c.stopChan)
}

// cleanupLoop xóa các entry hết hạn theo chu kỳ cleanup.
func (c *Cache) cleanupLoop() {
	ticker := time.NewTicker(c.cleanup)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := time.Now()
			c.mu.Lock()
			for k, entry := range c.items {
				if now.After(entry.expiresAt) {
					delete(c.items, k)
				}
			}
			c.mu.Unlock()
		case <-c.stopChan:
			return
		}
	}
}
