// Package registry cung cấp registry pattern generic, thread-safe.
// Dùng để quản lý các singleton theo tên (collection MongoDB, service, ...).
package registry

import (
	"fmt"
	"sync"

	"meta_content/internal/common"
)

// Registry quản lý items theo key, an toàn khi dùng đồng thời.
// Type parameter T cho phép tái sử dụng cho nhiều loại đối tượng.
type Registry[T any] struct {
	items map[string]T
	mu    sync.RWMutex
}

// NewRegistry tạo một registry rỗng.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		items: make(map[string]T),
	}
}

// Register đăng ký một item vào registry. Item trùng tên sẽ bị ghi đè.
//
// Returns:
//   - isNew: true nếu là item mới, false nếu ghi đè item cũ
//   - err: lỗi nếu name rỗng
func (r *Registry[T]) Register(name string, item T) (isNew bool, err error) {
	if name == "" {
		return false, fmt.Errorf("name cannot be empty: %w", common.ErrRequiredField)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, exists := r.items[name]
	r.items[name] = item
	return !exists, nil
}

// Get lấy item theo tên. Trả về ErrNotFound nếu không tồn tại.
func (r *Registry[T]) Get(name string) (item T, err error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, exists := r.items[name]
	if !exists {
		return item, fmt.Errorf("item not found: %s: %w", name, common.ErrNotFound)
	}
	return item, nil
}

// GetOrCreate lấy item theo tên, nếu chưa có thì tạo mới qua creator.
func (r *Registry[T]) GetOrCreate(name string, creator func() (T, error)) (item T, err error) {
	if name == "" {
		return item, fmt.Errorf("name cannot be empty: %w", common.ErrRequiredField)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, exists := r.items[name]; exists {
		return existing, nil
	}

	newItem, err := creator()
	if err != nil {
		return item, fmt.Errorf("failed to create item: %w", err)
	}

	r.items[name] = newItem
	return newItem, nil
}

// Update cập nhật item qua updater function, giữ lock trong suốt quá trình.
func (r *Registry[T]) Update(name string, updater func(T) (T, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, exists := r.items[name]
	if !exists {
		return fmt.Errorf("item not found: %s: %w", name, common.ErrNotFound)
	}

	updated, err := updater(current)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}

	r.items[name] = updated
	return nil
}

// Clear xóa một item. Cleanup (nếu có) được gọi trước khi xóa để giải phóng tài nguyên.
func (r *Registry[T]) Clear(name string, cleanup func(T) error) (deleted bool, err error) {
	if name == "" {
		return false, fmt.Errorf("name cannot be empty: %w", common.ErrRequiredField)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	item, exists := r.items[name]
	if !exists {
		return false, nil
	}

	if cleanup != nil {
		if err := cleanup(item); err != nil {
			return false, fmt.Errorf("failed to cleanup item %s: %w", name, err)
		}
	}

	delete(r.items, name)
	return true, nil
}

// ClearAll xóa toàn bộ items, gọi cleanup cho từng item nếu được cung cấp.
func (r *Registry[T]) ClearAll(cleanup func(T) error) (count int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count = len(r.items)
	if count == 0 {
		return 0, nil
	}

	if cleanup != nil {
		var errs []error
		for name, item := range r.items {
			if err := cleanup(item); err != nil {
				errs = append(errs, fmt.Errorf("failed to cleanup %s: %w", name, err))
			}
		}
		if len(errs) > 0 {
			return 0, fmt.Errorf("cleanup errors occurred: %v", errs)
		}
	}

	r.items = make(map[string]T)
	return count, nil
}
