// Package events cung cấp cơ chế event trung tâm khi dữ liệu thay đổi qua CRUD.
// Các service CRUD không cần override từng method — BaseServiceMongoImpl tự động phát event.
// Logic phản ứng (invalidate cache quyền, ...) đăng ký qua OnDataChanged.
package events

import (
	"context"
	"sync"

	"meta_content/internal/logger"
)

// OpInsert, OpUpdate, OpUpsert, OpDelete là các loại thao tác CRUD.
const (
	OpInsert = "insert"
	OpUpdate = "update"
	OpUpsert = "upsert"
	OpDelete = "delete"
)

// DataChangeEvent mô tả sự kiện thay đổi dữ liệu.
// Document là bản ghi sau khi thay đổi (bản ghi cũ nếu delete).
type DataChangeEvent struct {
	CollectionName string
	Operation      string
	Document       interface{}
}

// DataChangeHandler xử lý sự kiện thay đổi dữ liệu.
type DataChangeHandler func(ctx context.Context, e DataChangeEvent)

var (
	handlers   []DataChangeHandler
	handlersMu sync.RWMutex
)

// OnDataChanged đăng ký handler. Gọi khi init.
func OnDataChanged(h DataChangeHandler) {
	handlersMu.Lock()
	defer handlersMu.Unlock()
	handlers = append(handlers, h)
}

// EmitDataChanged phát sự kiện. Gọi từ BaseServiceMongoImpl sau mỗi CRUD thành công.
// Handler chạy đồng bộ theo thứ tự đăng ký: cache quyền phải được flush xong
// trước khi response trả về, nếu không request ngay sau một lần đổi role vẫn
// đọc được tập permission cũ. Panic trong handler được recover và log để
// không ảnh hưởng các handler còn lại.
func EmitDataChanged(ctx context.Context, e DataChangeEvent) {
	handlersMu.RLock()
	list := make([]DataChangeHandler, len(handlers))
	copy(list, handlers)
	handlersMu.RUnlock()

	for _, h := range list {
		invokeHandler(ctx, h, e)
	}
}

func invokeHandler(ctx context.Context, h DataChangeHandler, e DataChangeEvent) {
	defer func() {
		if r := recover(); r != nil {
			logger.GetErrorLogger().Errorf("Data change handler panic: %v", r)
		}
	}()
	h(ctx, e)
}
