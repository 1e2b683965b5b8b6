package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestEmitDataChanged kiểm tra phát sự kiện tới các handler đã đăng ký
func TestEmitDataChanged(t *testing.T) {
	var received []DataChangeEvent

	OnDataChanged(func(ctx context.Context, e DataChangeEvent) {
		received = append(received, e)
	})

	EmitDataChanged(context.Background(), DataChangeEvent{
		CollectionName: "articles",
		Operation:      OpInsert,
		Document:       "doc",
	})

	// Handler chạy đồng bộ: sau khi Emit trả về, sự kiện đã được xử lý xong
	assert.Len(t, received, 1)
	assert.Equal(t, "articles", received[0].CollectionName)
	assert.Equal(t, OpInsert, received[0].Operation)
}

// TestEmitDataChangedPanic kiểm tra panic trong một handler không ảnh hưởng
// handler đăng ký sau nó
func TestEmitDataChangedPanic(t *testing.T) {
	secondCalled := false

	OnDataChanged(func(ctx context.Context, e DataChangeEvent) {
		panic("handler hỏng")
	})
	OnDataChanged(func(ctx context.Context, e DataChangeEvent) {
		secondCalled = true
	})

	assert.NotPanics(t, func() {
		EmitDataChanged(context.Background(), DataChangeEvent{
			CollectionName: "roles",
			Operation:      OpUpdate,
		})
	})
	assert.True(t, secondCalled)
}
