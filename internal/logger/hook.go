package logger

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/sirupsen/logrus"
)

// AsyncHook ghi log bất đồng bộ để tránh blocking request handling.
// Entries được buffer qua channel và ghi vào các writers trong goroutine riêng.
type AsyncHook struct {
	writers    []io.Writer
	entries    chan *logrus.Entry
	wg         sync.WaitGroup
	mu         sync.Mutex
	closed     bool
	bufferSize int
}

// NewAsyncHookWithWriters tạo async hook ghi vào nhiều writers.
// bufferSize là kích thước buffer cho log entries (mặc định 1000).
func NewAsyncHookWithWriters(writers []io.Writer, bufferSize int) *AsyncHook {
	if bufferSize <= 0 {
		bufferSize = 1000
	}

	hook := &AsyncHook{
		writers:    writers,
		entries:    make(chan *logrus.Entry, bufferSize),
		bufferSize: bufferSize,
	}

	hook.wg.Add(1)
	go hook.processEntries()

	return hook
}

// Levels trả về các log levels mà hook này xử lý
func (h *AsyncHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire đưa entry vào channel, không block.
// Channel đầy thì entry bị bỏ qua để không ảnh hưởng request handling.
func (h *AsyncHook) Fire(entry *logrus.Entry) error {
	h.mu.Lock()
	closed := h.closed
	h.mu.Unlock()

	if closed {
		// Hook đã đóng, ghi trực tiếp vào writers (fallback)
		data, err := h.formatEntry(entry)
		if err != nil {
			return err
		}
		for _, writer := range h.writers {
			_, _ = writer.Write(data)
		}
		return nil
	}

	select {
	case h.entries <- entry:
	default:
		// Channel đầy, bỏ qua entry này
	}

	return nil
}

// processEntries xử lý log entries trong goroutine riêng.
// Có recover để goroutine logger không làm sập server.
func (h *AsyncHook) processEntries() {
	defer h.wg.Done()

	for entry := range h.entries {
		func() {
			defer func() {
				if r := recover(); r != nil {
					// Không dùng logger ở đây để tránh vòng lặp, ghi thẳng stderr
					fmt.Fprintf(os.Stderr, "[LOGGER PANIC] Logger goroutine panic recovered: %v\n", r)
					debug.PrintStack()
				}
			}()

			data, err := h.formatEntry(entry)
			if err != nil {
				return
			}

			for _, writer := range h.writers {
				if _, err = writer.Write(data); err != nil {
					continue
				}
			}
		}()
	}
}

// formatEntry format entry thành bytes bằng formatter của logger.
func (h *AsyncHook) formatEntry(entry *logrus.Entry) ([]byte, error) {
	if entry.Logger != nil && entry.Logger.Formatter != nil {
		return entry.Logger.Formatter.Format(entry)
	}
	line, err := entry.String()
	if err != nil {
		return nil, err
	}
	return []byte(line), nil
}

// Close đóng hook và đợi tất cả entries được xử lý xong
func (h *AsyncHook) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	h.mu.Unlock()

	close(h.entries)
	h.wg.Wait()
	return nil
}
