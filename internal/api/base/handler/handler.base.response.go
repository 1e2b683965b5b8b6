package basehdl

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"

	"meta_content/internal/common"
	"meta_content/internal/logger"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8.
// Đảm bảo tất cả JSON responses đều có charset=utf-8 để hỗ trợ tiếng Việt đúng cách.
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// SafeHandler bọc các handler với recover để bắt panic và xử lý lỗi an toàn.
// Đảm bảo server luôn trả về response cho client, kể cả khi có panic xảy ra.
func (h *BaseHandler[T, CreateInput, UpdateInput]) SafeHandler(c fiber.Ctx, handler func() error) error {
	defer func() {
		if r := recover(); r != nil {
			// Log stack trace để debug
			debug.PrintStack()

			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Lỗi hệ thống không mong muốn: %v", r),
				common.StatusInternalServerError,
				nil,
			))
		}
	}()
	return handler()
}

// HandleResponse xử lý và chuẩn hóa response trả về cho client.
// Format response thống nhất trong toàn bộ ứng dụng: {code, message, data}.
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleResponse(c fiber.Ctx, data interface{}, err error) {
	respondJSON(c, common.StatusOK, common.MsgSuccess, data, err)
}

// HandleCreatedResponse dùng cho các endpoint tạo mới: thành công trả 201,
// lỗi xử lý giống HandleResponse.
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleCreatedResponse(c fiber.Ctx, data interface{}, err error) {
	respondJSON(c, common.StatusCreated, common.MsgCreated, data, err)
}

// respondJSON là core của việc chuẩn hóa response: lỗi custom trả theo
// status/message của lỗi, lỗi không đoán trước được log chi tiết phía server
// và client chỉ nhận thông báo chung.
func respondJSON(c fiber.Ctx, successStatus int, successMessage string, data interface{}, err error) {
	if err != nil {
		var customErr *common.Error
		if errors.As(err, &customErr) {
			JSONResponse(c, customErr.StatusCode, fiber.Map{
				"code":    customErr.Code.Code,
				"message": customErr.Message,
				"data":    nil,
			})
			return
		}
		logger.GetErrorLogger().WithError(err).
			WithField("path", c.Path()).
			Error("Lỗi không xác định khi xử lý request")
		JSONResponse(c, common.StatusInternalServerError, fiber.Map{
			"code":    common.ErrCodeInternalServer.Code,
			"message": common.MsgInternalError,
			"data":    nil,
		})
		return
	}

	// Trường hợp thành công
	JSONResponse(c, successStatus, fiber.Map{
		"code":    successStatus,
		"message": successMessage,
		"data":    data,
	})
}
