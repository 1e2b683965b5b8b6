package middleware

import (
	"errors"

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

// HandleErrorResponse xử lý và trả về error response cho client.
// Tách riêng để tránh import cycle với handler package.
func HandleErrorResponse(c fiber.Ctx, err error) {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		JSONResponse(c, customErr.StatusCode, fiber.Map{
			"code":    customErr.Code.Code,
			"message": customErr.Message,
			"data":    nil,
		})
		return
	}
	// Lỗi không đoán trước: log chi tiết phía server, client nhận thông báo chung
	logger.GetErrorLogger().WithError(err).
		WithField("path", c.Path()).
		Error("Lỗi không xác định trong middleware")
	JSONResponse(c, common.StatusInternalServerError, fiber.Map{
		"code":    common.ErrCodeInternalServer.Code,
		"message": common.MsgInternalError,
		"data":    nil,
	})
}
