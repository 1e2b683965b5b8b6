package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"

	"meta_content/internal/common"
)

func TestHandleErrorResponse(t *testing.T) {
	run := func(t *testing.T, err error) (int, map[string]interface{}) {
		t.Helper()

		app := fiber.New()
		app.Get("/test", func(c fiber.Ctx) error {
			HandleErrorResponse(c, err)
			return nil
		})

		resp, reqErr := app.Test(httptest.NewRequest("GET", "/test", nil))
		assert.NoError(t, reqErr)

		raw, readErr := io.ReadAll(resp.Body)
		assert.NoError(t, readErr)

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(raw, &body))
		return resp.StatusCode, body
	}

	t.Run("Lỗi custom trả về đúng status và message", func(t *testing.T) {
		status, body := run(t, common.ErrTokenExpired)

		assert.Equal(t, common.ErrTokenExpired.StatusCode, status)
		assert.Equal(t, common.ErrTokenExpired.Message, body["message"])
		assert.Nil(t, body["data"])
	})

	t.Run("Lỗi không xác định trả về 500 với thông báo chung, không lộ chi tiết", func(t *testing.T) {
		status, body := run(t, errors.New("dsn nội bộ bị lỗi"))

		assert.Equal(t, common.StatusInternalServerError, status)
		assert.Equal(t, common.MsgInternalError, body["message"])
		assert.NotContains(t, body["message"], "dsn")
	})
}
