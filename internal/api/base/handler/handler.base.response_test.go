package basehdl

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

// doRequest chạy một handler qua fiber app và decode body trả về
func doRequest(t *testing.T, handler fiber.Handler) (int, map[string]interface{}) {
	t.Helper()

	app := fiber.New()
	app.Get("/test", handler)

	resp, err := app.Test(httptest.NewRequest("GET", "/test", nil))
	assert.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestHandleResponse(t *testing.T) {
	h := newTestHandler()

	t.Run("Thành công trả về 200 với envelope chuẩn", func(t *testing.T) {
		status, body := doRequest(t, func(c fiber.Ctx) error {
			h.HandleResponse(c, fiber.Map{"title": "Bài viết"}, nil)
			return nil
		})

		assert.Equal(t, common.StatusOK, status)
		assert.Equal(t, float64(common.StatusOK), body["code"])
		assert.Equal(t, common.MsgSuccess, body["message"])
		assert.NotNil(t, body["data"])
	})

	t.Run("Lỗi custom trả về đúng status và message của lỗi", func(t *testing.T) {
		status, body := doRequest(t, func(c fiber.Ctx) error {
			h.HandleResponse(c, nil, common.ErrInvalidReference)
			return nil
		})

		assert.Equal(t, common.ErrInvalidReference.StatusCode, status)
		assert.Equal(t, common.ErrInvalidReference.Message, body["message"])
		assert.Nil(t, body["data"])
	})

	t.Run("Lỗi không xác định trả về 500 với thông báo chung, không lộ chi tiết", func(t *testing.T) {
		status, body := doRequest(t, func(c fiber.Ctx) error {
			h.HandleResponse(c, nil, errors.New("connection string chứa mật khẩu"))
			return nil
		})

		assert.Equal(t, common.StatusInternalServerError, status)
		assert.Equal(t, common.MsgInternalError, body["message"])
		assert.NotContains(t, body["message"], "mật khẩu")
		assert.Nil(t, body["data"])
	})
}

func TestHandleCreatedResponse(t *testing.T) {
	h := newTestHandler()

	t.Run("Tạo mới thành công trả về 201", func(t *testing.T) {
		status, body := doRequest(t, func(c fiber.Ctx) error {
			h.HandleCreatedResponse(c, fiber.Map{"code": "articles:create"}, nil)
			return nil
		})

		assert.Equal(t, common.StatusCreated, status)
		assert.Equal(t, float64(common.StatusCreated), body["code"])
		assert.Equal(t, common.MsgCreated, body["message"])
		assert.NotNil(t, body["data"])
	})

	t.Run("Tạo mới bị trùng trả về 400", func(t *testing.T) {
		status, body := doRequest(t, func(c fiber.Ctx) error {
			h.HandleCreatedResponse(c, nil, common.ErrMongoDuplicate)
			return nil
		})

		assert.Equal(t, common.StatusBadRequest, status)
		assert.Equal(t, common.MsgMongoDuplicate, body["message"])
		assert.Nil(t, body["data"])
	})
}
