package router

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
)

func TestRegisterRouteWithMiddleware(t *testing.T) {
	okHandler := func(c fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
	deny := func(c fiber.Ctx) error {
		return c.SendStatus(fiber.StatusForbidden)
	}
	allow := func(c fiber.Ctx) error {
		return c.Next()
	}

	t.Run("Middleware của route này không chặn route khác cùng prefix", func(t *testing.T) {
		app := fiber.New()
		registerRouteWithMiddleware(app, "/permission", "POST", "/create", []fiber.Handler{deny}, okHandler)
		registerRouteWithMiddleware(app, "/permission", "GET", "/list", []fiber.Handler{allow}, okHandler)

		resp, err := app.Test(httptest.NewRequest("GET", "/permission/list", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("Middleware chặn thì handler của chính route đó không chạy", func(t *testing.T) {
		app := fiber.New()
		handlerCalled := false
		handler := func(c fiber.Ctx) error {
			handlerCalled = true
			return c.SendStatus(fiber.StatusOK)
		}
		registerRouteWithMiddleware(app, "/permission", "POST", "/create", []fiber.Handler{deny}, handler)

		resp, err := app.Test(httptest.NewRequest("POST", "/permission/create", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
		assert.False(t, handlerCalled)
	})

	t.Run("Middleware chạy theo đúng thứ tự khai báo, trước handler", func(t *testing.T) {
		app := fiber.New()
		var order []string
		first := func(c fiber.Ctx) error {
			order = append(order, "first")
			return c.Next()
		}
		second := func(c fiber.Ctx) error {
			order = append(order, "second")
			return c.Next()
		}
		handler := func(c fiber.Ctx) error {
			order = append(order, "handler")
			return c.SendStatus(fiber.StatusOK)
		}
		registerRouteWithMiddleware(app, "/article", "GET", "/find", []fiber.Handler{first, second}, handler)

		resp, err := app.Test(httptest.NewRequest("GET", "/article/find", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, []string{"first", "second", "handler"}, order)
	})

	t.Run("Route có path param vẫn hoạt động", func(t *testing.T) {
		app := fiber.New()
		var gotID string
		handler := func(c fiber.Ctx) error {
			gotID = c.Params("id")
			return c.SendStatus(fiber.StatusOK)
		}
		registerRouteWithMiddleware(app, "/role", "PUT", "/update/:id", []fiber.Handler{allow}, handler)

		resp, err := app.Test(httptest.NewRequest("PUT", "/role/update/abc123", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "abc123", gotID)
	})
}
