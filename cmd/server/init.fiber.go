package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"

	"meta_content/internal/api/router"
	"meta_content/internal/common"
	"meta_content/internal/global"
	"meta_content/internal/logger"
)

// InitFiberApp khởi tạo ứng dụng Fiber với các middleware cần thiết
func InitFiberApp() *fiber.App {
	app := fiber.New(fiber.Config{
		// Cấu hình cơ bản
		AppName:       "Meta Content API",
		ServerHeader:  "Meta Content API",
		StrictRouting: true, // /foo và /foo/ là khác nhau
		CaseSensitive: true, // /Foo và /foo là khác nhau
		UnescapePath:  true,

		// Cấu hình performance
		BodyLimit:       10 * 1024 * 1024, // Max size của request body (10MB)
		Concurrency:     256 * 1024,
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,

		// Cấu hình timeout
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,

		// Lỗi routing (404, 405, ...) được trả về theo envelope chung
		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "Internal Server Error"
			errorCode := common.ErrCodeInternalServer.Code

			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				message = e.Message
				switch code {
				case fiber.StatusBadRequest:
					errorCode = common.ErrCodeValidationInput.Code
				case fiber.StatusUnauthorized:
					errorCode = common.ErrCodeAuthToken.Code
				case fiber.StatusForbidden:
					errorCode = common.ErrCodeAuthPermission.Code
				case fiber.StatusNotFound:
					errorCode = common.ErrCodeDatabaseQuery.Code
				case fiber.StatusConflict:
					errorCode = common.ErrCodeDatabaseQuery.Code
				}
			}

			logger.GetAppLogger().WithFields(map[string]interface{}{
				"code":      code,
				"errorCode": errorCode,
				"path":      c.Path(),
				"method":    c.Method(),
			}).Error("Request error")

			return c.Status(code).JSON(fiber.Map{
				"code":    errorCode,
				"message": message,
				"data":    nil,
			})
		},
	})

	// MIDDLEWARE STACK

	// 1. Request ID - tạo ID duy nhất cho mỗi request để trace
	app.Use(requestid.New(requestid.Config{
		Header: "X-Request-ID",
		Generator: func() string {
			return fmt.Sprintf("%d", time.Now().UnixNano())
		},
	}))

	// 2. CORS - phải đặt trước các middleware khác để xử lý preflight request
	corsOrigins := global.MongoDB_ServerConfig.CORS_Origins
	var allowOrigins []string
	if corsOrigins == "*" {
		allowOrigins = []string{"*"}
	} else {
		allowOrigins = strings.Split(corsOrigins, ",")
		for i, origin := range allowOrigins {
			allowOrigins[i] = strings.TrimSpace(origin)
		}
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "PATCH", "HEAD", "OPTIONS"},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
			"X-Request-ID",
			"X-Requested-With",
		},
		AllowCredentials: global.MongoDB_ServerConfig.CORS_AllowCredentials,
		ExposeHeaders:    []string{"Content-Length", "Content-Range", "X-Request-ID"},
		MaxAge:           24 * 60 * 60, // Cache preflight 24 giờ
	}))

	// 3. Security headers
	app.Use(func(c fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		return c.Next()
	})

	// 4. Rate limiting theo IP
	if global.MongoDB_ServerConfig.RateLimit_Enabled && global.MongoDB_ServerConfig.RateLimit_Max > 0 {
		rateLimitMax := global.MongoDB_ServerConfig.RateLimit_Max
		rateLimitWindow := time.Duration(global.MongoDB_ServerConfig.RateLimit_Window) * time.Second
		app.Use(limiter.New(limiter.Config{
			Max:        rateLimitMax,
			Expiration: rateLimitWindow,
			KeyGenerator: func(c fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"code":    common.ErrCodeBusinessOperation.Code,
					"message": "Quá nhiều yêu cầu, vui lòng thử lại sau",
					"data":    nil,
				})
			},
			Next: func(c fiber.Ctx) bool {
				// Bỏ qua rate limit cho health check và preflight request
				return c.Path() == "/health" || c.Method() == "OPTIONS"
			},
		}))
		logger.GetAppLogger().Infof("Rate limiting enabled: %d requests per %d seconds",
			rateLimitMax, global.MongoDB_ServerConfig.RateLimit_Window)
	} else {
		logger.GetAppLogger().Info("Rate limiting disabled")
	}

	// 5. Recover - bắt panic ở tầng ngoài cùng
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e interface{}) {
			logger.GetAppLogger().WithFields(map[string]interface{}{
				"panic":  e,
				"path":   c.Path(),
				"method": c.Method(),
			}).Error("Panic recovered")

			c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"code":    common.ErrCodeInternalServer.Code,
				"message": "Internal Server Error",
				"data":    nil,
			})
		},
		Next: func(c fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))

	// Đăng ký routes
	if err := router.SetupRoutes(app); err != nil {
		logger.GetAppLogger().Fatalf("Failed to setup routes: %v", err)
	}

	return app
}
