package middleware

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	models "meta_content/internal/api/auth/models"
	authsvc "meta_content/internal/api/auth/service"
	"meta_content/internal/common"
	"meta_content/internal/global"
	"meta_content/internal/logger"
	"meta_content/internal/utility"
)

// AuthManager quản lý xác thực và phân quyền người dùng
type AuthManager struct {
	UserCRUD *authsvc.UserService
	RoleCRUD *authsvc.RoleService
	Resolver *authsvc.PermissionResolver
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager trả về instance duy nhất của AuthManager (singleton pattern)
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		var err error
		authManagerInstance, err = newAuthManager()
		if err != nil {
			panic(err)
		}
	})
	return authManagerInstance
}

// newAuthManager khởi tạo một instance mới của AuthManager (private constructor)
func newAuthManager() (*AuthManager, error) {
	newManager := new(AuthManager)

	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	newManager.UserCRUD = userService

	roleService, err := authsvc.NewRoleService()
	if err != nil {
		return nil, fmt.Errorf("failed to create role service: %v", err)
	}
	newManager.RoleCRUD = roleService

	newManager.Resolver = authsvc.GetPermissionResolver()

	return newManager, nil
}

// authenticate xác thực request: parse Bearer token, so khớp với token
// đang lưu trên user record và kiểm tra trạng thái tài khoản.
// Trả về user nếu hợp lệ, lỗi 401 nếu không.
func (am *AuthManager) authenticate(c fiber.Ctx) (models.User, error) {
	var zero models.User

	authHeader := c.Get("Authorization")
	if authHeader == "" {
		logger.GetAppLogger().WithFields(logrus.Fields{
			"path":   c.Path(),
			"method": c.Method(),
		}).Warn("Thiếu Authorization header")
		return zero, common.ErrTokenMissing
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return zero, common.ErrTokenInvalid
	}
	token := parts[1]

	claims, err := utility.ParseToken(global.MongoDB_ServerConfig.JwtSecret, token)
	if err != nil {
		return zero, err
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return zero, common.ErrTokenInvalid
	}

	user, err := am.UserCRUD.FindOneById(context.Background(), userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return zero, common.ErrTokenInvalid
		}
		return zero, err
	}

	// Token phải là token mới nhất (bị thay khi login lại, bị xóa khi logout)
	if user.Token != token {
		return zero, common.ErrTokenInvalid
	}

	if user.IsBlock {
		return zero, common.NewError(
			common.ErrCodeAuthCredentials,
			"Tài khoản đã bị khóa: "+user.BlockNote,
			common.StatusUnauthorized,
			nil,
		)
	}
	if !user.IsActive {
		return zero, common.ErrUserInactive
	}

	return user, nil
}

// Protect middleware xác thực cho Fiber.
// Request hợp lệ được gắn user_id và user vào Locals cho các handler sau.
func Protect() fiber.Handler {
	authManager := GetAuthManager()

	return func(c fiber.Ctx) error {
		user, err := authManager.authenticate(c)
		if err != nil {
			HandleErrorResponse(c, err)
			return nil
		}

		c.Locals("user_id", user.ID.Hex())
		c.Locals("user", user)
		return c.Next()
	}
}

// Authorize middleware kiểm tra user có một trong các role được chỉ định.
// Phải đứng sau Protect trong chain. So sánh theo tên role.
func Authorize(roleNames ...string) fiber.Handler {
	authManager := GetAuthManager()

	return func(c fiber.Ctx) error {
		user, ok := c.Locals("user").(models.User)
		if !ok {
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		if user.RoleID.IsZero() {
			HandleErrorResponse(c, common.ErrPermissionDenied)
			return nil
		}

		role, err := authManager.RoleCRUD.FindOneById(context.Background(), user.RoleID)
		if err != nil {
			// Role đã bị xóa: không có quyền
			HandleErrorResponse(c, common.ErrPermissionDenied)
			return nil
		}

		for _, name := range roleNames {
			if role.Name == name {
				return c.Next()
			}
		}

		logger.GetAppLogger().WithFields(logrus.Fields{
			"user_id":        user.ID.Hex(),
			"role":           role.Name,
			"required_roles": roleNames,
			"path":           c.Path(),
		}).Warn("User không có role yêu cầu")
		HandleErrorResponse(c, common.ErrPermissionDenied)
		return nil
	}
}

// RequirePermission middleware kiểm tra user có permission code cụ thể.
// Phải đứng sau Protect trong chain. Role Super Admin luôn được phép.
func RequirePermission(code string) fiber.Handler {
	authManager := GetAuthManager()

	return func(c fiber.Ctx) error {
		user, ok := c.Locals("user").(models.User)
		if !ok {
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		allowed, err := authManager.Resolver.HasPermission(c.Context(), user.ID, code)
		if err != nil {
			HandleErrorResponse(c, err)
			return nil
		}
		if !allowed {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"user_id":             user.ID.Hex(),
				"required_permission": code,
				"path":                c.Path(),
			}).Warn("User không có permission yêu cầu")
			HandleErrorResponse(c, common.ErrPermissionDenied)
			return nil
		}

		c.Locals("permission_name", code)
		return c.Next()
	}
}

// RequireAnyPermission middleware kiểm tra user có ít nhất một trong các
// permission code. Phải đứng sau Protect trong chain.
func RequireAnyPermission(codes ...string) fiber.Handler {
	authManager := GetAuthManager()

	return func(c fiber.Ctx) error {
		user, ok := c.Locals("user").(models.User)
		if !ok {
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		allowed, err := authManager.Resolver.HasAnyPermission(c.Context(), user.ID, codes...)
		if err != nil {
			HandleErrorResponse(c, err)
			return nil
		}
		if !allowed {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"user_id":              user.ID.Hex(),
				"required_permissions": codes,
				"path":                 c.Path(),
			}).Warn("User không có permission yêu cầu")
			HandleErrorResponse(c, common.ErrPermissionDenied)
			return nil
		}

		return c.Next()
	}
}
