package authhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authdto "meta_content/internal/api/auth/dto"
	models "meta_content/internal/api/auth/models"
	authsvc "meta_content/internal/api/auth/service"
	basehdl "meta_content/internal/api/base/handler"
	"meta_content/internal/common"
	"meta_content/internal/utility"
)

// UserHandler xử lý các request xác thực và quản lý người dùng
type UserHandler struct {
	*basehdl.BaseHandler[models.User, authdto.UserCreateInput, authdto.UserUpdateInput]
	userService *authsvc.UserService
	resolver    *authsvc.PermissionResolver
}

// NewUserHandler tạo instance mới của UserHandler
func NewUserHandler() (*UserHandler, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	return &UserHandler{
		BaseHandler: basehdl.NewBaseHandler[models.User, authdto.UserCreateInput, authdto.UserUpdateInput](userService),
		userService: userService,
		resolver:    authsvc.GetPermissionResolver(),
	}, nil
}

// currentUserID lấy user ID từ Locals (được Protect middleware gắn vào)
func (h *UserHandler) currentUserID(c fiber.Ctx) (primitive.ObjectID, error) {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok || userIDStr == "" {
		return primitive.NilObjectID, common.ErrTokenMissing
	}
	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		return primitive.NilObjectID, common.ErrTokenInvalid
	}
	return userID, nil
}

// HandleRegister xử lý đăng ký người dùng mới
func (h *UserHandler) HandleRegister(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.UserRegisterInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.userService.Register(c.Context(), &input)
		h.HandleCreatedResponse(c, data, err)
		return nil
	})
}

// HandleLogin xử lý đăng nhập, trả về JWT và thông tin người dùng
func (h *UserHandler) HandleLogin(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.UserLoginInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.userService.Login(c.Context(), &input)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleLogout xử lý đăng xuất người dùng, hủy token hiện tại
func (h *UserHandler) HandleLogout(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.currentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.userService.Logout(c.Context(), userID)
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleGetProfile lấy thông tin profile của người dùng đang đăng nhập
func (h *UserHandler) HandleGetProfile(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.currentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.userService.GetProfile(c.Context(), userID)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleGetMyPermissions trả về danh sách permission code của người dùng đang đăng nhập
func (h *UserHandler) HandleGetMyPermissions(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.currentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		permissions, err := h.resolver.ResolvePermissions(c.Context(), userID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		codes := make([]string, 0, len(permissions))
		for code := range permissions {
			codes = append(codes, code)
		}
		h.HandleResponse(c, codes, nil)
		return nil
	})
}

// HandleChangePassword đổi mật khẩu của người dùng đang đăng nhập
func (h *UserHandler) HandleChangePassword(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.currentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input authdto.UserChangePasswordInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.userService.ChangePassword(c.Context(), userID, &input)
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleSetRole gán role cho một người dùng (route quản trị)
func (h *UserHandler) HandleSetRole(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		if !primitive.IsValidObjectID(id) {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", id),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		var input authdto.UserSetRoleInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if !primitive.IsValidObjectID(input.RoleID) {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				"ID vai trò không hợp lệ",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		data, err := h.userService.SetRole(c.Context(), utility.String2ObjectID(id), utility.String2ObjectID(input.RoleID))
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleBlockUser khóa người dùng theo email kèm ghi chú lý do
func (h *UserHandler) HandleBlockUser(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.BlockUserInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.userService.BlockUser(c.Context(), input.Email, input.Note)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleUnBlockUser mở khóa người dùng theo email
func (h *UserHandler) HandleUnBlockUser(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.UnBlockUserInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.userService.UnBlockUser(c.Context(), input.Email)
		h.HandleResponse(c, data, err)
		return nil
	})
}
