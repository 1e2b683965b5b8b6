package authhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authdto "meta_content/internal/api/auth/dto"
	models "meta_content/internal/api/auth/models"
	authsvc "meta_content/internal/api/auth/service"
	basehdl "meta_content/internal/api/base/handler"
	"meta_content/internal/common"
	"meta_content/internal/utility"
)

// RoleHandler xử lý các route liên quan đến vai trò
type RoleHandler struct {
	*basehdl.BaseHandler[models.Role, authdto.RoleCreateInput, authdto.RoleUpdateInput]
	roleService *authsvc.RoleService
	userService *authsvc.UserService
}

// NewRoleHandler tạo instance mới của RoleHandler
func NewRoleHandler() (*RoleHandler, error) {
	roleService, err := authsvc.NewRoleService()
	if err != nil {
		return nil, fmt.Errorf("failed to create role service: %v", err)
	}
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	return &RoleHandler{
		BaseHandler: basehdl.NewBaseHandler[models.Role, authdto.RoleCreateInput, authdto.RoleUpdateInput](roleService),
		roleService: roleService,
		userService: userService,
	}, nil
}

// parseRoleID validate và parse role ID từ URI params
func (h *RoleHandler) parseRoleID(c fiber.Ctx) (primitive.ObjectID, error) {
	id := c.Params("id")
	if !primitive.IsValidObjectID(id) {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", id),
			common.StatusBadRequest,
			nil,
		)
	}
	return utility.String2ObjectID(id), nil
}

// HandleCreate tạo mới một role.
// Nếu role mới là default, role default hiện tại bị bỏ cờ.
func (h *RoleHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.RoleCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.roleService.Create(c.Context(), &input)
		h.HandleCreatedResponse(c, data, err)
		return nil
	})
}

// HandleUpdate cập nhật một role theo ID
func (h *RoleHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		roleID, err := h.parseRoleID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input authdto.RoleUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.roleService.Update(c.Context(), roleID, &input)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleDelete xóa một role theo ID.
// Role default hoặc role đang có user sử dụng không xóa được.
func (h *RoleHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		roleID, err := h.parseRoleID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err = h.roleService.Delete(c.Context(), roleID)
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleSetPermissions thay thế toàn bộ danh sách permission của role,
// trả về role kèm danh sách permission đã populate
func (h *RoleHandler) HandleSetPermissions(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		roleID, err := h.parseRoleID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input authdto.RoleSetPermissionsInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		// Validate từng permission ID trước khi chuyển sang ObjectID
		permissionIDs := make([]primitive.ObjectID, 0, len(input.PermissionIDs))
		for i, id := range input.PermissionIDs {
			if !primitive.IsValidObjectID(id) {
				h.HandleResponse(c, nil, common.NewError(
					common.ErrCodeValidationFormat,
					fmt.Sprintf("Permission ID '%s' tại vị trí %d không đúng định dạng MongoDB ObjectID", id, i),
					common.StatusBadRequest,
					nil,
				))
				return nil
			}
			permissionIDs = append(permissionIDs, utility.String2ObjectID(id))
		}

		data, err := h.roleService.UpdatePermissions(c.Context(), roleID, permissionIDs)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleGetUsers trả về danh sách user đang được gán role này (có phân trang)
func (h *RoleHandler) HandleGetUsers(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		roleID, err := h.parseRoleID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := h.ParsePagination(c)
		data, err := h.userService.FindWithPagination(c.Context(), bson.M{"roleId": roleID}, page, limit, nil)
		h.HandleResponse(c, data, err)
		return nil
	})
}
