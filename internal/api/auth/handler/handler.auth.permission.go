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

// PermissionHandler xử lý các route liên quan đến permission
type PermissionHandler struct {
	*basehdl.BaseHandler[models.Permission, authdto.PermissionCreateInput, authdto.PermissionUpdateInput]
	permissionService *authsvc.PermissionService
}

// NewPermissionHandler tạo instance mới của PermissionHandler
func NewPermissionHandler() (*PermissionHandler, error) {
	permissionService, err := authsvc.NewPermissionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create permission service: %v", err)
	}
	return &PermissionHandler{
		BaseHandler:       basehdl.NewBaseHandler[models.Permission, authdto.PermissionCreateInput, authdto.PermissionUpdateInput](permissionService),
		permissionService: permissionService,
	}, nil
}

// HandleCreate tạo mới một permission, trả lỗi 400 nếu code đã tồn tại
func (h *PermissionHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.PermissionCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.permissionService.Create(c.Context(), &input)
		h.HandleCreatedResponse(c, data, err)
		return nil
	})
}

// HandleBulkCreate tạo nhiều permission cùng lúc.
// Code đã tồn tại được bỏ qua, không làm fail cả batch.
func (h *PermissionHandler) HandleBulkCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.PermissionBulkCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.permissionService.BulkCreate(c.Context(), input.Permissions)
		h.HandleCreatedResponse(c, result, err)
		return nil
	})
}

// HandleUpdate cập nhật một permission theo ID
func (h *PermissionHandler) HandleUpdate(c fiber.Ctx) error {
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

		var input authdto.PermissionUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.permissionService.Update(c.Context(), utility.String2ObjectID(id), &input)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleList trả về danh sách permission sắp xếp theo module rồi đến name.
// Query param module (optional) lọc theo một module cụ thể.
func (h *PermissionHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		data, err := h.permissionService.List(c.Context(), c.Query("module"))
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleGroupByModule trả về permission được gom nhóm theo module
func (h *PermissionHandler) HandleGroupByModule(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		data, err := h.permissionService.GroupByModule(c.Context())
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleDelete xóa một permission theo ID.
// Permission đang được gán cho role vẫn xóa được.
func (h *PermissionHandler) HandleDelete(c fiber.Ctx) error {
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

		err := h.permissionService.Delete(c.Context(), utility.String2ObjectID(id))
		h.HandleResponse(c, nil, err)
		return nil
	})
}
