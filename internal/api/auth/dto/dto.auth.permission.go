package authdto

import (
	models "meta_content/internal/api/auth/models"
)

// PermissionCreateInput đầu vào tạo mới quyền.
type PermissionCreateInput struct {
	Code     string `json:"code" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Module   string `json:"module" validate:"required"`
	Describe string `json:"describe,omitempty"`
}

// PermissionUpdateInput đầu vào cập nhật quyền.
type PermissionUpdateInput struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Module   string `json:"module"`
	Describe string `json:"describe"`
}

// PermissionBulkCreateInput đầu vào tạo nhiều quyền cùng lúc.
type PermissionBulkCreateInput struct {
	Permissions []PermissionCreateInput `json:"permissions" validate:"required,min=1,dive"`
}

// PermissionBulkCreateResult kết quả tạo nhiều quyền:
// các quyền tạo mới thành công và các code bị bỏ qua vì đã tồn tại.
type PermissionBulkCreateResult struct {
	Created           []models.Permission `json:"created"`
	DuplicatesSkipped []string            `json:"duplicatesSkipped"`
}
