package authdto

import (
	models "meta_content/internal/api/auth/models"
)

// RoleCreateInput dùng cho tạo vai trò.
type RoleCreateInput struct {
	Name      string `json:"name" validate:"required"`
	Describe  string `json:"describe,omitempty"`
	IsDefault bool   `json:"isDefault"`
}

// RoleUpdateInput dùng cho cập nhật vai trò.
type RoleUpdateInput struct {
	Name      string `json:"name"`
	Describe  string `json:"describe"`
	IsDefault *bool  `json:"isDefault,omitempty"`
}

// RoleSetPermissionsInput đầu vào gán danh sách permission cho role.
// Danh sách thay thế toàn bộ permission hiện tại của role.
type RoleSetPermissionsInput struct {
	PermissionIDs []string `json:"permissionIds" validate:"required"`
}

// RoleWithPermissions là kết quả cập nhật danh sách permission của role:
// role sau khi cập nhật kèm danh sách permission đã populate, theo đúng
// thứ tự permissionIds đã lưu.
type RoleWithPermissions struct {
	Role        models.Role         `json:"role"`
	Permissions []models.Permission `json:"permissions"`
}
