// Package models - Role thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SuperAdminRoleName là tên role được bỏ qua mọi kiểm tra permission.
// User mang role này luôn được phép truy cập bất kể danh sách permission.
const SuperAdminRoleName = "Super Admin"

// Role vai trò trong hệ thống.
// PermissionIDs là danh sách permission được gán cho role, thay thế toàn bộ
// khi cập nhật. IsDefault đánh dấu role được gán cho user mới đăng ký,
// tối đa một role có IsDefault=true tại một thời điểm.
type Role struct {
	_Relationships struct{}             `relationship:"collection:users,field:roleId,message:Không thể xóa role vì có %d người dùng đang sử dụng role này. Vui lòng gán role khác cho các người dùng trước."`
	ID             primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Name           string               `json:"name" bson:"name" index:"unique"`
	Describe       string               `json:"describe,omitempty" bson:"describe,omitempty"`
	IsDefault      bool                 `json:"isDefault" bson:"isDefault" index:"single:1"`
	IsActive       bool                 `json:"isActive" bson:"isActive" default:"true"`
	PermissionIDs  []primitive.ObjectID `json:"permissionIds" bson:"permissionIds"`
	CreatedAt      int64                `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64                `json:"updatedAt" bson:"updatedAt"`
}
