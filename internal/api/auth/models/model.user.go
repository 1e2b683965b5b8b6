// Package models - model người dùng (User) thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User định nghĩa mô hình người dùng.
// Token chứa JWT xác thực mới nhất của người dùng, bị xóa khi logout.
// RoleID có thể trỏ tới role đã bị xóa (dangling), khi đó resolver trả về
// tập permission rỗng thay vì lỗi.
type User struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email" index:"unique"`
	Password  string             `json:"-" bson:"password,omitempty"`
	RoleID    primitive.ObjectID `json:"roleId,omitempty" bson:"roleId,omitempty" index:"single:1"`
	Token     string             `json:"-" bson:"token,omitempty"`
	IsActive  bool               `json:"isActive" bson:"isActive" default:"true"`
	IsBlock   bool               `json:"-" bson:"isBlock"`
	BlockNote string             `json:"-" bson:"blockNote,omitempty"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
