// Package models - Permission thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Permission quyền thao tác trong hệ thống.
// Code theo convention "<module>:<action>" (ví dụ: "articles:create").
// Xóa permission không bị chặn bởi role đang tham chiếu, permission ID
// còn sót trong role sẽ bị resolver bỏ qua khi resolve.
type Permission struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Code      string             `json:"code" bson:"code" index:"unique"`
	Name      string             `json:"name" bson:"name" index:"unique"`
	Module    string             `json:"module" bson:"module" index:"single:1"`
	Describe  string             `json:"describe,omitempty" bson:"describe,omitempty"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
