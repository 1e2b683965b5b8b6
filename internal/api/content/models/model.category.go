// Package models - các model nội dung (content domain).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category danh mục bài viết.
// Slug được sinh tự động từ name nếu không truyền lên.
type Category struct {
	_RefSections struct{}           `relationship:"collection:sections,field:categoryId,message:Không thể xóa danh mục vì có %d chuyên mục đang thuộc danh mục này. Vui lòng xóa hoặc chuyển các chuyên mục trước."`
	_RefArticles struct{}           `relationship:"collection:articles,field:categoryId,message:Không thể xóa danh mục vì có %d bài viết đang thuộc danh mục này. Vui lòng xóa hoặc chuyển các bài viết trước."`
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name" index:"unique"`
	Describe     string             `json:"describe,omitempty" bson:"describe,omitempty"`
	Slug         string             `json:"slug" bson:"slug" index:"unique"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}
