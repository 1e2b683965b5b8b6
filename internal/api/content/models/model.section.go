// Package models - Section thuộc content domain.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Section chuyên mục con trong một danh mục, sắp xếp theo Order.
type Section struct {
	_RefArticles struct{}           `relationship:"collection:articles,field:sectionId,message:Không thể xóa chuyên mục vì có %d bài viết đang thuộc chuyên mục này. Vui lòng xóa hoặc chuyển các bài viết trước."`
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	CategoryID   primitive.ObjectID `json:"categoryId" bson:"categoryId" index:"single:1"`
	Order        int64              `json:"order" bson:"order"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}
