// Package models - Article thuộc content domain.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Article bài viết.
// Slug được sinh tự động từ title nếu không truyền lên.
// SectionID là tùy chọn, bài viết có thể thuộc danh mục mà không thuộc chuyên mục nào.
type Article struct {
	_RefReviews  struct{}           `relationship:"collection:reviews,field:articleId,message:Không thể xóa bài viết vì có %d đánh giá đang gắn với bài viết này. Vui lòng xóa các đánh giá trước."`
	_RefComments struct{}           `relationship:"collection:comments,field:articleId,message:Không thể xóa bài viết vì có %d bình luận đang gắn với bài viết này. Vui lòng xóa các bình luận trước."`
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title        string             `json:"title" bson:"title" index:"text"`
	Slug         string             `json:"slug" bson:"slug" index:"unique"`
	Content      string             `json:"content" bson:"content"`
	CategoryID   primitive.ObjectID `json:"categoryId" bson:"categoryId" index:"single:1"`
	SectionID    primitive.ObjectID `json:"sectionId,omitempty" bson:"sectionId,omitempty" index:"single:1"`
	AuthorID     primitive.ObjectID `json:"authorId" bson:"authorId" index:"single:1"`
	IsPublished  bool               `json:"isPublished" bson:"isPublished"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}
