// Package models - Review thuộc content domain.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review đánh giá bài viết, rating từ 1 đến 5.
// Mỗi user chỉ có một đánh giá trên một bài viết (compound unique).
type Review struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ArticleID primitive.ObjectID `json:"articleId" bson:"articleId" index:"compound:review_article_user_unique"`
	UserID    primitive.ObjectID `json:"userId" bson:"userId" index:"compound:review_article_user_unique"`
	Rating    int64              `json:"rating" bson:"rating"`
	Content   string             `json:"content,omitempty" bson:"content,omitempty"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
