package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment bình luận trên bài viết, hỗ trợ trả lời lồng nhau qua parentId.
type Comment struct {
	// Không cho xóa comment khi còn reply tham chiếu tới nó
	_RefReplies struct{} `relationship:"collection:comments,field:parentId,message:Không thể xóa bình luận vì có %d trả lời đang tham chiếu tới bình luận này. Vui lòng xóa các trả lời trước."`

	ID        primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	ArticleID primitive.ObjectID  `json:"articleId" bson:"articleId" index:"single:1"`
	UserID    primitive.ObjectID  `json:"userId" bson:"userId" index:"single:1"`
	Content   string              `json:"content" bson:"content"`
	ParentID  *primitive.ObjectID `json:"parentId,omitempty" bson:"parentId,omitempty" index:"single:1"`
	CreatedAt int64               `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64               `json:"updatedAt" bson:"updatedAt"`
}
