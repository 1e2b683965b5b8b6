package contentsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	basesvc "meta_content/internal/api/base/service"
	models "meta_content/internal/api/content/models"
	"meta_content/internal/common"
	"meta_content/internal/global"
)

// CommentService quản lý bình luận bài viết
type CommentService struct {
	*basesvc.BaseServiceMongoImpl[models.Comment]
	articleService *ArticleService
}

// NewCommentService tạo mới CommentService
func NewCommentService() (*CommentService, error) {
	col, err := global.RegistryCollections.Get(global.MongoDB_ColNames.Comments)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments collection: %v", err)
	}
	articleService, err := NewArticleService()
	if err != nil {
		return nil, err
	}
	return &CommentService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Comment](col),
		articleService:       articleService,
	}, nil
}

// InsertOne tạo bình luận mới: bài viết phải tồn tại; nếu là trả lời thì
// bình luận cha phải tồn tại và thuộc cùng bài viết.
func (s *CommentService) InsertOne(ctx context.Context, data models.Comment) (models.Comment, error) {
	var zero models.Comment

	exists, err := s.articleService.DocumentExists(ctx, bson.M{"_id": data.ArticleID})
	if err != nil {
		return zero, err
	}
	if !exists {
		return zero, common.ErrInvalidReference
	}

	if data.ParentID != nil {
		parentExists, err := s.DocumentExists(ctx, bson.M{"_id": *data.ParentID, "articleId": data.ArticleID})
		if err != nil {
			return zero, err
		}
		if !parentExists {
			return zero, common.NewError(
				common.ErrCodeValidationInput,
				"Bình luận cha không tồn tại hoặc không thuộc cùng bài viết",
				common.StatusBadRequest,
				nil,
			)
		}
	}

	return s.BaseServiceMongoImpl.InsertOne(ctx, data)
}

// FindByArticle trả về bình luận của một bài viết, cũ nhất trước
func (s *CommentService) FindByArticle(ctx context.Context, articleID interface{}) ([]models.Comment, error) {
	opts := mongoopts.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	return s.Find(ctx, bson.M{"articleId": articleID}, opts)
}
