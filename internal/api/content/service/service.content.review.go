package contentsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "meta_content/internal/api/base/service"
	models "meta_content/internal/api/content/models"
	"meta_content/internal/common"
	"meta_content/internal/global"
)

// ReviewService quản lý đánh giá bài viết
type ReviewService struct {
	*basesvc.BaseServiceMongoImpl[models.Review]
	articleService *ArticleService
}

// NewReviewService tạo mới ReviewService
func NewReviewService() (*ReviewService, error) {
	col, err := global.RegistryCollections.Get(global.MongoDB_ColNames.Reviews)
	if err != nil {
		return nil, fmt.Errorf("failed to get reviews collection: %v", err)
	}
	articleService, err := NewArticleService()
	if err != nil {
		return nil, err
	}
	return &ReviewService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Review](col),
		articleService:       articleService,
	}, nil
}

// ValidateRating kiểm tra rating nằm trong khoảng cho phép
func ValidateRating(rating int64) error {
	if rating < 1 || rating > 5 {
		return common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Rating phải từ 1 đến 5, nhận được %d", rating),
			common.StatusBadRequest,
			nil,
		)
	}
	return nil
}

// InsertOne tạo đánh giá mới: kiểm tra rating hợp lệ, bài viết tồn tại,
// và mỗi user chỉ đánh giá một bài viết một lần.
func (s *ReviewService) InsertOne(ctx context.Context, data models.Review) (models.Review, error) {
	var zero models.Review

	if err := ValidateRating(data.Rating); err != nil {
		return zero, err
	}

	exists, err := s.articleService.DocumentExists(ctx, bson.M{"_id": data.ArticleID})
	if err != nil {
		return zero, err
	}
	if !exists {
		return zero, common.ErrInvalidReference
	}

	reviewed, err := s.DocumentExists(ctx, bson.M{"articleId": data.ArticleID, "userId": data.UserID})
	if err != nil {
		return zero, err
	}
	if reviewed {
		return zero, common.NewError(
			common.ErrCodeBusinessOperation,
			"Bạn đã đánh giá bài viết này rồi. Hãy cập nhật đánh giá cũ thay vì tạo mới.",
			common.StatusBadRequest,
			nil,
		)
	}

	return s.BaseServiceMongoImpl.InsertOne(ctx, data)
}

// AverageRating tính điểm trung bình và số lượng đánh giá của một bài viết
func (s *ReviewService) AverageRating(ctx context.Context, articleID interface{}) (float64, int64, error) {
	reviews, err := s.Find(ctx, bson.M{"articleId": articleID}, nil)
	if err != nil {
		return 0, 0, err
	}
	if len(reviews) == 0 {
		return 0, 0, nil
	}

	var sum int64
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews)), int64(len(reviews)), nil
}
