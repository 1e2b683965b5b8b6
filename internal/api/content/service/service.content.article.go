package contentsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "meta_content/internal/api/base/service"
	models "meta_content/internal/api/content/models"
	"meta_content/internal/common"
	"meta_content/internal/global"
	"meta_content/internal/utility"
)

// ArticleService quản lý bài viết
type ArticleService struct {
	*basesvc.BaseServiceMongoImpl[models.Article]
	categoryService *CategoryService
	sectionService  *SectionService
}

// NewArticleService tạo mới ArticleService
func NewArticleService() (*ArticleService, error) {
	col, err := global.RegistryCollections.Get(global.MongoDB_ColNames.Articles)
	if err != nil {
		return nil, fmt.Errorf("failed to get articles collection: %v", err)
	}
	categoryService, err := NewCategoryService()
	if err != nil {
		return nil, err
	}
	sectionService, err := NewSectionService()
	if err != nil {
		return nil, err
	}
	return &ArticleService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Article](col),
		categoryService:      categoryService,
		sectionService:       sectionService,
	}, nil
}

// InsertOne tạo bài viết mới: kiểm tra danh mục (và chuyên mục nếu có)
// tồn tại, sinh slug từ tiêu đề nếu chưa có. Slug trùng được thêm hậu tố
// để không vỡ unique index.
func (s *ArticleService) InsertOne(ctx context.Context, data models.Article) (models.Article, error) {
	var zero models.Article

	exists, err := s.categoryService.DocumentExists(ctx, bson.M{"_id": data.CategoryID})
	if err != nil {
		return zero, err
	}
	if !exists {
		return zero, common.ErrInvalidReference
	}

	if !data.SectionID.IsZero() {
		exists, err := s.sectionService.DocumentExists(ctx, bson.M{"_id": data.SectionID, "categoryId": data.CategoryID})
		if err != nil {
			return zero, err
		}
		if !exists {
			return zero, common.NewError(
				common.ErrCodeValidationInput,
				"Chuyên mục không tồn tại hoặc không thuộc danh mục đã chọn",
				common.StatusBadRequest,
				nil,
			)
		}
	}

	if data.Slug == "" {
		data.Slug = utility.Slugify(data.Title)
	}
	slug, err := s.uniqueSlug(ctx, data.Slug)
	if err != nil {
		return zero, err
	}
	data.Slug = slug

	return s.BaseServiceMongoImpl.InsertOne(ctx, data)
}

// uniqueSlug thêm hậu tố -2, -3... khi slug đã được bài viết khác dùng
func (s *ArticleService) uniqueSlug(ctx context.Context, slug string) (string, error) {
	candidate := slug
	for i := 2; ; i++ {
		exists, err := s.DocumentExists(ctx, bson.M{"slug": candidate})
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", slug, i)
	}
}

// FindBySlug tìm bài viết theo slug
func (s *ArticleService) FindBySlug(ctx context.Context, slug string) (models.Article, error) {
	return s.FindOne(ctx, bson.M{"slug": slug}, nil)
}

// SetPublished đặt trạng thái xuất bản của bài viết.
// Tách riêng khỏi update thường vì partial update bỏ qua giá trị false.
func (s *ArticleService) SetPublished(ctx context.Context, id primitive.ObjectID, published bool) (models.Article, error) {
	return s.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{"isPublished": published},
	})
}
