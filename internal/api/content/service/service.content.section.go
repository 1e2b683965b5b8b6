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

// SectionService quản lý chuyên mục con trong danh mục
type SectionService struct {
	*basesvc.BaseServiceMongoImpl[models.Section]
	categoryService *CategoryService
}

// NewSectionService tạo mới SectionService
func NewSectionService() (*SectionService, error) {
	col, err := global.RegistryCollections.Get(global.MongoDB_ColNames.Sections)
	if err != nil {
		return nil, fmt.Errorf("failed to get sections collection: %v", err)
	}
	categoryService, err := NewCategoryService()
	if err != nil {
		return nil, err
	}
	return &SectionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Section](col),
		categoryService:      categoryService,
	}, nil
}

// InsertOne tạo chuyên mục mới sau khi kiểm tra danh mục cha tồn tại
func (s *SectionService) InsertOne(ctx context.Context, data models.Section) (models.Section, error) {
	var zero models.Section

	exists, err := s.categoryService.DocumentExists(ctx, bson.M{"_id": data.CategoryID})
	if err != nil {
		return zero, err
	}
	if !exists {
		return zero, common.ErrInvalidReference
	}

	return s.BaseServiceMongoImpl.InsertOne(ctx, data)
}
