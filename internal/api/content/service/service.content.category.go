// Package contentsvc - các service cho domain nội dung (category, section,
// article, review, comment). Phần lớn logic nằm ở base service, các service
// ở đây chỉ bổ sung kiểm tra nghiệp vụ và sinh slug.
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

// CategoryService quản lý danh mục bài viết
type CategoryService struct {
	*basesvc.BaseServiceMongoImpl[models.Category]
}

// NewCategoryService tạo mới CategoryService
func NewCategoryService() (*CategoryService, error) {
	col, err := global.RegistryCollections.Get(global.MongoDB_ColNames.Categories)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories collection: %v", err)
	}
	return &CategoryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Category](col),
	}, nil
}

// InsertOne tạo danh mục mới: kiểm tra trùng tên, sinh slug nếu chưa có.
// Override InsertOne của base để các đường vào (handler generic lẫn gọi
// trực tiếp) đều đi qua cùng một chỗ.
func (s *CategoryService) InsertOne(ctx context.Context, data models.Category) (models.Category, error) {
	var zero models.Category

	exists, err := s.DocumentExists(ctx, bson.M{"name": data.Name})
	if err != nil {
		return zero, err
	}
	if exists {
		return zero, common.NewError(
			common.ErrCodeBusinessOperation,
			fmt.Sprintf("Danh mục với tên '%s' đã tồn tại", data.Name),
			common.StatusBadRequest,
			nil,
		)
	}

	if data.Slug == "" {
		data.Slug = utility.Slugify(data.Name)
	}

	slugExists, err := s.DocumentExists(ctx, bson.M{"slug": data.Slug})
	if err != nil {
		return zero, err
	}
	if slugExists {
		return zero, common.NewError(
			common.ErrCodeBusinessOperation,
			fmt.Sprintf("Danh mục với slug '%s' đã tồn tại", data.Slug),
			common.StatusBadRequest,
			nil,
		)
	}

	return s.BaseServiceMongoImpl.InsertOne(ctx, data)
}

// UpdateById cập nhật danh mục, kiểm tra tên mới chưa bị danh mục khác dùng
func (s *CategoryService) UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (models.Category, error) {
	var zero models.Category

	if updateData, ok := data.(*basesvc.UpdateData); ok && updateData != nil {
		if name, hasName := updateData.Set["name"]; hasName {
			exists, err := s.DocumentExists(ctx, bson.M{"name": name, "_id": bson.M{"$ne": id}})
			if err != nil {
				return zero, err
			}
			if exists {
				return zero, common.NewError(
					common.ErrCodeBusinessOperation,
					fmt.Sprintf("Danh mục với tên '%v' đã tồn tại", name),
					common.StatusBadRequest,
					nil,
				)
			}
		}
	}

	return s.BaseServiceMongoImpl.UpdateById(ctx, id, data)
}
