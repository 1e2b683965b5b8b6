// Package contenthdl - các handler cho domain nội dung.
// CRUD chuẩn dùng trực tiếp từ BaseHandler, ở đây chỉ bổ sung các route
// cần dữ liệu từ user đang đăng nhập hoặc nghiệp vụ riêng.
package contenthdl

import (
	"fmt"

	basehdl "meta_content/internal/api/base/handler"
	dto "meta_content/internal/api/content/dto"
	models "meta_content/internal/api/content/models"
	contentsvc "meta_content/internal/api/content/service"
)

// CategoryHandler xử lý các route danh mục
type CategoryHandler struct {
	*basehdl.BaseHandler[models.Category, dto.CategoryCreateInput, dto.CategoryUpdateInput]
	categoryService *contentsvc.CategoryService
}

// NewCategoryHandler tạo instance mới của CategoryHandler
func NewCategoryHandler() (*CategoryHandler, error) {
	categoryService, err := contentsvc.NewCategoryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create category service: %v", err)
	}
	return &CategoryHandler{
		BaseHandler:     basehdl.NewBaseHandler[models.Category, dto.CategoryCreateInput, dto.CategoryUpdateInput](categoryService),
		categoryService: categoryService,
	}, nil
}
