// Package dto định nghĩa input cho các API content.
package dto

// CategoryCreateInput dữ liệu tạo danh mục. Slug bỏ trống sẽ sinh tự động từ Name.
type CategoryCreateInput struct {
	Name     string `json:"name" validate:"required"`
	Describe string `json:"describe"`
	Slug     string `json:"slug"`
}

// CategoryUpdateInput dữ liệu cập nhật danh mục
type CategoryUpdateInput struct {
	Name     string `json:"name"`
	Describe string `json:"describe"`
	Slug     string `json:"slug"`
}
