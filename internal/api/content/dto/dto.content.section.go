package dto

// SectionCreateInput dữ liệu tạo chuyên mục con thuộc một danh mục
type SectionCreateInput struct {
	Name       string `json:"name" validate:"required"`
	CategoryID string `json:"categoryId" validate:"required" transform:"str_objectid"`
	Order      int64  `json:"order"`
}

// SectionUpdateInput dữ liệu cập nhật chuyên mục
type SectionUpdateInput struct {
	Name       string `json:"name"`
	CategoryID string `json:"categoryId" transform:"str_objectid,optional"`
	Order      int64  `json:"order"`
}
