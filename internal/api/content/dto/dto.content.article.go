package dto

// ArticleCreateInput dữ liệu tạo bài viết. Slug bỏ trống sẽ sinh tự động từ Title.
// AuthorID lấy từ user đang đăng nhập, không nhận từ request body.
type ArticleCreateInput struct {
	Title       string `json:"title" validate:"required"`
	Slug        string `json:"slug"`
	Content     string `json:"content"`
	CategoryID  string `json:"categoryId" validate:"required" transform:"str_objectid"`
	SectionID   string `json:"sectionId" transform:"str_objectid,optional"`
	IsPublished bool   `json:"isPublished"`
}

// ArticleUpdateInput dữ liệu cập nhật bài viết
type ArticleUpdateInput struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Content     string `json:"content"`
	CategoryID  string `json:"categoryId" transform:"str_objectid,optional"`
	SectionID   string `json:"sectionId" transform:"str_objectid,optional"`
	IsPublished bool   `json:"isPublished"`
}
