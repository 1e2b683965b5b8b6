package dto

// ReviewCreateInput dữ liệu tạo đánh giá. UserID lấy từ user đang đăng nhập.
type ReviewCreateInput struct {
	ArticleID string `json:"articleId" validate:"required" transform:"str_objectid"`
	Rating    int64  `json:"rating" validate:"required,min=1,max=5"`
	Content   string `json:"content"`
}

// ReviewUpdateInput dữ liệu cập nhật đánh giá
type ReviewUpdateInput struct {
	Rating  int64  `json:"rating" validate:"omitempty,min=1,max=5"`
	Content string `json:"content"`
}
