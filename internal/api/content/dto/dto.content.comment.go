package dto

// CommentCreateInput dữ liệu tạo bình luận. UserID lấy từ user đang đăng nhập.
// ParentID có giá trị khi bình luận là trả lời của một bình luận khác.
type CommentCreateInput struct {
	ArticleID string `json:"articleId" validate:"required" transform:"str_objectid"`
	Content   string `json:"content" validate:"required"`
	ParentID  string `json:"parentId" transform:"str_objectid_ptr,optional"`
}

// CommentUpdateInput dữ liệu cập nhật bình luận (chỉ cho sửa nội dung)
type CommentUpdateInput struct {
	Content string `json:"content" validate:"required"`
}
