package contenthdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "meta_content/internal/api/base/handler"
	dto "meta_content/internal/api/content/dto"
	models "meta_content/internal/api/content/models"
	contentsvc "meta_content/internal/api/content/service"
	"meta_content/internal/common"
	"meta_content/internal/utility"
)

// CommentHandler xử lý các route bình luận
type CommentHandler struct {
	*basehdl.BaseHandler[models.Comment, dto.CommentCreateInput, dto.CommentUpdateInput]
	commentService *contentsvc.CommentService
}

// NewCommentHandler tạo instance mới của CommentHandler
func NewCommentHandler() (*CommentHandler, error) {
	commentService, err := contentsvc.NewCommentService()
	if err != nil {
		return nil, fmt.Errorf("failed to create comment service: %v", err)
	}
	return &CommentHandler{
		BaseHandler:    basehdl.NewBaseHandler[models.Comment, dto.CommentCreateInput, dto.CommentUpdateInput](commentService),
		commentService: commentService,
	}, nil
}

// HandleCreate tạo bình luận mới, user là người đang đăng nhập
func (h *CommentHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.CommentCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		userID, err := currentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		comment, err := h.TransformCreateInputToModel(&input)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Lỗi transform dữ liệu: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}
		comment.UserID = userID

		data, err := h.commentService.InsertOne(c.Context(), *comment)
		h.HandleCreatedResponse(c, data, err)
		return nil
	})
}

// HandleFindByArticle trả về danh sách bình luận của một bài viết
func (h *CommentHandler) HandleFindByArticle(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		articleID := c.Params("articleId")
		if !primitive.IsValidObjectID(articleID) {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", articleID),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		data, err := h.commentService.FindByArticle(c.Context(), utility.String2ObjectID(articleID))
		if data == nil {
			data = []models.Comment{}
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}
