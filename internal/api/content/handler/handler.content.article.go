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

// ArticleHandler xử lý các route bài viết
type ArticleHandler struct {
	*basehdl.BaseHandler[models.Article, dto.ArticleCreateInput, dto.ArticleUpdateInput]
	articleService *contentsvc.ArticleService
}

// NewArticleHandler tạo instance mới của ArticleHandler
func NewArticleHandler() (*ArticleHandler, error) {
	articleService, err := contentsvc.NewArticleService()
	if err != nil {
		return nil, fmt.Errorf("failed to create article service: %v", err)
	}
	return &ArticleHandler{
		BaseHandler:    basehdl.NewBaseHandler[models.Article, dto.ArticleCreateInput, dto.ArticleUpdateInput](articleService),
		articleService: articleService,
	}, nil
}

// currentUserID lấy user ID từ Locals (được Protect middleware gắn vào)
func currentUserID(c fiber.Ctx) (primitive.ObjectID, error) {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok || userIDStr == "" {
		return primitive.NilObjectID, common.ErrTokenMissing
	}
	userID, err := primitive.ObjectIDFromHex(userIDStr)
	if err != nil {
		return primitive.NilObjectID, common.ErrTokenInvalid
	}
	return userID, nil
}

// HandleCreate tạo bài viết mới, author là user đang đăng nhập
func (h *ArticleHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.ArticleCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		authorID, err := currentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		article, err := h.TransformCreateInputToModel(&input)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Lỗi transform dữ liệu: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}
		article.AuthorID = authorID

		data, err := h.articleService.InsertOne(c.Context(), *article)
		h.HandleCreatedResponse(c, data, err)
		return nil
	})
}

// HandleFindBySlug tìm bài viết theo slug
func (h *ArticleHandler) HandleFindBySlug(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		slug := c.Params("slug")
		if slug == "" {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				"Slug không được để trống trong URL params",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		data, err := h.articleService.FindBySlug(c.Context(), slug)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandlePublish đánh dấu bài viết đã xuất bản
func (h *ArticleHandler) HandlePublish(c fiber.Ctx) error {
	return h.handleSetPublished(c, true)
}

// HandleUnpublish gỡ bài viết khỏi trạng thái xuất bản
func (h *ArticleHandler) HandleUnpublish(c fiber.Ctx) error {
	return h.handleSetPublished(c, false)
}

func (h *ArticleHandler) handleSetPublished(c fiber.Ctx, published bool) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		if !primitive.IsValidObjectID(id) {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", id),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		data, err := h.articleService.SetPublished(c.Context(), utility.String2ObjectID(id), published)
		h.HandleResponse(c, data, err)
		return nil
	})
}
