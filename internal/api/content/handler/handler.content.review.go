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

// ReviewHandler xử lý các route đánh giá bài viết
type ReviewHandler struct {
	*basehdl.BaseHandler[models.Review, dto.ReviewCreateInput, dto.ReviewUpdateInput]
	reviewService *contentsvc.ReviewService
}

// NewReviewHandler tạo instance mới của ReviewHandler
func NewReviewHandler() (*ReviewHandler, error) {
	reviewService, err := contentsvc.NewReviewService()
	if err != nil {
		return nil, fmt.Errorf("failed to create review service: %v", err)
	}
	return &ReviewHandler{
		BaseHandler:   basehdl.NewBaseHandler[models.Review, dto.ReviewCreateInput, dto.ReviewUpdateInput](reviewService),
		reviewService: reviewService,
	}, nil
}

// HandleCreate tạo đánh giá mới, user là người đang đăng nhập
func (h *ReviewHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.ReviewCreateInput
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

		review, err := h.TransformCreateInputToModel(&input)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Lỗi transform dữ liệu: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}
		review.UserID = userID

		data, err := h.reviewService.InsertOne(c.Context(), *review)
		h.HandleCreatedResponse(c, data, err)
		return nil
	})
}

// HandleAverageRating trả về điểm trung bình và số lượng đánh giá của bài viết
func (h *ReviewHandler) HandleAverageRating(c fiber.Ctx) error {
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

		average, count, err := h.reviewService.AverageRating(c.Context(), utility.String2ObjectID(articleID))
		h.HandleResponse(c, fiber.Map{
			"articleId": articleID,
			"average":   average,
			"count":     count,
		}, err)
		return nil
	})
}
