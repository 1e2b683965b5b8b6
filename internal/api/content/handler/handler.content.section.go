package contenthdl

import (
	"fmt"

	basehdl "meta_content/internal/api/base/handler"
	dto "meta_content/internal/api/content/dto"
	models "meta_content/internal/api/content/models"
	contentsvc "meta_content/internal/api/content/service"
)

// SectionHandler xử lý các route chuyên mục
type SectionHandler struct {
	*basehdl.BaseHandler[models.Section, dto.SectionCreateInput, dto.SectionUpdateInput]
	sectionService *contentsvc.SectionService
}

// NewSectionHandler tạo instance mới của SectionHandler
func NewSectionHandler() (*SectionHandler, error) {
	sectionService, err := contentsvc.NewSectionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create section service: %v", err)
	}
	return &SectionHandler{
		BaseHandler:    basehdl.NewBaseHandler[models.Section, dto.SectionCreateInput, dto.SectionUpdateInput](sectionService),
		sectionService: sectionService,
	}, nil
}
