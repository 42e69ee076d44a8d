package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/divi2806/suiVerse-sub000/internal/service"
	"github.com/divi2806/suiVerse-sub000/internal/utils"
)

type ContentHandler struct {
	Content *service.ContentService
}

func NewContentHandler(content *service.ContentService) *ContentHandler {
	return &ContentHandler{Content: content}
}

// GetModuleContent always answers 200 with a full module; generation
// failures degrade to fallback material inside the service.
func (h *ContentHandler) GetModuleContent(c *gin.Context) {
	topicID := c.Param("topicId")
	if topicID == "" {
		utils.BadRequestResponse(c, "Topic id is required")
		return
	}

	mc := h.Content.GetModuleContent(c.Request.Context(), topicID)
	utils.SuccessResponse(c, "Content retrieved", mc)
}
