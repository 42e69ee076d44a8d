package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/divi2806/suiVerse-sub000/internal/models"
	"github.com/divi2806/suiVerse-sub000/internal/service"
	"github.com/divi2806/suiVerse-sub000/internal/utils"
)

type AchievementHandler struct {
	Achievements *service.AchievementService
}

func NewAchievementHandler(achievements *service.AchievementService) *AchievementHandler {
	return &AchievementHandler{Achievements: achievements}
}

// Catalog lists every milestone without unlock state. Public.
func (h *AchievementHandler) Catalog(c *gin.Context) {
	utils.SuccessResponse(c, "Achievement catalog retrieved", gin.H{"achievements": models.Catalog})
}

// List returns the catalog annotated with the caller's unlock state.
func (h *AchievementHandler) List(c *gin.Context) {
	wallet := walletFromContext(c)

	views, err := h.Achievements.List(c.Request.Context(), wallet)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to load achievements", err)
		return
	}
	utils.SuccessResponse(c, "Achievements retrieved", gin.H{"achievements": views})
}

// Check unlocks any milestones the caller has newly crossed.
func (h *AchievementHandler) Check(c *gin.Context) {
	wallet := walletFromContext(c)

	unlocked := h.Achievements.CheckAndUnlock(c.Request.Context(), wallet)
	utils.SuccessResponse(c, "Achievements checked", gin.H{"newly_unlocked": unlocked})
}
