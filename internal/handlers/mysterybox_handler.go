package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/divi2806/suiVerse-sub000/internal/event"
	"github.com/divi2806/suiVerse-sub000/internal/models"
	"github.com/divi2806/suiVerse-sub000/internal/service"
	"github.com/divi2806/suiVerse-sub000/internal/utils"
)

type MysteryBoxHandler struct {
	Boxes        *service.MysteryBoxService
	Achievements *service.AchievementService
	Publisher    *event.EventPublisher
}

func NewMysteryBoxHandler(boxes *service.MysteryBoxService, achievements *service.AchievementService, publisher *event.EventPublisher) *MysteryBoxHandler {
	return &MysteryBoxHandler{Boxes: boxes, Achievements: achievements, Publisher: publisher}
}

// Types lists the box tiers and their reward ranges. Public.
func (h *MysteryBoxHandler) Types(c *gin.Context) {
	utils.SuccessResponse(c, "Box types retrieved", gin.H{"box_types": models.BoxTypes})
}

type openBoxRequest struct {
	BoxType string `json:"box_type" binding:"required"`
}

func (h *MysteryBoxHandler) Open(c *gin.Context) {
	wallet := walletFromContext(c)

	var req openBoxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	result := h.Boxes.OpenBox(c.Request.Context(), wallet, req.BoxType)
	if !result.Success {
		utils.BadRequestResponse(c, result.Message)
		return
	}

	h.Publisher.Publish("mysterybox.opened", gin.H{
		"wallet":   wallet,
		"box_type": result.BoxType,
		"xp":       result.XPAwarded,
		"token":    result.TokenMist,
	})

	var unlocked []models.Achievement
	if h.Achievements != nil {
		unlocked = h.Achievements.CheckAndUnlock(c.Request.Context(), wallet)
	}

	utils.SuccessResponse(c, result.Message, gin.H{
		"result":       result,
		"achievements": unlocked,
	})
}
