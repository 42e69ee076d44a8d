package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/divi2806/suiVerse-sub000/internal/event"
	"github.com/divi2806/suiVerse-sub000/internal/models"
	"github.com/divi2806/suiVerse-sub000/internal/service"
	"github.com/divi2806/suiVerse-sub000/internal/utils"
)

type ChallengeHandler struct {
	Challenges   *service.ChallengeService
	Achievements *service.AchievementService
	Publisher    *event.EventPublisher
}

func NewChallengeHandler(challenges *service.ChallengeService, achievements *service.AchievementService, publisher *event.EventPublisher) *ChallengeHandler {
	return &ChallengeHandler{Challenges: challenges, Achievements: achievements, Publisher: publisher}
}

func (h *ChallengeHandler) GetToday(c *gin.Context) {
	challenges := h.Challenges.GetToday(c.Request.Context())
	utils.SuccessResponse(c, "Daily challenges retrieved", gin.H{"challenges": challenges})
}

func (h *ChallengeHandler) Complete(c *gin.Context) {
	wallet := walletFromContext(c)
	challengeID := c.Param("challengeId")
	if challengeID == "" {
		utils.BadRequestResponse(c, "Challenge id is required")
		return
	}

	result := h.Challenges.Complete(c.Request.Context(), wallet, challengeID)
	if !result.Success {
		utils.BadRequestResponse(c, result.Message)
		return
	}

	h.Publisher.Publish("challenge.completed", gin.H{
		"wallet":    wallet,
		"challenge": challengeID,
		"xp":        result.XPAwarded,
	})

	var unlocked []models.Achievement
	if h.Achievements != nil {
		unlocked = h.Achievements.CheckAndUnlock(c.Request.Context(), wallet)
	}

	utils.SuccessResponse(c, result.Message, gin.H{
		"xp_awarded":   result.XPAwarded,
		"achievements": unlocked,
	})
}
