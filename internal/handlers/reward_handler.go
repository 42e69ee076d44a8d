package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/divi2806/suiVerse-sub000/internal/service"
	"github.com/divi2806/suiVerse-sub000/internal/utils"
)

type RewardHandler struct {
	Rewards *service.RewardService
}

func NewRewardHandler(rewards *service.RewardService) *RewardHandler {
	return &RewardHandler{Rewards: rewards}
}

func (h *RewardHandler) History(c *gin.Context) {
	wallet := walletFromContext(c)

	records, err := h.Rewards.History(c.Request.Context(), wallet)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to load reward history", err)
		return
	}
	utils.SuccessResponse(c, "Reward history retrieved", gin.H{"rewards": records})
}
