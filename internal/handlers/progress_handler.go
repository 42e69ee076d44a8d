package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/divi2806/suiVerse-sub000/internal/event"
	"github.com/divi2806/suiVerse-sub000/internal/models"
	"github.com/divi2806/suiVerse-sub000/internal/service"
	"github.com/divi2806/suiVerse-sub000/internal/utils"
)

// DefaultModuleXP is awarded when the client does not report a score.
const DefaultModuleXP = 100

type ProgressHandler struct {
	Progress     *service.ProgressService
	Achievements *service.AchievementService
	Publisher    *event.EventPublisher
}

func NewProgressHandler(progress *service.ProgressService, achievements *service.AchievementService, publisher *event.EventPublisher) *ProgressHandler {
	return &ProgressHandler{Progress: progress, Achievements: achievements, Publisher: publisher}
}

func (h *ProgressHandler) GetProgress(c *gin.Context) {
	wallet := walletFromContext(c)

	progress, err := h.Progress.GetProgress(c.Request.Context(), wallet)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to load progress", err)
		return
	}

	utils.SuccessResponse(c, "Progress retrieved", gin.H{
		"progress":         progress,
		"xp_to_next_level": models.XPToNextLevel(progress.TotalXP),
	})
}

// Galaxy and module carry no binding rules: out-of-range ids, zero
// included, are clamped downstream rather than rejected.
type completeModuleRequest struct {
	Galaxy   int   `json:"galaxy"`
	Module   int   `json:"module"`
	XPEarned int64 `json:"xp_earned"`
}

func (h *ProgressHandler) CompleteModule(c *gin.Context) {
	wallet := walletFromContext(c)

	var req completeModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}
	xp := req.XPEarned
	if xp <= 0 || xp > 500 {
		xp = DefaultModuleXP
	}

	progress, newlyCompleted, err := h.Progress.CompleteModule(c.Request.Context(), wallet, req.Galaxy, req.Module, xp)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to complete module", err)
		return
	}

	var unlocked []models.Achievement
	if newlyCompleted {
		h.Publisher.Publish("progress.module.completed", gin.H{
			"wallet": wallet,
			"module": service.ModuleID(req.Galaxy, req.Module),
			"xp":     xp,
		})
		if h.Achievements != nil {
			unlocked = h.Achievements.CheckAndUnlock(c.Request.Context(), wallet)
		}
	}

	message := "Module completed"
	if !newlyCompleted {
		message = "Module was already completed"
	}
	utils.SuccessResponse(c, message, gin.H{
		"progress":        progress,
		"newly_completed": newlyCompleted,
		"achievements":    unlocked,
	})
}

func (h *ProgressHandler) RecordLogin(c *gin.Context) {
	wallet := walletFromContext(c)

	progress, err := h.Progress.RecordLogin(c.Request.Context(), wallet)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to record login", err)
		return
	}

	h.Publisher.Publish("progress.login", gin.H{"wallet": wallet, "streak": progress.Streak})

	var unlocked []models.Achievement
	if h.Achievements != nil {
		unlocked = h.Achievements.CheckAndUnlock(c.Request.Context(), wallet)
	}

	utils.SuccessResponse(c, "Login recorded", gin.H{
		"progress":     progress,
		"achievements": unlocked,
	})
}
