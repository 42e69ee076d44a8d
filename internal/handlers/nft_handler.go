package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/divi2806/suiVerse-sub000/internal/event"
	"github.com/divi2806/suiVerse-sub000/internal/models"
	"github.com/divi2806/suiVerse-sub000/internal/service"
	"github.com/divi2806/suiVerse-sub000/internal/utils"
)

type NFTHandler struct {
	NFTs      *service.NFTService
	Publisher *event.EventPublisher
}

func NewNFTHandler(nfts *service.NFTService, publisher *event.EventPublisher) *NFTHandler {
	return &NFTHandler{NFTs: nfts, Publisher: publisher}
}

type mintRequest struct {
	ModuleID    uint64 `json:"module_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Submit      bool   `json:"submit"`
}

func (h *NFTHandler) Mint(c *gin.Context) {
	wallet := walletFromContext(c)

	var req mintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}

	result := h.NFTs.Mint(c.Request.Context(), models.MintRequest{
		Recipient:   wallet,
		ModuleID:    req.ModuleID,
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Submit:      req.Submit,
	})
	if !result.Success {
		utils.BadRequestResponse(c, result.Message)
		return
	}

	if result.TxDigest != "" {
		h.Publisher.Publish("nft.minted", gin.H{
			"wallet": wallet,
			"module": req.ModuleID,
			"digest": result.TxDigest,
		})
	}
	utils.SuccessResponse(c, result.Message, result)
}

func (h *NFTHandler) History(c *gin.Context) {
	wallet := walletFromContext(c)

	records, err := h.NFTs.History(c.Request.Context(), wallet)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to load mint history", err)
		return
	}
	utils.SuccessResponse(c, "Mint history retrieved", gin.H{"nfts": records})
}
