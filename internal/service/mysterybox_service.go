package service

import (
	"context"
	"log"
	"math/rand"
	"sync"

	"github.com/divi2806/suiVerse-sub000/internal/models"
	"github.com/divi2806/suiVerse-sub000/internal/repository"
)

type MysteryBoxService struct {
	ProgressRepo *repository.ProgressRepository
	Progress     *ProgressService
	Rewards      *RewardService
	Rng          *rand.Rand

	// rand.Rand is not goroutine-safe; concurrent opens share Rng.
	mu sync.Mutex
}

func NewMysteryBoxService(progressRepo *repository.ProgressRepository, progress *ProgressService, rewards *RewardService, rng *rand.Rand) *MysteryBoxService {
	return &MysteryBoxService{ProgressRepo: progressRepo, Progress: progress, Rewards: rewards, Rng: rng}
}

// RollReward draws the XP and token payout for a box tier.
func RollReward(box models.BoxType, rng *rand.Rand) (int64, uint64) {
	xp := box.XPMin
	if box.XPMax > box.XPMin {
		xp += rng.Int63n(box.XPMax - box.XPMin + 1)
	}

	var token uint64
	if box.TokenOdds > 0 && rng.Float64() < box.TokenOdds && box.TokenMax > 0 {
		token = box.TokenMin + uint64(rng.Int63n(int64(box.TokenMax-box.TokenMin+1)))
	}
	return xp, token
}

// roll serializes draws so concurrent request handlers can share one source.
func (s *MysteryBoxService) roll(box models.BoxType) (int64, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return RollReward(box, s.Rng)
}

// OpenBox opens a box for a wallet. With no connected wallet it
// short-circuits before touching the store or the chain.
func (s *MysteryBoxService) OpenBox(ctx context.Context, wallet, boxTypeID string) *models.BoxResult {
	if wallet == "" {
		return &models.BoxResult{Success: false, Message: "Wallet required to open a mystery box"}
	}

	box, ok := models.BoxTypes[boxTypeID]
	if !ok {
		return &models.BoxResult{Success: false, Message: "Unknown box type"}
	}

	xp, token := s.roll(box)

	if err := s.Progress.AddXP(ctx, wallet, xp); err != nil {
		log.Printf("Failed to grant box XP to %s: %v", wallet, err)
		return &models.BoxResult{Success: false, Message: "Could not open box"}
	}
	if err := s.ProgressRepo.IncrementBoxesOpened(ctx, wallet); err != nil {
		log.Printf("Failed to count box for %s: %v", wallet, err)
	}

	result := &models.BoxResult{
		Success:   true,
		Message:   "Box opened",
		BoxType:   box.ID,
		XPAwarded: xp,
	}
	if token > 0 {
		transfer := s.Rewards.Grant(ctx, wallet, token, models.RewardMysteryBox)
		if transfer.Success {
			result.TokenMist = token
			result.TxDigest = transfer.TxDigest
		} else {
			// XP stays granted; the token part just didn't land.
			log.Printf("Box token payout to %s failed: %s", wallet, transfer.Message)
		}
	}
	return result
}
