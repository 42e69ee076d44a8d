package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/divi2806/suiVerse-sub000/internal/models"
	"github.com/divi2806/suiVerse-sub000/internal/repository"
)

// Chain is the slice of the Sui client the reward and NFT paths need.
type Chain interface {
	TransferSui(ctx context.Context, recipient string, amountMist uint64) (string, error)
	BuildMoveCall(ctx context.Context, packageID, module, function string, args []any) (string, error)
	ExecuteTransaction(ctx context.Context, txBytesB64 string) (string, error)
}

type RewardService struct {
	Repo  *repository.RewardRepository
	Chain Chain
}

func NewRewardService(repo *repository.RewardRepository, chain Chain) *RewardService {
	return &RewardService{Repo: repo, Chain: chain}
}

// Grant transfers amountMist to a wallet and logs the attempt. Chain
// failures come back as success=false with a message; they never propagate
// as errors to the handler.
func (s *RewardService) Grant(ctx context.Context, wallet string, amountMist uint64, kind models.RewardKind) *models.TransferResult {
	if wallet == "" {
		return &models.TransferResult{Success: false, Message: "Wallet required"}
	}
	if amountMist == 0 {
		return &models.TransferResult{Success: false, Message: "Reward amount must be positive"}
	}

	record := &models.RewardRecord{
		ID:         uuid.NewString(),
		Wallet:     wallet,
		AmountMist: amountMist,
		Kind:       kind,
		Status:     models.RewardStatusPending,
		CreatedAt:  time.Now().UTC(),
	}
	if s.Repo != nil {
		if err := s.Repo.Insert(ctx, record); err != nil {
			log.Printf("Failed to log reward for %s: %v", wallet, err)
		}
	}

	if s.Chain == nil {
		s.recordOutcome(ctx, record.ID, models.RewardStatusFailed, "", "chain client not configured")
		return &models.TransferResult{Success: false, Message: "Token rewards are currently unavailable"}
	}

	digest, err := s.Chain.TransferSui(ctx, wallet, amountMist)
	if err != nil {
		log.Printf("Token transfer to %s failed: %v", wallet, err)
		s.recordOutcome(ctx, record.ID, models.RewardStatusFailed, digest, err.Error())
		return &models.TransferResult{Success: false, Message: "Token transfer failed"}
	}

	s.recordOutcome(ctx, record.ID, models.RewardStatusConfirmed, digest, "")
	return &models.TransferResult{Success: true, Message: "Reward sent", TxDigest: digest}
}

func (s *RewardService) recordOutcome(ctx context.Context, id string, status models.RewardStatus, digest, message string) {
	if s.Repo == nil {
		return
	}
	if err := s.Repo.UpdateOutcome(ctx, id, status, digest, message); err != nil {
		log.Printf("Failed to update reward %s: %v", id, err)
	}
}

func (s *RewardService) History(ctx context.Context, wallet string) ([]models.RewardRecord, error) {
	return s.Repo.FindByWallet(ctx, wallet, 50)
}
