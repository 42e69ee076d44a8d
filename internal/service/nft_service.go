package service

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/divi2806/suiVerse-sub000/internal/models"
	"github.com/divi2806/suiVerse-sub000/internal/repository"
)

type NFTService struct {
	Repo  *repository.NFTRepository
	Chain Chain

	PackageID    string
	Module       string
	MintFunction string
}

func NewNFTService(repo *repository.NFTRepository, chain Chain, packageID, module, mintFunction string) *NFTService {
	return &NFTService{
		Repo:         repo,
		Chain:        chain,
		PackageID:    packageID,
		Module:       module,
		MintFunction: mintFunction,
	}
}

// MintResult is the caller-facing outcome of a mint request.
type MintResult struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	TxBytes  string `json:"tx_bytes,omitempty"`
	TxDigest string `json:"tx_digest,omitempty"`
}

// MintArgs lays out the five scalar arguments of the mint entry function in
// call order. Numeric values travel as decimal strings, the node encodes
// them as u64 per the Move signature.
func MintArgs(req models.MintRequest) []any {
	return []any{
		req.Recipient,
		strconv.FormatUint(req.ModuleID, 10),
		req.Name,
		req.Description,
		req.ImageURL,
	}
}

// Mint constructs the mint transaction and, when requested, signs and
// submits it with the service wallet. Build-only requests return the raw
// transaction bytes for the client to sign.
func (s *NFTService) Mint(ctx context.Context, req models.MintRequest) *MintResult {
	if req.Recipient == "" {
		return &MintResult{Success: false, Message: "Wallet required"}
	}
	if s.Chain == nil {
		return &MintResult{Success: false, Message: "Minting is currently unavailable"}
	}

	txBytes, err := s.Chain.BuildMoveCall(ctx, s.PackageID, s.Module, s.MintFunction, MintArgs(req))
	if err != nil {
		log.Printf("Mint build failed for %s: %v", req.Recipient, err)
		return &MintResult{Success: false, Message: "Could not build mint transaction"}
	}

	record := &models.NFTRecord{
		ID:          uuid.NewString(),
		Wallet:      req.Recipient,
		ModuleID:    req.ModuleID,
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		TxBytes:     txBytes,
		Status:      models.NFTStatusBuilt,
		CreatedAt:   time.Now().UTC(),
	}

	result := &MintResult{Success: true, Message: "Mint transaction built", TxBytes: txBytes}

	if req.Submit {
		digest, err := s.Chain.ExecuteTransaction(ctx, txBytes)
		if err != nil {
			log.Printf("Mint submission failed for %s: %v", req.Recipient, err)
			record.Status = models.NFTStatusFailed
			result = &MintResult{Success: false, Message: "Mint transaction failed"}
		} else {
			record.TxDigest = digest
			record.Status = models.NFTStatusSubmitted
			result = &MintResult{Success: true, Message: "NFT minted", TxDigest: digest}
		}
	}

	if s.Repo != nil {
		if err := s.Repo.Insert(ctx, record); err != nil {
			log.Printf("Failed to log mint for %s: %v", req.Recipient, err)
		}
	}
	return result
}

func (s *NFTService) History(ctx context.Context, wallet string) ([]models.NFTRecord, error) {
	return s.Repo.FindByWallet(ctx, wallet)
}
