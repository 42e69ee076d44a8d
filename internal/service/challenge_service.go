package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/divi2806/suiVerse-sub000/internal/content"
	"github.com/divi2806/suiVerse-sub000/internal/daily"
	"github.com/divi2806/suiVerse-sub000/internal/llm"
	"github.com/divi2806/suiVerse-sub000/internal/models"
	"github.com/divi2806/suiVerse-sub000/internal/repository"
)

type ChallengeService struct {
	Repo     *repository.ChallengeRepository
	LLM      Completer
	Progress *ProgressService
}

func NewChallengeService(repo *repository.ChallengeRepository, completer Completer, progress *ProgressService) *ChallengeService {
	return &ChallengeService{Repo: repo, LLM: completer, Progress: progress}
}

// SelectedChallenge is one slot of the daily rotation.
type SelectedChallenge struct {
	Type       string
	Difficulty string
}

// SelectForDate computes today's rotation from the date alone, so every
// instance and every client agrees without coordination.
func SelectForDate(t time.Time) []SelectedChallenge {
	seed := daily.Seed(t)
	types := daily.Select(seed, models.ChallengeTypes, models.DailyChallengesPerDay)
	selected := make([]SelectedChallenge, len(types))
	for i, ct := range types {
		selected[i] = SelectedChallenge{
			Type:       ct,
			Difficulty: daily.Difficulty(seed, i, models.ChallengeDifficulties),
		}
	}
	return selected
}

// GetToday returns the full challenge set for the current UTC day,
// generating and storing any that do not exist yet.
func (s *ChallengeService) GetToday(ctx context.Context) []models.DailyChallenge {
	now := time.Now()
	date := daily.DateString(now)
	selected := SelectForDate(now)

	stored := map[string]models.DailyChallenge{}
	if s.Repo != nil {
		if existing, err := s.Repo.FindByDate(ctx, date); err == nil {
			for _, ch := range existing {
				stored[ch.Type] = ch
			}
		} else {
			log.Printf("Failed to read daily challenges for %s: %v", date, err)
		}
	}

	challenges := make([]models.DailyChallenge, 0, len(selected))
	for _, sel := range selected {
		if ch, ok := stored[sel.Type]; ok {
			challenges = append(challenges, ch)
			continue
		}
		ch := s.generateChallenge(ctx, date, sel)
		if s.Repo != nil {
			if err := s.Repo.Upsert(ctx, &ch); err != nil {
				log.Printf("Failed to store daily challenge %s: %v", ch.ID, err)
			}
		}
		challenges = append(challenges, ch)
	}
	return challenges
}

type generatedChallenge struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	XPReward    int    `json:"xp_reward"`
}

func (s *ChallengeService) generateChallenge(ctx context.Context, date string, sel SelectedChallenge) models.DailyChallenge {
	fallback := content.FallbackDailyChallenge(date, sel.Type, sel.Difficulty)
	if s.LLM == nil {
		return fallback
	}

	raw, err := s.LLM.Complete(ctx, llm.SystemPrompt, llm.BuildDailyChallengePrompt(sel.Type, sel.Difficulty))
	if err != nil {
		log.Printf("Daily challenge generation failed for %s/%s, using fallback: %v", sel.Type, sel.Difficulty, err)
		return fallback
	}

	var gen generatedChallenge
	if err := llm.ExtractJSON(raw, &gen); err != nil || gen.Title == "" {
		log.Printf("Daily challenge output unusable for %s/%s, using fallback", sel.Type, sel.Difficulty)
		return fallback
	}
	if gen.XPReward < 50 || gen.XPReward > 300 {
		gen.XPReward = fallback.XPReward
	}

	return models.DailyChallenge{
		ID:          fallback.ID,
		Date:        date,
		Type:        sel.Type,
		Difficulty:  sel.Difficulty,
		Title:       gen.Title,
		Description: gen.Description,
		XPReward:    gen.XPReward,
		Source:      models.ContentSourceAI,
		CreatedAt:   time.Now().UTC(),
	}
}

// CompletionResult is the caller-facing outcome of completing a challenge.
type CompletionResult struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	XPAwarded int    `json:"xp_awarded,omitempty"`
}

// Complete awards a challenge's XP to a wallet, at most once per challenge
// per day.
func (s *ChallengeService) Complete(ctx context.Context, wallet, challengeID string) CompletionResult {
	if wallet == "" {
		return CompletionResult{Success: false, Message: "Wallet required"}
	}

	ch, err := s.Repo.FindByID(ctx, challengeID)
	if err != nil {
		return CompletionResult{Success: false, Message: "Challenge not found"}
	}
	if ch.Date != daily.DateString(time.Now()) {
		return CompletionResult{Success: false, Message: "Challenge is not active today"}
	}

	done, err := s.Repo.HasCompleted(ctx, challengeID, wallet)
	if err != nil {
		log.Printf("Completion lookup failed for %s: %v", challengeID, err)
		return CompletionResult{Success: false, Message: "Could not record completion"}
	}
	if done {
		return CompletionResult{Success: false, Message: "Challenge already completed today"}
	}

	completion := &models.ChallengeCompletion{
		ID:          fmt.Sprintf("%s:%s", challengeID, wallet),
		ChallengeID: challengeID,
		Wallet:      wallet,
		XPAwarded:   ch.XPReward,
		CompletedAt: time.Now().UTC(),
	}
	if err := s.Repo.InsertCompletion(ctx, completion); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return CompletionResult{Success: false, Message: "Challenge already completed today"}
		}
		log.Printf("Failed to record completion %s: %v", completion.ID, err)
		return CompletionResult{Success: false, Message: "Could not record completion"}
	}

	if err := s.Progress.AddXP(ctx, wallet, int64(ch.XPReward)); err != nil {
		log.Printf("Failed to award challenge XP to %s: %v", wallet, err)
	}
	return CompletionResult{Success: true, Message: "Challenge completed", XPAwarded: ch.XPReward}
}
