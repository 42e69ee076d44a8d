package service

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/divi2806/suiVerse-sub000/internal/models"
	"github.com/divi2806/suiVerse-sub000/internal/repository"
)

type AchievementService struct {
	Repo     *repository.AchievementRepository
	Progress *ProgressService
}

func NewAchievementService(repo *repository.AchievementRepository, progress *ProgressService) *AchievementService {
	return &AchievementService{Repo: repo, Progress: progress}
}

// AchievementView is an achievement with its unlock state for one wallet.
type AchievementView struct {
	models.Achievement
	Unlocked   bool       `json:"unlocked"`
	UnlockedAt *time.Time `json:"unlocked_at,omitempty"`
}

func (s *AchievementService) List(ctx context.Context, wallet string) ([]AchievementView, error) {
	unlocked, err := s.Repo.FindByWallet(ctx, wallet)
	if err != nil {
		return nil, err
	}
	unlockedAt := map[string]time.Time{}
	for _, ua := range unlocked {
		unlockedAt[ua.AchievementID] = ua.UnlockedAt
	}

	views := make([]AchievementView, 0, len(models.Catalog))
	for _, a := range models.Catalog {
		view := AchievementView{Achievement: a}
		if at, ok := unlockedAt[a.ID]; ok {
			view.Unlocked = true
			at := at
			view.UnlockedAt = &at
		}
		views = append(views, view)
	}
	return views, nil
}

// Eligible returns the catalog entries whose threshold a progress record
// crosses, excluding already unlocked ones.
func Eligible(progress *models.UserProgress, alreadyUnlocked map[string]bool) []models.Achievement {
	var eligible []models.Achievement
	for _, a := range models.Catalog {
		if alreadyUnlocked[a.ID] {
			continue
		}
		if a.MetricValue(progress) >= a.Threshold {
			eligible = append(eligible, a)
		}
	}
	return eligible
}

// CascadeEligible extends Eligible with follow-on unlocks: an unlock's XP
// bonus counts toward XP thresholds, so one milestone can pull the next one
// over the line within the same check.
func CascadeEligible(progress *models.UserProgress, alreadyUnlocked map[string]bool) []models.Achievement {
	already := make(map[string]bool, len(alreadyUnlocked))
	for id, ok := range alreadyUnlocked {
		already[id] = ok
	}
	snapshot := *progress

	var all []models.Achievement
	for {
		batch := Eligible(&snapshot, already)
		if len(batch) == 0 {
			return all
		}
		for _, a := range batch {
			already[a.ID] = true
			snapshot.TotalXP += a.XPBonus
			all = append(all, a)
		}
	}
}

// CheckAndUnlock unlocks every newly crossed milestone for a wallet and
// grants each one's XP bonus once. Returns the newly unlocked achievements.
func (s *AchievementService) CheckAndUnlock(ctx context.Context, wallet string) []models.Achievement {
	progress, err := s.Progress.GetProgress(ctx, wallet)
	if err != nil {
		log.Printf("Achievement check failed for %s: %v", wallet, err)
		return nil
	}

	unlocked, err := s.Repo.FindByWallet(ctx, wallet)
	if err != nil {
		log.Printf("Achievement lookup failed for %s: %v", wallet, err)
		return nil
	}
	already := map[string]bool{}
	for _, ua := range unlocked {
		already[ua.AchievementID] = true
	}

	var newlyUnlocked []models.Achievement
	for _, a := range CascadeEligible(progress, already) {
		ua := &models.UserAchievement{
			ID:            wallet + ":" + a.ID,
			Wallet:        wallet,
			AchievementID: a.ID,
			UnlockedAt:    time.Now().UTC(),
		}
		if err := s.Repo.Insert(ctx, ua); err != nil {
			// A concurrent session already unlocked it; skip the bonus.
			if !mongo.IsDuplicateKeyError(err) {
				log.Printf("Failed to record achievement %s: %v", ua.ID, err)
			}
			continue
		}
		if err := s.Progress.AddXP(ctx, wallet, a.XPBonus); err != nil {
			log.Printf("Failed to grant achievement bonus for %s: %v", ua.ID, err)
		}
		newlyUnlocked = append(newlyUnlocked, a)
	}
	return newlyUnlocked
}
