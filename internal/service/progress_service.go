package service

import (
	"context"
	"fmt"
	"time"

	"github.com/divi2806/suiVerse-sub000/internal/models"
	"github.com/divi2806/suiVerse-sub000/internal/repository"
)

type ProgressService struct {
	Repo *repository.ProgressRepository
}

func NewProgressService(repo *repository.ProgressRepository) *ProgressService {
	return &ProgressService{Repo: repo}
}

func (s *ProgressService) GetProgress(ctx context.Context, wallet string) (*models.UserProgress, error) {
	return s.Repo.FindOrCreate(ctx, wallet)
}

// ModuleID builds the canonical module identifier stored in the completed
// list.
func ModuleID(galaxy, module int) string {
	return fmt.Sprintf("galaxy-%d-module-%d", galaxy, module)
}

// CompleteModule marks a module done and awards XP. Out-of-range ids are
// clamped to the valid range rather than rejected; completing an already
// completed module is a no-op for XP.
func (s *ProgressService) CompleteModule(ctx context.Context, wallet string, galaxy, module int, xp int64) (*models.UserProgress, bool, error) {
	galaxy = models.ClampGalaxy(galaxy)
	module = models.ClampModule(module)
	moduleID := ModuleID(galaxy, module)

	progress, err := s.Repo.FindOrCreate(ctx, wallet)
	if err != nil {
		return nil, false, err
	}
	if progress.HasCompleted(moduleID) {
		return progress, false, nil
	}

	nextGalaxy, nextModule := advance(galaxy, module)
	if err := s.Repo.CompleteModule(ctx, wallet, moduleID, nextGalaxy, nextModule); err != nil {
		return nil, false, err
	}
	if err := s.AddXP(ctx, wallet, xp); err != nil {
		return nil, false, err
	}

	updated, err := s.Repo.FindOrCreate(ctx, wallet)
	return updated, true, err
}

// AddXP increments a wallet's XP and recomputes the level from the new
// total. Read-modify-write; concurrent sessions can race (last write wins).
func (s *ProgressService) AddXP(ctx context.Context, wallet string, xp int64) error {
	if xp <= 0 {
		return nil
	}
	progress, err := s.Repo.FindOrCreate(ctx, wallet)
	if err != nil {
		return err
	}
	newLevel := models.LevelForXP(progress.TotalXP + xp)
	return s.Repo.AddXP(ctx, wallet, xp, newLevel)
}

// RecordLogin updates the daily streak for a wallet and returns the updated
// record. Calling twice on the same UTC day is a no-op.
func (s *ProgressService) RecordLogin(ctx context.Context, wallet string) (*models.UserProgress, error) {
	progress, err := s.Repo.FindOrCreate(ctx, wallet)
	if err != nil {
		return nil, err
	}

	streak, today, changed := NextStreak(progress.LastLoginDate, progress.Streak, time.Now())
	if !changed {
		return progress, nil
	}
	if err := s.Repo.SetStreak(ctx, wallet, streak, today); err != nil {
		return nil, err
	}
	progress.Streak = streak
	progress.LastLoginDate = today
	return progress, nil
}

// NextStreak computes the streak after a login at now: unchanged within the
// same UTC day, incremented on the next consecutive day, reset to 1 after a
// gap.
func NextStreak(lastLoginDate string, streak int, now time.Time) (int, string, bool) {
	today := now.UTC().Format("2006-01-02")
	if lastLoginDate == today {
		return streak, today, false
	}
	yesterday := now.UTC().AddDate(0, 0, -1).Format("2006-01-02")
	if lastLoginDate == yesterday {
		return streak + 1, today, true
	}
	return 1, today, true
}

// advance moves the current pointers to the next module, rolling over into
// the next galaxy.
func advance(galaxy, module int) (int, int) {
	if module < models.ModulesPerGalaxy {
		return galaxy, module + 1
	}
	return models.ClampGalaxy(galaxy + 1), 1
}
