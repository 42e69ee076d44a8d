package models

import "time"

const (
	TotalGalaxies    = 9
	ModulesPerGalaxy = 16
)

// UserProgress is keyed by wallet address. Updates are independent
// read-modify-write sequences; concurrent sessions are last-write-wins.
type UserProgress struct {
	WalletAddress    string    `bson:"_id" json:"wallet_address"`
	TotalXP          int64     `bson:"total_xp" json:"total_xp"`
	Level            int       `bson:"level" json:"level"`
	Streak           int       `bson:"streak" json:"streak"`
	LastLoginDate    string    `bson:"last_login_date" json:"last_login_date"`
	CompletedModules []string  `bson:"completed_modules" json:"completed_modules"`
	CurrentGalaxy    int       `bson:"current_galaxy" json:"current_galaxy"`
	CurrentModule    int       `bson:"current_module" json:"current_module"`
	BoxesOpened      int       `bson:"boxes_opened" json:"boxes_opened"`
	CreatedAt        time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time `bson:"updated_at" json:"updated_at"`
}

func NewUserProgress(wallet string) *UserProgress {
	now := time.Now().UTC()
	return &UserProgress{
		WalletAddress:    wallet,
		Level:            1,
		CompletedModules: []string{},
		CurrentGalaxy:    1,
		CurrentModule:    1,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// LevelForXP maps total XP to a level. Each level n requires 250*n*(n-1)
// cumulative XP, so level 2 starts at 500, level 3 at 1500 and so on.
func LevelForXP(xp int64) int {
	level := 1
	for xpForLevel(level+1) <= xp {
		level++
	}
	return level
}

func xpForLevel(level int) int64 {
	return int64(250 * level * (level - 1))
}

// XPToNextLevel reports how much XP is missing until the next level.
func XPToNextLevel(xp int64) int64 {
	return xpForLevel(LevelForXP(xp)+1) - xp
}

// ClampGalaxy forces an out-of-range galaxy id into [1, TotalGalaxies].
func ClampGalaxy(galaxy int) int {
	if galaxy < 1 {
		return 1
	}
	if galaxy > TotalGalaxies {
		return TotalGalaxies
	}
	return galaxy
}

// ClampModule forces an out-of-range module number into [1, ModulesPerGalaxy].
func ClampModule(module int) int {
	if module < 1 {
		return 1
	}
	if module > ModulesPerGalaxy {
		return ModulesPerGalaxy
	}
	return module
}

func (p *UserProgress) HasCompleted(moduleID string) bool {
	for _, m := range p.CompletedModules {
		if m == moduleID {
			return true
		}
	}
	return false
}
