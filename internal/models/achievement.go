package models

import "time"

// Achievement metrics an unlock threshold can apply to.
const (
	MetricXP               = "xp"
	MetricModulesCompleted = "modules_completed"
	MetricStreak           = "streak"
	MetricBoxesOpened      = "boxes_opened"
)

type Achievement struct {
	ID          string `bson:"_id" json:"id"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	Icon        string `bson:"icon" json:"icon"`
	Metric      string `bson:"metric" json:"metric"`
	Threshold   int64  `bson:"threshold" json:"threshold"`
	XPBonus     int64  `bson:"xp_bonus" json:"xp_bonus"`
}

// UserAchievement marks a one-time unlock for a wallet.
type UserAchievement struct {
	ID            string    `bson:"_id" json:"id"` // "<wallet>:<achievement_id>"
	Wallet        string    `bson:"wallet" json:"wallet"`
	AchievementID string    `bson:"achievement_id" json:"achievement_id"`
	UnlockedAt    time.Time `bson:"unlocked_at" json:"unlocked_at"`
}

// Catalog is the fixed set of milestones. Unlocks grant XPBonus once.
var Catalog = []Achievement{
	{ID: "first-steps", Title: "First Steps", Description: "Complete your first learning module", Icon: "🚀", Metric: MetricModulesCompleted, Threshold: 1, XPBonus: 100},
	{ID: "explorer", Title: "Explorer", Description: "Complete 10 learning modules", Icon: "🧭", Metric: MetricModulesCompleted, Threshold: 10, XPBonus: 500},
	{ID: "galaxy-brain", Title: "Galaxy Brain", Description: "Complete 50 learning modules", Icon: "🌌", Metric: MetricModulesCompleted, Threshold: 50, XPBonus: 2000},
	{ID: "rising-star", Title: "Rising Star", Description: "Reach 1,000 XP", Icon: "⭐", Metric: MetricXP, Threshold: 1000, XPBonus: 250},
	{ID: "supernova", Title: "Supernova", Description: "Reach 10,000 XP", Icon: "💫", Metric: MetricXP, Threshold: 10000, XPBonus: 1000},
	{ID: "week-warrior", Title: "Week Warrior", Description: "Keep a 7-day streak", Icon: "🔥", Metric: MetricStreak, Threshold: 7, XPBonus: 300},
	{ID: "unstoppable", Title: "Unstoppable", Description: "Keep a 30-day streak", Icon: "⚡", Metric: MetricStreak, Threshold: 30, XPBonus: 1500},
	{ID: "lucky-one", Title: "Lucky One", Description: "Open your first mystery box", Icon: "🎁", Metric: MetricBoxesOpened, Threshold: 1, XPBonus: 50},
	{ID: "collector", Title: "Collector", Description: "Open 20 mystery boxes", Icon: "🗃️", Metric: MetricBoxesOpened, Threshold: 20, XPBonus: 750},
}

// MetricValue reads the metric an achievement tracks out of a progress record.
func (a Achievement) MetricValue(p *UserProgress) int64 {
	switch a.Metric {
	case MetricXP:
		return p.TotalXP
	case MetricModulesCompleted:
		return int64(len(p.CompletedModules))
	case MetricStreak:
		return int64(p.Streak)
	case MetricBoxesOpened:
		return int64(p.BoxesOpened)
	}
	return 0
}
