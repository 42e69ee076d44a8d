package models

import "time"

// Challenge types rotate daily; every user sees the same subset on a given
// UTC day.
const (
	ChallengeTypeQuiz            = "quiz"
	ChallengeTypeFlashcardSprint = "flashcard-sprint"
	ChallengeTypeCodePuzzle      = "code-puzzle"
	ChallengeTypeConceptMatch    = "concept-match"
	ChallengeTypeTrueFalse       = "true-false"
)

var ChallengeTypes = []string{
	ChallengeTypeQuiz,
	ChallengeTypeFlashcardSprint,
	ChallengeTypeCodePuzzle,
	ChallengeTypeConceptMatch,
	ChallengeTypeTrueFalse,
}

// DailyChallengesPerDay is the size of the rotating subset.
const DailyChallengesPerDay = 3

var ChallengeDifficulties = []string{"easy", "medium", "hard"}

type DailyChallenge struct {
	ID          string    `bson:"_id" json:"id"` // "<date>:<type>"
	Date        string    `bson:"date" json:"date"`
	Type        string    `bson:"type" json:"type"`
	Difficulty  string    `bson:"difficulty" json:"difficulty"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	XPReward    int       `bson:"xp_reward" json:"xp_reward"`
	Source      string    `bson:"source" json:"source"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// ChallengeCompletion records that a wallet finished a challenge; at most one
// per wallet per challenge id.
type ChallengeCompletion struct {
	ID          string    `bson:"_id" json:"id"` // "<challenge_id>:<wallet>"
	ChallengeID string    `bson:"challenge_id" json:"challenge_id"`
	Wallet      string    `bson:"wallet" json:"wallet"`
	XPAwarded   int       `bson:"xp_awarded" json:"xp_awarded"`
	CompletedAt time.Time `bson:"completed_at" json:"completed_at"`
}
