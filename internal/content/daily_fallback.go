package content

import (
	"fmt"
	"time"

	"github.com/divi2806/suiVerse-sub000/internal/models"
)

type dailyTemplate struct {
	title       string
	description string
	baseXP      int
}

var dailyTemplates = map[string]dailyTemplate{
	models.ChallengeTypeQuiz: {
		title:       "Daily Quiz",
		description: "Answer 5 quick questions about the Sui ecosystem.",
		baseXP:      100,
	},
	models.ChallengeTypeFlashcardSprint: {
		title:       "Flashcard Sprint",
		description: "Get through 10 flashcards in under 2 minutes.",
		baseXP:      75,
	},
	models.ChallengeTypeCodePuzzle: {
		title:       "Code Puzzle",
		description: "Fix the bug in a short Move snippet.",
		baseXP:      150,
	},
	models.ChallengeTypeConceptMatch: {
		title:       "Concept Match",
		description: "Match Sui terms with their definitions.",
		baseXP:      75,
	},
	models.ChallengeTypeTrueFalse: {
		title:       "True or False",
		description: "Decide which statements about Sui objects hold.",
		baseXP:      50,
	},
}

var difficultyXPMultiplier = map[string]float64{
	"easy":   1.0,
	"medium": 1.5,
	"hard":   2.0,
}

// FallbackDailyChallenge builds a challenge for a date and type from the
// hardcoded template table.
func FallbackDailyChallenge(date, challengeType, difficulty string) models.DailyChallenge {
	tpl, ok := dailyTemplates[challengeType]
	if !ok {
		tpl = dailyTemplates[models.ChallengeTypeQuiz]
	}
	mult, ok := difficultyXPMultiplier[difficulty]
	if !ok {
		mult = 1.0
	}
	return models.DailyChallenge{
		ID:          fmt.Sprintf("%s:%s", date, challengeType),
		Date:        date,
		Type:        challengeType,
		Difficulty:  difficulty,
		Title:       tpl.title,
		Description: tpl.description,
		XPReward:    int(float64(tpl.baseXP) * mult),
		Source:      models.ContentSourceFallback,
		CreatedAt:   time.Now().UTC(),
	}
}
