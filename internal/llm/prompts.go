package llm

import (
	"fmt"

	"github.com/divi2806/suiVerse-sub000/internal/models"
)

const SystemPrompt = "You are a blockchain education content generator for a learning platform about the Sui network. " +
	"Always answer with a single JSON value and nothing else. No prose, no markdown fences."

// BuildModulePrompt asks for a full lesson for one topic. The response is
// salvaged with ExtractJSON and then padded to the exact counts, so the
// model missing the counts is tolerated.
func BuildModulePrompt(topicID string) string {
	return fmt.Sprintf(`Generate learning material for the topic "%s".

Respond with a JSON object of this exact shape:
{
  "title": "human readable topic title",
  "flashcards": [{"question": "...", "answer": "..."}],
  "quiz": [{"question": "...", "options": ["...", "...", "...", "..."], "correct_answer": 0, "explanation": "..."}],
  "challenges": [{"title": "...", "description": "...", "starter_code": "...", "solution": "...", "hints": ["..."]}]
}

Produce exactly %d flashcards, %d quiz questions and %d coding challenges.
Quiz option indexes are zero-based. Coding challenges use the Move language.`,
		topicID, models.FlashcardCount, models.QuizQuestionCount, models.CodingChallengeCount)
}

// BuildDailyChallengePrompt asks for one daily challenge of a given type.
func BuildDailyChallengePrompt(challengeType, difficulty string) string {
	return fmt.Sprintf(`Generate a daily learning challenge of type "%s" with difficulty "%s" about the Sui blockchain.

Respond with a JSON object of this exact shape:
{"title": "...", "description": "...", "xp_reward": 100}

The xp_reward must be between 50 and 300 and reflect the difficulty.`,
		challengeType, difficulty)
}
