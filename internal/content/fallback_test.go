package content

import (
	"testing"

	"github.com/divi2806/suiVerse-sub000/internal/models"
)

func TestFallbackModuleHasExactCounts(t *testing.T) {
	mc := FallbackModule("intro-to-sui")

	if len(mc.Flashcards) != models.FlashcardCount {
		t.Errorf("Expected %d flashcards, got %d", models.FlashcardCount, len(mc.Flashcards))
	}
	if len(mc.Quiz) != models.QuizQuestionCount {
		t.Errorf("Expected %d quiz questions, got %d", models.QuizQuestionCount, len(mc.Quiz))
	}
	if len(mc.Challenges) != models.CodingChallengeCount {
		t.Errorf("Expected %d challenges, got %d", models.CodingChallengeCount, len(mc.Challenges))
	}
	if mc.Source != models.ContentSourceFallback {
		t.Errorf("Expected fallback source, got %q", mc.Source)
	}

	for i, card := range mc.Flashcards {
		if card.Question == "" || card.Answer == "" {
			t.Errorf("Flashcard %d has empty fields: %+v", i, card)
		}
		if card.ID != i+1 {
			t.Errorf("Flashcard %d has id %d", i, card.ID)
		}
	}
	for i, q := range mc.Quiz {
		if q.Question == "" || len(q.Options) == 0 {
			t.Errorf("Quiz question %d incomplete: %+v", i, q)
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			t.Errorf("Quiz question %d has out-of-range answer %d", i, q.CorrectAnswer)
		}
	}
}

func TestPadFlashcardsExactCount(t *testing.T) {
	testCases := []struct {
		name  string
		input int
	}{
		{"empty", 0},
		{"fewer than target", 5},
		{"exact target", models.FlashcardCount},
		{"more than target", models.FlashcardCount + 10},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cards := make([]models.Flashcard, tc.input)
			for i := range cards {
				cards[i] = models.Flashcard{Question: "q", Answer: "a"}
			}
			out := PadFlashcards(cards, "intro-to-sui")
			if len(out) != models.FlashcardCount {
				t.Errorf("Expected %d cards, got %d", models.FlashcardCount, len(out))
			}
			for i, c := range out {
				if c.Question == "" || c.Answer == "" {
					t.Errorf("Card %d has empty fields", i)
				}
			}
		})
	}
}

func TestPadFlashcardsDropsEmptyEntries(t *testing.T) {
	cards := []models.Flashcard{
		{Question: "real", Answer: "card"},
		{},
		{Question: "another", Answer: "card"},
	}
	out := PadFlashcards(cards, "topic")
	if len(out) != models.FlashcardCount {
		t.Fatalf("Expected %d cards, got %d", models.FlashcardCount, len(out))
	}
	if out[1].Question != "another" {
		t.Errorf("Empty entry not dropped, got %+v", out[1])
	}
}

func TestPadQuizRepairsBrokenQuestions(t *testing.T) {
	questions := []models.QuizQuestion{
		{Question: "no options"},
		{Question: "bad answer index", Options: []string{"a", "b"}, CorrectAnswer: 7},
	}
	out := PadQuiz(questions, "topic")
	if len(out) != models.QuizQuestionCount {
		t.Fatalf("Expected %d questions, got %d", models.QuizQuestionCount, len(out))
	}
	if len(out[0].Options) == 0 {
		t.Error("Expected options to be filled for question with none")
	}
	if out[1].CorrectAnswer != 0 {
		t.Errorf("Expected out-of-range answer to be clamped to 0, got %d", out[1].CorrectAnswer)
	}
}

func TestPadChallengesExactCount(t *testing.T) {
	out := PadChallenges(nil, "topic")
	if len(out) != models.CodingChallengeCount {
		t.Fatalf("Expected %d challenges, got %d", models.CodingChallengeCount, len(out))
	}
	for i, ch := range out {
		if ch.Title == "" || ch.Description == "" {
			t.Errorf("Challenge %d incomplete: %+v", i, ch)
		}
	}
}

func TestFallbackDailyChallengeScalesXPByDifficulty(t *testing.T) {
	easy := FallbackDailyChallenge("2025-03-14", models.ChallengeTypeCodePuzzle, "easy")
	hard := FallbackDailyChallenge("2025-03-14", models.ChallengeTypeCodePuzzle, "hard")

	if easy.XPReward >= hard.XPReward {
		t.Errorf("Expected hard XP (%d) to exceed easy XP (%d)", hard.XPReward, easy.XPReward)
	}
	if easy.ID != "2025-03-14:code-puzzle" {
		t.Errorf("Unexpected challenge id %q", easy.ID)
	}
}

func TestFallbackDailyChallengeUnknownTypeFallsBack(t *testing.T) {
	ch := FallbackDailyChallenge("2025-03-14", "nonsense", "medium")
	if ch.Title == "" || ch.XPReward == 0 {
		t.Errorf("Expected usable challenge for unknown type, got %+v", ch)
	}
}
