package models

import "time"

const (
	FlashcardCount       = 15
	QuizQuestionCount    = 10
	CodingChallengeCount = 3
)

const (
	ContentSourceAI       = "ai"
	ContentSourceFallback = "fallback"
)

type Flashcard struct {
	ID       int    `bson:"id" json:"id"`
	Question string `bson:"question" json:"question"`
	Answer   string `bson:"answer" json:"answer"`
}

type QuizQuestion struct {
	ID            int      `bson:"id" json:"id"`
	Question      string   `bson:"question" json:"question"`
	Options       []string `bson:"options" json:"options"`
	CorrectAnswer int      `bson:"correct_answer" json:"correct_answer"`
	Explanation   string   `bson:"explanation" json:"explanation"`
}

type CodingChallenge struct {
	ID          int      `bson:"id" json:"id"`
	Title       string   `bson:"title" json:"title"`
	Description string   `bson:"description" json:"description"`
	StarterCode string   `bson:"starter_code" json:"starter_code"`
	Solution    string   `bson:"solution" json:"solution"`
	Hints       []string `bson:"hints" json:"hints"`
}

// ModuleContent is the generated (or fallback) lesson material for one topic.
type ModuleContent struct {
	TopicID     string            `bson:"_id" json:"topic_id"`
	Title       string            `bson:"title" json:"title"`
	Flashcards  []Flashcard       `bson:"flashcards" json:"flashcards"`
	Quiz        []QuizQuestion    `bson:"quiz" json:"quiz"`
	Challenges  []CodingChallenge `bson:"challenges" json:"challenges"`
	Source      string            `bson:"source" json:"source"`
	GeneratedAt time.Time         `bson:"generated_at" json:"generated_at"`
}

// HasExpectedShape reports whether a stored record still matches the counts
// the client expects. Records that drifted are regenerated on demand.
func (m *ModuleContent) HasExpectedShape() bool {
	return len(m.Flashcards) == FlashcardCount &&
		len(m.Quiz) == QuizQuestionCount &&
		len(m.Challenges) == CodingChallengeCount
}
