package models

import "time"

type Difficulty string

const (
	DifficultyKids  Difficulty = "KIDS"
	DifficultyTeen  Difficulty = "TEEN"
	DifficultyAdult Difficulty = "ADULT"
	DifficultyAuto  Difficulty = "AUTO"
)

type Archetype string

const (
	ArchetypeMultipleChoiceEnVi Archetype = "MULTIPLE_CHOICE_EN_VI"
	ArchetypeMultipleChoiceViEn Archetype = "MULTIPLE_CHOICE_VI_EN"
	ArchetypeFillBlank          Archetype = "FILL_BLANK"
	ArchetypeListeningChoice    Archetype = "LISTENING_CHOICE"
	ArchetypeListeningTyping    Archetype = "LISTENING_TYPING"
	ArchetypeImageChoice        Archetype = "IMAGE_CHOICE"
	ArchetypeTrueFalse          Archetype = "TRUE_FALSE"
	ArchetypeTyping             Archetype = "TYPING"
	ArchetypeArrangeLetters     Archetype = "ARRANGE_LETTERS"

	// ArchetypeMixed labels a persisted result whose quiz used more than one archetype.
	ArchetypeMixed Archetype = "MIXED"
)

type Skill string

const (
	SkillListening Skill = "LISTENING"
	SkillReading   Skill = "READING"
	SkillWriting   Skill = "WRITING"
)

type QuizSpec struct {
	CategoryID       int64
	Archetypes       []Archetype
	Difficulty       Difficulty
	QuestionCount    int
	SkillFocus       []Skill
	TimeLimitSeconds int
	IncludeMedia     bool
}

type Question struct {
	Index         int       `json:"index"`
	SourceItemID  int64     `json:"sourceItemId"`
	Archetype     Archetype `json:"archetype"`
	Skill         Skill     `json:"skill"`
	Prompt        string    `json:"prompt"`
	Options       []string  `json:"options,omitempty"`
	CorrectAnswer string    `json:"-"`
	Hint          string    `json:"hint,omitempty"`
	MediaURL      string    `json:"mediaUrl,omitempty"`
	Points        int       `json:"points"`
}

type Quiz struct {
	ID               string     `json:"id"`
	UserID           int64      `json:"userId"`
	CategoryID       int64      `json:"categoryId"`
	Archetype        Archetype  `json:"archetype"`
	Difficulty       Difficulty `json:"difficulty"`
	AgeGroup         string     `json:"ageGroup"`
	TimeLimitSeconds int        `json:"timeLimitSeconds"`
	TotalPoints      int        `json:"totalPoints"`
	Questions        []Question `json:"questions"`
	IssuedAt         time.Time  `json:"issuedAt"`
	ExpiresAt        time.Time  `json:"expiresAt"`
}

// SubmittedAnswer is what a learner sends back for one question.
type SubmittedAnswer struct {
	QuestionIndex    int    `json:"questionIndex" validate:"min=0"`
	UserAnswer       string `json:"userAnswer"`
	TimeSpentSeconds int    `json:"timeSpentSeconds" validate:"min=0"`
}

// AnswerSubmission pairs a learner's answer with the issued question it answers.
type AnswerSubmission struct {
	QuestionIndex    int
	SourceItemID     int64
	Archetype        Archetype
	Skill            Skill
	UserAnswer       string
	CorrectAnswer    string
	Points           int
	TimeSpentSeconds int
}

type AnswerResult struct {
	QuestionIndex int       `json:"questionIndex"`
	SourceItemID  int64     `json:"sourceItemId"`
	Archetype     Archetype `json:"archetype"`
	Skill         Skill     `json:"skill"`
	UserAnswer    string    `json:"userAnswer"`
	CorrectAnswer string    `json:"correctAnswer"`
	Correct       bool      `json:"correct"`
	Skipped       bool      `json:"skipped"`
}

type GradedResult struct {
	ResultID         int64             `json:"resultId,omitempty"`
	QuizID           string            `json:"quizId,omitempty"`
	TotalQuestions   int               `json:"totalQuestions"`
	CorrectAnswers   int               `json:"correctAnswers"`
	WrongAnswers     int               `json:"wrongAnswers"`
	SkippedAnswers   int               `json:"skippedAnswers"`
	Score            float64           `json:"score"`
	Passed           bool              `json:"passed"`
	Grade            string            `json:"grade"`
	SkillScores      map[Skill]float64 `json:"skillScores"`
	PointsEarned     int               `json:"pointsEarned"`
	TimeSpentSeconds int               `json:"timeSpentSeconds"`
	PreviousScore    *float64          `json:"previousScore,omitempty"`
	Improvement      *float64          `json:"improvement,omitempty"`
	Answers          []AnswerResult    `json:"answers"`
}

type QuizResult struct {
	ID               int64      `db:"id" json:"id"`
	UserID           int64      `db:"user_id" json:"userId"`
	CategoryID       int64      `db:"category_id" json:"categoryId"`
	Archetype        Archetype  `db:"archetype" json:"archetype"`
	Difficulty       Difficulty `db:"difficulty" json:"difficulty"`
	TotalQuestions   int        `db:"total_questions" json:"totalQuestions"`
	CorrectAnswers   int        `db:"correct_answers" json:"correctAnswers"`
	WrongAnswers     int        `db:"wrong_answers" json:"wrongAnswers"`
	SkippedAnswers   int        `db:"skipped_answers" json:"skippedAnswers"`
	Score            float64    `db:"score" json:"score"`
	ListeningScore   *float64   `db:"listening_score" json:"listeningScore,omitempty"`
	ReadingScore     *float64   `db:"reading_score" json:"readingScore,omitempty"`
	WritingScore     *float64   `db:"writing_score" json:"writingScore,omitempty"`
	TimeSpentSeconds int        `db:"time_spent_seconds" json:"timeSpentSeconds"`
	CreatedAt        time.Time  `db:"created_at" json:"createdAt"`
}

type QuizStats struct {
	TotalQuizzes int     `db:"total_quizzes" json:"totalQuizzes"`
	AverageScore float64 `db:"average_score" json:"averageScore"`
	BestScore    float64 `db:"best_score" json:"bestScore"`
	PassedCount  int     `db:"passed_count" json:"passedCount"`
	TotalCorrect int     `db:"total_correct" json:"totalCorrect"`
	TotalWrong   int     `db:"total_wrong" json:"totalWrong"`
	TotalSkipped int     `db:"total_skipped" json:"totalSkipped"`
}

// QuizPlay tracks a quiz being answered question by question in a chat.
type QuizPlay struct {
	Quiz         Quiz
	Current      int
	Answers      []SubmittedAnswer
	Correct      int
	QuestionSent time.Time
}
