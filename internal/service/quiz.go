package service

import (
	"context"
	crypto "crypto/rand"
	"errors"
	"math"
	"math/big"
	"math/rand"
	"time"

	"github.com/Lyly-126/TieuLuanTotNghiep-sub000/internal/config"
	"github.com/Lyly-126/TieuLuanTotNghiep-sub000/internal/models"
	"github.com/Lyly-126/TieuLuanTotNghiep-sub000/internal/quiz"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultHistoryLimit = 20

var (
	ErrQuizNotFound  = errors.New("quiz not found or expired")
	ErrQuizOwnership = errors.New("quiz was issued to another user")
)

type VocabularyRI interface {
	ListByCategory(ctx context.Context, categoryID int64) ([]models.VocabularyItem, error)
	AddVocabulary(ctx context.Context, item models.VocabularyItem) (int64, error)
}

type UserRI interface {
	BirthDate(ctx context.Context, userID int64) (*time.Time, error)
}

type QuizRI interface {
	SaveResult(ctx context.Context, result models.QuizResult) (int64, error)
	PreviousResult(ctx context.Context, userID, categoryID int64) (*models.QuizResult, error)
	QuizStats(ctx context.Context, userID int64, categoryID *int64) (models.QuizStats, error)
	QuizHistory(ctx context.Context, userID int64, categoryID *int64, limit int) ([]models.QuizResult, error)
}

type MasteryTracker interface {
	RecordOutcome(ctx context.Context, userID, itemID, categoryID int64, correct bool) error
}

type QuizS struct {
	vocab        VocabularyRI
	users        UserRI
	repo         QuizRI
	mastery      MasteryTracker
	sessions     SessionStore
	newRand      func() quiz.Rand
	now          func() time.Time
	ttl          time.Duration
	skills       []models.Skill
	historyLimit int
	log          *zap.Logger
}

func NewQuizService(vocab VocabularyRI, users UserRI, repo QuizRI, mastery MasteryTracker,
	sessions SessionStore, cfg config.QuizConfig, log *zap.Logger) *QuizS {
	skills := make([]models.Skill, 0, len(cfg.SkillFocus))
	for _, s := range cfg.SkillFocus {
		skills = append(skills, models.Skill(s))
	}

	historyLimit := cfg.HistoryLimit
	if historyLimit <= 0 {
		historyLimit = defaultHistoryLimit
	}

	return &QuizS{
		vocab:        vocab,
		users:        users,
		repo:         repo,
		mastery:      mastery,
		sessions:     sessions,
		newRand:      newRand,
		now:          time.Now,
		ttl:          cfg.SessionTTL,
		skills:       skills,
		historyLimit: historyLimit,
		log:          log,
	}
}

func (q *QuizS) AssembleQuiz(ctx context.Context, userID int64, spec models.QuizSpec) (models.Quiz, error) {
	items, err := q.vocab.ListByCategory(ctx, spec.CategoryID)
	if err != nil {
		return models.Quiz{}, err
	}
	if len(items) == 0 {
		return models.Quiz{}, quiz.ErrEmptyCategory
	}

	difficulty := quiz.ParseDifficulty(string(spec.Difficulty))
	if difficulty == models.DifficultyAuto {
		birthDate, err := q.users.BirthDate(ctx, userID)
		if err != nil {
			q.log.Warn("failed to get birth date, using default difficulty", zap.Int64("user_id", userID), zap.Error(err))
			birthDate = nil
		}
		difficulty = quiz.ResolveDifficulty(birthDate, models.DifficultyAuto, q.now())
	}

	if len(spec.SkillFocus) == 0 {
		spec.SkillFocus = q.skills
	}

	assembled, err := quiz.NewAssembler(q.newRand()).Assemble(spec, items, difficulty)
	if err != nil {
		return models.Quiz{}, err
	}

	issuedAt := q.now()
	issued := models.Quiz{
		ID:               uuid.NewString(),
		UserID:           userID,
		CategoryID:       spec.CategoryID,
		Archetype:        resultArchetype(spec.Archetypes),
		Difficulty:       assembled.Difficulty,
		AgeGroup:         assembled.AgeGroup,
		TimeLimitSeconds: assembled.TimeLimitSeconds,
		TotalPoints:      assembled.TotalPoints,
		Questions:        assembled.Questions,
		IssuedAt:         issuedAt,
		ExpiresAt:        issuedAt.Add(q.ttl),
	}
	q.sessions.SetQuiz(issued)

	q.log.Info("quiz issued",
		zap.String("quiz_id", issued.ID),
		zap.Int64("user_id", userID),
		zap.Int64("category_id", spec.CategoryID),
		zap.String("difficulty", string(issued.Difficulty)),
		zap.Int("questions", len(issued.Questions)))

	return issued, nil
}

// GradeSubmission grades answers against the quiz issued under quizID. Correct
// answers come from the issued quiz, never from the caller. Issued questions
// without an answer count as skipped, so an empty list grades as all skipped.
// A quiz is graded at most once; it goes back to the session store only when
// the result could not be saved.
func (q *QuizS) GradeSubmission(ctx context.Context, userID int64, quizID string, answers []models.SubmittedAnswer) (models.GradedResult, error) {
	issued, ok := q.sessions.TakeQuiz(quizID)
	if !ok {
		return models.GradedResult{}, ErrQuizNotFound
	}
	if issued.UserID != userID {
		q.sessions.SetQuiz(issued)
		return models.GradedResult{}, ErrQuizOwnership
	}

	graded, err := q.saveResult(ctx, userID, issued, answers)
	if err != nil {
		q.sessions.SetQuiz(issued)
		return models.GradedResult{}, err
	}

	for _, a := range graded.Answers {
		if a.SourceItemID == 0 {
			continue
		}
		if err := q.mastery.RecordOutcome(ctx, userID, a.SourceItemID, issued.CategoryID, a.Correct); err != nil {
			q.log.Warn("failed to record word mastery",
				zap.Int64("user_id", userID),
				zap.Int64("vocabulary_id", a.SourceItemID),
				zap.Error(err))
		}
	}

	return graded, nil
}

func (q *QuizS) saveResult(ctx context.Context, userID int64, issued models.Quiz, answers []models.SubmittedAnswer) (models.GradedResult, error) {
	graded := quiz.Grade(Submissions(issued, answers))
	graded.QuizID = issued.ID

	previous, err := q.repo.PreviousResult(ctx, userID, issued.CategoryID)
	if err != nil {
		return models.GradedResult{}, err
	}
	graded.PreviousScore, graded.Improvement = quiz.Improvement(graded.Score, previous)

	id, err := q.repo.SaveResult(ctx, models.QuizResult{
		UserID:           userID,
		CategoryID:       issued.CategoryID,
		Archetype:        issued.Archetype,
		Difficulty:       issued.Difficulty,
		TotalQuestions:   graded.TotalQuestions,
		CorrectAnswers:   graded.CorrectAnswers,
		WrongAnswers:     graded.WrongAnswers,
		SkippedAnswers:   graded.SkippedAnswers,
		Score:            graded.Score,
		ListeningScore:   skillScore(graded.SkillScores, models.SkillListening),
		ReadingScore:     skillScore(graded.SkillScores, models.SkillReading),
		WritingScore:     skillScore(graded.SkillScores, models.SkillWriting),
		TimeSpentSeconds: graded.TimeSpentSeconds,
	})
	if err != nil {
		return models.GradedResult{}, err
	}
	graded.ResultID = id

	return graded, nil
}

func (q *QuizS) QuizStats(ctx context.Context, userID int64, categoryID *int64) (models.QuizStats, error) {
	stats, err := q.repo.QuizStats(ctx, userID, categoryID)
	if err != nil {
		q.log.Warn("failed to get quiz stats", zap.Int64("user_id", userID), zap.Error(err))
		return models.QuizStats{}, err
	}

	return stats, nil
}

func (q *QuizS) QuizHistory(ctx context.Context, userID int64, categoryID *int64, limit int) ([]models.QuizResult, error) {
	if limit <= 0 || limit > q.historyLimit {
		limit = q.historyLimit
	}

	history, err := q.repo.QuizHistory(ctx, userID, categoryID, limit)
	if err != nil {
		q.log.Warn("failed to get quiz history", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}

	return history, nil
}

// Submissions lines up answers with the issued questions by index. Questions
// without an answer are submitted empty and grade as skipped.
func Submissions(issued models.Quiz, answers []models.SubmittedAnswer) []models.AnswerSubmission {
	byIndex := make(map[int]models.SubmittedAnswer, len(answers))
	for _, a := range answers {
		byIndex[a.QuestionIndex] = a
	}

	subs := make([]models.AnswerSubmission, 0, len(issued.Questions))
	for _, question := range issued.Questions {
		a := byIndex[question.Index]
		subs = append(subs, models.AnswerSubmission{
			QuestionIndex:    question.Index,
			SourceItemID:     question.SourceItemID,
			Archetype:        question.Archetype,
			Skill:            question.Skill,
			UserAnswer:       a.UserAnswer,
			CorrectAnswer:    question.CorrectAnswer,
			Points:           question.Points,
			TimeSpentSeconds: a.TimeSpentSeconds,
		})
	}

	return subs
}

func resultArchetype(requested []models.Archetype) models.Archetype {
	if len(requested) == 1 {
		return requested[0]
	}
	return models.ArchetypeMixed
}

func skillScore(scores map[models.Skill]float64, skill models.Skill) *float64 {
	v, ok := scores[skill]
	if !ok {
		return nil
	}
	return &v
}

func newRand() quiz.Rand {
	seed, err := randomSeed()
	if err != nil {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func randomSeed() (int64, error) {
	n, err := crypto.Int(crypto.Reader, big.NewInt(math.MaxInt64))
	if err != nil {
		return 0, err
	}

	return n.Int64(), nil
}
