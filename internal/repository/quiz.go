package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Lyly-126/TieuLuanTotNghiep-sub000/internal/models"
	"github.com/Lyly-126/TieuLuanTotNghiep-sub000/internal/quiz"
)

const resultColumns = `id, user_id, category_id, archetype, difficulty, total_questions,
	correct_answers, wrong_answers, skipped_answers, score,
	listening_score, reading_score, writing_score, time_spent_seconds, created_at`

type QuizResultR struct {
	db QueryI
}

func NewQuizResultRepository(db QueryI) *QuizResultR {
	return &QuizResultR{
		db: db,
	}
}

func (q *QuizResultR) SaveResult(ctx context.Context, result models.QuizResult) (int64, error) {
	query := `
		INSERT INTO quiz_results (user_id, category_id, archetype, difficulty, total_questions,
			correct_answers, wrong_answers, skipped_answers, score,
			listening_score, reading_score, writing_score, time_spent_seconds)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`

	var id int64
	err := q.db.GetContext(ctx, &id, query,
		result.UserID, result.CategoryID, result.Archetype, result.Difficulty, result.TotalQuestions,
		result.CorrectAnswers, result.WrongAnswers, result.SkippedAnswers, result.Score,
		result.ListeningScore, result.ReadingScore, result.WritingScore, result.TimeSpentSeconds)
	if err != nil {
		return 0, fmt.Errorf("failed to save quiz result for user %d: %w", result.UserID, err)
	}

	return id, nil
}

// PreviousResult returns the latest result of the user in the category, or nil.
func (q *QuizResultR) PreviousResult(ctx context.Context, userID, categoryID int64) (*models.QuizResult, error) {
	query := `SELECT ` + resultColumns + `
		FROM quiz_results
		WHERE user_id = $1 AND category_id = $2
		ORDER BY created_at DESC, id DESC
		LIMIT 1`

	var result models.QuizResult
	err := q.db.GetContext(ctx, &result, query, userID, categoryID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get previous result: %w", err)
	}

	return &result, nil
}

func (q *QuizResultR) QuizStats(ctx context.Context, userID int64, categoryID *int64) (models.QuizStats, error) {
	query := `SELECT
		COUNT(*) AS total_quizzes,
		COALESCE(ROUND(AVG(score)::numeric, 1), 0) AS average_score,
		COALESCE(MAX(score), 0) AS best_score,
		COALESCE(SUM(CASE WHEN score >= $3 THEN 1 ELSE 0 END), 0) AS passed_count,
		COALESCE(SUM(correct_answers), 0) AS total_correct,
		COALESCE(SUM(wrong_answers), 0) AS total_wrong,
		COALESCE(SUM(skipped_answers), 0) AS total_skipped
	FROM quiz_results
	WHERE user_id = $1 AND ($2::bigint IS NULL OR category_id = $2)`

	var stats models.QuizStats
	err := q.db.GetContext(ctx, &stats, query, userID, categoryID, quiz.PassThreshold)
	if err != nil {
		return models.QuizStats{}, fmt.Errorf("failed to get quiz stats for user %d: %w", userID, err)
	}

	return stats, nil
}

func (q *QuizResultR) QuizHistory(ctx context.Context, userID int64, categoryID *int64, limit int) ([]models.QuizResult, error) {
	query := `SELECT ` + resultColumns + `
		FROM quiz_results
		WHERE user_id = $1 AND ($2::bigint IS NULL OR category_id = $2)
		ORDER BY created_at DESC, id DESC
		LIMIT $3`

	results := make([]models.QuizResult, 0)
	err := q.db.SelectContext(ctx, &results, query, userID, categoryID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get quiz history for user %d: %w", userID, err)
	}

	return results, nil
}
