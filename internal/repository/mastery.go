package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Lyly-126/TieuLuanTotNghiep-sub000/internal/models"
)

const PageSize = 10

type MasteryR struct {
	db QueryI
}

func NewMasteryRepository(db QueryI) *MasteryR {
	return &MasteryR{db: db}
}

// Mastery returns nil when the user has never answered the word.
func (m *MasteryR) Mastery(ctx context.Context, userID, vocabularyID int64) (*models.MasteryRecord, error) {
	query := `
		SELECT user_id, vocabulary_id, category_id, correct_count, incorrect_count,
			streak, stage, next_review_at, last_reviewed_at
		FROM vocabulary_mastery
		WHERE user_id = $1 AND vocabulary_id = $2
	`

	var rec models.MasteryRecord
	err := m.db.GetContext(ctx, &rec, query, userID, vocabularyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &rec, nil
}

func (m *MasteryR) UpsertMastery(ctx context.Context, rec models.MasteryRecord) error {
	query := `INSERT INTO vocabulary_mastery (user_id, vocabulary_id, category_id, correct_count,
			incorrect_count, streak, stage, next_review_at, last_reviewed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id, vocabulary_id)
		DO UPDATE SET
			category_id = EXCLUDED.category_id,
			correct_count = EXCLUDED.correct_count,
			incorrect_count = EXCLUDED.incorrect_count,
			streak = EXCLUDED.streak,
			stage = EXCLUDED.stage,
			next_review_at = EXCLUDED.next_review_at,
			last_reviewed_at = EXCLUDED.last_reviewed_at
	`
	_, err := m.db.ExecContext(ctx, query, rec.UserID, rec.VocabularyID, rec.CategoryID, rec.CorrectCount,
		rec.IncorrectCount, rec.Streak, rec.Stage, rec.NextReviewAt, rec.LastReviewedAt)
	if err != nil {
		return fmt.Errorf("failed to save mastery of word %d for user %d: %w", rec.VocabularyID, rec.UserID, err)
	}

	return nil
}

func (m *MasteryR) DueMastery(ctx context.Context, userID int64, now time.Time, limit int) ([]models.MasteryWord, error) {
	query := `
		SELECT m.user_id, m.vocabulary_id, m.category_id, m.correct_count, m.incorrect_count,
			m.streak, m.stage, m.next_review_at, m.last_reviewed_at, v.word, v.meaning
		FROM vocabulary_mastery m
		JOIN vocabulary v ON v.id = m.vocabulary_id
		WHERE m.user_id = $1 AND m.next_review_at <= $2
		ORDER BY m.next_review_at
		LIMIT $3
	`

	words := make([]models.MasteryWord, 0)
	err := m.db.SelectContext(ctx, &words, query, userID, now, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get due reviews for user %d: %w", userID, err)
	}

	return words, nil
}

// RandomUnlearned picks a word of the category the user has not learned yet.
func (m *MasteryR) RandomUnlearned(ctx context.Context, userID, categoryID int64, learnedStage int) (models.VocabularyItem, error) {
	query := `
	SELECT v.id, v.category_id, v.word, v.meaning, v.part_of_speech, v.phonetic, v.image_url, v.audio_url
		FROM vocabulary v
		LEFT JOIN vocabulary_mastery m ON m.vocabulary_id = v.id AND m.user_id = $1
		WHERE v.category_id = $2 AND (m.stage IS NULL OR m.stage < $3)
		ORDER BY RANDOM()
		LIMIT 1;
	`

	var item models.VocabularyItem
	err := m.db.GetContext(ctx, &item, query, userID, categoryID, learnedStage)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.VocabularyItem{}, fmt.Errorf("no words to learn for user %d: %w", userID, ErrNotFound)
		}
		return models.VocabularyItem{}, fmt.Errorf("database error: %w", err)
	}
	return item, nil
}

func (m *MasteryR) MasteryWords(ctx context.Context, userID int64, offset int, learned bool, learnedStage int) ([]models.MasteryWord, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM vocabulary_mastery WHERE user_id = $1 AND (stage >= $2) = $3`
	err := m.db.GetContext(ctx, &total, countQuery, userID, learnedStage, learned)
	if err != nil {
		return nil, 0, err
	}

	if total == 0 {
		return []models.MasteryWord{}, 0, nil
	}

	query := `
		SELECT m.user_id, m.vocabulary_id, m.category_id, m.correct_count, m.incorrect_count,
			m.streak, m.stage, m.next_review_at, m.last_reviewed_at, v.word, v.meaning
		FROM vocabulary_mastery m
		JOIN vocabulary v ON v.id = m.vocabulary_id
		WHERE m.user_id = $1 AND (m.stage >= $2) = $3
		ORDER BY m.last_reviewed_at DESC
		LIMIT $4 OFFSET $5
	`
	words := make([]models.MasteryWord, 0, PageSize)
	err = m.db.SelectContext(ctx, &words, query, userID, learnedStage, learned, PageSize, offset)
	if err != nil {
		return nil, 0, err
	}

	return words, total, nil
}

func (m *MasteryR) MasteryStats(ctx context.Context, userID int64, learnedStage int) (models.MasteryStats, error) {
	query := `
		SELECT
			COUNT(*) AS total_count,
			COALESCE(SUM(CASE WHEN stage >= $2 THEN 1 ELSE 0 END), 0) AS learned_count
		FROM vocabulary_mastery
		WHERE user_id = $1
	`

	var stats models.MasteryStats
	err := m.db.GetContext(ctx, &stats, query, userID, learnedStage)
	if err != nil {
		return models.MasteryStats{}, fmt.Errorf("failed to get word stats for user %d: %w", userID, err)
	}

	stats.LearningCount = stats.TotalCount - stats.LearnedCount

	return stats, nil
}
