package service

import (
	"context"
	"errors"
	"time"

	"github.com/Lyly-126/TieuLuanTotNghiep-sub000/internal/models"
	"github.com/Lyly-126/TieuLuanTotNghiep-sub000/internal/repository"
	"go.uber.org/zap"
)

// LearnedStage is the review stage from which a word counts as learned.
const LearnedStage = 3

const defaultDueLimit = 20

// ReviewIntervals holds the days until the next review, indexed by stage.
var ReviewIntervals = []int{1, 3, 7, 14, 30, 60}

var ErrNoNewWords = errors.New("no new words to learn")

type MasteryRI interface {
	Mastery(ctx context.Context, userID, vocabularyID int64) (*models.MasteryRecord, error)
	UpsertMastery(ctx context.Context, rec models.MasteryRecord) error
	DueMastery(ctx context.Context, userID int64, now time.Time, limit int) ([]models.MasteryWord, error)
	RandomUnlearned(ctx context.Context, userID, categoryID int64, learnedStage int) (models.VocabularyItem, error)
	MasteryWords(ctx context.Context, userID int64, offset int, learned bool, learnedStage int) ([]models.MasteryWord, int, error)
	MasteryStats(ctx context.Context, userID int64, learnedStage int) (models.MasteryStats, error)
}

type MasteryS struct {
	repo MasteryRI
	now  func() time.Time
	log  *zap.Logger
}

func NewMasteryService(repo MasteryRI, log *zap.Logger) *MasteryS {
	return &MasteryS{
		repo: repo,
		now:  time.Now,
		log:  log,
	}
}

// ApplyOutcome advances rec by one answer. A correct answer schedules the
// next review by the current stage and moves up a stage; a wrong one starts
// the word over.
func ApplyOutcome(rec models.MasteryRecord, correct bool, now time.Time) models.MasteryRecord {
	rec.LastReviewedAt = now

	if !correct {
		rec.IncorrectCount++
		rec.Streak = 0
		rec.Stage = 0
		rec.NextReviewAt = now.AddDate(0, 0, ReviewIntervals[0])
		return rec
	}

	stage := rec.Stage
	if stage >= len(ReviewIntervals) {
		stage = len(ReviewIntervals) - 1
	}

	rec.CorrectCount++
	rec.Streak++
	rec.NextReviewAt = now.AddDate(0, 0, ReviewIntervals[stage])
	if rec.Stage < len(ReviewIntervals) {
		rec.Stage++
	}

	return rec
}

func (m *MasteryS) RecordOutcome(ctx context.Context, userID, itemID, categoryID int64, correct bool) error {
	rec, err := m.repo.Mastery(ctx, userID, itemID)
	if err != nil {
		return err
	}
	if rec == nil {
		rec = &models.MasteryRecord{UserID: userID, VocabularyID: itemID}
	}
	rec.CategoryID = categoryID

	return m.repo.UpsertMastery(ctx, ApplyOutcome(*rec, correct, m.now()))
}

func (m *MasteryS) NextWord(ctx context.Context, userID, categoryID int64) (models.VocabularyItem, error) {
	item, err := m.repo.RandomUnlearned(ctx, userID, categoryID, LearnedStage)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.VocabularyItem{}, ErrNoNewWords
		}
		return models.VocabularyItem{}, err
	}

	return item, nil
}

func (m *MasteryS) DueReviews(ctx context.Context, userID int64, limit int) ([]models.MasteryWord, error) {
	if limit <= 0 {
		limit = defaultDueLimit
	}
	return m.repo.DueMastery(ctx, userID, m.now(), limit)
}

func (m *MasteryS) Words(ctx context.Context, userID int64, page int, learned bool) (models.WordPage, error) {
	if page < 0 {
		page = 0
	}

	words, total, err := m.repo.MasteryWords(ctx, userID, page*repository.PageSize, learned, LearnedStage)
	if err != nil {
		m.log.Warn("failed to get words", zap.Int64("user_id", userID), zap.Bool("learned", learned), zap.Error(err))
		return models.WordPage{}, err
	}

	return models.WordPage{
		Words:   words,
		Total:   total,
		Page:    page,
		HasNext: (page+1)*repository.PageSize < total,
	}, nil
}

func (m *MasteryS) WordStats(ctx context.Context, userID int64) (models.MasteryStats, error) {
	return m.repo.MasteryStats(ctx, userID, LearnedStage)
}
