package service

import (
	"context"

	"github.com/Lyly-126/TieuLuanTotNghiep-sub000/internal/config"
	"github.com/Lyly-126/TieuLuanTotNghiep-sub000/internal/models"
	"go.uber.org/zap"
)

type TranslatorAPII interface {
	Translate(ctx context.Context, text string) (models.TranslationResult, error)
}

type DictionaryAPII interface {
	DictionaryData(ctx context.Context, word string) (models.TranslationResponse, error)
}

type RandomWordAPII interface {
	RandomWord(ctx context.Context) (string, error)
}

type APII interface {
	TranslatorAPII
	DictionaryAPII
	RandomWordAPII
}

type RepositoryI interface {
	VocabularyRI
	UserRI
	QuizRI
	MasteryRI
}

type SessionStore interface {
	SetQuiz(quiz models.Quiz)
	TakeQuiz(id string) (models.Quiz, bool)
}

type Service struct {
	*QuizS
	*MasteryS
	*VocabularyS
}

func InitServices(api APII, repo RepositoryI, sessions SessionStore, cfg config.QuizConfig, log *zap.Logger) *Service {
	mastery := NewMasteryService(repo, log)

	return &Service{
		QuizS:       NewQuizService(repo, repo, repo, mastery, sessions, cfg, log),
		MasteryS:    mastery,
		VocabularyS: NewVocabularyService(api, repo, log),
	}
}
