package repository

import (
	"context"
	"database/sql"
	"errors"
)

var ErrNotFound = errors.New("not found")

type QueryI interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type Repository struct {
	*VocabularyR
	*UserR
	*QuizResultR
	*MasteryR
}

func NewRepository(db QueryI) Repository {
	return Repository{
		VocabularyR: NewVocabularyRepository(db),
		UserR:       NewUserRepository(db),
		QuizResultR: NewQuizResultRepository(db),
		MasteryR:    NewMasteryRepository(db),
	}
}
