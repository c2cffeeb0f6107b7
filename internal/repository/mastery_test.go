package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/Lyly-126/TieuLuanTotNghiep-sub000/internal/models"
	mock_repository "github.com/Lyly-126/TieuLuanTotNghiep-sub000/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMasteryMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_repository.MockQueryI)) *MasteryR {
	db := mock_repository.NewMockQueryI(ctrl)
	if setupMock != nil {
		setupMock(db)
	}

	return &MasteryR{db: db}
}

func TestMasteryR_Mastery(t *testing.T) {
	t.Parallel()

	rec := models.MasteryRecord{UserID: 1, VocabularyID: 2, CategoryID: 7, Stage: 2, Streak: 2, CorrectCount: 2}

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		want    *models.MasteryRecord
		wantErr bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.AssignableToTypeOf(&rec), gomock.Any(), int64(1), int64(2)).
					DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						*dest.(*models.MasteryRecord) = rec
						return nil
					})
			},
			want: &rec,
		},
		{
			name: "never answered",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(sql.ErrNoRows)
			},
		},
		{
			name: "db error",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newMasteryMock(t, ctrl, tt.f)

			got, err := repo.Mastery(context.Background(), 1, 2)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMasteryR_UpsertMastery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		wantErr bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
			},
		},
		{
			name: "failed exec",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("exec error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newMasteryMock(t, ctrl, tt.f)

			err := repo.UpsertMastery(context.Background(), models.MasteryRecord{UserID: 1, VocabularyID: 2})
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestMasteryR_RandomUnlearned(t *testing.T) {
	t.Parallel()

	item := models.VocabularyItem{ID: 3, CategoryID: 7, Word: "bird", Meaning: "con chim"}

	tests := []struct {
		name     string
		f        func(*mock_repository.MockQueryI)
		want     models.VocabularyItem
		notFound bool
		wantErr  bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.AssignableToTypeOf(&item), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						assert.Equal(t, []interface{}{int64(1), int64(7), 3}, args)
						*dest.(*models.VocabularyItem) = item
						return nil
					})
			},
			want: item,
		},
		{
			name: "everything learned",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(sql.ErrNoRows)
			},
			notFound: true,
			wantErr:  true,
		},
		{
			name: "db error",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newMasteryMock(t, ctrl, tt.f)

			got, err := repo.RandomUnlearned(context.Background(), 1, 7, 3)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.notFound, errors.Is(err, ErrNotFound))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMasteryR_MasteryWords(t *testing.T) {
	t.Parallel()

	words := []models.MasteryWord{{
		MasteryRecord: models.MasteryRecord{UserID: 1, VocabularyID: 2, Stage: 4, LastReviewedAt: time.Now()},
		Word:          "dog",
		Meaning:       "con chó",
	}}

	tests := []struct {
		name      string
		f         func(*mock_repository.MockQueryI)
		wantWords []models.MasteryWord
		wantTotal int
		wantErr   bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				var total int
				mqi.EXPECT().GetContext(gomock.Any(), gomock.AssignableToTypeOf(&total), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						*dest.(*int) = 1
						return nil
					})
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						assert.Equal(t, []interface{}{int64(1), 3, true, PageSize, 0}, args)
						*dest.(*[]models.MasteryWord) = words
						return nil
					})
			},
			wantWords: words,
			wantTotal: 1,
		},
		{
			name: "no words",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantWords: []models.MasteryWord{},
		},
		{
			name: "count error",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			wantErr: true,
		},
		{
			name: "select error",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						*dest.(*int) = 4
						return nil
					})
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newMasteryMock(t, ctrl, tt.f)

			got, total, err := repo.MasteryWords(context.Background(), 1, 0, true, 3)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantWords, got)
			assert.Equal(t, tt.wantTotal, total)
		})
	}
}

func TestMasteryR_MasteryStats(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := newMasteryMock(t, ctrl, func(mqi *mock_repository.MockQueryI) {
		mqi.EXPECT().GetContext(gomock.Any(), gomock.AssignableToTypeOf(&models.MasteryStats{}), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
				*dest.(*models.MasteryStats) = models.MasteryStats{TotalCount: 12, LearnedCount: 5}
				return nil
			})
	})

	got, err := repo.MasteryStats(context.Background(), 1, 3)
	require.NoError(t, err)
	assert.Equal(t, models.MasteryStats{TotalCount: 12, LearnedCount: 5, LearningCount: 7}, got)
}

func TestMasteryR_DueMastery(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Now()
	repo := newMasteryMock(t, ctrl, func(mqi *mock_repository.MockQueryI) {
		mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db error"))
	})

	_, err := repo.DueMastery(context.Background(), 1, now, 10)
	require.Error(t, err)
}
