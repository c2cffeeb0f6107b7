package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Lyly-126/TieuLuanTotNghiep-sub000/internal/models"
	"go.uber.org/zap"
)

const maxAttempts = 5

var (
	ErrEmptyWord     = errors.New("word is empty")
	ErrNoTranslation = errors.New("no translation found")
)

type VocabularyS struct {
	translator TranslatorAPII
	dictionary DictionaryAPII
	random     RandomWordAPII
	repo       VocabularyRI
	log        *zap.Logger
}

func NewVocabularyService(api APII, repo VocabularyRI, log *zap.Logger) *VocabularyS {
	return &VocabularyS{
		translator: api,
		dictionary: api,
		random:     api,
		repo:       repo,
		log:        log,
	}
}

func (v *VocabularyS) CategoryWords(ctx context.Context, categoryID int64) ([]models.VocabularyItem, error) {
	return v.repo.ListByCategory(ctx, categoryID)
}

// ImportWord looks a word up in the translation and dictionary APIs and adds
// it to the category. Either API may fail as long as one yields a meaning.
func (v *VocabularyS) ImportWord(ctx context.Context, categoryID int64, word string) (models.VocabularyItem, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return models.VocabularyItem{}, ErrEmptyWord
	}

	translation, err := v.translator.Translate(ctx, word)
	if err != nil {
		v.log.Warn("failed to translate word", zap.String("word", word), zap.Error(err))
	} else if translation.Error != "" {
		v.log.Warn("translation rejected", zap.String("word", word), zap.String("details", translation.Error))
	}

	dictData, err := v.dictionary.DictionaryData(ctx, word)
	if err != nil {
		v.log.Warn("failed to get dictionary data for word", zap.String("word", word), zap.Error(err))
	}

	meaning := strings.TrimSpace(translation.Text)
	if meaning == "" {
		meaning = strings.TrimSpace(dictData.DestinationText)
	}
	if meaning == "" {
		return models.VocabularyItem{}, fmt.Errorf("%w for word '%s'", ErrNoTranslation, word)
	}

	item := models.VocabularyItem{
		CategoryID: categoryID,
		Word:       word,
		Meaning:    meaning,
		Phonetic:   dictData.Pronunciation.SourceTextPhonetic,
		AudioURL:   dictData.Pronunciation.SourceTextAudio,
	}
	if len(dictData.Definitions) > 0 {
		item.PartOfSpeech = dictData.Definitions[0].PartOfSpeech
	}

	id, err := v.repo.AddVocabulary(ctx, item)
	if err != nil {
		return models.VocabularyItem{}, err
	}
	item.ID = id

	return item, nil
}

// ImportRandom seeds a category with up to n random words.
func (v *VocabularyS) ImportRandom(ctx context.Context, categoryID int64, n int) ([]models.VocabularyItem, error) {
	items := make([]models.VocabularyItem, 0, n)

	for attempt := 1; len(items) < n && attempt <= n*maxAttempts; attempt++ {
		word, err := v.random.RandomWord(ctx)
		if err != nil {
			v.log.Error("failed to get random word", zap.Int("attempt", attempt), zap.Error(err))
			continue
		}

		item, err := v.ImportWord(ctx, categoryID, word)
		if err != nil {
			v.log.Warn("failed to import word", zap.String("word", word), zap.Int("attempt", attempt), zap.Error(err))
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("couldn't import any word after %d attempts", n*maxAttempts)
	}

	return items, nil
}
