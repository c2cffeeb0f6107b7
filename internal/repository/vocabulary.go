package repository

import (
	"context"
	"fmt"

	"github.com/Lyly-126/TieuLuanTotNghiep-sub000/internal/models"
)

type VocabularyR struct {
	db QueryI
}

func NewVocabularyRepository(db QueryI) *VocabularyR {
	return &VocabularyR{db: db}
}

func (v *VocabularyR) ListByCategory(ctx context.Context, categoryID int64) ([]models.VocabularyItem, error) {
	query := `
		SELECT id, category_id, word, meaning, part_of_speech, phonetic, image_url, audio_url
		FROM vocabulary
		WHERE category_id = $1
		ORDER BY id
	`

	items := make([]models.VocabularyItem, 0)
	err := v.db.SelectContext(ctx, &items, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vocabulary of category %d: %w", categoryID, err)
	}

	return items, nil
}

func (v *VocabularyR) AddVocabulary(ctx context.Context, item models.VocabularyItem) (int64, error) {
	query := `INSERT INTO vocabulary (category_id, word, meaning, part_of_speech, phonetic, image_url, audio_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (category_id, word)
		DO UPDATE SET
			meaning = EXCLUDED.meaning,
			part_of_speech = COALESCE(NULLIF(EXCLUDED.part_of_speech, ''), vocabulary.part_of_speech),
			phonetic = COALESCE(NULLIF(EXCLUDED.phonetic, ''), vocabulary.phonetic),
			image_url = COALESCE(NULLIF(EXCLUDED.image_url, ''), vocabulary.image_url),
			audio_url = COALESCE(NULLIF(EXCLUDED.audio_url, ''), vocabulary.audio_url)
		RETURNING id
	`

	var id int64
	err := v.db.GetContext(ctx, &id, query, item.CategoryID, item.Word, item.Meaning,
		item.PartOfSpeech, item.Phonetic, item.ImageURL, item.AudioURL)
	if err != nil {
		return 0, fmt.Errorf("failed to add word %q: %w", item.Word, err)
	}

	return id, nil
}
