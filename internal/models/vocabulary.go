package models

import "time"

type VocabularyItem struct {
	ID           int64  `db:"id" json:"id"`
	CategoryID   int64  `db:"category_id" json:"categoryId"`
	Word         string `db:"word" json:"word"`
	Meaning      string `db:"meaning" json:"meaning"`
	PartOfSpeech string `db:"part_of_speech" json:"partOfSpeech,omitempty"`
	Phonetic     string `db:"phonetic" json:"phonetic,omitempty"`
	ImageURL     string `db:"image_url" json:"imageUrl,omitempty"`
	AudioURL     string `db:"audio_url" json:"audioUrl,omitempty"`
}

type MasteryRecord struct {
	UserID         int64     `db:"user_id" json:"userId"`
	VocabularyID   int64     `db:"vocabulary_id" json:"vocabularyId"`
	CategoryID     int64     `db:"category_id" json:"categoryId"`
	CorrectCount   int       `db:"correct_count" json:"correctCount"`
	IncorrectCount int       `db:"incorrect_count" json:"incorrectCount"`
	Streak         int       `db:"streak" json:"streak"`
	Stage          int       `db:"stage" json:"stage"`
	NextReviewAt   time.Time `db:"next_review_at" json:"nextReviewAt"`
	LastReviewedAt time.Time `db:"last_reviewed_at" json:"lastReviewedAt"`
}

type MasteryWord struct {
	MasteryRecord
	Word    string `db:"word" json:"word"`
	Meaning string `db:"meaning" json:"meaning"`
}

type MasteryStats struct {
	TotalCount    int `db:"total_count" json:"totalCount"`
	LearnedCount  int `db:"learned_count" json:"learnedCount"`
	LearningCount int `db:"learning_count" json:"learningCount"`
}

type WordPage struct {
	Words   []MasteryWord
	Total   int
	Page    int
	HasNext bool
}
