package cache

import (
	"sync"
	"time"

	"github.com/Lyly-126/TieuLuanTotNghiep-sub000/internal/models"
)

// Cache keeps issued quizzes until they are graded or expire, plus the
// per-user chat state of the bot.
type Cache struct {
	mu      sync.Mutex
	now     func() time.Time
	quizzes map[string]models.Quiz
	plays   map[int64]models.QuizPlay
	words   map[int64]models.VocabularyItem
}

func NewCache() *Cache {
	return &Cache{
		now:     time.Now,
		quizzes: make(map[string]models.Quiz),
		plays:   make(map[int64]models.QuizPlay),
		words:   make(map[int64]models.VocabularyItem),
	}
}

func (c *Cache) SetQuiz(quiz models.Quiz) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quizzes[quiz.ID] = quiz
}

// TakeQuiz removes the quiz and returns it, so only one caller can grade it.
// It reports false for unknown and expired quizzes.
func (c *Cache) TakeQuiz(id string) (models.Quiz, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	quiz, exists := c.quizzes[id]
	if !exists {
		return models.Quiz{}, false
	}
	delete(c.quizzes, id)
	if !quiz.ExpiresAt.IsZero() && !c.now().Before(quiz.ExpiresAt) {
		return models.Quiz{}, false
	}
	return quiz, true
}

// PurgeExpired drops expired quizzes and the chat plays built on them.
func (c *Cache) PurgeExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	purged := 0
	for id, quiz := range c.quizzes {
		if !quiz.ExpiresAt.IsZero() && !now.Before(quiz.ExpiresAt) {
			delete(c.quizzes, id)
			purged++
		}
	}
	for userID, play := range c.plays {
		if !play.Quiz.ExpiresAt.IsZero() && !now.Before(play.Quiz.ExpiresAt) {
			delete(c.plays, userID)
		}
	}
	return purged
}

func (c *Cache) SetPlay(userID int64, play models.QuizPlay) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.plays[userID] = play
}

func (c *Cache) GetPlay(userID int64) (models.QuizPlay, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	play, exists := c.plays[userID]
	return play, exists
}

func (c *Cache) DeletePlay(userID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.plays, userID)
}

func (c *Cache) SetWord(userID int64, word models.VocabularyItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.words[userID] = word
}

func (c *Cache) GetWord(userID int64) (models.VocabularyItem, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	word, exists := c.words[userID]
	return word, exists
}

func (c *Cache) DeleteWord(userID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.words, userID)
}
