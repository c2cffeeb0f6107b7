package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/Lyly-126/TieuLuanTotNghiep-sub000/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_Quiz(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	c := NewCache()
	c.now = func() time.Time { return now }

	c.SetQuiz(models.Quiz{ID: "live", UserID: 1, ExpiresAt: now.Add(time.Hour)})
	c.SetQuiz(models.Quiz{ID: "stale", UserID: 1, ExpiresAt: now.Add(-time.Second)})

	got, ok := c.TakeQuiz("live")
	require.True(t, ok)
	assert.Equal(t, int64(1), got.UserID)

	_, ok = c.TakeQuiz("live")
	assert.False(t, ok)

	_, ok = c.TakeQuiz("stale")
	assert.False(t, ok)
	assert.Empty(t, c.quizzes)

	_, ok = c.TakeQuiz("missing")
	assert.False(t, ok)
}

func TestCache_TakeQuiz_Once(t *testing.T) {
	t.Parallel()

	c := NewCache()
	c.SetQuiz(models.Quiz{ID: "q", ExpiresAt: time.Now().Add(time.Hour)})

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		taken int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := c.TakeQuiz("q"); ok {
				mu.Lock()
				taken++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, taken)
}

func TestCache_PurgeExpired(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	c := NewCache()
	c.now = func() time.Time { return now }

	stale := models.Quiz{ID: "a", ExpiresAt: now.Add(-time.Minute)}
	live := models.Quiz{ID: "b", ExpiresAt: now.Add(time.Minute)}
	c.SetQuiz(stale)
	c.SetQuiz(live)
	c.SetPlay(10, models.QuizPlay{Quiz: stale})
	c.SetPlay(11, models.QuizPlay{Quiz: live})

	assert.Equal(t, 1, c.PurgeExpired())

	_, ok := c.GetPlay(10)
	assert.False(t, ok)
	_, ok = c.GetPlay(11)
	assert.True(t, ok)
	_, ok = c.TakeQuiz("b")
	assert.True(t, ok)
}

func TestCache_Word(t *testing.T) {
	t.Parallel()

	c := NewCache()
	c.SetWord(1, models.VocabularyItem{ID: 3, Word: "bird"})

	got, ok := c.GetWord(1)
	require.True(t, ok)
	assert.Equal(t, "bird", got.Word)

	c.DeleteWord(1)
	_, ok = c.GetWord(1)
	assert.False(t, ok)
}

func TestCache_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	c := NewCache()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := string(rune('a' + i%26))
			c.SetQuiz(models.Quiz{ID: id, ExpiresAt: time.Now().Add(time.Hour)})
			c.TakeQuiz(id)
			c.SetPlay(int64(i), models.QuizPlay{Current: i})
			c.PurgeExpired()
		}(i)
	}
	wg.Wait()

	_, ok := c.GetPlay(49)
	assert.True(t, ok)
}
