package quiz

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/Lyly-126/TieuLuanTotNghiep-sub000/internal/models"
)

const (
	OptionCount = 4
	MaskRune    = '_'

	AnswerTrue  = "True"
	AnswerFalse = "False"
)

// Rand is the part of *rand.Rand the engine draws from.
type Rand interface {
	Intn(n int) int
	Perm(n int) []int
	Shuffle(n int, swap func(i, j int))
}

type Generator struct {
	rnd Rand
}

func NewGenerator(rnd Rand) *Generator {
	return &Generator{rnd: rnd}
}

// Generate builds one question of the given archetype from item. all is the
// pool distractors are drawn from; it may contain item itself.
func (g *Generator) Generate(item models.VocabularyItem, all []models.VocabularyItem, archetype models.Archetype,
	skill models.Skill, difficulty models.Difficulty, includeMedia bool) (models.Question, error) {
	q := models.Question{
		SourceItemID: item.ID,
		Archetype:    archetype,
		Skill:        skill,
		Points:       PointsPerQuestion(difficulty),
	}

	switch archetype {
	case models.ArchetypeMultipleChoiceEnVi:
		q.Prompt = fmt.Sprintf("What does %q mean?", item.Word)
		q.CorrectAnswer = item.Meaning
		q.Options = g.options(item, all, meaningOf)

	case models.ArchetypeMultipleChoiceViEn:
		q.Prompt = fmt.Sprintf("Which word means %q?", item.Meaning)
		q.CorrectAnswer = item.Word
		q.Options = g.options(item, all, wordOf)

	case models.ArchetypeListeningChoice:
		q.Prompt = "Listen and choose the word you hear."
		q.CorrectAnswer = item.Word
		q.Options = g.options(item, all, wordOf)
		q.MediaURL = media(includeMedia, item.AudioURL)

	case models.ArchetypeImageChoice:
		q.Prompt = "Which word matches the picture?"
		q.CorrectAnswer = item.Word
		q.Options = g.options(item, all, wordOf)
		q.MediaURL = media(includeMedia, item.ImageURL)

	case models.ArchetypeFillBlank:
		q.Prompt = fmt.Sprintf("Fill in the missing letters: %s", g.mask(item.Word, MaskFraction(difficulty)))
		q.CorrectAnswer = item.Word
		q.Hint = item.Meaning

	case models.ArchetypeListeningTyping:
		q.Prompt = "Listen and type the word you hear."
		q.CorrectAnswer = item.Word
		q.Hint = lengthHint(item.Word)
		q.MediaURL = media(includeMedia, item.AudioURL)

	case models.ArchetypeTyping:
		q.Prompt = fmt.Sprintf("Type the English word for %q.", item.Meaning)
		q.CorrectAnswer = item.Word
		q.Hint = firstLetterHint(item.Word)

	case models.ArchetypeArrangeLetters:
		q.Prompt = fmt.Sprintf("Arrange the letters to make a word: %s", g.scramble(item.Word))
		q.CorrectAnswer = item.Word
		q.Hint = item.Meaning

	case models.ArchetypeTrueFalse:
		statement, answer := item.Meaning, AnswerTrue
		if g.rnd.Intn(2) == 1 {
			if other, ok := g.otherMeaning(item, all); ok {
				statement, answer = other, AnswerFalse
			}
		}
		q.Prompt = fmt.Sprintf("%q means %q. True or false?", item.Word, statement)
		q.CorrectAnswer = answer
		q.Options = []string{AnswerTrue, AnswerFalse}

	default:
		return models.Question{}, fmt.Errorf("%w: %q", ErrUnknownArchetype, archetype)
	}

	return q, nil
}

func wordOf(it models.VocabularyItem) string    { return it.Word }
func meaningOf(it models.VocabularyItem) string { return it.Meaning }

func media(include bool, url string) string {
	if !include {
		return ""
	}
	return url
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// options returns exactly OptionCount shuffled choices: the item's value, up to
// three distinct values from other items, and placeholders for any shortfall.
func (g *Generator) options(item models.VocabularyItem, all []models.VocabularyItem, value func(models.VocabularyItem) string) []string {
	correct := value(item)
	seen := map[string]bool{normalize(correct): true}

	candidates := make([]string, 0, len(all))
	for _, other := range all {
		if other.ID == item.ID {
			continue
		}
		v := strings.TrimSpace(value(other))
		if v == "" || seen[normalize(v)] {
			continue
		}
		seen[normalize(v)] = true
		candidates = append(candidates, v)
	}

	g.rnd.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if len(candidates) > OptionCount-1 {
		candidates = candidates[:OptionCount-1]
	}

	options := make([]string, 0, OptionCount)
	options = append(options, correct)
	options = append(options, candidates...)
	for n := 1; len(options) < OptionCount; n++ {
		placeholder := fmt.Sprintf("(no answer %d)", n)
		if seen[normalize(placeholder)] {
			continue
		}
		seen[normalize(placeholder)] = true
		options = append(options, placeholder)
	}

	g.rnd.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}

// MaskedCount is how many letters of a word with n runes get hidden.
func MaskedCount(n int, fraction float64) int {
	return int(math.Round(float64(n) * fraction))
}

func (g *Generator) mask(word string, fraction float64) string {
	runes := []rune(word)
	for _, pos := range g.rnd.Perm(len(runes))[:MaskedCount(len(runes), fraction)] {
		runes[pos] = MaskRune
	}
	return string(runes)
}

func (g *Generator) scramble(word string) string {
	runes := []rune(word)
	g.rnd.Shuffle(len(runes), func(i, j int) {
		runes[i], runes[j] = runes[j], runes[i]
	})
	return string(runes)
}

func (g *Generator) otherMeaning(item models.VocabularyItem, all []models.VocabularyItem) (string, bool) {
	own := normalize(item.Meaning)
	seen := make(map[string]bool)
	var candidates []string
	for _, other := range all {
		m := strings.TrimSpace(other.Meaning)
		if other.ID == item.ID || m == "" || normalize(m) == own || seen[normalize(m)] {
			continue
		}
		seen[normalize(m)] = true
		candidates = append(candidates, m)
	}
	if len(candidates) == 0 {
		return "", false
	}
	return candidates[g.rnd.Intn(len(candidates))], true
}

func lengthHint(word string) string {
	n := utf8.RuneCountInString(word)
	if n == 1 {
		return "1 letter"
	}
	return fmt.Sprintf("%d letters", n)
}

// firstLetterHint gives the first letter only when that does not reveal the
// whole word.
func firstLetterHint(word string) string {
	runes := []rune(word)
	if len(runes) <= 1 {
		return lengthHint(word)
	}
	return fmt.Sprintf("Starts with %q, %d letters", string(runes[0]), len(runes))
}
