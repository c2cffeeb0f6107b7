package quiz

import (
	"fmt"

	"github.com/Lyly-126/TieuLuanTotNghiep-sub000/internal/models"
)

const (
	MinQuestions = 5
	MaxQuestions = 50
)

var defaultSkills = []models.Skill{models.SkillListening, models.SkillReading, models.SkillWriting}

type AssembledQuiz struct {
	Difficulty       models.Difficulty
	AgeGroup         string
	TimeLimitSeconds int
	TotalPoints      int
	Questions        []models.Question
}

type Assembler struct {
	rnd Rand
	gen *Generator
}

func NewAssembler(rnd Rand) *Assembler {
	return &Assembler{rnd: rnd, gen: NewGenerator(rnd)}
}

// QuestionCount clamps the requested count into [MinQuestions, MaxQuestions]
// and then to the pool size.
func QuestionCount(requested, poolSize int) int {
	n := requested
	if n < MinQuestions {
		n = MinQuestions
	}
	if n > MaxQuestions {
		n = MaxQuestions
	}
	if n > poolSize {
		n = poolSize
	}
	return n
}

// Assemble samples items from pool without replacement and turns each into a
// question. AUTO difficulty must be resolved by the caller; anything that is
// not an explicit tier is treated as ADULT.
func (a *Assembler) Assemble(spec models.QuizSpec, pool []models.VocabularyItem, difficulty models.Difficulty) (AssembledQuiz, error) {
	if len(pool) == 0 {
		return AssembledQuiz{}, ErrEmptyCategory
	}

	switch difficulty {
	case models.DifficultyKids, models.DifficultyTeen, models.DifficultyAdult:
	default:
		difficulty = models.DifficultyAdult
	}

	archetypes := spec.Archetypes
	if len(archetypes) == 0 {
		archetypes = AllowedArchetypes(difficulty)
		if !spec.IncludeMedia {
			archetypes = withoutMedia(archetypes)
		}
	}
	for _, at := range archetypes {
		if !IsKnownArchetype(at) {
			return AssembledQuiz{}, fmt.Errorf("%w: %q", ErrUnknownArchetype, at)
		}
	}

	skills := spec.SkillFocus
	if len(skills) == 0 {
		skills = defaultSkills
	}
	for _, s := range skills {
		if !IsKnownSkill(s) {
			return AssembledQuiz{}, fmt.Errorf("%w: %q", ErrUnknownSkill, s)
		}
	}

	shuffled := make([]models.VocabularyItem, len(pool))
	copy(shuffled, pool)
	a.rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	selected := shuffled[:QuestionCount(spec.QuestionCount, len(pool))]

	out := AssembledQuiz{
		Difficulty:       difficulty,
		AgeGroup:         AgeGroup(difficulty),
		TimeLimitSeconds: spec.TimeLimitSeconds,
		Questions:        make([]models.Question, 0, len(selected)),
	}

	for i, item := range selected {
		archetype := archetypes[a.rnd.Intn(len(archetypes))]
		if !hasMedia(item, archetype, spec.IncludeMedia) {
			archetype = models.ArchetypeMultipleChoiceEnVi
		}
		skill := skills[a.rnd.Intn(len(skills))]

		q, err := a.gen.Generate(item, pool, archetype, skill, difficulty, spec.IncludeMedia)
		if err != nil {
			return AssembledQuiz{}, err
		}
		q.Index = i
		out.TotalPoints += q.Points
		out.Questions = append(out.Questions, q)
	}

	return out, nil
}

func needsAudio(a models.Archetype) bool {
	return a == models.ArchetypeListeningChoice || a == models.ArchetypeListeningTyping
}

// hasMedia reports whether item can back a question of archetype a. Media
// archetypes need the matching URL and includeMedia; the rest always can.
func hasMedia(item models.VocabularyItem, a models.Archetype, includeMedia bool) bool {
	switch {
	case needsAudio(a):
		return includeMedia && item.AudioURL != ""
	case a == models.ArchetypeImageChoice:
		return includeMedia && item.ImageURL != ""
	}
	return true
}

func withoutMedia(list []models.Archetype) []models.Archetype {
	out := make([]models.Archetype, 0, len(list))
	for _, a := range list {
		if needsAudio(a) || a == models.ArchetypeImageChoice {
			continue
		}
		out = append(out, a)
	}
	return out
}
