// Package quiz generates vocabulary quizzes and grades submitted answers.
//
// Everything here is pure: vocabulary comes in as values, randomness comes in
// through Rand, and nothing touches storage.
package quiz

import (
	"strings"
	"time"

	"github.com/Lyly-126/TieuLuanTotNghiep-sub000/internal/models"
)

const (
	kidsMaxAge = 12
	teenMaxAge = 18
)

var allowedArchetypes = map[models.Difficulty][]models.Archetype{
	models.DifficultyKids: {
		models.ArchetypeImageChoice,
		models.ArchetypeMultipleChoiceEnVi,
		models.ArchetypeTrueFalse,
		models.ArchetypeListeningChoice,
	},
	models.DifficultyTeen: {
		models.ArchetypeMultipleChoiceEnVi,
		models.ArchetypeMultipleChoiceViEn,
		models.ArchetypeTrueFalse,
		models.ArchetypeListeningChoice,
		models.ArchetypeFillBlank,
		models.ArchetypeArrangeLetters,
	},
	models.DifficultyAdult: {
		models.ArchetypeMultipleChoiceEnVi,
		models.ArchetypeMultipleChoiceViEn,
		models.ArchetypeListeningChoice,
		models.ArchetypeFillBlank,
		models.ArchetypeArrangeLetters,
		models.ArchetypeTyping,
		models.ArchetypeListeningTyping,
	},
}

// ParseDifficulty maps free-form input onto a tier. Anything unrecognised is AUTO.
func ParseDifficulty(s string) models.Difficulty {
	d := models.Difficulty(strings.ToUpper(strings.TrimSpace(s)))
	switch d {
	case models.DifficultyKids, models.DifficultyTeen, models.DifficultyAdult:
		return d
	}
	return models.DifficultyAuto
}

// ResolveDifficulty returns the requested tier when it is explicit and derives
// one from the learner's age otherwise. A missing birth date resolves to ADULT.
func ResolveDifficulty(birthDate *time.Time, requested models.Difficulty, now time.Time) models.Difficulty {
	switch requested {
	case models.DifficultyKids, models.DifficultyTeen, models.DifficultyAdult:
		return requested
	}

	if birthDate == nil {
		return models.DifficultyAdult
	}

	age := ageAt(*birthDate, now)
	switch {
	case age < kidsMaxAge:
		return models.DifficultyKids
	case age < teenMaxAge:
		return models.DifficultyTeen
	default:
		return models.DifficultyAdult
	}
}

func ageAt(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}
	return years
}

// AllowedArchetypes returns the archetypes a tier may draw from, easiest first.
func AllowedArchetypes(d models.Difficulty) []models.Archetype {
	list, ok := allowedArchetypes[d]
	if !ok {
		list = allowedArchetypes[models.DifficultyAdult]
	}
	out := make([]models.Archetype, len(list))
	copy(out, list)
	return out
}

func PointsPerQuestion(d models.Difficulty) int {
	switch d {
	case models.DifficultyKids:
		return 10
	case models.DifficultyTeen:
		return 15
	default:
		return 20
	}
}

func AgeGroup(d models.Difficulty) string {
	switch d {
	case models.DifficultyKids:
		return "kids"
	case models.DifficultyTeen:
		return "teen"
	default:
		return "adult"
	}
}

// MaskFraction is the share of letters hidden in a FILL_BLANK word.
func MaskFraction(d models.Difficulty) float64 {
	switch d {
	case models.DifficultyKids:
		return 1.0 / 3.0
	case models.DifficultyTeen:
		return 0.5
	default:
		return 0.7
	}
}

// IsKnownArchetype reports whether a is one of the nine question archetypes.
func IsKnownArchetype(a models.Archetype) bool {
	switch a {
	case models.ArchetypeMultipleChoiceEnVi,
		models.ArchetypeMultipleChoiceViEn,
		models.ArchetypeFillBlank,
		models.ArchetypeListeningChoice,
		models.ArchetypeListeningTyping,
		models.ArchetypeImageChoice,
		models.ArchetypeTrueFalse,
		models.ArchetypeTyping,
		models.ArchetypeArrangeLetters:
		return true
	}
	return false
}

func IsKnownSkill(s models.Skill) bool {
	switch s {
	case models.SkillListening, models.SkillReading, models.SkillWriting:
		return true
	}
	return false
}
