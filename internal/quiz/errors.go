package quiz

import "errors"

var (
	ErrEmptyCategory    = errors.New("category has no vocabulary items")
	ErrUnknownArchetype = errors.New("unknown question archetype")
	ErrUnknownSkill     = errors.New("unknown skill")
)
