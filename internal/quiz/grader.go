package quiz

import (
	"math"
	"strings"

	"github.com/Lyly-126/TieuLuanTotNghiep-sub000/internal/models"
)

const PassThreshold = 60.0

var gradeBands = []struct {
	min   float64
	label string
}{
	{90, "Excellent"},
	{80, "Good"},
	{70, "Above Average"},
	{60, "Average"},
	{50, "Weak"},
}

// Round1 rounds v half away from zero to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// MatchAnswer compares answers ignoring case and surrounding whitespace.
func MatchAnswer(userAnswer, correctAnswer string) bool {
	return strings.EqualFold(strings.TrimSpace(userAnswer), strings.TrimSpace(correctAnswer))
}

func GradeLabel(score float64) string {
	for _, b := range gradeBands {
		if score >= b.min {
			return b.label
		}
	}
	return "Needs Improvement"
}

// Grade scores a set of submissions. An answer that is empty after trimming
// counts as skipped. It has no side effects; grading the same input twice
// gives the same result.
func Grade(submissions []models.AnswerSubmission) models.GradedResult {
	res := models.GradedResult{
		TotalQuestions: len(submissions),
		SkillScores:    make(map[models.Skill]float64),
		Answers:        make([]models.AnswerResult, 0, len(submissions)),
	}

	skillTotal := make(map[models.Skill]int)
	skillCorrect := make(map[models.Skill]int)

	for _, s := range submissions {
		ar := models.AnswerResult{
			QuestionIndex: s.QuestionIndex,
			SourceItemID:  s.SourceItemID,
			Archetype:     s.Archetype,
			Skill:         s.Skill,
			UserAnswer:    s.UserAnswer,
			CorrectAnswer: s.CorrectAnswer,
		}

		switch {
		case strings.TrimSpace(s.UserAnswer) == "":
			ar.Skipped = true
			res.SkippedAnswers++
		case MatchAnswer(s.UserAnswer, s.CorrectAnswer):
			ar.Correct = true
			res.CorrectAnswers++
			res.PointsEarned += s.Points
		default:
			res.WrongAnswers++
		}

		if s.Skill != "" {
			skillTotal[s.Skill]++
			if ar.Correct {
				skillCorrect[s.Skill]++
			}
		}
		res.TimeSpentSeconds += s.TimeSpentSeconds
		res.Answers = append(res.Answers, ar)
	}

	if res.TotalQuestions > 0 {
		res.Score = Round1(100 * float64(res.CorrectAnswers) / float64(res.TotalQuestions))
	}
	for skill, total := range skillTotal {
		res.SkillScores[skill] = Round1(100 * float64(skillCorrect[skill]) / float64(total))
	}

	res.Passed = res.Score >= PassThreshold
	res.Grade = GradeLabel(res.Score)

	return res
}

// Improvement returns the previous score and the rounded change against it,
// or two nils when there is no previous result.
func Improvement(score float64, previous *models.QuizResult) (*float64, *float64) {
	if previous == nil {
		return nil, nil
	}
	prev := previous.Score
	delta := Round1(score - prev)
	return &prev, &delta
}
