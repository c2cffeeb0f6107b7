package bot

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Lyly-126/TieuLuanTotNghiep-sub000/internal/models"
	"github.com/Lyly-126/TieuLuanTotNghiep-sub000/internal/repository"
)

var skillLabels = []struct {
	skill models.Skill
	label string
}{
	{models.SkillListening, "🎧 Listening"},
	{models.SkillReading, "📖 Reading"},
	{models.SkillWriting, "✍️ Writing"},
}

// escapeMarkdown escapes the characters legacy Telegram markdown treats as markup.
func escapeMarkdown(text string) string {
	for _, c := range []string{"_", "*", "`", "["} {
		text = strings.ReplaceAll(text, c, "\\"+c)
	}
	return text
}

func formatWordCard(item models.VocabularyItem) string {
	var sb strings.Builder

	sb.WriteString("📚 *Word*: *")
	sb.WriteString(escapeMarkdown(item.Word))
	sb.WriteString("*\n\n")

	sb.WriteString("🇻🇳 *Meaning*: ")
	sb.WriteString(escapeMarkdown(item.Meaning))
	sb.WriteString("\n")

	if item.Phonetic != "" {
		sb.WriteString("🔤 *Pronunciation*: ")
		sb.WriteString(escapeMarkdown(item.Phonetic))
		sb.WriteString("\n")
	}

	if item.PartOfSpeech != "" {
		sb.WriteString("🔖 _")
		sb.WriteString(escapeMarkdown(item.PartOfSpeech))
		sb.WriteString("_\n")
	}

	if item.AudioURL != "" {
		sb.WriteString("🔊 ")
		sb.WriteString(item.AudioURL)
		sb.WriteString("\n")
	}

	return strings.TrimSpace(sb.String())
}

func formatWords(page models.WordPage) string {
	if page.Total == 0 {
		return "📭 No words here yet."
	}

	totalPages := (page.Total + repository.PageSize - 1) / repository.PageSize

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📚 Page (%d/%d) | Total words (%d):\n\n", page.Page+1, totalPages, page.Total))

	for i, word := range page.Words {
		sb.WriteString(fmt.Sprintf("%d. *%s* → _%s_\n",
			page.Page*repository.PageSize+i+1,
			escapeMarkdown(word.Word),
			escapeMarkdown(word.Meaning),
		))
		sb.WriteString("   🔁 next review: ")
		sb.WriteString(word.NextReviewAt.Format(time.DateOnly))
		if i < len(page.Words)-1 {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func formatWordStats(stats models.MasteryStats) string {
	var sb strings.Builder

	sb.WriteString("📚 *Words studied*: ")
	sb.WriteString(strconv.Itoa(stats.TotalCount))
	sb.WriteString("\n\n")

	sb.WriteString("✅ *Learned*: ")
	sb.WriteString(strconv.Itoa(stats.LearnedCount))
	sb.WriteString("\n\n")

	sb.WriteString("🔁 *Still learning*: ")
	sb.WriteString(strconv.Itoa(stats.LearningCount))

	return sb.String()
}

func formatQuestion(q models.Quiz, index int) string {
	question := q.Questions[index]

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("❓ *Question %d/%d* · %d pts\n\n", index+1, len(q.Questions), question.Points))
	sb.WriteString(escapeMarkdown(question.Prompt))

	if question.Hint != "" {
		sb.WriteString("\n💡 _")
		sb.WriteString(escapeMarkdown(question.Hint))
		sb.WriteString("_")
	}

	if question.MediaURL != "" {
		sb.WriteString("\n🔗 ")
		sb.WriteString(question.MediaURL)
	}

	if len(question.Options) == 0 {
		sb.WriteString("\n\n✍️ Type your answer.")
	}

	return sb.String()
}

func formatResult(r models.GradedResult) string {
	var sb strings.Builder

	sb.WriteString("🏁 *Quiz finished!*\n\n")
	sb.WriteString(fmt.Sprintf("✅ Correct: %d\n", r.CorrectAnswers))
	sb.WriteString(fmt.Sprintf("❌ Wrong: %d\n", r.WrongAnswers))
	sb.WriteString(fmt.Sprintf("⏭ Skipped: %d\n\n", r.SkippedAnswers))
	sb.WriteString(fmt.Sprintf("🎯 *Score*: %.1f (%s)\n", r.Score, r.Grade))
	sb.WriteString(fmt.Sprintf("⭐ *Points*: %d\n", r.PointsEarned))

	for _, s := range skillLabels {
		if score, ok := r.SkillScores[s.skill]; ok {
			sb.WriteString(fmt.Sprintf("%s: %.1f\n", s.label, score))
		}
	}

	if r.Improvement != nil {
		sb.WriteString(fmt.Sprintf("📈 Since last time: %+.1f\n", *r.Improvement))
	}

	if r.Passed {
		sb.WriteString("\n🎉 Passed!")
	} else {
		sb.WriteString("\n💪 Keep practicing!")
	}

	return sb.String()
}

func formatQuizStats(stats models.QuizStats) string {
	if stats.TotalQuizzes == 0 {
		return "🧠 No quizzes taken yet."
	}

	var sb strings.Builder

	sb.WriteString("🧠 *Quizzes taken*: ")
	sb.WriteString(strconv.Itoa(stats.TotalQuizzes))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("🎯 *Average score*: %.1f\n", stats.AverageScore))
	sb.WriteString(fmt.Sprintf("🏆 *Best score*: %.1f\n", stats.BestScore))
	sb.WriteString(fmt.Sprintf("✅ *Passed*: %d\n\n", stats.PassedCount))

	sb.WriteString(fmt.Sprintf("Answers: %d correct, %d wrong, %d skipped",
		stats.TotalCorrect, stats.TotalWrong, stats.TotalSkipped))

	return sb.String()
}
