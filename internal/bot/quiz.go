package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Lyly-126/TieuLuanTotNghiep-sub000/internal/config"
	"github.com/Lyly-126/TieuLuanTotNghiep-sub000/internal/models"
	"github.com/Lyly-126/TieuLuanTotNghiep-sub000/internal/quiz"
	"github.com/Lyly-126/TieuLuanTotNghiep-sub000/internal/service"
	"github.com/Lyly-126/TieuLuanTotNghiep-sub000/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// answerPrefix starts the callback data of an option button: qa_<question>_<option|skip>.
const (
	answerPrefix = "qa_"
	skipOption   = "skip"
	retryResult  = "retry_result"
)

type QuizSI interface {
	AssembleQuiz(ctx context.Context, userID int64, spec models.QuizSpec) (models.Quiz, error)
	GradeSubmission(ctx context.Context, userID int64, quizID string, answers []models.SubmittedAnswer) (models.GradedResult, error)
	QuizStats(ctx context.Context, userID int64, categoryID *int64) (models.QuizStats, error)
}

type QuizT struct {
	bot           BotSender
	cache         *cache.Cache
	service       QuizSI
	categoryID    int64
	questionCount int
	now           func() time.Time
	log           *zap.Logger
}

func NewQuizTAPI(bot BotSender, cache *cache.Cache, service QuizSI, cfg config.BotConfig, log *zap.Logger) *QuizT {
	return &QuizT{
		bot:           bot,
		cache:         cache,
		service:       service,
		categoryID:    cfg.CategoryID,
		questionCount: cfg.QuestionCount,
		now:           time.Now,
		log:           log,
	}
}

func (t *QuizT) sendNewQuiz(message *tgbotapi.Message, userID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if message.From == nil {
		t.log.Warn("message without sender", zap.Int64("chat_id", message.Chat.ID))
		return
	}

	issued, err := t.service.AssembleQuiz(ctx, userID, models.QuizSpec{
		CategoryID:    t.categoryID,
		Difficulty:    models.DifficultyAuto,
		QuestionCount: t.questionCount,
	})
	if err != nil {
		t.log.Error("failed to assemble quiz", zap.Int64("user_id", userID), zap.Error(err))
		text := "❌ Couldn't start a quiz. Try again later."
		if errors.Is(err, quiz.ErrEmptyCategory) {
			text = "📭 There are no words in this category yet."
		}
		sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, text), t.log)
		return
	}

	play := models.QuizPlay{Quiz: issued, QuestionSent: t.now()}
	t.cache.SetPlay(userID, play)

	t.sendQuestion(message.Chat.ID, play)
}

func (t *QuizT) sendQuestion(chatID int64, play models.QuizPlay) {
	msg := tgbotapi.NewMessage(chatID, formatQuestion(play.Quiz, play.Current))
	msg.ParseMode = "markdown"
	msg.ReplyMarkup = questionKeyboard(play.Quiz.Questions[play.Current])

	sendMessage(t.bot, msg, t.log)
}

func questionKeyboard(q models.Question) *tgbotapi.InlineKeyboardMarkup {
	var buttons [][]tgbotapi.InlineKeyboardButton

	row := make([]tgbotapi.InlineKeyboardButton, 0, 2)
	for i, option := range q.Options {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(option, answerData(q.Index, strconv.Itoa(i))))
		if len(row) == 2 {
			buttons = append(buttons, row)
			row = make([]tgbotapi.InlineKeyboardButton, 0, 2)
		}
	}
	if len(row) > 0 {
		buttons = append(buttons, row)
	}

	buttons = append(buttons, []tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData("⏭ Skip", answerData(q.Index, skipOption)),
	})

	return &tgbotapi.InlineKeyboardMarkup{InlineKeyboard: buttons}
}

func answerData(index int, option string) string {
	return fmt.Sprintf("%s%d_%s", answerPrefix, index, option)
}

// parseAnswerData returns the question index and the option index, or -1
// for a skipped question.
func parseAnswerData(data string) (int, int, error) {
	parts := strings.Split(strings.TrimPrefix(data, answerPrefix), "_")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid answer data %q", data)
	}

	index, err := strconv.Atoi(parts[0])
	if err != nil || index < 0 {
		return 0, 0, fmt.Errorf("invalid question index in %q", data)
	}

	if parts[1] == skipOption {
		return index, -1, nil
	}

	option, err := strconv.Atoi(parts[1])
	if err != nil || option < 0 {
		return 0, 0, fmt.Errorf("invalid option in %q", data)
	}

	return index, option, nil
}

func (t *QuizT) handleQuizCallbackQuery(query *tgbotapi.CallbackQuery) {
	if query.Message == nil {
		t.log.Warn("callback query without message", zap.String("query_id", query.ID))
		return
	}

	switch {
	case query.Data == "new_quiz":
		t.sendNewQuiz(query.Message, query.From.ID)
	case strings.HasPrefix(query.Data, answerPrefix):
		t.processOptionAnswer(query)
	case query.Data == retryResult:
		t.retryResult(query)
	default:
		t.log.Warn("unknown quiz callback", zap.String("data", query.Data))
	}
}

func (t *QuizT) processOptionAnswer(query *tgbotapi.CallbackQuery) {
	userID := query.From.ID
	chatID := query.Message.Chat.ID

	play, ok := t.cache.GetPlay(userID)
	if !ok {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "❌ No active quiz. Press Quiz to start one."), t.log)
		return
	}

	index, option, err := parseAnswerData(query.Data)
	if err != nil {
		t.log.Warn("failed to parse answer", zap.Int64("user_id", userID), zap.Error(err))
		return
	}
	if index != play.Current {
		t.log.Debug("stale answer button", zap.Int64("user_id", userID), zap.Int("index", index))
		return
	}

	question := play.Quiz.Questions[play.Current]
	answer := ""
	if option >= 0 {
		if option >= len(question.Options) {
			t.log.Warn("option out of range", zap.Int64("user_id", userID), zap.Int("option", option))
			return
		}
		answer = question.Options[option]
	}

	feedback := t.recordAnswer(&play, answer)

	editMsg := tgbotapi.NewEditMessageText(chatID, query.Message.MessageID, query.Message.Text+"\n\n"+feedback)
	sendMessage(t.bot, editMsg, t.log)

	t.advance(chatID, userID, play)
}

// handleTextAnswer takes a typed answer for the current question. It reports
// whether the message belonged to a quiz.
func (t *QuizT) handleTextAnswer(message *tgbotapi.Message) bool {
	userID := message.From.ID

	play, ok := t.cache.GetPlay(userID)
	if !ok {
		return false
	}

	if play.Current >= len(play.Quiz.Questions) {
		sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, "☝️ Press Retry to save your result."), t.log)
		return true
	}

	if len(play.Quiz.Questions[play.Current].Options) > 0 {
		sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, "☝️ Choose one of the options above."), t.log)
		return true
	}

	feedback := t.recordAnswer(&play, message.Text)
	sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, feedback), t.log)

	t.advance(message.Chat.ID, userID, play)

	return true
}

func (t *QuizT) recordAnswer(play *models.QuizPlay, answer string) string {
	question := play.Quiz.Questions[play.Current]

	spent := int(t.now().Sub(play.QuestionSent).Seconds())
	if spent < 0 {
		spent = 0
	}

	play.Answers = append(play.Answers, models.SubmittedAnswer{
		QuestionIndex:    question.Index,
		UserAnswer:       answer,
		TimeSpentSeconds: spent,
	})
	play.Current++

	switch {
	case strings.TrimSpace(answer) == "":
		return "⏭ Skipped. Answer: " + question.CorrectAnswer
	case quiz.MatchAnswer(answer, question.CorrectAnswer):
		play.Correct++
		return "✅ Correct!"
	default:
		return "❌ Wrong. Answer: " + question.CorrectAnswer
	}
}

func (t *QuizT) advance(chatID, userID int64, play models.QuizPlay) {
	if play.Current < len(play.Quiz.Questions) {
		play.QuestionSent = t.now()
		t.cache.SetPlay(userID, play)
		t.sendQuestion(chatID, play)
		return
	}

	t.finishQuiz(chatID, userID, play)
}

// finishQuiz grades the play. The play stays cached until the result is
// saved, so a failed save can be retried from the chat.
func (t *QuizT) finishQuiz(chatID, userID int64, play models.QuizPlay) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := t.service.GradeSubmission(ctx, userID, play.Quiz.ID, play.Answers)
	if err != nil {
		t.log.Error("failed to grade quiz", zap.Int64("user_id", userID), zap.String("quiz_id", play.Quiz.ID), zap.Error(err))

		if errors.Is(err, service.ErrQuizNotFound) || errors.Is(err, service.ErrQuizOwnership) {
			t.cache.DeletePlay(userID)
			sendMessage(t.bot, tgbotapi.NewMessage(chatID, "⌛ The quiz has expired. Start a new one."), t.log)
			return
		}

		t.cache.SetPlay(userID, play)

		msg := tgbotapi.NewMessage(chatID, "❌ Couldn't save the quiz result. Try again.")
		keyboard := tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("🔁 Retry", retryResult)),
		)
		msg.ReplyMarkup = &keyboard
		sendMessage(t.bot, msg, t.log)
		return
	}

	t.cache.DeletePlay(userID)

	msg := tgbotapi.NewMessage(chatID, formatResult(result))
	msg.ParseMode = "markdown"
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("🧠 NEW QUIZ", "new_quiz")),
	)
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg, t.log)
}

func (t *QuizT) retryResult(query *tgbotapi.CallbackQuery) {
	userID := query.From.ID
	chatID := query.Message.Chat.ID

	play, ok := t.cache.GetPlay(userID)
	if !ok {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "❌ No active quiz. Press Quiz to start one."), t.log)
		return
	}
	if play.Current < len(play.Quiz.Questions) {
		t.log.Debug("retry before the last answer", zap.Int64("user_id", userID))
		return
	}

	t.finishQuiz(chatID, userID, play)
}

func (t *QuizT) stopQuiz(message *tgbotapi.Message) {
	if message.From == nil {
		return
	}

	text := "There is no quiz to stop."
	if _, ok := t.cache.GetPlay(message.From.ID); ok {
		t.cache.DeletePlay(message.From.ID)
		text = "🛑 Quiz stopped."
	}

	sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, text), t.log)
}

func (t *QuizT) sendQuizStats(message *tgbotapi.Message) {
	userID := message.From.ID
	chatID := message.Chat.ID
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stats, err := t.service.QuizStats(ctx, userID, nil)
	if err != nil {
		t.log.Error("failed to get quiz stats", zap.Int64("user_id", userID), zap.Error(err))
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "❌ Couldn't load statistics"), t.log)
		return
	}

	msg := tgbotapi.NewMessage(chatID, formatQuizStats(stats))
	msg.ParseMode = "markdown"

	sendMessage(t.bot, msg, t.log)
}
