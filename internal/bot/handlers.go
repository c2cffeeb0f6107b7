package bot

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	ButtonNewWord         = "📚 New word"
	ButtonQuiz            = "🧠 Quiz"
	ButtonMyWords         = "❗My words"
	ButtonProgress        = "📊 My progress"
	ButtonWordProgress    = "📚 Words"
	ButtonQuizProgress    = "🧠 Quizzes"
	ButtonLearnedWords    = "✅ Learned words"
	ButtonNotLearnedWords = "❌ Words in progress"
	ButtonMainMenu        = "🏠 Main menu"
	ButtonBack            = "⏪ Back"
	ButtonHelp            = "ℹ️ Help"
)

func (t *TelegramAPI) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		t.handleStartCommand(message)
	case "help":
		t.handleHelpCommand(message)
	case "quiz":
		if message.From != nil {
			t.quiz.sendNewQuiz(message, message.From.ID)
		}
	case "stop":
		t.quiz.stopQuiz(message)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Unknown command. Use /start")
		sendMessage(t.bot, msg, t.log)
	}
}

func (t *TelegramAPI) handleStartCommand(message *tgbotapi.Message) {
	welcomeText := "🤖 Xin chào! I am a bot for learning English vocabulary.\n\n" +
		"✨ What I can do:\n" +
		"• 📚 Show you a new word with its meaning\n" +
		"• 🧠 Run quizzes matched to your level\n" +
		"• 🔁 Bring words back when they are due for review\n\n" +
		"Press a button below to begin!"

	msg := tgbotapi.NewMessage(message.Chat.ID, welcomeText)
	msg.ReplyMarkup = generateMenuKeyboard()

	sendMessage(t.bot, msg, t.log)
}

func (t *TelegramAPI) showMainMenu(message *tgbotapi.Message) {
	msg := tgbotapi.NewMessage(message.Chat.ID, "🏠 Main menu:")
	msg.ReplyMarkup = generateMenuKeyboard()

	sendMessage(t.bot, msg, t.log)
}

func generateMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonNewWord),
			tgbotapi.NewKeyboardButton(ButtonQuiz),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonMyWords),
			tgbotapi.NewKeyboardButton(ButtonProgress),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonHelp),
		),
	)

	keyboard.ResizeKeyboard = true
	keyboard.OneTimeKeyboard = false

	return keyboard
}

func subMenuKeyboard(left, right string) tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(left),
			tgbotapi.NewKeyboardButton(right),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonBack),
		),
	)

	keyboard.ResizeKeyboard = true
	keyboard.OneTimeKeyboard = false

	return keyboard
}

func (t *TelegramAPI) handleHelpCommand(message *tgbotapi.Message) {
	helpText := `
📚 Commands:
/start — start the bot
/quiz — start a new quiz
/stop — abandon the current quiz
/help — this message

🎯 Buttons:
• "New word" — learn a word from your category
• "Quiz" — answer questions one by one, type the word when there are no options
• "My progress" — learned words and quiz scores
`

	msg := tgbotapi.NewMessage(message.Chat.ID, helpText)
	sendMessage(t.bot, msg, t.log)
}

func (t *TelegramAPI) handleMessage(message *tgbotapi.Message) {
	if message.From == nil {
		t.log.Warn("message without sender", zap.Int64("chat_id", message.Chat.ID))
		return
	}
	userID := message.From.ID

	switch message.Text {
	case ButtonNewWord:
		t.word.sendNewWord(message, userID)
	case ButtonQuiz:
		t.quiz.sendNewQuiz(message, userID)
	case ButtonMyWords:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Which words?")
		msg.ReplyMarkup = subMenuKeyboard(ButtonLearnedWords, ButtonNotLearnedWords)
		sendMessage(t.bot, msg, t.log)
	case ButtonProgress:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Which statistics?")
		msg.ReplyMarkup = subMenuKeyboard(ButtonWordProgress, ButtonQuizProgress)
		sendMessage(t.bot, msg, t.log)
	case ButtonWordProgress:
		t.word.sendWordStats(message)
	case ButtonQuizProgress:
		t.quiz.sendQuizStats(message)
	case ButtonLearnedWords:
		t.word.showWords(message, userID, 0, true)
	case ButtonNotLearnedWords:
		t.word.showWords(message, userID, 0, false)
	case ButtonMainMenu, ButtonBack:
		t.showMainMenu(message)
	case ButtonHelp:
		t.handleHelpCommand(message)
	default:
		if t.quiz.handleTextAnswer(message) {
			return
		}
		msg := tgbotapi.NewMessage(message.Chat.ID, "I didn't get that. Use the buttons below.")
		sendMessage(t.bot, msg, t.log)
	}
}

func (t *TelegramAPI) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	callback := tgbotapi.NewCallback(query.ID, "")
	callback.ShowAlert = false
	if _, err := t.bot.Request(callback); err != nil {
		t.log.Warn("failed to answer callback", zap.Error(err))
	}

	data := query.Data

	switch {
	case data == "know" || data == "repeat" || data == "new_word":
		t.word.handleWordCallbackQuery(query)

	case strings.HasPrefix(data, "f_") || strings.HasPrefix(data, "t_"):
		t.word.wordHandlePagination(query)

	case strings.HasPrefix(data, answerPrefix) || data == "new_quiz" || data == retryResult:
		t.quiz.handleQuizCallbackQuery(query)

	case data == "main_menu":
		if query.Message != nil {
			t.showMainMenu(query.Message)
		}

	default:
		t.log.Warn("unknown callback data", zap.String("data", data), zap.Int64("user_id", query.From.ID))
	}
}
