package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Lyly-126/TieuLuanTotNghiep-sub000/internal/models"
	"github.com/Lyly-126/TieuLuanTotNghiep-sub000/internal/service"
	"github.com/Lyly-126/TieuLuanTotNghiep-sub000/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type WordSI interface {
	NextWord(ctx context.Context, userID, categoryID int64) (models.VocabularyItem, error)
	RecordOutcome(ctx context.Context, userID, itemID, categoryID int64, correct bool) error
	Words(ctx context.Context, userID int64, page int, learned bool) (models.WordPage, error)
	WordStats(ctx context.Context, userID int64) (models.MasteryStats, error)
}

type WordT struct {
	bot        BotSender
	cache      *cache.Cache
	service    WordSI
	categoryID int64
	log        *zap.Logger
}

func NewWordTAPI(bot BotSender, cache *cache.Cache, service WordSI, categoryID int64, log *zap.Logger) *WordT {
	return &WordT{
		bot:        bot,
		cache:      cache,
		service:    service,
		categoryID: categoryID,
		log:        log,
	}
}

func (t *WordT) sendNewWord(message *tgbotapi.Message, userID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if message.From == nil {
		t.log.Warn("message without sender", zap.Int64("chat_id", message.Chat.ID))
		return
	}

	item, err := t.service.NextWord(ctx, userID, t.categoryID)
	if err != nil {
		if errors.Is(err, service.ErrNoNewWords) {
			sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, "🎉 You have learned every word in this category!"), t.log)
			return
		}
		t.log.Error("failed to get next word", zap.Int64("user_id", userID), zap.Error(err))
		sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, "Couldn't get a word. Try again later."), t.log)
		return
	}

	t.cache.SetWord(userID, item)

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		[]tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData("✅ I know it", "know"),
			tgbotapi.NewInlineKeyboardButtonData("❌ Don't know", "repeat"),
		},
	)

	msg := tgbotapi.NewMessage(message.Chat.ID, formatWordCard(item))
	msg.ParseMode = "markdown"
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg, t.log)
}

func (t *WordT) showWords(message *tgbotapi.Message, userID int64, page int, learned bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	words, err := t.service.Words(ctx, userID, page, learned)
	if err != nil {
		t.log.Error("failed to load words", zap.Int64("chat_id", message.Chat.ID), zap.Error(err))
		sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, "❌ Couldn't load words"), t.log)
		return
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, formatWords(words))
	msg.ParseMode = "markdown"
	msg.ReplyMarkup = wordPaginationKeyboard(pagePrefix(learned), page, words.HasNext)

	sendMessage(t.bot, msg, t.log)
}

func (t *WordT) sendWordStats(message *tgbotapi.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stats, err := t.service.WordStats(ctx, message.From.ID)
	if err != nil {
		t.log.Error("failed to get word stats", zap.Int64("chat_id", message.Chat.ID), zap.Error(err))
		sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, "❌ Couldn't load statistics"), t.log)
		return
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, formatWordStats(stats))
	msg.ParseMode = "markdown"
	sendMessage(t.bot, msg, t.log)
}

func (t *WordT) handleWordCallbackQuery(query *tgbotapi.CallbackQuery) {
	if query.Message == nil {
		t.log.Warn("callback query without message", zap.String("query_id", query.ID))
		return
	}

	switch query.Data {
	case "know", "repeat":
		t.handleWordResponse(query)
	case "new_word":
		t.sendNewWord(query.Message, query.From.ID)
	default:
		t.log.Warn("unknown word callback", zap.String("data", query.Data))
	}
}

func (t *WordT) handleWordResponse(query *tgbotapi.CallbackQuery) {
	userID := query.From.ID

	item, exists := t.cache.GetWord(userID)
	if !exists {
		sendMessage(t.bot, tgbotapi.NewMessage(query.Message.Chat.ID, "Couldn't find the word. Ask for a new one."), t.log)
		return
	}

	t.cache.DeleteWord(userID)

	known := query.Data == "know"
	statusText := "❌ Noted. It will come back for review tomorrow."
	if known {
		statusText = "✅ Great! The word moves up a review stage."
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := t.service.RecordOutcome(ctx, userID, item.ID, item.CategoryID, known); err != nil {
		t.log.Warn("failed to record word outcome", zap.Int64("user_id", userID), zap.Int64("vocabulary_id", item.ID), zap.Error(err))
	}

	editMsg := tgbotapi.NewEditMessageText(
		query.Message.Chat.ID,
		query.Message.MessageID,
		fmt.Sprintf("%s\n\n%s", query.Message.Text, statusText),
	)
	editMsg.ReplyMarkup = &tgbotapi.InlineKeyboardMarkup{InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{
		{tgbotapi.NewInlineKeyboardButtonData("📚 NEW WORD", "new_word")},
	}}

	sendMessage(t.bot, editMsg, t.log)
}

func (t *WordT) wordHandlePagination(query *tgbotapi.CallbackQuery) {
	if query.Message == nil {
		t.log.Warn("callback query without message", zap.Int64("user_id", query.From.ID))
		return
	}

	prefix, page, err := parsePageData(query.Data)
	if err != nil {
		t.log.Warn("invalid page data", zap.String("data", query.Data), zap.Error(err))
		sendMessage(t.bot, tgbotapi.NewMessage(query.Message.Chat.ID, "❌ Invalid page."), t.log)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	words, err := t.service.Words(ctx, query.From.ID, page, prefix == "t")
	if err != nil {
		t.log.Error("failed to load words", zap.Int64("user_id", query.From.ID), zap.Error(err))
		sendMessage(t.bot, tgbotapi.NewMessage(query.Message.Chat.ID, "❌ Couldn't load words"), t.log)
		return
	}

	editMsg := tgbotapi.NewEditMessageText(query.Message.Chat.ID, query.Message.MessageID, formatWords(words))
	editMsg.ParseMode = "markdown"
	editMsg.ReplyMarkup = wordPaginationKeyboard(prefix, page, words.HasNext)

	sendMessage(t.bot, editMsg, t.log)
}

func pagePrefix(learned bool) string {
	if learned {
		return "t"
	}
	return "f"
}

func parsePageData(data string) (string, int, error) {
	prefix, rawPage, ok := strings.Cut(data, "_")
	if !ok || (prefix != "f" && prefix != "t") {
		return "", 0, fmt.Errorf("unknown page prefix in %q", data)
	}

	page, err := strconv.Atoi(rawPage)
	if err != nil || page < 0 {
		return "", 0, fmt.Errorf("invalid page number in %q", data)
	}

	return prefix, page, nil
}

func wordPaginationKeyboard(prefix string, page int, hasNext bool) *tgbotapi.InlineKeyboardMarkup {
	var buttons [][]tgbotapi.InlineKeyboardButton

	row := make([]tgbotapi.InlineKeyboardButton, 0, 2)
	if page > 0 {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("◀️ Back", fmt.Sprintf("%s_%d", prefix, page-1)))
	}
	if hasNext {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("Next ▶️", fmt.Sprintf("%s_%d", prefix, page+1)))
	}
	if len(row) > 0 {
		buttons = append(buttons, row)
	}

	buttons = append(buttons, []tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData("📚 NEW WORD", "new_word"),
		tgbotapi.NewInlineKeyboardButtonData("🏠 Main menu", "main_menu"),
	})

	return &tgbotapi.InlineKeyboardMarkup{InlineKeyboard: buttons}
}
