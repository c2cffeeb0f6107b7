package bot

import (
	"testing"
	"time"

	mock_bot "github.com/Lyly-126/TieuLuanTotNghiep-sub000/internal/bot/mock"
	"github.com/Lyly-126/TieuLuanTotNghiep-sub000/internal/config"
	"github.com/Lyly-126/TieuLuanTotNghiep-sub000/internal/models"
	"github.com/Lyly-126/TieuLuanTotNghiep-sub000/internal/quiz"
	"github.com/Lyly-126/TieuLuanTotNghiep-sub000/internal/service"
	"github.com/Lyly-126/TieuLuanTotNghiep-sub000/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var botNow = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

func newQuizTMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_bot.MockServiceI, *mock_bot.MockBot)) (*QuizT, *mock_bot.MockBot) {
	mockService := mock_bot.NewMockServiceI(ctrl)
	mockBot := &mock_bot.MockBot{}

	if setupMock != nil {
		setupMock(mockService, mockBot)
	}

	quizT := NewQuizTAPI(mockBot, cache.NewCache(), mockService, config.BotConfig{CategoryID: 7, QuestionCount: 5}, zap.NewNop())
	quizT.now = func() time.Time { return botNow }

	return quizT, mockBot
}

func botQuiz() models.Quiz {
	return models.Quiz{
		ID:         "quiz-1",
		UserID:     456,
		CategoryID: 7,
		Questions: []models.Question{
			{
				Index:         0,
				SourceItemID:  1,
				Archetype:     models.ArchetypeMultipleChoiceEnVi,
				Skill:         models.SkillReading,
				Prompt:        `What does "cat" mean?`,
				Options:       []string{"mèo", "chó", "gà", "cá"},
				CorrectAnswer: "mèo",
				Points:        10,
			},
			{
				Index:         1,
				SourceItemID:  2,
				Archetype:     models.ArchetypeTyping,
				Skill:         models.SkillWriting,
				Prompt:        `Type the English word for "chó".`,
				CorrectAnswer: "dog",
				Hint:          "Starts with \"d\", 3 letters",
				Points:        10,
			},
		},
		IssuedAt:  botNow,
		ExpiresAt: botNow.Add(time.Hour),
	}
}

func TestQuizT_sendNewQuiz(t *testing.T) {
	t.Parallel()

	spec := models.QuizSpec{CategoryID: 7, Difficulty: models.DifficultyAuto, QuestionCount: 5}

	tests := []struct {
		name       string
		message    *tgbotapi.Message
		f          func(*mock_bot.MockServiceI, *mock_bot.MockBot)
		assertFunc func(*testing.T, *mock_bot.MockBot, *cache.Cache)
	}{
		{
			name: "success: sends first question with options",
			message: &tgbotapi.Message{
				Chat: &tgbotapi.Chat{ID: 123},
				From: &tgbotapi.User{ID: 456},
			},
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().AssembleQuiz(gomock.Any(), int64(456), spec).Return(botQuiz(), nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot, c *cache.Cache) {
				require.Len(t, mb.SentMessages, 1)
				msg, ok := mb.SentMessages[0].(tgbotapi.MessageConfig)
				require.True(t, ok)
				assert.Contains(t, msg.Text, "Question 1/2")
				assert.Equal(t, "markdown", msg.ParseMode)

				kb, ok := msg.ReplyMarkup.(*tgbotapi.InlineKeyboardMarkup)
				require.True(t, ok)
				require.Len(t, kb.InlineKeyboard, 3)
				assert.Equal(t, "mèo", kb.InlineKeyboard[0][0].Text)
				assert.Equal(t, "qa_0_0", *kb.InlineKeyboard[0][0].CallbackData)
				assert.Equal(t, "qa_0_skip", *kb.InlineKeyboard[2][0].CallbackData)

				play, ok := c.GetPlay(456)
				require.True(t, ok)
				assert.Equal(t, 0, play.Current)
				assert.Equal(t, "quiz-1", play.Quiz.ID)
			},
		},
		{
			name: "empty category",
			message: &tgbotapi.Message{
				Chat: &tgbotapi.Chat{ID: 123},
				From: &tgbotapi.User{ID: 456},
			},
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().AssembleQuiz(gomock.Any(), int64(456), spec).Return(models.Quiz{}, quiz.ErrEmptyCategory)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot, c *cache.Cache) {
				require.Len(t, mb.SentMessages, 1)
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Equal(t, "📭 There are no words in this category yet.", msg.Text)
				_, ok := c.GetPlay(456)
				assert.False(t, ok)
			},
		},
		{
			name: "error: AssembleQuiz fails",
			message: &tgbotapi.Message{
				Chat: &tgbotapi.Chat{ID: 123},
				From: &tgbotapi.User{ID: 456},
			},
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().AssembleQuiz(gomock.Any(), int64(456), spec).Return(models.Quiz{}, assert.AnError)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot, c *cache.Cache) {
				require.Len(t, mb.SentMessages, 1)
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Equal(t, "❌ Couldn't start a quiz. Try again later.", msg.Text)
			},
		},
		{
			name: "nil From in message",
			message: &tgbotapi.Message{
				Chat: &tgbotapi.Chat{ID: 123},
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot, c *cache.Cache) {
				assert.Empty(t, mb.SentMessages)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			quizT, mb := newQuizTMock(t, ctrl, tt.f)
			quizT.sendNewQuiz(tt.message, 456)

			tt.assertFunc(t, mb, quizT.cache)
		})
	}
}

func TestQuizT_processOptionAnswer(t *testing.T) {
	t.Parallel()

	query := func(data string) *tgbotapi.CallbackQuery {
		return &tgbotapi.CallbackQuery{
			From: &tgbotapi.User{ID: 456},
			Message: &tgbotapi.Message{
				Chat:      &tgbotapi.Chat{ID: 123},
				MessageID: 100,
				Text:      "Question 1/2",
			},
			Data: data,
		}
	}

	tests := []struct {
		name       string
		query      *tgbotapi.CallbackQuery
		noPlay     bool
		assertFunc func(*testing.T, *mock_bot.MockBot, *cache.Cache)
	}{
		{
			name:  "correct option moves to typed question",
			query: query("qa_0_0"),
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot, c *cache.Cache) {
				require.Len(t, mb.SentMessages, 2)
				editMsg, ok := mb.SentMessages[0].(tgbotapi.EditMessageTextConfig)
				require.True(t, ok)
				assert.Equal(t, "Question 1/2\n\n✅ Correct!", editMsg.Text)
				assert.Nil(t, editMsg.ReplyMarkup)

				next := mb.SentMessages[1].(tgbotapi.MessageConfig)
				assert.Contains(t, next.Text, "Question 2/2")
				assert.Contains(t, next.Text, "Type your answer")

				play, ok := c.GetPlay(456)
				require.True(t, ok)
				assert.Equal(t, 1, play.Current)
				assert.Equal(t, 1, play.Correct)
				assert.Equal(t, []models.SubmittedAnswer{{QuestionIndex: 0, UserAnswer: "mèo", TimeSpentSeconds: 30}}, play.Answers)
			},
		},
		{
			name:  "wrong option shows the answer",
			query: query("qa_0_2"),
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot, c *cache.Cache) {
				editMsg := mb.SentMessages[0].(tgbotapi.EditMessageTextConfig)
				assert.Contains(t, editMsg.Text, "❌ Wrong. Answer: mèo")

				play, _ := c.GetPlay(456)
				assert.Equal(t, 0, play.Correct)
				assert.Equal(t, "gà", play.Answers[0].UserAnswer)
			},
		},
		{
			name:  "skip",
			query: query("qa_0_skip"),
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot, c *cache.Cache) {
				editMsg := mb.SentMessages[0].(tgbotapi.EditMessageTextConfig)
				assert.Contains(t, editMsg.Text, "⏭ Skipped. Answer: mèo")

				play, _ := c.GetPlay(456)
				assert.Equal(t, "", play.Answers[0].UserAnswer)
			},
		},
		{
			name:  "stale button is ignored",
			query: query("qa_1_0"),
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot, c *cache.Cache) {
				assert.Empty(t, mb.SentMessages)
				play, _ := c.GetPlay(456)
				assert.Equal(t, 0, play.Current)
			},
		},
		{
			name:  "option out of range",
			query: query("qa_0_9"),
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot, c *cache.Cache) {
				assert.Empty(t, mb.SentMessages)
			},
		},
		{
			name:   "no active quiz",
			query:  query("qa_0_0"),
			noPlay: true,
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot, c *cache.Cache) {
				require.Len(t, mb.SentMessages, 1)
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Equal(t, "❌ No active quiz. Press Quiz to start one.", msg.Text)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			quizT, mb := newQuizTMock(t, ctrl, nil)
			if !tt.noPlay {
				quizT.cache.SetPlay(456, models.QuizPlay{Quiz: botQuiz(), QuestionSent: botNow.Add(-30 * time.Second)})
			}

			quizT.handleQuizCallbackQuery(tt.query)

			tt.assertFunc(t, mb, quizT.cache)
		})
	}
}

func TestQuizT_handleTextAnswer(t *testing.T) {
	t.Parallel()

	lastQuestion := models.QuizPlay{
		Quiz:         botQuiz(),
		Current:      1,
		Correct:      1,
		Answers:      []models.SubmittedAnswer{{QuestionIndex: 0, UserAnswer: "mèo", TimeSpentSeconds: 5}},
		QuestionSent: botNow.Add(-12 * time.Second),
	}
	message := func(text string) *tgbotapi.Message {
		return &tgbotapi.Message{
			Chat: &tgbotapi.Chat{ID: 123},
			From: &tgbotapi.User{ID: 456},
			Text: text,
		}
	}

	tests := []struct {
		name       string
		play       *models.QuizPlay
		text       string
		f          func(*mock_bot.MockServiceI, *mock_bot.MockBot)
		want       bool
		assertFunc func(*testing.T, *mock_bot.MockBot, *cache.Cache)
	}{
		{
			name: "last answer grades the quiz",
			play: &lastQuestion,
			text: "Dog ",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().GradeSubmission(gomock.Any(), int64(456), "quiz-1", []models.SubmittedAnswer{
					{QuestionIndex: 0, UserAnswer: "mèo", TimeSpentSeconds: 5},
					{QuestionIndex: 1, UserAnswer: "Dog ", TimeSpentSeconds: 12},
				}).Return(models.GradedResult{
					TotalQuestions: 2,
					CorrectAnswers: 2,
					Score:          100,
					Passed:         true,
					Grade:          "Excellent",
					PointsEarned:   20,
				}, nil)
			},
			want: true,
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot, c *cache.Cache) {
				require.Len(t, mb.SentMessages, 2)
				feedback := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Equal(t, "✅ Correct!", feedback.Text)

				summary := mb.SentMessages[1].(tgbotapi.MessageConfig)
				assert.Contains(t, summary.Text, "Quiz finished")
				assert.Contains(t, summary.Text, "100.0 (Excellent)")
				kb, ok := summary.ReplyMarkup.(*tgbotapi.InlineKeyboardMarkup)
				require.True(t, ok)
				assert.Equal(t, "new_quiz", *kb.InlineKeyboard[0][0].CallbackData)

				_, ok = c.GetPlay(456)
				assert.False(t, ok)
			},
		},
		{
			name: "expired quiz",
			play: &lastQuestion,
			text: "cat",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().GradeSubmission(gomock.Any(), int64(456), "quiz-1", gomock.Any()).
					Return(models.GradedResult{}, service.ErrQuizNotFound)
			},
			want: true,
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot, c *cache.Cache) {
				require.Len(t, mb.SentMessages, 2)
				assert.Equal(t, "❌ Wrong. Answer: dog", mb.SentMessages[0].(tgbotapi.MessageConfig).Text)
				assert.Equal(t, "⌛ The quiz has expired. Start a new one.", mb.SentMessages[1].(tgbotapi.MessageConfig).Text)
				_, ok := c.GetPlay(456)
				assert.False(t, ok)
			},
		},
		{
			name: "save fails keeps answers for a retry",
			play: &lastQuestion,
			text: "dog",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().GradeSubmission(gomock.Any(), int64(456), "quiz-1", gomock.Any()).
					Return(models.GradedResult{}, assert.AnError)
			},
			want: true,
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot, c *cache.Cache) {
				require.Len(t, mb.SentMessages, 2)
				msg := mb.SentMessages[1].(tgbotapi.MessageConfig)
				assert.Equal(t, "❌ Couldn't save the quiz result. Try again.", msg.Text)
				kb, ok := msg.ReplyMarkup.(*tgbotapi.InlineKeyboardMarkup)
				require.True(t, ok)
				assert.Equal(t, retryResult, *kb.InlineKeyboard[0][0].CallbackData)

				play, ok := c.GetPlay(456)
				require.True(t, ok)
				assert.Equal(t, 2, play.Current)
				assert.Len(t, play.Answers, 2)
			},
		},
		{
			name: "answered quiz waiting for retry",
			play: &models.QuizPlay{Quiz: botQuiz(), Current: 2},
			text: "dog",
			want: true,
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot, c *cache.Cache) {
				require.Len(t, mb.SentMessages, 1)
				assert.Equal(t, "☝️ Press Retry to save your result.", mb.SentMessages[0].(tgbotapi.MessageConfig).Text)
			},
		},
		{
			name: "options question asks to press a button",
			play: &models.QuizPlay{Quiz: botQuiz()},
			text: "mèo",
			want: true,
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot, c *cache.Cache) {
				require.Len(t, mb.SentMessages, 1)
				assert.Equal(t, "☝️ Choose one of the options above.", mb.SentMessages[0].(tgbotapi.MessageConfig).Text)
				play, _ := c.GetPlay(456)
				assert.Empty(t, play.Answers)
			},
		},
		{
			name: "no active quiz",
			text: "dog",
			want: false,
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot, c *cache.Cache) {
				assert.Empty(t, mb.SentMessages)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			quizT, mb := newQuizTMock(t, ctrl, tt.f)
			if tt.play != nil {
				quizT.cache.SetPlay(456, *tt.play)
			}

			got := quizT.handleTextAnswer(message(tt.text))

			assert.Equal(t, tt.want, got)
			tt.assertFunc(t, mb, quizT.cache)
		})
	}
}

func TestQuizT_retryResult(t *testing.T) {
	t.Parallel()

	answered := models.QuizPlay{
		Quiz:    botQuiz(),
		Current: 2,
		Answers: []models.SubmittedAnswer{
			{QuestionIndex: 0, UserAnswer: "mèo"},
			{QuestionIndex: 1, UserAnswer: "dog"},
		},
	}
	query := &tgbotapi.CallbackQuery{
		ID:      "q1",
		From:    &tgbotapi.User{ID: 456},
		Message: &tgbotapi.Message{MessageID: 9, Chat: &tgbotapi.Chat{ID: 123}},
		Data:    retryResult,
	}

	tests := []struct {
		name       string
		play       *models.QuizPlay
		f          func(*mock_bot.MockServiceI, *mock_bot.MockBot)
		assertFunc func(*testing.T, *mock_bot.MockBot, *cache.Cache)
	}{
		{
			name: "saves the kept answers",
			play: &answered,
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().GradeSubmission(gomock.Any(), int64(456), "quiz-1", answered.Answers).
					Return(models.GradedResult{TotalQuestions: 2, CorrectAnswers: 2, Score: 100, Passed: true, Grade: "Excellent"}, nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot, c *cache.Cache) {
				require.Len(t, mb.SentMessages, 1)
				assert.Contains(t, mb.SentMessages[0].(tgbotapi.MessageConfig).Text, "Quiz finished")
				_, ok := c.GetPlay(456)
				assert.False(t, ok)
			},
		},
		{
			name: "quiz still in progress",
			play: &models.QuizPlay{Quiz: botQuiz(), Current: 1},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot, c *cache.Cache) {
				assert.Empty(t, mb.SentMessages)
				_, ok := c.GetPlay(456)
				assert.True(t, ok)
			},
		},
		{
			name: "no active quiz",
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot, c *cache.Cache) {
				require.Len(t, mb.SentMessages, 1)
				assert.Equal(t, "❌ No active quiz. Press Quiz to start one.", mb.SentMessages[0].(tgbotapi.MessageConfig).Text)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			quizT, mb := newQuizTMock(t, ctrl, tt.f)
			if tt.play != nil {
				quizT.cache.SetPlay(456, *tt.play)
			}

			quizT.handleQuizCallbackQuery(query)

			tt.assertFunc(t, mb, quizT.cache)
		})
	}
}

func TestQuizT_sendQuizStats(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	quizT, mb := newQuizTMock(t, ctrl, func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
		ms.EXPECT().QuizStats(gomock.Any(), int64(456), nil).Return(models.QuizStats{
			TotalQuizzes: 3, AverageScore: 72.5, BestScore: 90, PassedCount: 2,
		}, nil)
	})

	quizT.sendQuizStats(&tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 123}, From: &tgbotapi.User{ID: 456}})

	require.Len(t, mb.SentMessages, 1)
	msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
	assert.Contains(t, msg.Text, "*Quizzes taken*: 3")
	assert.Contains(t, msg.Text, "72.5")
}

func TestQuizT_stopQuiz(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	quizT, mb := newQuizTMock(t, ctrl, nil)
	quizT.cache.SetPlay(456, models.QuizPlay{Quiz: botQuiz()})

	message := &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 123}, From: &tgbotapi.User{ID: 456}}
	quizT.stopQuiz(message)
	quizT.stopQuiz(message)

	require.Len(t, mb.SentMessages, 2)
	assert.Equal(t, "🛑 Quiz stopped.", mb.SentMessages[0].(tgbotapi.MessageConfig).Text)
	assert.Equal(t, "There is no quiz to stop.", mb.SentMessages[1].(tgbotapi.MessageConfig).Text)
}

func TestParseAnswerData(t *testing.T) {
	t.Parallel()

	tests := []struct {
		data       string
		wantIndex  int
		wantOption int
		wantErr    bool
	}{
		{data: "qa_0_3", wantIndex: 0, wantOption: 3},
		{data: "qa_12_skip", wantIndex: 12, wantOption: -1},
		{data: "qa_1", wantErr: true},
		{data: "qa_x_1", wantErr: true},
		{data: "qa_1_-2", wantErr: true},
		{data: "qa_1_2_3", wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.data, func(t *testing.T) {
			t.Parallel()

			index, option, err := parseAnswerData(tt.data)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantIndex, index)
			assert.Equal(t, tt.wantOption, option)
		})
	}
}
