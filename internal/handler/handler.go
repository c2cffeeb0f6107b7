package handler

import (
	"context"
	"net/http"

	"github.com/Lyly-126/TieuLuanTotNghiep-sub000/internal/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type QuizSI interface {
	AssembleQuiz(ctx context.Context, userID int64, spec models.QuizSpec) (models.Quiz, error)
	GradeSubmission(ctx context.Context, userID int64, quizID string, answers []models.SubmittedAnswer) (models.GradedResult, error)
	QuizStats(ctx context.Context, userID int64, categoryID *int64) (models.QuizStats, error)
	QuizHistory(ctx context.Context, userID int64, categoryID *int64, limit int) ([]models.QuizResult, error)
}

type VocabularySI interface {
	DueReviews(ctx context.Context, userID int64, limit int) ([]models.MasteryWord, error)
	CategoryWords(ctx context.Context, categoryID int64) ([]models.VocabularyItem, error)
	ImportWord(ctx context.Context, categoryID int64, word string) (models.VocabularyItem, error)
	ImportRandom(ctx context.Context, categoryID int64, n int) ([]models.VocabularyItem, error)
}

type ServiceI interface {
	QuizSI
	VocabularySI
}

type Handler struct {
	service ServiceI
	log     *zap.Logger
}

func NewHandler(service ServiceI, log *zap.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.logRequests())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		quizzes := api.Group("/quizzes")
		quizzes.POST("", h.createQuiz)
		quizzes.POST("/:quizID/submissions", h.submitAnswers)

		users := api.Group("/users/:userID")
		users.GET("/quiz-stats", h.quizStats)
		users.GET("/quiz-results", h.quizResults)
		users.GET("/reviews/due", h.dueReviews)

		categories := api.Group("/categories/:categoryID")
		categories.GET("/vocabulary", h.categoryVocabulary)
		categories.POST("/vocabulary", h.importWord)
		categories.POST("/vocabulary/random", h.importRandom)
	}

	return router
}
