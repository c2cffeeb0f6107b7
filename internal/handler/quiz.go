package handler

import (
	"net/http"

	"github.com/Lyly-126/TieuLuanTotNghiep-sub000/internal/models"
	"github.com/Lyly-126/TieuLuanTotNghiep-sub000/internal/quiz"
	"github.com/Lyly-126/TieuLuanTotNghiep-sub000/pkg/validator"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type createQuizRequest struct {
	UserID           int64    `json:"userId" validate:"required,min=1"`
	CategoryID       int64    `json:"categoryId" validate:"required,min=1"`
	Archetypes       []string `json:"archetypes" validate:"dive,required"`
	Difficulty       string   `json:"difficulty"`
	QuestionCount    int      `json:"questionCount" validate:"min=0"`
	SkillFocus       []string `json:"skillFocus" validate:"dive,required"`
	TimeLimitSeconds int      `json:"timeLimitSeconds" validate:"min=0"`
	IncludeMedia     bool     `json:"includeMedia"`
}

func (r createQuizRequest) spec() models.QuizSpec {
	spec := models.QuizSpec{
		CategoryID:       r.CategoryID,
		Difficulty:       quiz.ParseDifficulty(r.Difficulty),
		QuestionCount:    r.QuestionCount,
		TimeLimitSeconds: r.TimeLimitSeconds,
		IncludeMedia:     r.IncludeMedia,
	}
	for _, a := range r.Archetypes {
		spec.Archetypes = append(spec.Archetypes, models.Archetype(a))
	}
	for _, s := range r.SkillFocus {
		spec.SkillFocus = append(spec.SkillFocus, models.Skill(s))
	}
	return spec
}

type submitAnswersRequest struct {
	UserID  int64                    `json:"userId" validate:"required,min=1"`
	Answers []models.SubmittedAnswer `json:"answers" validate:"dive"`
}

type quizResultsResponse struct {
	Results []models.QuizResult `json:"results"`
}

func bindJSON(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return badRequest(err)
	}
	if err := validator.ValidateStruct(req); err != nil {
		return badRequest(err)
	}
	return nil
}

func (h *Handler) createQuiz(c *gin.Context) {
	var req createQuizRequest
	if err := bindJSON(c, &req); err != nil {
		h.respondError(c, err)
		return
	}

	issued, err := h.service.AssembleQuiz(c.Request.Context(), req.UserID, req.spec())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, issued)
}

func (h *Handler) submitAnswers(c *gin.Context) {
	var req submitAnswersRequest
	if err := bindJSON(c, &req); err != nil {
		h.respondError(c, err)
		return
	}

	quizID := c.Param("quizID")
	result, err := h.service.GradeSubmission(c.Request.Context(), req.UserID, quizID, req.Answers)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.log.Info("quiz submitted",
		zap.String("quiz_id", quizID),
		zap.Int64("user_id", req.UserID),
		zap.Float64("score", result.Score),
	)

	c.JSON(http.StatusOK, result)
}

func (h *Handler) quizStats(c *gin.Context) {
	userID, err := pathID(c, "userID")
	if err != nil {
		h.respondError(c, err)
		return
	}
	categoryID, err := optionalQueryID(c, "categoryId")
	if err != nil {
		h.respondError(c, err)
		return
	}

	stats, err := h.service.QuizStats(c.Request.Context(), userID, categoryID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *Handler) quizResults(c *gin.Context) {
	userID, err := pathID(c, "userID")
	if err != nil {
		h.respondError(c, err)
		return
	}
	categoryID, err := optionalQueryID(c, "categoryId")
	if err != nil {
		h.respondError(c, err)
		return
	}
	limit, err := queryInt(c, "limit")
	if err != nil {
		h.respondError(c, err)
		return
	}

	results, err := h.service.QuizHistory(c.Request.Context(), userID, categoryID, limit)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if results == nil {
		results = []models.QuizResult{}
	}

	c.JSON(http.StatusOK, quizResultsResponse{Results: results})
}
