package handler

import (
	"net/http"

	"github.com/Lyly-126/TieuLuanTotNghiep-sub000/internal/models"
	"github.com/gin-gonic/gin"
)

type importWordRequest struct {
	Word string `json:"word" validate:"required,max=64"`
}

type importRandomRequest struct {
	Count int `json:"count" validate:"required,min=1,max=20"`
}

type wordsResponse struct {
	Words []models.VocabularyItem `json:"words"`
}

type dueReviewsResponse struct {
	Reviews []models.MasteryWord `json:"reviews"`
}

func (h *Handler) categoryVocabulary(c *gin.Context) {
	categoryID, err := pathID(c, "categoryID")
	if err != nil {
		h.respondError(c, err)
		return
	}

	words, err := h.service.CategoryWords(c.Request.Context(), categoryID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if words == nil {
		words = []models.VocabularyItem{}
	}

	c.JSON(http.StatusOK, wordsResponse{Words: words})
}

func (h *Handler) importWord(c *gin.Context) {
	categoryID, err := pathID(c, "categoryID")
	if err != nil {
		h.respondError(c, err)
		return
	}

	var req importWordRequest
	if err := bindJSON(c, &req); err != nil {
		h.respondError(c, err)
		return
	}

	item, err := h.service.ImportWord(c.Request.Context(), categoryID, req.Word)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *Handler) importRandom(c *gin.Context) {
	categoryID, err := pathID(c, "categoryID")
	if err != nil {
		h.respondError(c, err)
		return
	}

	var req importRandomRequest
	if err := bindJSON(c, &req); err != nil {
		h.respondError(c, err)
		return
	}

	items, err := h.service.ImportRandom(c.Request.Context(), categoryID, req.Count)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, wordsResponse{Words: items})
}

func (h *Handler) dueReviews(c *gin.Context) {
	userID, err := pathID(c, "userID")
	if err != nil {
		h.respondError(c, err)
		return
	}
	limit, err := queryInt(c, "limit")
	if err != nil {
		h.respondError(c, err)
		return
	}

	reviews, err := h.service.DueReviews(c.Request.Context(), userID, limit)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if reviews == nil {
		reviews = []models.MasteryWord{}
	}

	c.JSON(http.StatusOK, dueReviewsResponse{Reviews: reviews})
}
