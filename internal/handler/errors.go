package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Lyly-126/TieuLuanTotNghiep-sub000/internal/quiz"
	"github.com/Lyly-126/TieuLuanTotNghiep-sub000/internal/service"
	"github.com/gin-gonic/gin"
)

var errBadRequest = errors.New("bad request")

type errorResponse struct {
	Error string `json:"error"`
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, quiz.ErrEmptyCategory),
		errors.Is(err, service.ErrQuizNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrQuizOwnership):
		return http.StatusForbidden
	case errors.Is(err, quiz.ErrUnknownArchetype),
		errors.Is(err, quiz.ErrUnknownSkill),
		errors.Is(err, service.ErrEmptyWord),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNoTranslation):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) respondError(c *gin.Context, err error) {
	status := statusOf(err)
	_ = c.Error(err)

	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = http.StatusText(status)
	}

	c.AbortWithStatusJSON(status, errorResponse{Error: msg})
}

func badRequest(err error) error {
	return fmt.Errorf("%w: %v", errBadRequest, err)
}

func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s %q", errBadRequest, name, c.Param(name))
	}
	return id, nil
}

// optionalQueryID reads an optional positive id from the query string.
func optionalQueryID(c *gin.Context, name string) (*int64, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, fmt.Errorf("%w: invalid %s %q", errBadRequest, name, raw)
	}
	return &id, nil
}

func queryInt(c *gin.Context, name string) (int, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: invalid %s %q", errBadRequest, name, raw)
	}
	return n, nil
}
