package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/onegreenvn/lecture-content-backend/internal/models"
	"github.com/sirupsen/logrus"
)

const missingFieldsMsg = "Missing required fields: 'course_title' and 'lecture_title'"

// RequestIDHeader carries the run id so clients can follow progress over SSE
const RequestIDHeader = "X-Request-ID"

// LectureGenerator runs the lecture content pipeline for one request
type LectureGenerator interface {
	GenerateLecture(ctx context.Context, req *models.GenerateLectureRequest) *models.GenerationResult
}

type LectureHandler struct {
	lectureService LectureGenerator
}

func NewLectureHandler(lectureService LectureGenerator) *LectureHandler {
	return &LectureHandler{
		lectureService: lectureService,
	}
}

// GenerateLecture godoc
// @Summary Generate podcast audio and slides for a lecture
// @Description Fetches the lecture text, narrates it as an MP3 podcast, builds a PowerPoint deck and uploads both to Google Drive.
// @Description Pass request_id (or read the X-Request-ID response header) to follow progress on /api/v1/runs/{id}/stream.
// @Tags lectures
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.GenerateLectureRequest true "Lecture to generate"
// @Success 200 {object} models.GenerationResult
// @Failure 400 {object} models.GenerationResult
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} models.GenerationResult
// @Router /generate-lecture [post]
func (h *LectureHandler) GenerateLecture(c *gin.Context) {
	defer func() {
		if r := recover(); r != nil {
			logrus.Errorf("Panic in generate-lecture handler: %v", r)
			c.JSON(http.StatusInternalServerError, models.NewGenerationError(fmt.Sprintf("Server error: %v", r)))
		}
	}()

	var req models.GenerateLectureRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusInternalServerError, models.NewGenerationError(fmt.Sprintf("Server error: %v", err)))
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if strings.TrimSpace(req.CourseTitle) == "" || strings.TrimSpace(req.LectureTitle) == "" {
		c.JSON(http.StatusBadRequest, models.NewGenerationError(missingFieldsMsg))
		return
	}
	if req.RequestID == "" {
		req.RequestID = c.GetHeader(RequestIDHeader)
	}

	logrus.Infof("Generating lecture content for course=%q lecture=%q", req.CourseTitle, req.LectureTitle)
	result := h.lectureService.GenerateLecture(c.Request.Context(), &req)
	c.Header(RequestIDHeader, req.RequestID)

	if result.IsSuccess() {
		c.JSON(http.StatusOK, result)
		return
	}
	c.JSON(http.StatusInternalServerError, result)
}
