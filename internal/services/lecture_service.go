package services

import (
	"context"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/onegreenvn/lecture-content-backend/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	lectureFetchErrFmt = "Failed to get lecture content: %s"
	noContentMsg       = "No content found in lecture response"
	publishTimeout     = 5 * time.Second
)

// LectureRetriever fetches the full text of a lecture
type LectureRetriever interface {
	GetCompleteLecture(ctx context.Context, courseTitle, lectureTitle string) (*models.LectureResponse, error)
}

// ContentGenerator produces the podcast and slides for lecture text
type ContentGenerator interface {
	Generate(ctx context.Context, req *models.GenerateLectureRequest, content string) *models.GenerationResult
}

// RunRecorder stores finished runs
type RunRecorder interface {
	Record(run *models.GenerationRun) error
}

// EventPublisher sends completion events to a queue
type EventPublisher interface {
	PublishMessage(ctx context.Context, queueName string, message map[string]interface{}) error
}

// LectureService handles one generate-lecture request end to end
type LectureService struct {
	retriever LectureRetriever
	generator ContentGenerator
	progress  ProgressReporter
	recorder  RunRecorder
	publisher EventPublisher
	queue     string
	now       func() time.Time
}

// LectureServiceOption configures optional collaborators of the LectureService
type LectureServiceOption func(*LectureService)

// WithRunRecorder enables run history
func WithRunRecorder(recorder RunRecorder) LectureServiceOption {
	return func(s *LectureService) {
		s.recorder = recorder
	}
}

// WithEventPublisher enables completion events on the given queue
func WithEventPublisher(publisher EventPublisher, queue string) LectureServiceOption {
	return func(s *LectureService) {
		s.publisher = publisher
		s.queue = queue
	}
}

func NewLectureService(retriever LectureRetriever, generator ContentGenerator, progress ProgressReporter, opts ...LectureServiceOption) *LectureService {
	if progress == nil {
		progress = noopReporter{}
	}
	s := &LectureService{
		retriever: retriever,
		generator: generator,
		progress:  progress,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateLecture fetches the lecture and runs the content pipeline. It never returns nil.
func (s *LectureService) GenerateLecture(ctx context.Context, req *models.GenerateLectureRequest) (result *models.GenerationResult) {
	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}
	startedAt := s.now()

	defer func() {
		if r := recover(); r != nil {
			logrus.Errorf("Panic while generating lecture %s: %v", req.RequestID, r)
			result = models.NewGenerationError(fmt.Sprintf(generationErrFmt, r))
			s.progress.Report(req.RequestID, models.StageFailed, models.LogStatusError, result.Message)
		}
		if result == nil {
			result = models.NewGenerationError(fmt.Sprintf(generationErrFmt, "empty result"))
		}
		s.finish(ctx, req, result, startedAt)
	}()

	s.progress.Report(req.RequestID, models.StageStarted, models.LogStatusInfo,
		fmt.Sprintf("Generating content for %s / %s", req.CourseTitle, req.LectureTitle))

	lecture, err := s.retriever.GetCompleteLecture(ctx, req.CourseTitle, req.LectureTitle)
	if err != nil {
		return s.reject(req.RequestID, fmt.Sprintf(lectureFetchErrFmt, err.Error()))
	}
	if lecture.Status != models.StatusSuccess {
		return s.reject(req.RequestID, fmt.Sprintf(lectureFetchErrFmt, lecture.Message))
	}
	if lecture.CompleteContent == "" {
		return s.reject(req.RequestID, noContentMsg)
	}

	return s.generator.Generate(ctx, req, lecture.CompleteContent)
}

func (s *LectureService) reject(runID, message string) *models.GenerationResult {
	logrus.Warnf("Lecture request %s rejected: %s", runID, message)
	s.progress.Report(runID, models.StageFailed, models.LogStatusError, message)
	return models.NewGenerationError(message)
}

// finish records the run and publishes the completion event. Failures are only logged.
func (s *LectureService) finish(ctx context.Context, req *models.GenerateLectureRequest, result *models.GenerationResult, startedAt time.Time) {
	finishedAt := s.now()

	if !result.IsSuccess() {
		hub := sentry.GetHubFromContext(ctx)
		if hub == nil {
			hub = sentry.CurrentHub()
		}
		hub.WithScope(func(scope *sentry.Scope) {
			scope.SetTag("request_id", req.RequestID)
			scope.SetExtra("course_title", req.CourseTitle)
			scope.SetExtra("lecture_title", req.LectureTitle)
			hub.CaptureMessage(result.Message)
		})
	}

	if s.recorder != nil {
		run := &models.GenerationRun{
			RequestID:    req.RequestID,
			CourseTitle:  req.CourseTitle,
			LectureTitle: req.LectureTitle,
			Email:        req.Email,
			Status:       result.Status,
			Message:      result.Message,
			AudioLink:    result.AudioLink,
			SlidesLink:   result.SlidesLink,
			DurationMs:   finishedAt.Sub(startedAt).Milliseconds(),
			StartedAt:    startedAt,
			FinishedAt:   finishedAt,
		}
		if err := s.recorder.Record(run); err != nil {
			logrus.Warnf("Failed to record run %s: %v", req.RequestID, err)
		}
	}

	if s.publisher != nil {
		pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
		defer cancel()

		event := map[string]interface{}{
			"request_id":    req.RequestID,
			"course_title":  req.CourseTitle,
			"lecture_title": req.LectureTitle,
			"status":        result.Status,
			"message":       result.Message,
			"audio_link":    result.AudioLink,
			"slides_link":   result.SlidesLink,
			"finished_at":   finishedAt.UTC().Format(time.RFC3339),
		}
		if err := s.publisher.PublishMessage(pubCtx, s.queue, event); err != nil {
			logrus.Warnf("Failed to publish completion event for %s: %v", req.RequestID, err)
		}
	}
}
