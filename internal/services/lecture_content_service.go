package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode"

	"github.com/onegreenvn/lecture-content-backend/internal/config"
	"github.com/onegreenvn/lecture-content-backend/internal/models"
	"github.com/onegreenvn/lecture-content-backend/internal/services/llm"
	"github.com/sirupsen/logrus"
)

const (
	maxSpeechInput = 4000
	timestampFmt   = "20060102_150405"

	scriptSystemPrompt  = "You are an engaging professor. Keep explanations brief and focused."
	outlineSystemPrompt = "You are a teaching assistant that organizes lecture content into clear, structured slides."

	scriptTemperature  = 0.7
	scriptMaxTokens    = 1500
	outlineTemperature = 0.5

	generatedMsg     = "Podcast and PowerPoint slides generated successfully!"
	someUploadsMsg   = "Some uploads failed"
	generationErrFmt = "Failed to generate content: %v"
)

// ErrInvalidOutline is returned when the model answers with JSON that is not a usable outline
var ErrInvalidOutline = errors.New("invalid lecture outline")

// LanguageModel writes text and speech
type LanguageModel interface {
	Complete(ctx context.Context, req llm.CompletionRequest) (string, error)
	Synthesize(ctx context.Context, req llm.SpeechRequest) ([]byte, error)
}

// SlideRenderer serializes an outline into presentation bytes
type SlideRenderer interface {
	Render(outline *models.LectureOutline, generatedAt time.Time) ([]byte, error)
}

// ArtifactStore holds generated files in a shared folder
type ArtifactStore interface {
	CreateFolder(ctx context.Context, name string) string
	Upload(ctx context.Context, content io.Reader, filename, mimeType, folderID, email string) *models.UploadResult
}

// ProgressReporter receives pipeline stage updates for a run
type ProgressReporter interface {
	Report(runID, stage, status, message string)
}

type noopReporter struct{}

func (noopReporter) Report(string, string, string, string) {}

// LectureContentService turns lecture text into a narrated podcast and a slide deck stored in Drive
type LectureContentService struct {
	model    LanguageModel
	renderer SlideRenderer
	store    ArtifactStore
	progress ProgressReporter
	cfg      config.OpenAIConfig
	now      func() time.Time
}

func NewLectureContentService(model LanguageModel, renderer SlideRenderer, store ArtifactStore, progress ProgressReporter, cfg config.OpenAIConfig) *LectureContentService {
	if progress == nil {
		progress = noopReporter{}
	}
	return &LectureContentService{
		model:    model,
		renderer: renderer,
		store:    store,
		progress: progress,
		cfg:      cfg,
		now:      time.Now,
	}
}

// Generate runs the whole pipeline for one lecture. It never returns nil.
func (s *LectureContentService) Generate(ctx context.Context, req *models.GenerateLectureRequest, content string) *models.GenerationResult {
	runID := req.RequestID
	startedAt := s.now()
	timestamp := startedAt.Format(timestampFmt)
	prefix := SanitizePrefix(req.CourseTitle, req.LectureTitle)

	fail := func(err error) *models.GenerationResult {
		logrus.Errorf("Lecture generation failed for %s: %v", prefix, err)
		s.progress.Report(runID, models.StageFailed, models.LogStatusError, err.Error())
		return models.NewGenerationError(fmt.Sprintf(generationErrFmt, err))
	}

	folderName := fmt.Sprintf("%s_%s", prefix, timestamp)
	folderID := s.store.CreateFolder(ctx, folderName)
	if folderID == "" {
		s.progress.Report(runID, models.StageFolderCreated, models.LogStatusWarning, "Folder could not be created, uploading to Drive root")
	} else {
		s.progress.Report(runID, models.StageFolderCreated, models.LogStatusSuccess, "Created folder "+folderName)
	}

	logrus.Infof("Generating podcast script for %s", prefix)
	script, err := s.GenerateScript(ctx, content, req.CourseTitle, req.LectureTitle)
	if err != nil {
		return fail(err)
	}
	s.progress.Report(runID, models.StageScriptGenerated, models.LogStatusSuccess, "Podcast script generated")

	logrus.Infof("Generating audio for %s", prefix)
	audio, err := s.SynthesizeAudio(ctx, script)
	if err != nil {
		return fail(err)
	}
	s.progress.Report(runID, models.StageAudioSynthesized, models.LogStatusSuccess, "Audio generated")

	logrus.Infof("Uploading podcast for %s", prefix)
	audioResult := s.store.Upload(ctx, bytes.NewReader(audio),
		fmt.Sprintf("%s_audio_%s.mp3", prefix, timestamp), models.MimeTypeMP3, folderID, req.Email)
	s.reportUpload(runID, models.StageAudioUploaded, audioResult)

	logrus.Infof("Generating PowerPoint slides for %s", prefix)
	outline, err := s.ExtractOutline(ctx, content)
	if err != nil {
		return fail(err)
	}
	s.progress.Report(runID, models.StageOutlineExtracted, models.LogStatusSuccess,
		fmt.Sprintf("Outline extracted with %d sections", len(outline.Sections)))

	deck, err := s.renderer.Render(outline, startedAt)
	if err != nil {
		return fail(fmt.Errorf("failed to render slides: %w", err))
	}
	s.progress.Report(runID, models.StageSlidesRendered, models.LogStatusSuccess, "Slides rendered")

	logrus.Infof("Uploading slides for %s", prefix)
	slidesResult := s.store.Upload(ctx, bytes.NewReader(deck),
		fmt.Sprintf("%s_slides_%s.pptx", prefix, timestamp), models.MimeTypePPTX, folderID, req.Email)
	s.reportUpload(runID, models.StageSlidesUploaded, slidesResult)

	if audioResult.IsSuccess() && slidesResult.IsSuccess() {
		s.progress.Report(runID, models.StageCompleted, models.LogStatusSuccess, generatedMsg)
		return &models.GenerationResult{
			Status:     models.StatusSuccess,
			AudioLink:  audioResult.WebLink,
			SlidesLink: slidesResult.WebLink,
			Message:    generatedMsg,
		}
	}

	s.progress.Report(runID, models.StageCompleted, models.LogStatusWarning, someUploadsMsg)
	return &models.GenerationResult{
		Status:     models.StatusError,
		AudioLink:  audioResult.Link(),
		SlidesLink: slidesResult.Link(),
		Message:    someUploadsMsg,
	}
}

func (s *LectureContentService) reportUpload(runID, stage string, result *models.UploadResult) {
	if result.IsSuccess() {
		s.progress.Report(runID, stage, models.LogStatusSuccess, result.WebLink)
		return
	}
	s.progress.Report(runID, stage, models.LogStatusError, result.Message)
}

// GenerateScript writes the narration for the podcast
func (s *LectureContentService) GenerateScript(ctx context.Context, content, courseTitle, lectureTitle string) (string, error) {
	prompt := fmt.Sprintf(`Create a concise lecture (maximum 1500 words) for %s, %s.
Include:
1. Brief welcome (1 sentence)
2. Clear explanation of 3-4 key concepts
3. Brief conclusion (1 sentence)

Content to cover:
%s`, courseTitle, lectureTitle, content)

	script, err := s.model.Complete(ctx, llm.CompletionRequest{
		Model:        s.cfg.ScriptModel,
		SystemPrompt: scriptSystemPrompt,
		UserPrompt:   prompt,
		Temperature:  scriptTemperature,
		MaxTokens:    scriptMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate podcast script: %w", err)
	}
	return script, nil
}

// SynthesizeAudio narrates the beginning of the script as MP3
func (s *LectureContentService) SynthesizeAudio(ctx context.Context, script string) ([]byte, error) {
	audio, err := s.model.Synthesize(ctx, llm.SpeechRequest{
		Model: s.cfg.TTSModel,
		Voice: s.cfg.Voice,
		Input: truncateRunes(script, maxSpeechInput),
		Speed: s.cfg.Speed,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate audio: %w", err)
	}
	return audio, nil
}

// ExtractOutline asks the model for a JSON outline of the lecture and validates it
func (s *LectureContentService) ExtractOutline(ctx context.Context, content string) (*models.LectureOutline, error) {
	prompt := fmt.Sprintf(`Extract the main points from this lecture and format them as slides.
Return your response in this exact JSON structure:
{
    "title": "Lecture title",
    "sections": [
        {
            "title": "Section title",
            "key_points": ["point 1", "point 2", "point 3"],
            "details": "Detailed explanation"
        }
    ]
}

Lecture content:
%s`, content)

	raw, err := s.model.Complete(ctx, llm.CompletionRequest{
		Model:        s.cfg.OutlineModel,
		SystemPrompt: outlineSystemPrompt,
		UserPrompt:   prompt,
		Temperature:  outlineTemperature,
		JSONMode:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to extract lecture structure: %w", err)
	}

	return ParseOutline(raw)
}

// ParseOutline decodes a model answer into an outline, tolerating markdown code fences
func ParseOutline(raw string) (*models.LectureOutline, error) {
	var outline models.LectureOutline
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &outline); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOutline, err)
	}

	if strings.TrimSpace(outline.Title) == "" {
		return nil, fmt.Errorf("%w: missing title", ErrInvalidOutline)
	}
	if outline.Sections == nil {
		return nil, fmt.Errorf("%w: missing sections", ErrInvalidOutline)
	}
	for i, section := range outline.Sections {
		if strings.TrimSpace(section.Title) == "" {
			return nil, fmt.Errorf("%w: section %d has no title", ErrInvalidOutline, i+1)
		}
	}

	return &outline, nil
}

// SanitizePrefix builds the file name prefix from course and lecture titles
func SanitizePrefix(courseTitle, lectureTitle string) string {
	combined := strings.ToLower(courseTitle + "_" + lectureTitle)

	var b strings.Builder
	for _, r := range combined {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}
	return b.String()
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
