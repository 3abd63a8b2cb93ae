package models

// Result statuses shared by every layer of the generation pipeline
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// GenerateLectureRequest represents the request to generate podcast audio and slides for a lecture
type GenerateLectureRequest struct {
	CourseTitle  string `json:"course_title" example:"CS-101"`
	LectureTitle string `json:"lecture_title" example:"Intro: AI"`
	Email        string `json:"email,omitempty" example:"student@example.com"`
	RequestID    string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
}

// LectureOutline is the structured breakdown of a lecture used to drive slide generation
type LectureOutline struct {
	Title    string           `json:"title"`
	Sections []OutlineSection `json:"sections"`
}

// OutlineSection is one section of a lecture outline
type OutlineSection struct {
	Title     string   `json:"title"`
	KeyPoints []string `json:"key_points"`
	Details   string   `json:"details"`
}

// GenerationResult is the terminal result of a lecture content generation
type GenerationResult struct {
	Status     string `json:"status" example:"success"`
	AudioLink  string `json:"audio_link,omitempty" example:"https://drive.google.com/file/d/abc/view"`
	SlidesLink string `json:"slides_link,omitempty" example:"https://drive.google.com/file/d/def/view"`
	Message    string `json:"message" example:"Podcast and PowerPoint slides generated successfully!"`
}

// IsSuccess reports whether the generation succeeded
func (r *GenerationResult) IsSuccess() bool {
	return r != nil && r.Status == StatusSuccess
}

// NewGenerationError builds an error result carrying only a message
func NewGenerationError(message string) *GenerationResult {
	return &GenerationResult{
		Status:  StatusError,
		Message: message,
	}
}

// LectureResponse is what the retrieval service returns for a complete lecture
type LectureResponse struct {
	Status          string `json:"status"`
	Message         string `json:"message"`
	CompleteContent string `json:"complete_content"`
}
