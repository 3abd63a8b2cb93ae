package models

import (
	"time"
)

// GenerationRun records one execution of the lecture content pipeline
type GenerationRun struct {
	// Primary key
	ID string `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`

	// Request
	RequestID    string `json:"request_id" gorm:"type:varchar(100);not null;index"`
	CourseTitle  string `json:"course_title" gorm:"type:varchar(255);not null;index"`
	LectureTitle string `json:"lecture_title" gorm:"type:varchar(255);not null"`
	Email        string `json:"email,omitempty" gorm:"type:varchar(255)"`

	// Outcome
	Status     string `json:"status" gorm:"type:varchar(20);not null;index"` // "success", "error"
	Message    string `json:"message" gorm:"type:text"`
	AudioLink  string `json:"audio_link,omitempty" gorm:"type:varchar(500)"`
	SlidesLink string `json:"slides_link,omitempty" gorm:"type:varchar(500)"`
	DurationMs int64  `json:"duration_ms" gorm:"type:bigint"`

	// Timestamps
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName specifies the table name for the GenerationRun model
func (GenerationRun) TableName() string {
	return "generation_runs"
}

// GenerationRunResponse represents a generation run in API responses
type GenerationRunResponse struct {
	ID           string `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	RequestID    string `json:"request_id" example:"550e8400-e29b-41d4-a716-446655440001"`
	CourseTitle  string `json:"course_title" example:"CS-101"`
	LectureTitle string `json:"lecture_title" example:"Intro: AI"`
	Email        string `json:"email,omitempty" example:"student@example.com"`
	Status       string `json:"status" example:"success"`
	Message      string `json:"message" example:"Podcast and PowerPoint slides generated successfully!"`
	AudioLink    string `json:"audio_link,omitempty"`
	SlidesLink   string `json:"slides_link,omitempty"`
	DurationMs   int64  `json:"duration_ms" example:"48210"`
	StartedAt    string `json:"started_at" example:"2025-01-21T10:00:00Z"`
	FinishedAt   string `json:"finished_at" example:"2025-01-21T10:00:48Z"`
}

// ToResponse converts the run to its API representation
func (r *GenerationRun) ToResponse() GenerationRunResponse {
	return GenerationRunResponse{
		ID:           r.ID,
		RequestID:    r.RequestID,
		CourseTitle:  r.CourseTitle,
		LectureTitle: r.LectureTitle,
		Email:        r.Email,
		Status:       r.Status,
		Message:      r.Message,
		AudioLink:    r.AudioLink,
		SlidesLink:   r.SlidesLink,
		DurationMs:   r.DurationMs,
		StartedAt:    r.StartedAt.Format(time.RFC3339),
		FinishedAt:   r.FinishedAt.Format(time.RFC3339),
	}
}
