package models

import (
	"time"
)

// Pipeline stages reported while generating lecture content
const (
	StageStarted          = "started"
	StageFolderCreated    = "folder_created"
	StageScriptGenerated  = "script_generated"
	StageAudioSynthesized = "audio_synthesized"
	StageAudioUploaded    = "audio_uploaded"
	StageOutlineExtracted = "outline_extracted"
	StageSlidesRendered   = "slides_rendered"
	StageSlidesUploaded   = "slides_uploaded"
	StageCompleted        = "completed"
	StageFailed           = "failed"
)

// Process log statuses
const (
	LogStatusInfo    = "info"
	LogStatusSuccess = "success"
	LogStatusWarning = "warning"
	LogStatusError   = "error"
)

// ProcessLog represents a progress entry for one generation run
type ProcessLog struct {
	// Primary key
	ID string `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`

	// Run identification (request_id of the generation)
	RunID string `json:"run_id" gorm:"type:varchar(100);not null;index" example:"550e8400-e29b-41d4-a716-446655440000"`

	// Log details
	Stage   string `json:"stage" gorm:"type:varchar(50);not null;index" example:"audio_uploaded"`
	Status  string `json:"status" gorm:"type:varchar(20);not null;index" example:"success"` // "info", "success", "warning", "error"
	Message string `json:"message" gorm:"type:text;not null" example:"Uploading podcast..."`

	// Timestamps
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for the ProcessLog model
func (ProcessLog) TableName() string {
	return "process_logs"
}

// ProcessLogResponse represents the response for process log operations
type ProcessLogResponse struct {
	ID        string `json:"id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	RunID     string `json:"run_id" example:"550e8400-e29b-41d4-a716-446655440001"`
	Stage     string `json:"stage" example:"audio_uploaded"`
	Status    string `json:"status" example:"success"`
	Message   string `json:"message" example:"Uploading podcast..."`
	CreatedAt string `json:"created_at" example:"2025-01-21T10:30:00Z"`
}

// ToResponse converts the log to its API representation
func (l *ProcessLog) ToResponse() ProcessLogResponse {
	return ProcessLogResponse{
		ID:        l.ID,
		RunID:     l.RunID,
		Stage:     l.Stage,
		Status:    l.Status,
		Message:   l.Message,
		CreatedAt: l.CreatedAt.Format(time.RFC3339),
	}
}
