package repository

import (
	"time"

	"github.com/onegreenvn/lecture-content-backend/internal/models"
	"gorm.io/gorm"
)

type ProcessLogRepository struct {
	db *gorm.DB
}

func NewProcessLogRepository(db *gorm.DB) *ProcessLogRepository {
	return &ProcessLogRepository{db: db}
}

// Create creates a new process log
func (r *ProcessLogRepository) Create(log *models.ProcessLog) error {
	return r.db.Create(log).Error
}

// GetByRunID retrieves the logs of a run in the order they were written
func (r *ProcessLogRepository) GetByRunID(runID string, limit, offset int) ([]*models.ProcessLog, error) {
	var logs []*models.ProcessLog
	err := r.db.Where("run_id = ?", runID).
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error
	return logs, err
}

// DeleteOldLogs deletes logs older than specified days
func (r *ProcessLogRepository) DeleteOldLogs(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days)
	result := r.db.Where("created_at < ?", cutoffDate).Delete(&models.ProcessLog{})
	return result.RowsAffected, result.Error
}
