package services

import (
	"fmt"
	"time"

	"github.com/onegreenvn/lecture-content-backend/internal/database/repository"
	"github.com/onegreenvn/lecture-content-backend/internal/models"
	"github.com/sirupsen/logrus"
)

type ProcessLogService struct {
	logRepo         *repository.ProcessLogRepository // nil when run history is disabled
	sseHub          *SSEHub
	cleanupStopChan chan bool
}

func NewProcessLogService(logRepo *repository.ProcessLogRepository, sseHub *SSEHub) *ProcessLogService {
	return &ProcessLogService{
		logRepo:         logRepo,
		sseHub:          sseHub,
		cleanupStopChan: make(chan bool),
	}
}

// Report records a pipeline stage for a run and pushes it to subscribed SSE clients.
// Persistence failures are logged and never interrupt the pipeline.
func (s *ProcessLogService) Report(runID, stage, status, message string) {
	if runID == "" {
		return
	}

	log := &models.ProcessLog{
		RunID:     runID,
		Stage:     stage,
		Status:    status,
		Message:   message,
		CreatedAt: time.Now(),
	}

	if s.logRepo != nil {
		if err := s.logRepo.Create(log); err != nil {
			logrus.Warnf("Failed to save process log for run %s: %v", runID, err)
		}
	}

	logrus.WithFields(logrus.Fields{
		"run_id": runID,
		"stage":  stage,
		"status": status,
	}).Debug(message)

	s.sseHub.BroadcastLog(log)
}

// HistoryEnabled reports whether logs are persisted
func (s *ProcessLogService) HistoryEnabled() bool {
	return s.logRepo != nil
}

// GetLogsByRunID retrieves stored logs for a run
func (s *ProcessLogService) GetLogsByRunID(runID string, limit, offset int) ([]*models.ProcessLog, error) {
	if s.logRepo == nil {
		return nil, fmt.Errorf("run history is not configured")
	}
	return s.logRepo.GetByRunID(runID, limit, offset)
}

// StartLogCleanup starts a background goroutine to periodically clean up old logs
func (s *ProcessLogService) StartLogCleanup(interval time.Duration, retentionDays int) {
	if s.logRepo == nil {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		// Run initial cleanup
		s.cleanupOldLogs(retentionDays)

		for {
			select {
			case <-ticker.C:
				s.cleanupOldLogs(retentionDays)
			case <-s.cleanupStopChan:
				return
			}
		}
	}()
	logrus.Infof("Log cleanup service started (interval: %v, retention: %d days)", interval, retentionDays)
}

// StopLogCleanup stops the log cleanup service
func (s *ProcessLogService) StopLogCleanup() {
	select {
	case s.cleanupStopChan <- true:
	default:
	}
}

// cleanupOldLogs deletes logs older than the specified number of days
func (s *ProcessLogService) cleanupOldLogs(retentionDays int) {
	deletedCount, err := s.logRepo.DeleteOldLogs(retentionDays)
	if err != nil {
		logrus.Errorf("Failed to cleanup old logs: %v", err)
		return
	}

	if deletedCount > 0 {
		logrus.Infof("Log cleanup completed: deleted %d log entries older than %d day(s)", deletedCount, retentionDays)
	} else {
		logrus.Debugf("Log cleanup completed: no logs to delete (all logs are within %d day(s))", retentionDays)
	}
}
