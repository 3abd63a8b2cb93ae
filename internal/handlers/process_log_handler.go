package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/onegreenvn/lecture-content-backend/internal/models"
	"github.com/onegreenvn/lecture-content-backend/internal/services"
	"github.com/sirupsen/logrus"
)

const sseHeartbeatInterval = 15 * time.Second

type ProcessLogHandler struct {
	processLogService *services.ProcessLogService
	sseHub            *services.SSEHub
}

func NewProcessLogHandler(processLogService *services.ProcessLogService, sseHub *services.SSEHub) *ProcessLogHandler {
	return &ProcessLogHandler{
		processLogService: processLogService,
		sseHub:            sseHub,
	}
}

// GetRunLogs godoc
// @Summary Get progress logs of a run
// @Description Get the stored progress logs of a generation run, oldest first (requires run history)
// @Tags runs
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Run request ID"
// @Param limit query int false "Limit" default(100)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} models.ProcessLogResponse
// @Failure 500 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /api/v1/runs/{id}/logs [get]
func (h *ProcessLogHandler) GetRunLogs(c *gin.Context) {
	if !h.processLogService.HistoryEnabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": models.StatusError, "message": "Run history is not configured"})
		return
	}

	runID := c.Param("id")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	if limit > 1000 {
		limit = 1000
	}

	logs, err := h.processLogService.GetLogsByRunID(runID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": models.StatusError, "message": "Failed to get logs", "details": err.Error()})
		return
	}

	responses := make([]models.ProcessLogResponse, len(logs))
	for i, log := range logs {
		responses[i] = log.ToResponse()
	}

	c.JSON(http.StatusOK, responses)
}

// StreamRunLogs godoc
// @Summary Stream progress of a run via Server-Sent Events (SSE)
// @Description Stream real-time progress events (event type "log") of a generation run
// @Tags runs
// @Produce text/event-stream
// @Security ApiKeyAuth
// @Param id path string true "Run request ID"
// @Success 200 "SSE stream"
// @Router /api/v1/runs/{id}/stream [get]
func (h *ProcessLogHandler) StreamRunLogs(c *gin.Context) {
	runID := c.Param("id")

	// Set headers for SSE
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no") // Disable buffering for nginx

	// Register client
	clientChan := h.sseHub.RegisterClient(runID)
	defer h.sseHub.UnregisterClient(runID, clientChan)

	// Send initial connection message
	c.SSEvent("connected", gin.H{
		"run_id":  runID,
		"message": "Connected to progress stream",
	})
	c.Writer.Flush()

	// Replay stored logs so late subscribers see earlier stages
	if h.processLogService.HistoryEnabled() {
		existingLogs, err := h.processLogService.GetLogsByRunID(runID, 100, 0)
		if err == nil {
			for _, log := range existingLogs {
				logJSON, err := json.Marshal(log.ToResponse())
				if err != nil {
					continue
				}
				message := fmt.Sprintf("event: log\ndata: %s\n\n", string(logJSON))
				if _, err := c.Writer.Write([]byte(message)); err != nil {
					return
				}
				c.Writer.Flush()
			}
		}
	}

	heartbeat := time.NewTicker(sseHeartbeatInterval)
	defer heartbeat.Stop()

	// Send logs as they arrive
	for {
		select {
		case <-c.Request.Context().Done():
			logrus.Infof("SSE client disconnected: run %s", runID)
			return
		case <-heartbeat.C:
			h.sseHub.SendHeartbeat(runID)
		case message, ok := <-clientChan:
			if !ok {
				return
			}
			if _, err := c.Writer.Write(message); err != nil {
				logrus.Errorf("Failed to write SSE message: %v", err)
				return
			}
			c.Writer.Flush()
		}
	}
}
