package services

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/onegreenvn/lecture-content-backend/internal/models"
	"github.com/sirupsen/logrus"
)

// SSEHub manages Server-Sent Events connections for real-time progress streaming
type SSEHub struct {
	// Map of run keys to channels
	// Key format: "run:<run_id>"
	clients map[string]map[chan []byte]bool
	mu      sync.RWMutex
}

// NewSSEHub creates a new SSE hub
func NewSSEHub() *SSEHub {
	return &SSEHub{
		clients: make(map[string]map[chan []byte]bool),
	}
}

func runKey(runID string) string {
	return fmt.Sprintf("run:%s", runID)
}

// RegisterClient registers a new SSE client for a run
func (h *SSEHub) RegisterClient(runID string) chan []byte {
	h.mu.Lock()
	defer h.mu.Unlock()

	key := runKey(runID)
	clientChan := make(chan []byte, 16)

	if h.clients[key] == nil {
		h.clients[key] = make(map[chan []byte]bool)
	}
	h.clients[key][clientChan] = true

	logrus.Infof("SSE client registered for %s (total clients: %d)", key, len(h.clients[key]))
	return clientChan
}

// UnregisterClient unregisters an SSE client
func (h *SSEHub) UnregisterClient(runID string, clientChan chan []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	key := runKey(runID)
	if h.clients[key] != nil {
		if _, ok := h.clients[key][clientChan]; ok {
			delete(h.clients[key], clientChan)
			close(clientChan)
		}

		// Clean up empty maps
		if len(h.clients[key]) == 0 {
			delete(h.clients, key)
		}
	}

	logrus.Infof("SSE client unregistered for %s (remaining clients: %d)", key, len(h.clients[key]))
}

// BroadcastLog broadcasts a progress entry to all clients subscribed to its run
func (h *SSEHub) BroadcastLog(log *models.ProcessLog) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	key := runKey(log.RunID)
	clients := h.clients[key]
	if len(clients) == 0 {
		return
	}

	logJSON, err := json.Marshal(log.ToResponse())
	if err != nil {
		logrus.Errorf("Failed to marshal log for SSE: %v", err)
		return
	}

	// EventSource clients listen for the "log" event type
	message := []byte(fmt.Sprintf("event: log\ndata: %s\n\n", string(logJSON)))

	// Send to all clients (non-blocking)
	for clientChan := range clients {
		select {
		case clientChan <- message:
		default:
			logrus.Warnf("SSE client channel full, skipping: %s", key)
		}
	}
}

// GetClientCount returns the number of clients for a run
func (h *SSEHub) GetClientCount(runID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients[runKey(runID)])
}

// SendHeartbeat sends a heartbeat message to keep connection alive
func (h *SSEHub) SendHeartbeat(runID string) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	clients, exists := h.clients[runKey(runID)]
	if !exists {
		return
	}

	heartbeat := []byte(fmt.Sprintf(": heartbeat %s\n\n", time.Now().Format(time.RFC3339)))
	for clientChan := range clients {
		select {
		case clientChan <- heartbeat:
		default:
			// Skip if channel is full
		}
	}
}
