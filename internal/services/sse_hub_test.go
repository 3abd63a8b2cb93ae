package services

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/onegreenvn/lecture-content-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSSEHub_BroadcastReachesRunSubscribers(t *testing.T) {
	hub := NewSSEHub()
	subscriber := hub.RegisterClient("run-1")
	other := hub.RegisterClient("run-2")

	hub.BroadcastLog(&models.ProcessLog{RunID: "run-1", Stage: models.StageScriptGenerated, Status: models.LogStatusSuccess, Message: "done"})

	require.Len(t, subscriber, 1)
	assert.Empty(t, other)

	message := string(<-subscriber)
	require.True(t, strings.HasPrefix(message, "event: log\ndata: "), message)
	require.True(t, strings.HasSuffix(message, "\n\n"))

	var payload models.ProcessLogResponse
	data := strings.TrimSuffix(strings.TrimPrefix(message, "event: log\ndata: "), "\n\n")
	require.NoError(t, json.Unmarshal([]byte(data), &payload))
	assert.Equal(t, "run-1", payload.RunID)
	assert.Equal(t, models.StageScriptGenerated, payload.Stage)
	assert.Equal(t, "done", payload.Message)
}

func TestSSEHub_UnregisterClosesChannel(t *testing.T) {
	hub := NewSSEHub()
	ch := hub.RegisterClient("run-1")
	assert.Equal(t, 1, hub.GetClientCount("run-1"))

	hub.UnregisterClient("run-1", ch)

	_, open := <-ch
	assert.False(t, open)
	assert.Zero(t, hub.GetClientCount("run-1"))

	// a second unregister must not panic on the closed channel
	hub.UnregisterClient("run-1", ch)
}

func TestSSEHub_FullChannelDoesNotBlock(t *testing.T) {
	hub := NewSSEHub()
	ch := hub.RegisterClient("run-1")

	for i := 0; i < cap(ch)+5; i++ {
		hub.BroadcastLog(&models.ProcessLog{RunID: "run-1", Stage: models.StageStarted})
	}

	assert.Len(t, ch, cap(ch))
}

func TestProcessLogService_ReportWithoutHistoryBroadcasts(t *testing.T) {
	hub := NewSSEHub()
	svc := NewProcessLogService(nil, hub)
	ch := hub.RegisterClient("run-9")

	svc.Report("run-9", models.StageCompleted, models.LogStatusSuccess, "finished")
	svc.Report("", models.StageCompleted, models.LogStatusSuccess, "ignored")

	require.Len(t, ch, 1)
	assert.Contains(t, string(<-ch), `"stage":"completed"`)
	assert.False(t, svc.HistoryEnabled())

	_, err := svc.GetLogsByRunID("run-9", 10, 0)
	assert.Error(t, err)
}
