package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/onegreenvn/lecture-content-backend/internal/config"
	"github.com/onegreenvn/lecture-content-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRetrievalTestService(t *testing.T, handler http.HandlerFunc) *RetrievalService {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewRetrievalService(config.RetrievalConfig{
		BaseURL: server.URL + "/",
		Timeout: 5 * time.Second,
	})
}

func TestGetCompleteLecture_Success(t *testing.T) {
	var received map[string]string

	svc := newRetrievalTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/lectures/complete", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"success","message":"ok","complete_content":"Neural networks are..."}`))
	})

	lecture, err := svc.GetCompleteLecture(context.Background(), "CS101", "Intro")

	require.NoError(t, err)
	assert.Equal(t, models.StatusSuccess, lecture.Status)
	assert.Equal(t, "Neural networks are...", lecture.CompleteContent)
	assert.Equal(t, "CS101", received["course_title"])
	assert.Equal(t, "Intro", received["lecture_title"])
}

func TestGetCompleteLecture_PassesThroughErrorStatus(t *testing.T) {
	svc := newRetrievalTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"error","message":"lecture not found"}`))
	})

	lecture, err := svc.GetCompleteLecture(context.Background(), "CS101", "Missing")

	require.NoError(t, err)
	assert.Equal(t, models.StatusError, lecture.Status)
	assert.Equal(t, "lecture not found", lecture.Message)
}

func TestGetCompleteLecture_UpstreamErrorMessage(t *testing.T) {
	svc := newRetrievalTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"course does not exist"}`))
	})

	_, err := svc.GetCompleteLecture(context.Background(), "CS999", "Intro")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "course does not exist")
}

func TestGetCompleteLecture_NonJSONError(t *testing.T) {
	svc := newRetrievalTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	})

	_, err := svc.GetCompleteLecture(context.Background(), "CS101", "Intro")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}
