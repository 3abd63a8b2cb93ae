package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/onegreenvn/lecture-content-backend/internal/config"
	"github.com/onegreenvn/lecture-content-backend/internal/models"
	"github.com/sirupsen/logrus"
)

// RetrievalService fetches complete lecture text from the retrieval backend
type RetrievalService struct {
	baseURL string
	client  *http.Client
}

func NewRetrievalService(cfg config.RetrievalConfig) *RetrievalService {
	return &RetrievalService{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// GetCompleteLecture returns the assembled lecture for a course/lecture pair
func (s *RetrievalService) GetCompleteLecture(ctx context.Context, courseTitle, lectureTitle string) (*models.LectureResponse, error) {
	apiURL := s.baseURL + "/lectures/complete"

	jsonBody, err := json.Marshal(map[string]string{
		"course_title":  courseTitle,
		"lecture_title": lectureTitle,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", "Lecture-Content-Backend/1.0")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		logrus.Errorf("HTTP request failed to retrieval service %s: %v", apiURL, err)
		return nil, fmt.Errorf("failed to call retrieval service: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logrus.Errorf("Retrieval service returned error status %d: %s", resp.StatusCode, string(bodyBytes))
		var errorResp map[string]interface{}
		if err := json.Unmarshal(bodyBytes, &errorResp); err == nil {
			if errorMsg, ok := errorResp["message"].(string); ok && errorMsg != "" {
				return nil, fmt.Errorf("retrieval service error: %s", errorMsg)
			}
			if errorMsg, ok := errorResp["error"].(string); ok && errorMsg != "" {
				return nil, fmt.Errorf("retrieval service error: %s", errorMsg)
			}
		}
		return nil, fmt.Errorf("retrieval service returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var lecture models.LectureResponse
	if err := json.Unmarshal(bodyBytes, &lecture); err != nil {
		return nil, fmt.Errorf("failed to decode retrieval response: %w", err)
	}

	return &lecture, nil
}
