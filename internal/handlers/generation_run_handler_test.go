package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/onegreenvn/lecture-content-backend/internal/models"
	"github.com/onegreenvn/lecture-content-backend/internal/services"
	"github.com/onegreenvn/lecture-content-backend/internal/services/excel"
	"github.com/onegreenvn/lecture-content-backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRunStore struct {
	runs []*models.GenerationRun
}

func (s *stubRunStore) Create(run *models.GenerationRun) error {
	s.runs = append(s.runs, run)
	return nil
}

func (s *stubRunStore) GetByID(id string) (*models.GenerationRun, error) {
	for _, run := range s.runs {
		if run.ID == id {
			return run, nil
		}
	}
	return nil, errors.New("record not found")
}

func (s *stubRunStore) GetByRequestID(requestID string) (*models.GenerationRun, error) {
	for _, run := range s.runs {
		if run.RequestID == requestID {
			return run, nil
		}
	}
	return nil, errors.New("record not found")
}

func (s *stubRunStore) List(_ string, limit, offset int) ([]*models.GenerationRun, int64, error) {
	total := int64(len(s.runs))
	if offset >= len(s.runs) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(s.runs) {
		end = len(s.runs)
	}
	return s.runs[offset:end], total, nil
}

func newRunRouter() *gin.Engine {
	store := &stubRunStore{runs: []*models.GenerationRun{
		{ID: "1", RequestID: "req-1", CourseTitle: "CS-101", LectureTitle: "Intro", Status: models.StatusSuccess},
		{ID: "2", RequestID: "req-2", CourseTitle: "CS-101", LectureTitle: "Graphs", Status: models.StatusError},
	}}
	h := NewGenerationRunHandler(services.NewGenerationRunService(store, excel.NewExcelService()))

	r := gin.New()
	r.GET("/runs", h.ListRuns)
	r.GET("/runs/export", h.ExportRuns)
	r.GET("/runs/:id", h.GetRun)
	return r
}

func TestGenerationRunHandler_ListRuns(t *testing.T) {
	w := httptest.NewRecorder()
	newRunRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/runs?page=1&page_size=1", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data       []models.GenerationRunResponse `json:"data"`
		Pagination utils.PaginationResponse       `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "req-1", body.Data[0].RequestID)
	assert.Equal(t, 2, body.Pagination.Total)
	assert.True(t, body.Pagination.HasNext)
}

func TestGenerationRunHandler_GetRun(t *testing.T) {
	r := newRunRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/runs/req-2", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var run models.GenerationRunResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &run))
	assert.Equal(t, "Graphs", run.LectureTitle)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/runs/unknown", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGenerationRunHandler_ExportRuns(t *testing.T) {
	w := httptest.NewRecorder()
	newRunRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/runs/export", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment; filename=generation_runs_")
	assert.NotZero(t, w.Body.Len())
}
