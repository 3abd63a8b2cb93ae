package services

import (
	"fmt"

	"github.com/onegreenvn/lecture-content-backend/internal/models"
	"github.com/onegreenvn/lecture-content-backend/internal/services/excel"
	"github.com/onegreenvn/lecture-content-backend/internal/utils"
)

// maxExportRows caps the number of runs written into one export
const maxExportRows = 10000

// GenerationRunStore persists finished runs
type GenerationRunStore interface {
	Create(run *models.GenerationRun) error
	GetByID(id string) (*models.GenerationRun, error)
	GetByRequestID(requestID string) (*models.GenerationRun, error)
	List(status string, limit, offset int) ([]*models.GenerationRun, int64, error)
}

type GenerationRunService struct {
	runRepo      GenerationRunStore
	excelService *excel.Service
}

func NewGenerationRunService(runRepo GenerationRunStore, excelService *excel.Service) *GenerationRunService {
	return &GenerationRunService{
		runRepo:      runRepo,
		excelService: excelService,
	}
}

// Record stores a finished run
func (s *GenerationRunService) Record(run *models.GenerationRun) error {
	if err := s.runRepo.Create(run); err != nil {
		return fmt.Errorf("failed to record generation run: %w", err)
	}
	return nil
}

// GetByID retrieves a run by ID or request ID
func (s *GenerationRunService) GetByID(id string) (*models.GenerationRun, error) {
	if run, err := s.runRepo.GetByRequestID(id); err == nil {
		return run, nil
	}
	run, err := s.runRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("generation run not found: %w", err)
	}
	return run, nil
}

// List returns a page of runs, newest first
func (s *GenerationRunService) List(status string, page, pageSize int) ([]models.GenerationRunResponse, utils.PaginationResponse, error) {
	page, pageSize = utils.ValidateAndNormalizePagination(page, pageSize)

	runs, total, err := s.runRepo.List(status, pageSize, utils.CalculateOffset(page, pageSize))
	if err != nil {
		return nil, utils.PaginationResponse{}, fmt.Errorf("failed to list generation runs: %w", err)
	}

	responses := make([]models.GenerationRunResponse, 0, len(runs))
	for _, run := range runs {
		responses = append(responses, run.ToResponse())
	}

	return responses, utils.CalculatePaginationInfo(int(total), page, pageSize), nil
}

// Export writes the most recent runs into an Excel workbook
func (s *GenerationRunService) Export(status string) (*excel.ExportResult, error) {
	runs, _, err := s.runRepo.List(status, maxExportRows, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load generation runs: %w", err)
	}

	return s.excelService.ExportRuns(runs)
}
