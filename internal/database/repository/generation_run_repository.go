package repository

import (
	"github.com/onegreenvn/lecture-content-backend/internal/models"
	"gorm.io/gorm"
)

type GenerationRunRepository struct {
	db *gorm.DB
}

func NewGenerationRunRepository(db *gorm.DB) *GenerationRunRepository {
	return &GenerationRunRepository{db: db}
}

// Create stores a finished run
func (r *GenerationRunRepository) Create(run *models.GenerationRun) error {
	return r.db.Create(run).Error
}

// GetByID retrieves a run by ID
func (r *GenerationRunRepository) GetByID(id string) (*models.GenerationRun, error) {
	var run models.GenerationRun
	if err := r.db.Where("id = ?", id).First(&run).Error; err != nil {
		return nil, err
	}
	return &run, nil
}

// GetByRequestID retrieves the latest run recorded for a request ID
func (r *GenerationRunRepository) GetByRequestID(requestID string) (*models.GenerationRun, error) {
	var run models.GenerationRun
	err := r.db.Where("request_id = ?", requestID).
		Order("created_at DESC").
		First(&run).Error
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// List retrieves runs newest first, optionally filtered by status
func (r *GenerationRunRepository) List(status string, limit, offset int) ([]*models.GenerationRun, int64, error) {
	query := r.db.Model(&models.GenerationRun{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var runs []*models.GenerationRun
	err := query.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&runs).Error
	return runs, total, err
}
