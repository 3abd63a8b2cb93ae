package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/onegreenvn/lecture-content-backend/internal/models"
	"github.com/onegreenvn/lecture-content-backend/internal/services"
	"github.com/onegreenvn/lecture-content-backend/internal/utils"
	"github.com/sirupsen/logrus"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type GenerationRunHandler struct {
	runService *services.GenerationRunService
}

func NewGenerationRunHandler(runService *services.GenerationRunService) *GenerationRunHandler {
	return &GenerationRunHandler{
		runService: runService,
	}
}

// ListRuns godoc
// @Summary List generation runs
// @Description Paginated history of lecture generations, newest first
// @Tags runs
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page" default(1)
// @Param page_size query int false "Page size" default(20)
// @Param status query string false "Filter by status" Enums(success, error)
// @Success 200 {object} map[string]interface{} "data: []GenerationRunResponse, pagination: PaginationResponse"
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/runs [get]
func (h *GenerationRunHandler) ListRuns(c *gin.Context) {
	page, pageSize := utils.ParsePaginationFromQuery(c.Query("page"), c.Query("page_size"))
	status := c.Query("status")

	runs, pagination, err := h.runService.List(status, page, pageSize)
	if err != nil {
		logrus.Errorf("Failed to list generation runs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": models.StatusError, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       runs,
		"pagination": pagination,
	})
}

// GetRun godoc
// @Summary Get a generation run
// @Description Get one generation run by its request ID or ID
// @Tags runs
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Run request ID or ID"
// @Success 200 {object} models.GenerationRunResponse
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/runs/{id} [get]
func (h *GenerationRunHandler) GetRun(c *gin.Context) {
	run, err := h.runService.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": models.StatusError, "message": "Generation run not found"})
		return
	}

	c.JSON(http.StatusOK, run.ToResponse())
}

// ExportRuns godoc
// @Summary Export generation runs to Excel
// @Description Download the generation history as an .xlsx workbook
// @Tags runs
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security ApiKeyAuth
// @Param status query string false "Filter by status" Enums(success, error)
// @Success 200 {file} file
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/runs/export [get]
func (h *GenerationRunHandler) ExportRuns(c *gin.Context) {
	result, err := h.runService.Export(c.Query("status"))
	if err != nil {
		logrus.Errorf("Failed to export generation runs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": models.StatusError, "message": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", result.Filename))
	c.Data(http.StatusOK, xlsxContentType, result.Content)
}
