package excel

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/onegreenvn/lecture-content-backend/internal/models"
	"github.com/xuri/excelize/v2"
)

// RunsSheetName is the sheet holding the exported generation runs
const RunsSheetName = "Runs"

// runColumns are the header cells of the runs sheet, in column order
var runColumns = []string{
	"id", "request_id", "course_title", "lecture_title", "email",
	"status", "message", "audio_link", "slides_link",
	"duration_ms", "started_at", "finished_at",
}

// Service handles Excel exports of the generation history
type Service struct{}

// NewExcelService creates a new Excel service instance
func NewExcelService() *Service {
	return &Service{}
}

// ExportResult contains the result of an export operation
type ExportResult struct {
	Filename string
	Content  []byte
	Rows     int
}

// ExportRuns writes the given runs into a workbook held in memory
func (s *Service) ExportRuns(runs []*models.GenerationRun) (*ExportResult, error) {
	f := excelize.NewFile()
	defer f.Close()

	errorStyle, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"F4CCCC"}, // Light red
			Pattern: 1,
		},
	})

	defaultSheetName := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheetName, RunsSheetName); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	f.SetActiveSheet(0)

	// Write headers
	for i, col := range runColumns {
		cell := fmt.Sprintf("%s1", columnToLetter(i+1))
		f.SetCellValue(RunsSheetName, cell, col)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"FFFF00"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err == nil {
		f.SetCellStyle(RunsSheetName, "A1", columnToLetter(len(runColumns))+strconv.Itoa(1), headerStyle)
	}

	for i, col := range runColumns {
		colLetter := columnToLetter(i + 1)
		width := 20.0

		switch col {
		case "id", "request_id":
			width = 38.0
		case "course_title", "lecture_title", "email":
			width = 25.0
		case "status", "duration_ms":
			width = 12.0
		case "message", "audio_link", "slides_link":
			width = 50.0
		}

		f.SetColWidth(RunsSheetName, colLetter, colLetter, width)
	}

	for j, run := range runs {
		rowNum := j + 2
		values := []interface{}{
			run.ID,
			run.RequestID,
			run.CourseTitle,
			run.LectureTitle,
			run.Email,
			run.Status,
			run.Message,
			run.AudioLink,
			run.SlidesLink,
			run.DurationMs,
			run.StartedAt.Format(time.RFC3339),
			run.FinishedAt.Format(time.RFC3339),
		}
		for i, v := range values {
			f.SetCellValue(RunsSheetName, fmt.Sprintf("%s%d", columnToLetter(i+1), rowNum), v)
		}

		if run.Status == models.StatusError {
			f.SetCellStyle(RunsSheetName, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("%s%d", columnToLetter(len(runColumns)), rowNum), errorStyle)
		}
	}

	if len(runs) == 0 {
		f.SetCellValue(RunsSheetName, "A2", "no generation runs found")
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}

	return &ExportResult{
		Filename: fmt.Sprintf("generation_runs_%d.xlsx", time.Now().Unix()),
		Content:  buf.Bytes(),
		Rows:     len(runs),
	}, nil
}

// Helper function to convert column number to Excel column letter
func columnToLetter(col int) string {
	var result string
	for col > 0 {
		col--
		result = string(rune('A'+col%26)) + result
		col /= 26
	}
	return result
}
