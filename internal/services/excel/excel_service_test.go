package excel

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/onegreenvn/lecture-content-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestColumnToLetter(t *testing.T) {
	assert.Equal(t, "A", columnToLetter(1))
	assert.Equal(t, "L", columnToLetter(12))
	assert.Equal(t, "Z", columnToLetter(26))
	assert.Equal(t, "AA", columnToLetter(27))
}

func TestExportRuns_WritesRows(t *testing.T) {
	started := time.Date(2024, 5, 17, 9, 0, 0, 0, time.UTC)
	runs := []*models.GenerationRun{
		{
			ID:           "id-1",
			RequestID:    "req-1",
			CourseTitle:  "CS-101",
			LectureTitle: "Intro",
			Status:       models.StatusSuccess,
			Message:      "Podcast and PowerPoint slides generated successfully!",
			AudioLink:    "https://drive/a",
			SlidesLink:   "https://drive/s",
			DurationMs:   4200,
			StartedAt:    started,
			FinishedAt:   started.Add(4200 * time.Millisecond),
		},
		{
			ID:           "id-2",
			RequestID:    "req-2",
			CourseTitle:  "CS-102",
			LectureTitle: "Graphs",
			Status:       models.StatusError,
			Message:      "Some uploads failed",
			StartedAt:    started,
			FinishedAt:   started,
		},
	}

	result, err := NewExcelService().ExportRuns(runs)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Rows)
	assert.True(t, strings.HasSuffix(result.Filename, ".xlsx"))

	f, err := excelize.OpenReader(bytes.NewReader(result.Content))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(RunsSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, runColumns, rows[0])
	assert.Equal(t, "req-1", rows[1][1])
	assert.Equal(t, "https://drive/s", rows[1][8])
	assert.Equal(t, "4200", rows[1][9])
	assert.Equal(t, "2024-05-17T09:00:00Z", rows[1][10])
	assert.Equal(t, "Some uploads failed", rows[2][6])
}

func TestExportRuns_Empty(t *testing.T) {
	result, err := NewExcelService().ExportRuns(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(result.Content))
	require.NoError(t, err)
	defer f.Close()

	value, err := f.GetCellValue(RunsSheetName, "A2")
	require.NoError(t, err)
	assert.Equal(t, "no generation runs found", value)
}
