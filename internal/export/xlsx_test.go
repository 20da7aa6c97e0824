package export_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"polisched/internal/domain"
	"polisched/internal/export"
)

func TestWriteXLSX(t *testing.T) {
	premium := 2345.67
	summaries := []domain.RecordSummary{
		{
			ParsedAt:       time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC),
			Insurer:        "Discovery Insure",
			DocumentName:   "policy.pdf",
			PolicyNumber:   "12345678",
			MonthlyPremium: &premium,
			SourceType:     domain.SourceUpload,
			SourceName:     "policy.pdf",
			Status:         domain.ParseStatusCompleted,
			PageCount:      9,
			DurationMS:     412,
		},
		{
			ParsedAt:     time.Date(2024, 3, 2, 8, 0, 0, 0, time.UTC),
			Insurer:      "Unknown",
			DocumentName: "scan.pdf",
			SourceType:   domain.SourceURL,
			SourceName:   "scan.pdf",
			Status:       domain.ParseStatusFailed,
			PageCount:    1,
			DurationMS:   35,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, export.WriteXLSX(&buf, summaries))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Parse Records")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Parsed At", rows[0][0])
	assert.Equal(t, "Monthly Premium", rows[0][4])

	assert.Equal(t, "2024-03-01 10:30:00", rows[1][0])
	assert.Equal(t, "Discovery Insure", rows[1][1])
	assert.Equal(t, "12345678", rows[1][3])
	assert.Equal(t, "2345.67", rows[1][4])
	assert.Equal(t, "upload", rows[1][5])
	assert.Equal(t, "completed", rows[1][7])

	// Row without a premium leaves the cell blank.
	assert.Equal(t, "Unknown", rows[2][1])
	assert.Equal(t, "failed", rows[2][7])
}

func TestWriteXLSX_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteXLSX(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Parse Records")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
