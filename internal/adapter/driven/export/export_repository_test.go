package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudporter/aws-logsub-enforcer-go/internal/domain/entity"
)

func sampleResults() []entity.RunResult {
	result := entity.NewRunResult()
	result.Timestamp = "2026-08-23T10:00:00Z"
	result.AccountID = "123456789012"
	result.Region = "us-east-1"
	result.FirehoseStream = "central-logs"
	result.TotalLogGroups = 3
	result.ExistingFilters = 1
	result.NewFiltersAdded = 1
	result.FailedUpdates = 1
	result.Details.WithFilters = []string{"/a"}
	result.Details.Updated = []string{"/b"}
	result.Details.Failed = []entity.FailedLogGroup{{LogGroup: "/c", Error: "AccessDenied"}}
	result.NotificationSent = true
	return []entity.RunResult{result}
}

func TestExportRunResultsToJSON(t *testing.T) {
	repo := NewExportRepository()
	dir := t.TempDir()

	path, err := repo.ExportRunResultsToJSON(sampleResults(), "report", dir)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded []entity.RunResult
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 1)

	assert.Equal(t, "123456789012", decoded[0].AccountID)
	assert.Equal(t, 3, decoded[0].TotalLogGroups)
	assert.Equal(t, []string{"/b"}, decoded[0].Details.Updated)
}

func TestExportRunResultsToCSV(t *testing.T) {
	repo := NewExportRepository()
	dir := t.TempDir()

	path, err := repo.ExportRunResultsToCSV(sampleResults(), "report", dir)
	require.NoError(t, err)

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2, "header plus one result row")

	assert.Equal(t, "Account ID", records[0][0])
	assert.Equal(t, "123456789012", records[1][0])
	assert.Equal(t, "us-east-1", records[1][1])
	assert.Equal(t, "3", records[1][5])
	assert.Contains(t, records[1][13], "/c: AccessDenied")
}

func TestExportRunResultsToPDF(t *testing.T) {
	repo := NewExportRepository()
	dir := t.TempDir()

	path, err := repo.ExportRunResultsToPDF(sampleResults(), "report", dir)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestGenerateFilenameCreatesDirectory(t *testing.T) {
	dir := t.TempDir() + "/nested/reports"

	path, err := generateFilename("report", dir, "csv")
	require.NoError(t, err)

	assert.Contains(t, path, "report_")
	_, err = os.Stat(dir)
	assert.NoError(t, err)
}
