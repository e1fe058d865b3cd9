package repository

import (
	"github.com/cloudporter/aws-logsub-enforcer-go/internal/domain/entity"
)

type ExportRepository interface {
	ExportRunResultsToCSV(results []entity.RunResult, filename string, outputDir string) (string, error)
	ExportRunResultsToJSON(results []entity.RunResult, filename string, outputDir string) (string, error)
	ExportRunResultsToPDF(results []entity.RunResult, filename string, outputDir string) (string, error)
}
