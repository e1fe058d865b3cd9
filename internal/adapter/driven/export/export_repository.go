package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/cloudporter/aws-logsub-enforcer-go/internal/domain/entity"
	"github.com/cloudporter/aws-logsub-enforcer-go/internal/domain/repository"
	"github.com/jung-kurt/gofpdf"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

func (r *ExportRepositoryImpl) ExportRunResultsToCSV(results []entity.RunResult, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := []string{
		"Account ID", "Region", "Timestamp", "Firehose Stream", "Dry Run",
		"Total Log Groups", "Existing Filters", "New Filters Added",
		"Would Update", "Failed Updates", "Notification Sent", "Notification Error",
		"Log Groups Updated", "Log Groups Failed",
	}
	if err := writer.Write(headers); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, row := range results {
		record := []string{
			row.AccountID,
			row.Region,
			row.Timestamp,
			row.FirehoseStream,
			strconv.FormatBool(row.DryRun),
			strconv.Itoa(row.TotalLogGroups),
			strconv.Itoa(row.ExistingFilters),
			strconv.Itoa(row.NewFiltersAdded),
			strconv.Itoa(row.WouldUpdate),
			strconv.Itoa(row.FailedUpdates),
			strconv.FormatBool(row.NotificationSent),
			row.NotificationError,
			strings.Join(row.Details.Updated, "\n"),
			formatFailedGroups(row.Details.Failed),
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("error writing CSV record: %w", err)
		}
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportRunResultsToJSON(results []entity.RunResult, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(results); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportRunResultsToPDF(results []entity.RunResult, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	drawSection := func(title string, content string) {
		if content == "" {
			return
		}
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)

		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.MultiCell(190, 5, tr(content), "", "L", false)
		pdf.Ln(8)
	}

	for i, row := range results {
		pdf.AddPage()

		// Cabeçalho
		pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
		pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
		pdf.SetFont("Arial", "B", 14)
		title := fmt.Sprintf("  Subscription Filter Report: %s (%s)", row.AccountID, row.Region)
		pdf.CellFormat(0, 12, tr(title), "", 1, "L", true, 0, "")

		pdf.SetFont("Arial", "", 10)
		pdf.SetFillColor(240, 240, 240)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		subtitle := fmt.Sprintf("  Firehose: %s | Dry Run: %t | %s", row.FirehoseStream, row.DryRun, row.Timestamp)
		pdf.CellFormat(0, 8, tr(subtitle), "", 1, "L", true, 0, "")
		pdf.Ln(10)

		summary := fmt.Sprintf(
			"Total Log Groups: %d\nExisting Filters: %d\nNew Filters Added: %d\nWould Update (Dry Run): %d\nFailed Updates: %d",
			row.TotalLogGroups, row.ExistingFilters, row.NewFiltersAdded, row.WouldUpdate, row.FailedUpdates)
		drawSection("Run Summary", summary)

		drawSection("Log Groups Updated", strings.Join(row.Details.Updated, "\n"))
		drawSection("Log Groups That Would Be Updated", strings.Join(row.Details.WouldUpdate, "\n"))
		drawSection("Log Groups Failed", formatFailedGroups(row.Details.Failed))
		if row.NotificationError != "" {
			drawSection("Notification Error", row.NotificationError)
		}

		// Rodapé
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		footerText := fmt.Sprintf("Generated by AWS LogSub Enforcer | %s", time.Now().Format("2006-01-02"))
		pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Page %d", i+1)), "", 0, "R", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}

func formatFailedGroups(failed []entity.FailedLogGroup) string {
	lines := make([]string, 0, len(failed))
	for _, f := range failed {
		lines = append(lines, fmt.Sprintf("%s: %s", f.LogGroup, f.Error))
	}
	return strings.Join(lines, "\n")
}
