package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"featureboard/sheet"
)

// ExportFormat формат экспорта списка фич
type ExportFormat string

const (
	FormatJSON  ExportFormat = "json"
	FormatCSV   ExportFormat = "csv"
	FormatExcel ExportFormat = "xlsx"
)

var exportHeaders = []string{
	"ID", "Module", "Feature", "Description", "Point of Contact",
	"Weighted Score", "Total Requests", "Requested Clients",
}

// Exporter экспортер текущего списка фич
type Exporter struct{}

// NewExporter создает новый экспортер
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export записывает список фич в заданном формате
func (e *Exporter) Export(w io.Writer, features []sheet.FeatureRecord, format ExportFormat) error {
	switch format {
	case FormatJSON:
		return e.ExportJSON(w, features)
	case FormatCSV:
		return e.ExportCSV(w, features)
	case FormatExcel:
		return e.ExportExcel(w, features)
	default:
		return fmt.Errorf("unsupported export format: %s", format)
	}
}

// ExportJSON экспортирует список фич в JSON
func (e *Exporter) ExportJSON(w io.Writer, features []sheet.FeatureRecord) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	payload := map[string]interface{}{
		"exported_at": time.Now().Format(time.RFC3339),
		"count":       len(features),
		"features":    features,
	}
	if err := encoder.Encode(payload); err != nil {
		return fmt.Errorf("failed to encode JSON export: %w", err)
	}
	return nil
}

// ExportCSV экспортирует список фич в CSV
func (e *Exporter) ExportCSV(w io.Writer, features []sheet.FeatureRecord) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(exportHeaders); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, f := range features {
		record := []string{
			strconv.Itoa(f.ID),
			f.Module,
			f.Name,
			deref(f.Description),
			deref(f.PointOfContact),
			strconv.Itoa(f.WeightedScore),
			strconv.Itoa(f.TotalRequests),
			deref(f.RequestedClients),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// ExportExcel экспортирует список фич в XLSX
func (e *Exporter) ExportExcel(w io.Writer, features []sheet.FeatureRecord) error {
	file := excelize.NewFile()
	defer file.Close()

	const sheetName = "Features"
	index, err := file.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	file.SetActiveSheet(index)
	file.DeleteSheet("Sheet1")

	for col, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := file.SetCellValue(sheetName, cell, header); err != nil {
			return fmt.Errorf("failed to write header cell: %w", err)
		}
	}

	for rowIdx, f := range features {
		values := []interface{}{
			f.ID, f.Module, f.Name, deref(f.Description), deref(f.PointOfContact),
			f.WeightedScore, f.TotalRequests, deref(f.RequestedClients),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return err
			}
			if err := file.SetCellValue(sheetName, cell, value); err != nil {
				return fmt.Errorf("failed to write cell: %w", err)
			}
		}
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("failed to write XLSX: %w", err)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
