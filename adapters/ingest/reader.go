// Package ingest loads record datasets from tabular files. CSV and XLSX are
// supported; cells are coerced to numbers and booleans where they parse as
// such, and everything else stays text so the analyzer's numeric filtering
// does the rest.
package ingest

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"datadetective/domain/record"
	"datadetective/internal/errors"

	"github.com/xuri/excelize/v2"
)

// DataReader handles reading CSV and XLSX files into record datasets
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewDataReader creates a reader for the given file, selecting the format by
// extension.
func NewDataReader(filePath string) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &DataReader{filePath: filePath, fileType: fileType}
}

// ReadRecords reads the file into an ordered dataset. The first row is the
// header; every following row becomes one record. Empty cells are dropped
// from their record rather than stored as empty strings, so "field absent"
// keeps its meaning downstream.
func (r *DataReader) ReadRecords() (record.Dataset, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.IOError(fmt.Sprintf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath))
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	case "xlsx":
		rows, err = r.readExcelRows()
	default:
		return nil, errors.InvalidInput(fmt.Sprintf("unsupported file type: %s", r.fileType))
	}
	if err != nil {
		return nil, err
	}

	if len(rows) < 2 {
		return nil, errors.InvalidInput(fmt.Sprintf("%s file must have at least a header row and one data row", strings.ToUpper(r.fileType)))
	}

	return r.processRows(rows), nil
}

func (r *DataReader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open Excel file")
	}
	defer f.Close()

	// Always use Sheet1
	rows, err := f.GetRows("Sheet1")
	if err != nil {
		return nil, errors.Wrap(err, "failed to read Sheet1")
	}
	return rows, nil
}

func (r *DataReader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open CSV file")
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read CSV file")
	}
	return rows, nil
}

// processRows converts raw string rows into records, coercing cell values
func (r *DataReader) processRows(rows [][]string) record.Dataset {
	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(header)
	}

	dataset := make(record.Dataset, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		rec := make(record.Record)
		for j, cell := range rows[i] {
			if j >= len(headers) {
				continue
			}
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			rec[headers[j]] = coerceCell(cell)
		}
		dataset = append(dataset, rec)
	}

	log.Printf("[DataReader] %s file processed (%d columns, %d rows)",
		strings.ToUpper(r.fileType), len(headers), len(dataset))

	return dataset
}

// coerceCell turns a cell's text into the most specific scalar it parses as.
func coerceCell(cell string) any {
	if v, err := strconv.ParseFloat(cell, 64); err == nil {
		return v
	}
	if v, err := strconv.ParseBool(cell); err == nil {
		return v
	}
	return cell
}
