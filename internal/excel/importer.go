package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/example/hifzbot/internal/database"
	"github.com/example/hifzbot/internal/quran"
)

// ImportConfig defines the import configuration
type ImportConfig struct {
	FilePath      string // Path to the Excel or CSV file
	LearnerColumn string // Column with the learner's telegram ID
	SurahColumn   string // Column with the surah number
	SheetName     string // Name of the sheet to import
	StartRow      int    // The row to start importing from (1-based index)
}

// DefaultImportConfig returns the default import configuration
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		LearnerColumn: "A",
		SurahColumn:   "B",
		SheetName:     "Sheet1",
		StartRow:      2, // By default, start from the second row (skip header)
	}
}

// ImportResult holds the result of an import operation
type ImportResult struct {
	TotalProcessed  int
	LearnersUpdated int
	SurahsImported  int
	Skipped         int
	Errors          []string
}

// ImportMemorizedLists loads learners' memorized-surah lists from an Excel
// or CSV file. Each row pairs a telegram ID with a surah number; rows for
// the same learner are taken in file order as the memorization order, and
// the learner's stored list is replaced wholesale.
func ImportMemorizedLists(config ImportConfig) (*ImportResult, error) {
	ext := strings.ToLower(filepath.Ext(config.FilePath))

	var rows [][]string
	var err error
	if ext == ".csv" {
		rows, err = readCSVRows(config.FilePath)
	} else {
		rows, err = readExcelRows(config.FilePath, config.SheetName)
	}
	if err != nil {
		return nil, err
	}

	result := &ImportResult{Errors: make([]string, 0)}

	learnerCol := columnIndex(config.LearnerColumn)
	surahCol := columnIndex(config.SurahColumn)

	// Collect lists per learner, preserving both row order and the order
	// learners first appear in
	lists := make(map[int64][]int)
	var learnerOrder []int64

	for i, row := range rows {
		rowNumber := i + 1
		if rowNumber < config.StartRow {
			continue
		}
		result.TotalProcessed++

		if learnerCol >= len(row) || surahCol >= len(row) {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: missing columns", rowNumber))
			continue
		}

		learnerID, err := strconv.ParseInt(strings.TrimSpace(row[learnerCol]), 10, 64)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: invalid learner ID %q", rowNumber, row[learnerCol]))
			continue
		}

		surahNumber, err := strconv.Atoi(strings.TrimSpace(row[surahCol]))
		if err != nil || surahNumber < 1 || surahNumber > quran.TotalSurahs {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: invalid surah number %q", rowNumber, row[surahCol]))
			continue
		}

		if _, seen := lists[learnerID]; !seen {
			learnerOrder = append(learnerOrder, learnerID)
		}
		lists[learnerID] = append(lists[learnerID], surahNumber)
	}

	repo := database.NewMemorizationRepository()
	for _, learnerID := range learnerOrder {
		if err := repo.Replace(learnerID, lists[learnerID]); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("learner %d: %v", learnerID, err))
			continue
		}
		result.LearnersUpdated++
		result.SurahsImported += len(lists[learnerID])
	}

	return result, nil
}

// readExcelRows reads all rows from one sheet of an Excel file
func readExcelRows(path, sheetName string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %v", sheetName, err)
	}
	return rows, nil
}

// readCSVRows reads all rows from a CSV file
func readCSVRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %v", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV file: %v", err)
		}
		rows = append(rows, record)
	}
	return rows, nil
}

// columnIndex converts a column letter ("A", "B", ...) to a zero-based index
func columnIndex(column string) int {
	column = strings.ToUpper(strings.TrimSpace(column))
	index := 0
	for _, c := range column {
		index = index*26 + int(c-'A') + 1
	}
	return index - 1
}
