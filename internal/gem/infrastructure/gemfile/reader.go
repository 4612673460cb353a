package gemfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	gem "github.com/sol2204/Vietnam-gas-project/internal/gem/domain"
)

// ErrUnsupportedFormat is returned for file extensions the loader cannot read.
var ErrUnsupportedFormat = errors.New("gemfile: unsupported file format")

// ErrEmptySheet is returned when the source sheet has no header row.
var ErrEmptySheet = errors.New("gemfile: empty sheet")

// Read loads the GEM unit table from path, dispatching on the extension:
// .xlsx/.xls are read as workbooks, .csv as delimited text.
func Read(path string) (gem.RawTable, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xls":
		return readWorkbook(path)
	case ".csv":
		return readCSV(path)
	default:
		return gem.RawTable{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// readWorkbook reads the first sheet of an Excel workbook.
func readWorkbook(path string) (gem.RawTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return gem.RawTable{}, err
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return gem.RawTable{}, err
	}
	if len(rows) == 0 {
		return gem.RawTable{}, fmt.Errorf("%w: %s", ErrEmptySheet, path)
	}
	return gem.RawTable{Header: rows[0], Rows: rows[1:]}, nil
}

// readCSV reads a delimited file, tolerating ragged rows. Cells pass through
// untouched; all coercion happens in the Cleaner.
func readCSV(path string) (gem.RawTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return gem.RawTable{}, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return gem.RawTable{}, fmt.Errorf("gemfile: read %s: %w", path, err)
	}
	if len(records) == 0 {
		return gem.RawTable{}, fmt.Errorf("%w: %s", ErrEmptySheet, path)
	}
	return gem.RawTable{Header: records[0], Rows: records[1:]}, nil
}
