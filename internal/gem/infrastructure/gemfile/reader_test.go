package gemfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestReadUnsupportedFormat(t *testing.T) {
	_, err := Read("plants.json")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestReadMissingFile(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plants.csv")
	content := "Country/Area,Plant name,Capacity (MW)\nVietnam,Alpha,100\nVietnam,\"Beta, the second\",50\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	table, err := Read(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(table.Header) != 3 || table.Header[1] != "Plant name" {
		t.Fatalf("unexpected header: %v", table.Header)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table.Rows))
	}
	if table.Rows[1][1] != "Beta, the second" {
		t.Fatalf("quoted cell mangled: %q", table.Rows[1][1])
	}
}

func TestReadWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plants.xlsx")
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	cells := map[string]string{
		"A1": "Country/Area", "B1": "Plant name", "C1": "Capacity (MW)",
		"A2": "Vietnam", "B2": "Alpha", "C2": "100",
	}
	for cell, value := range cells {
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			t.Fatalf("set cell: %v", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	table, err := Read(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(table.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(table.Rows))
	}
	if table.Rows[0][1] != "Alpha" {
		t.Fatalf("unexpected cell: %q", table.Rows[0][1])
	}
}

func TestReadEmptyCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Read(path); !errors.Is(err, ErrEmptySheet) {
		t.Fatalf("expected ErrEmptySheet, got %v", err)
	}
}
