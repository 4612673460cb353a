package interfaces

import (
	"bytes"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	gem "github.com/sol2204/Vietnam-gas-project/internal/gem/domain"
	"github.com/sol2204/Vietnam-gas-project/internal/gem/infrastructure/gemfile"
)

func fptr(v float64) *float64 { return &v }

func samplePlants() []gem.PlantRecord {
	return []gem.PlantRecord{
		{
			ID:         "L1",
			PlantName:  "Alpha",
			UnitIDs:    []string{"A", "B"},
			UnitNames:  []string{"Unit 1", "Unit 2"},
			Fuel:       "gas",
			CapacityMW: 150,
			Status:     "operating, construction",
			Lat:        10.5,
			Lon:        106.5,
			StartYear:  fptr(1998),
			NumUnits:   2,
		},
		{
			ID:         "L2",
			PlantName:  "Beta",
			UnitIDs:    []string{"A"},
			CapacityMW: 50,
			Status:     "announced",
			Lat:        11,
			Lon:        107,
			NumUnits:   1,
		},
	}
}

func TestWriteCleanedCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cleaned.csv")
	if err := WriteCleanedCSV(path, samplePlants()); err != nil {
		t.Fatalf("write: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer file.Close()
	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(records))
	}
	if records[0][0] != "id" || records[0][len(records[0])-1] != "num_units" {
		t.Fatalf("unexpected header: %v", records[0])
	}
	if records[1][3] != "A, B" {
		t.Fatalf("expected joined unit ids, got %q", records[1][3])
	}
	if records[1][7] != "150" {
		t.Fatalf("expected capacity 150, got %q", records[1][7])
	}
	// Nil years render empty.
	if records[2][15] != "" {
		t.Fatalf("expected empty start year, got %q", records[2][15])
	}
}

func TestBuildPlantsXLSX(t *testing.T) {
	data, err := BuildPlantsXLSX("Vietnam", samplePlants())
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer f.Close()

	country, err := f.GetCellValue("summary", "B3")
	if err != nil || country != "Vietnam" {
		t.Fatalf("expected Vietnam in summary, got %q (%v)", country, err)
	}
	name, err := f.GetCellValue("plants", "B2")
	if err != nil || name != "Alpha" {
		t.Fatalf("expected Alpha in plants sheet, got %q (%v)", name, err)
	}
}

func TestBuildPlantsPDF(t *testing.T) {
	data, err := BuildPlantsPDF("Vietnam", samplePlants())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(data) == 0 || !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("expected PDF output, got %d bytes", len(data))
	}
}

func TestWriteCleanedDispatch(t *testing.T) {
	dir := t.TempDir()
	if err := WriteCleaned(filepath.Join(dir, "out.xlsx"), "Vietnam", samplePlants()); err != nil {
		t.Fatalf("xlsx dispatch: %v", err)
	}
	if err := WriteCleaned(filepath.Join(dir, "out.json"), "Vietnam", samplePlants()); !errors.Is(err, gemfile.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}
