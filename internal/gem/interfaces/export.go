package interfaces

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	gem "github.com/sol2204/Vietnam-gas-project/internal/gem/domain"
	"github.com/sol2204/Vietnam-gas-project/internal/gem/infrastructure/gemfile"
)

// cleanedHeader is the column order of every cleaned-data export.
var cleanedHeader = []string{
	"id", "plant_name", "plant_name_local", "unit_id", "unit_name",
	"fuel", "fuel_class", "capacity_mw", "status", "technology",
	"lat", "lon", "city", "province", "region",
	"start_year", "retired_year", "planned_retire", "owner", "operator",
	"num_units",
}

// WriteCleaned writes the cleaned plant table to path, dispatching on the
// extension the same way the raw loader does (.csv or .xlsx).
func WriteCleaned(path, country string, plants []gem.PlantRecord) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return WriteCleanedCSV(path, plants)
	case ".xlsx":
		data, err := BuildPlantsXLSX(country, plants)
		if err != nil {
			return err
		}
		return os.WriteFile(path, data, 0o644)
	default:
		return fmt.Errorf("%w: %q", gemfile.ErrUnsupportedFormat, ext)
	}
}

// WriteCleanedCSV writes one row per plant to path.
func WriteCleanedCSV(path string, plants []gem.PlantRecord) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(cleanedHeader); err != nil {
		return err
	}
	for _, plant := range plants {
		if err := writer.Write(plantRow(plant)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func plantRow(p gem.PlantRecord) []string {
	return []string{
		p.ID, p.PlantName, p.PlantNameLocal, p.JoinedUnitIDs(), p.JoinedUnitNames(),
		p.Fuel, p.FuelClass, formatNumber(p.CapacityMW), p.Status, p.Technology,
		formatNumber(p.Lat), formatNumber(p.Lon), p.City, p.Province, p.Region,
		formatOptional(p.StartYear), formatOptional(p.RetiredYear), formatOptional(p.PlannedRetire),
		p.Owner, p.Operator,
		strconv.Itoa(p.NumUnits),
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return formatNumber(*v)
}

// BuildPlantsXLSX renders the cleaned plant table as a workbook with a
// summary sheet and a plants sheet.
func BuildPlantsXLSX(country string, plants []gem.PlantRecord) ([]byte, error) {
	f := excelize.NewFile()
	summarySheet := "summary"
	plantsSheet := "plants"
	f.SetSheetName("Sheet1", summarySheet)
	f.NewSheet(plantsSheet)

	units, capacity := totals(plants)
	_ = f.SetCellValue(summarySheet, "A1", "GEM Gas Plants (cleaned)")
	_ = f.SetCellValue(summarySheet, "A3", "Country")
	_ = f.SetCellValue(summarySheet, "B3", country)
	_ = f.SetCellValue(summarySheet, "A4", "Plants")
	_ = f.SetCellValue(summarySheet, "B4", len(plants))
	_ = f.SetCellValue(summarySheet, "A5", "Units")
	_ = f.SetCellValue(summarySheet, "B5", units)
	_ = f.SetCellValue(summarySheet, "A6", "Total Capacity (MW)")
	_ = f.SetCellValue(summarySheet, "B6", capacity)

	for i, name := range cleanedHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(plantsSheet, cell, name)
	}
	for r, plant := range plants {
		for c, value := range plantRow(plant) {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			_ = f.SetCellValue(plantsSheet, cell, value)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildPlantsPDF renders a summary report of the cleaned plants.
func BuildPlantsPDF(country string, plants []gem.PlantRecord) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	units, capacity := totals(plants)
	pdf.Cell(0, 8, "GEM Gas Plants Report")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Country: %s", country))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Plants: %d", len(plants)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Units: %d", units))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Total Capacity (MW): %.1f", capacity))
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(70, 6, "Plant", "1", 0, "C", false, 0, "")
	pdf.CellFormat(35, 6, "Capacity (MW)", "1", 0, "C", false, 0, "")
	pdf.CellFormat(50, 6, "Status", "1", 0, "C", false, 0, "")
	pdf.CellFormat(20, 6, "Units", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, plant := range plants {
		name := plant.PlantName
		if name == "" {
			name = plant.ID
		}
		pdf.CellFormat(70, 6, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 6, fmt.Sprintf("%.1f", plant.CapacityMW), "1", 0, "R", false, 0, "")
		pdf.CellFormat(50, 6, plant.Status, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 6, strconv.Itoa(plant.NumUnits), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func totals(plants []gem.PlantRecord) (units int, capacity float64) {
	for _, plant := range plants {
		units += plant.NumUnits
		capacity += plant.CapacityMW
	}
	return units, capacity
}
