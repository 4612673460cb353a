package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/sol2204/Vietnam-gas-project/internal/config"
	gemapp "github.com/sol2204/Vietnam-gas-project/internal/gem/application"
	"github.com/sol2204/Vietnam-gas-project/internal/gem/infrastructure/gemfile"
	gemexport "github.com/sol2204/Vietnam-gas-project/internal/gem/interfaces"
	"github.com/sol2204/Vietnam-gas-project/internal/plotting"
	"github.com/sol2204/Vietnam-gas-project/internal/popdensity"
)

func main() {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	root := getenvDefault("GEM_PROJECT_ROOT", ".")
	cfg, err := config.Load(root)
	if err != nil {
		logger.Fatalf("config error: %v", err)
	}

	table, err := gemfile.Read(cfg.Paths.GEMFile)
	if err != nil {
		logger.Fatalf("gem file error: %v", err)
	}
	logger.Printf("raw rows loaded: %d", len(table.Rows))

	cleaner, err := gemapp.NewCleaner(cfg.Columns, cfg.Filters.Country, logger)
	if err != nil {
		logger.Fatalf("cleaner error: %v", err)
	}
	units := cleaner.Clean(table)
	plants := gemapp.NewAggregator(logger).Aggregate(units)

	if cfg.Output.CleanedFile != "" {
		if err := gemexport.WriteCleaned(cfg.Paths.CleanedFile, cfg.Filters.Country, plants); err != nil {
			logger.Fatalf("cleaned export error: %v", err)
		}
		logger.Printf("cleaned data written: %s", cfg.Paths.CleanedFile)
	}

	report, err := gemexport.BuildPlantsPDF(cfg.Filters.Country, plants)
	if err != nil {
		logger.Fatalf("report error: %v", err)
	}
	reportPath := filepath.Join(cfg.Paths.Figures, "plants_summary.pdf")
	if err := os.WriteFile(reportPath, report, 0o644); err != nil {
		logger.Fatalf("report write error: %v", err)
	}
	logger.Printf("summary report written: %s", reportPath)

	if cfg.Paths.PopDensity == "" {
		logger.Printf("no population density file configured, skipping figure")
		return
	}

	title := fmt.Sprintf("Gas Plants and Population Density in %s", cfg.Filters.Country)
	renderer := plotting.NewRenderer(title, logger)
	outPath := filepath.Join(cfg.Paths.Figures, plotting.OutputFileName)

	switch ext := strings.ToLower(filepath.Ext(cfg.Paths.PopDensity)); ext {
	case ".asc", ".txt":
		raster, err := popdensity.ReadASCIIGrid(cfg.Paths.PopDensity)
		if err != nil {
			logger.Fatalf("density raster error: %v", err)
		}
		if err := renderer.RenderRaster(plants, raster, outPath); err != nil {
			logger.Fatalf("render error: %v", err)
		}
	case ".csv", ".xyz":
		points, err := popdensity.ReadXYZ(cfg.Paths.PopDensity)
		if err != nil {
			logger.Fatalf("density samples error: %v", err)
		}
		if err := renderer.RenderPoints(plants, points, outPath); err != nil {
			logger.Fatalf("render error: %v", err)
		}
	default:
		logger.Fatalf("density file error: %v", fmt.Errorf("%w: %q", popdensity.ErrUnsupportedFormat, ext))
	}

	logger.Printf("figure written: %s", outPath)
}

func getenvDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
