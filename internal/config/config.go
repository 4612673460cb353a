package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultRelPath is where the config file lives relative to the project root.
const DefaultRelPath = "config/config.yaml"

var (
	// ErrConfigNotFound is returned when the config file does not exist.
	ErrConfigNotFound = errors.New("config: file not found")
	// ErrMissingCountry is returned when filters.country is empty.
	ErrMissingCountry = errors.New("config: filters.country is required")
	// ErrMissingGEMFile is returned when data.gem_powerplants_file is empty.
	ErrMissingGEMFile = errors.New("config: data.gem_powerplants_file is required")
)

// Columns maps canonical field names to GEM source column headers.
type Columns struct {
	ID             string `yaml:"id"`
	UnitID         string `yaml:"unit_id"`
	PlantName      string `yaml:"plant_name"`
	PlantNameLocal string `yaml:"plant_name_local"`
	UnitName       string `yaml:"unit_name"`
	Fuel           string `yaml:"fuel"`
	FuelClass      string `yaml:"fuel_class"`
	CapacityMW     string `yaml:"capacity_mw"`
	Status         string `yaml:"status"`
	Technology     string `yaml:"technology"`
	Lat            string `yaml:"lat"`
	Lon            string `yaml:"lon"`
	City           string `yaml:"city"`
	Province       string `yaml:"province"`
	Region         string `yaml:"region"`
	StartYear      string `yaml:"start_year"`
	RetiredYear    string `yaml:"retired_year"`
	PlannedRetire  string `yaml:"planned_retire"`
	Owner          string `yaml:"owner"`
	Operator       string `yaml:"operator"`
}

// Data holds input locations relative to the project root.
type Data struct {
	RawDir                string `yaml:"raw_dir"`
	ProcessedDir          string `yaml:"processed_dir"`
	GEMPowerplantsFile    string `yaml:"gem_powerplants_file"`
	PopulationDensityFile string `yaml:"population_density_file"`
}

// Output holds result locations relative to the project root.
type Output struct {
	CleanedFile string `yaml:"cleaned_file"`
	FiguresDir  string `yaml:"figures_dir"`
}

// Filters holds row-selection criteria.
type Filters struct {
	Country string `yaml:"country"`
}

// Paths carries the resolved absolute locations derived from the config.
type Paths struct {
	Root        string
	Raw         string
	Processed   string
	GEMFile     string
	PopDensity  string
	CleanedFile string
	Figures     string
}

// Config is the static pipeline configuration, read once at startup.
type Config struct {
	Data    Data    `yaml:"data"`
	Output  Output  `yaml:"output"`
	Columns Columns `yaml:"columns"`
	Filters Filters `yaml:"filters"`

	Paths Paths `yaml:"-"`
}

// Load reads <root>/config/config.yaml.
func Load(root string) (*Config, error) {
	return LoadFile(root, filepath.Join(root, filepath.FromSlash(DefaultRelPath)))
}

// LoadFile reads the config file at path, resolving data/output locations
// against root and creating the derived directories.
func LoadFile(root, path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, err
	}

	cfg := Config{
		Data: Data{
			RawDir:       filepath.FromSlash("data/raw"),
			ProcessedDir: filepath.FromSlash("data/processed"),
		},
		Output: Output{
			FiguresDir: "figures",
		},
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if cfg.Filters.Country == "" {
		return nil, ErrMissingCountry
	}
	if cfg.Data.GEMPowerplantsFile == "" {
		return nil, ErrMissingGEMFile
	}

	cfg.Paths = Paths{
		Root:        root,
		Raw:         filepath.Join(root, filepath.FromSlash(cfg.Data.RawDir)),
		Processed:   filepath.Join(root, filepath.FromSlash(cfg.Data.ProcessedDir)),
		GEMFile:     filepath.Join(root, filepath.FromSlash(cfg.Data.GEMPowerplantsFile)),
		CleanedFile: filepath.Join(root, filepath.FromSlash(cfg.Output.CleanedFile)),
		Figures:     filepath.Join(root, filepath.FromSlash(cfg.Output.FiguresDir)),
	}
	if cfg.Data.PopulationDensityFile != "" {
		cfg.Paths.PopDensity = filepath.Join(root, filepath.FromSlash(cfg.Data.PopulationDensityFile))
	}

	for _, dir := range []string{cfg.Paths.Raw, cfg.Paths.Processed, cfg.Paths.Figures} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("config: create %s: %w", dir, err)
		}
	}

	return &cfg, nil
}
