package application

import (
	"errors"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/sol2204/Vietnam-gas-project/internal/config"
	gem "github.com/sol2204/Vietnam-gas-project/internal/gem/domain"
)

// CountryColumn is the GEM header used for the country filter. The dataset
// carries it under a fixed name, outside the configurable column map.
const CountryColumn = "Country/Area"

// Cleaner filters raw GEM unit rows to the target country, projects the
// configured columns onto UnitRecord fields, coerces numerics, validates
// coordinates, normalizes statuses and deduplicates (id, unit_id) pairs.
type Cleaner struct {
	columns config.Columns
	country string
	logger  *log.Logger
}

// NewCleaner constructs a Cleaner for one target country.
func NewCleaner(columns config.Columns, country string, logger *log.Logger) (*Cleaner, error) {
	if country == "" {
		return nil, errors.New("gem: empty target country")
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Cleaner{columns: columns, country: country, logger: logger}, nil
}

// columnIndexes resolves every configured source column against the table
// header once. A missing column stays -1 and reads as absent, not an error.
type columnIndexes struct {
	id, unitID, plantName, plantNameLocal, unitName    int
	fuel, fuelClass, capacityMW, status, technology    int
	lat, lon, city, province, region                   int
	startYear, retiredYear, plannedRetire              int
	owner, operator                                    int
}

func resolveColumns(table gem.RawTable, cols config.Columns) columnIndexes {
	return columnIndexes{
		id:             table.ColumnIndex(cols.ID),
		unitID:         table.ColumnIndex(cols.UnitID),
		plantName:      table.ColumnIndex(cols.PlantName),
		plantNameLocal: table.ColumnIndex(cols.PlantNameLocal),
		unitName:       table.ColumnIndex(cols.UnitName),
		fuel:           table.ColumnIndex(cols.Fuel),
		fuelClass:      table.ColumnIndex(cols.FuelClass),
		capacityMW:     table.ColumnIndex(cols.CapacityMW),
		status:         table.ColumnIndex(cols.Status),
		technology:     table.ColumnIndex(cols.Technology),
		lat:            table.ColumnIndex(cols.Lat),
		lon:            table.ColumnIndex(cols.Lon),
		city:           table.ColumnIndex(cols.City),
		province:       table.ColumnIndex(cols.Province),
		region:         table.ColumnIndex(cols.Region),
		startYear:      table.ColumnIndex(cols.StartYear),
		retiredYear:    table.ColumnIndex(cols.RetiredYear),
		plannedRetire:  table.ColumnIndex(cols.PlannedRetire),
		owner:          table.ColumnIndex(cols.Owner),
		operator:       table.ColumnIndex(cols.Operator),
	}
}

// Clean runs the cleaning pipeline over a raw table. Empty input, and input
// that filters down to nothing, both yield an empty slice.
func (c *Cleaner) Clean(table gem.RawTable) []gem.UnitRecord {
	if len(table.Rows) == 0 {
		return nil
	}

	countryIdx := table.ColumnIndex(CountryColumn)
	if countryIdx < 0 {
		c.logger.Printf("clean: %q column missing, no rows match country %q", CountryColumn, c.country)
		return nil
	}
	idx := resolveColumns(table, c.columns)

	var cleaned []gem.UnitRecord
	for _, row := range table.Rows {
		if table.Cell(row, countryIdx) != c.country {
			continue
		}

		lat := parseNumber(table.Cell(row, idx.lat))
		lon := parseNumber(table.Cell(row, idx.lon))
		if lat == nil || lon == nil || !gem.ValidCoordinates(*lat, *lon) {
			continue
		}

		cleaned = append(cleaned, gem.UnitRecord{
			ID:             table.Cell(row, idx.id),
			UnitID:         table.Cell(row, idx.unitID),
			PlantName:      table.Cell(row, idx.plantName),
			PlantNameLocal: table.Cell(row, idx.plantNameLocal),
			UnitName:       table.Cell(row, idx.unitName),
			Fuel:           table.Cell(row, idx.fuel),
			FuelClass:      table.Cell(row, idx.fuelClass),
			CapacityMW:     parseNumber(table.Cell(row, idx.capacityMW)),
			Status:         gem.NormalizeStatus(table.Cell(row, idx.status)),
			Technology:     table.Cell(row, idx.technology),
			Lat:            *lat,
			Lon:            *lon,
			City:           table.Cell(row, idx.city),
			Province:       table.Cell(row, idx.province),
			Region:         table.Cell(row, idx.region),
			StartYear:      parseNumber(table.Cell(row, idx.startYear)),
			RetiredYear:    parseNumber(table.Cell(row, idx.retiredYear)),
			PlannedRetire:  parseNumber(table.Cell(row, idx.plannedRetire)),
			Owner:          table.Cell(row, idx.owner),
			Operator:       table.Cell(row, idx.operator),
		})
	}

	cleaned = dedupeUnits(cleaned)

	kept := cleaned[:0]
	for _, unit := range cleaned {
		if gem.StatusKept(unit.Status) {
			kept = append(kept, unit)
		}
	}

	c.logger.Printf("clean: %d raw rows -> %d units for %s", len(table.Rows), len(kept), c.country)
	return kept
}

type unitKey struct {
	id, unitID string
}

// dedupeUnits keeps the first occurrence of each (id, unit_id) pair.
func dedupeUnits(units []gem.UnitRecord) []gem.UnitRecord {
	seen := make(map[unitKey]struct{}, len(units))
	out := units[:0]
	for _, unit := range units {
		key := unitKey{id: unit.ID, unitID: unit.UnitID}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, unit)
	}
	return out
}

// parseNumber coerces a raw cell to a number; blanks and non-numeric values
// degrade to nil rather than erroring.
func parseNumber(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
