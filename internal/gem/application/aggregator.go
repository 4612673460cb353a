package application

import (
	"io"
	"log"
	"strings"

	gem "github.com/sol2204/Vietnam-gas-project/internal/gem/domain"
)

// ReducerKind enumerates the per-column strategies used when merging unit
// rows into one plant record.
type ReducerKind int

const (
	// ReduceSum adds values, treating nil as 0; an all-nil group sums to 0.
	ReduceSum ReducerKind = iota
	// ReduceFirst keeps the group's first value.
	ReduceFirst
	// ReduceMin keeps the smallest non-nil value; all-nil stays nil.
	ReduceMin
	// ReduceMax keeps the largest non-nil value; all-nil stays nil.
	ReduceMax
	// ReduceDistinctJoin joins distinct non-empty values in first-seen order.
	ReduceDistinctJoin
	// ReduceListCollect keeps distinct non-empty values as an ordered list.
	ReduceListCollect
)

// stringColumn binds a string-valued plant field to its reducer.
type stringColumn struct {
	kind ReducerKind
	get  func(gem.UnitRecord) string
	set  func(*gem.PlantRecord, string)
}

// listColumn binds a list-collected field; the kind is always ReduceListCollect.
type listColumn struct {
	get func(gem.UnitRecord) string
	set func(*gem.PlantRecord, []string)
}

// numericColumn binds a numeric plant field to its reducer.
type numericColumn struct {
	kind ReducerKind
	get  func(gem.UnitRecord) *float64
	set  func(*gem.PlantRecord, *float64)
}

// The reducer tables. Identity and location fields (id, names, coordinates,
// city, province, region) are ReduceFirst and taken from the group's first
// row directly in mergeGroup.
var (
	stringColumns = []stringColumn{
		{ReduceDistinctJoin,
			func(u gem.UnitRecord) string { return u.Status },
			func(p *gem.PlantRecord, v string) { p.Status = v }},
		{ReduceDistinctJoin,
			func(u gem.UnitRecord) string { return u.Technology },
			func(p *gem.PlantRecord, v string) { p.Technology = v }},
		{ReduceDistinctJoin,
			func(u gem.UnitRecord) string { return u.Fuel },
			func(p *gem.PlantRecord, v string) { p.Fuel = v }},
		{ReduceDistinctJoin,
			func(u gem.UnitRecord) string { return u.FuelClass },
			func(p *gem.PlantRecord, v string) { p.FuelClass = v }},
		{ReduceDistinctJoin,
			func(u gem.UnitRecord) string { return u.Owner },
			func(p *gem.PlantRecord, v string) { p.Owner = v }},
		{ReduceDistinctJoin,
			func(u gem.UnitRecord) string { return u.Operator },
			func(p *gem.PlantRecord, v string) { p.Operator = v }},
	}

	listColumns = []listColumn{
		{func(u gem.UnitRecord) string { return u.UnitID },
			func(p *gem.PlantRecord, v []string) { p.UnitIDs = v }},
		{func(u gem.UnitRecord) string { return u.UnitName },
			func(p *gem.PlantRecord, v []string) { p.UnitNames = v }},
	}

	numericColumns = []numericColumn{
		{ReduceSum,
			func(u gem.UnitRecord) *float64 { return u.CapacityMW },
			func(p *gem.PlantRecord, v *float64) {
				if v != nil {
					p.CapacityMW = *v
				}
			}},
		{ReduceMin,
			func(u gem.UnitRecord) *float64 { return u.StartYear },
			func(p *gem.PlantRecord, v *float64) { p.StartYear = v }},
		{ReduceMax,
			func(u gem.UnitRecord) *float64 { return u.RetiredYear },
			func(p *gem.PlantRecord, v *float64) { p.RetiredYear = v }},
		{ReduceMax,
			func(u gem.UnitRecord) *float64 { return u.PlannedRetire },
			func(p *gem.PlantRecord, v *float64) { p.PlannedRetire = v }},
	}
)

// Aggregator merges cleaned unit rows into one record per plant.
type Aggregator struct {
	logger *log.Logger
}

// NewAggregator constructs an Aggregator.
func NewAggregator(logger *log.Logger) *Aggregator {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Aggregator{logger: logger}
}

// Aggregate partitions units by the resolved grouping key, preserving
// first-seen group order, and reduces every column by its declared rule.
// Empty input yields empty output.
func (a *Aggregator) Aggregate(units []gem.UnitRecord) []gem.PlantRecord {
	if len(units) == 0 {
		return nil
	}

	key := groupKey(units)
	var order []string
	groups := make(map[string][]gem.UnitRecord)
	for _, unit := range units {
		k := key(unit)
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], unit)
	}

	plants := make([]gem.PlantRecord, 0, len(order))
	for _, k := range order {
		plants = append(plants, mergeGroup(groups[k]))
	}

	a.logger.Printf("aggregate: %d units -> %d plants", len(units), len(plants))
	return plants
}

// groupKey resolves the grouping key once per call: plant name when any row
// carries one, otherwise plant id.
func groupKey(units []gem.UnitRecord) func(gem.UnitRecord) string {
	for _, unit := range units {
		if unit.PlantName != "" {
			return func(u gem.UnitRecord) string { return u.PlantName }
		}
	}
	return func(u gem.UnitRecord) string { return u.ID }
}

// mergeGroup reduces one group of unit rows into a plant record. NumUnits
// counts the group's rows before any list deduplication.
func mergeGroup(group []gem.UnitRecord) gem.PlantRecord {
	first := group[0]
	plant := gem.PlantRecord{
		ID:             first.ID,
		PlantName:      first.PlantName,
		PlantNameLocal: first.PlantNameLocal,
		Lat:            first.Lat,
		Lon:            first.Lon,
		City:           first.City,
		Province:       first.Province,
		Region:         first.Region,
		NumUnits:       len(group),
	}

	values := make([]string, len(group))
	for _, col := range stringColumns {
		for i, unit := range group {
			values[i] = col.get(unit)
		}
		col.set(&plant, reduceStrings(col.kind, values))
	}
	for _, col := range listColumns {
		for i, unit := range group {
			values[i] = col.get(unit)
		}
		col.set(&plant, distinct(values))
	}

	numbers := make([]*float64, len(group))
	for _, col := range numericColumns {
		for i, unit := range group {
			numbers[i] = col.get(unit)
		}
		col.set(&plant, reduceNumeric(col.kind, numbers))
	}

	return plant
}

// reduceStrings applies a string reducer over the group's values.
func reduceStrings(kind ReducerKind, values []string) string {
	switch kind {
	case ReduceFirst:
		if len(values) == 0 {
			return ""
		}
		return values[0]
	case ReduceDistinctJoin:
		return strings.Join(distinct(values), gem.ListSeparator)
	default:
		return ""
	}
}

// reduceNumeric applies a numeric reducer over the group's values.
func reduceNumeric(kind ReducerKind, values []*float64) *float64 {
	switch kind {
	case ReduceSum:
		total := 0.0
		for _, v := range values {
			if v != nil {
				total += *v
			}
		}
		return &total
	case ReduceFirst:
		if len(values) == 0 {
			return nil
		}
		return values[0]
	case ReduceMin, ReduceMax:
		var result *float64
		for _, v := range values {
			if v == nil {
				continue
			}
			if result == nil ||
				(kind == ReduceMin && *v < *result) ||
				(kind == ReduceMax && *v > *result) {
				value := *v
				result = &value
			}
		}
		return result
	default:
		return nil
	}
}

// distinct drops empty values and deduplicates, keeping first-seen order.
func distinct(values []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
