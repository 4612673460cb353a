package gem

import "strings"

// ListSeparator joins distinct-value and list columns for rendering.
const ListSeparator = ", "

// PlantRecord is one physical plant merged from its constituent units.
// Identity and location fields carry the group's first-seen values; UnitIDs
// and UnitNames are ordered distinct lists; StartYear is the group minimum
// and the retirement years the group maxima (nil when every unit lacks one).
type PlantRecord struct {
	ID             string
	PlantName      string
	PlantNameLocal string
	UnitIDs        []string
	UnitNames      []string
	Fuel           string
	FuelClass      string
	CapacityMW     float64
	Status         string
	Technology     string
	Lat            float64
	Lon            float64
	City           string
	Province       string
	Region         string
	StartYear      *float64
	RetiredYear    *float64
	PlannedRetire  *float64
	Owner          string
	Operator       string
	NumUnits       int
}

// JoinedUnitIDs renders the unit id list as a delimited string.
func (p PlantRecord) JoinedUnitIDs() string { return strings.Join(p.UnitIDs, ListSeparator) }

// JoinedUnitNames renders the unit name list as a delimited string.
func (p PlantRecord) JoinedUnitNames() string { return strings.Join(p.UnitNames, ListSeparator) }
