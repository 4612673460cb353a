package gem

// UnitRecord is one generating unit of a plant after cleaning. Capacity and
// year fields are nil when the source value was absent or non-numeric;
// coordinates are always present and within range.
type UnitRecord struct {
	ID             string
	UnitID         string
	PlantName      string
	PlantNameLocal string
	UnitName       string
	Fuel           string
	FuelClass      string
	CapacityMW     *float64
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
}

// ValidCoordinates reports whether lat/lon fall inside the geographic ranges.
func ValidCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
