package popdensity

import "errors"

var (
	// ErrUnsupportedFormat is returned for density file extensions the
	// loaders cannot read.
	ErrUnsupportedFormat = errors.New("popdensity: unsupported file format")
	// ErrMissingColumns is returned when a sample file lacks X/Y/Z columns.
	ErrMissingColumns = errors.New("popdensity: missing X/Y/Z columns")
)

// Raster is a single-band population-density grid with geographic bounds.
// Values are row-major with the first row northernmost, matching the ESRI
// ASCII layout; cells equal to NoData carry no observation.
type Raster struct {
	Cols     int
	Rows     int
	Xll      float64
	Yll      float64
	CellSize float64
	NoData   float64
	Values   [][]float64
}

// Bounds returns the geographic extent of the grid.
func (r Raster) Bounds() (xmin, ymin, xmax, ymax float64) {
	return r.Xll, r.Yll,
		r.Xll + float64(r.Cols)*r.CellSize,
		r.Yll + float64(r.Rows)*r.CellSize
}

// Empty reports whether the raster holds no cells.
func (r Raster) Empty() bool { return r.Cols == 0 || r.Rows == 0 }

// SamplePoint is one (X, Y, Z) density sample: longitude, latitude and
// people per square kilometre.
type SamplePoint struct {
	X float64
	Y float64
	Z float64
}
