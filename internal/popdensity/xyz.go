package popdensity

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/go-gota/gota/dataframe"
)

// ReadXYZ loads delimited (X, Y, Z) density samples, e.g. the WorldPop
// ASCII XYZ export. Column matching is case-insensitive; rows with a
// non-numeric coordinate or value are skipped.
func ReadXYZ(path string) ([]SamplePoint, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	df := dataframe.ReadCSV(file)
	if df.Err != nil {
		return nil, fmt.Errorf("popdensity: read %s: %w", path, df.Err)
	}

	xName, yName, zName := "", "", ""
	for _, name := range df.Names() {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "x", "lon", "longitude":
			xName = name
		case "y", "lat", "latitude":
			yName = name
		case "z", "density", "pop_density":
			zName = name
		}
	}
	if xName == "" || yName == "" || zName == "" {
		return nil, fmt.Errorf("%w: %s has %v", ErrMissingColumns, path, df.Names())
	}

	xs := df.Col(xName).Float()
	ys := df.Col(yName).Float()
	zs := df.Col(zName).Float()

	points := make([]SamplePoint, 0, len(xs))
	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) || math.IsNaN(zs[i]) {
			continue
		}
		points = append(points, SamplePoint{X: xs[i], Y: ys[i], Z: zs[i]})
	}
	return points, nil
}
