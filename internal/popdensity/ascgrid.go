package popdensity

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// defaultNoData matches the conventional ESRI ASCII sentinel.
const defaultNoData = -9999

// ReadASCIIGrid parses an ESRI ASCII grid raster: a header of ncols, nrows,
// xllcorner, yllcorner, cellsize and an optional NODATA_value, followed by
// nrows*ncols whitespace-separated cell values, north row first.
func ReadASCIIGrid(path string) (Raster, error) {
	file, err := os.Open(path)
	if err != nil {
		return Raster{}, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	scanner.Split(bufio.ScanWords)
	next := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		return scanner.Text(), true
	}

	raster := Raster{NoData: defaultNoData}
	header := map[string]*float64{
		"xllcorner":    &raster.Xll,
		"yllcorner":    &raster.Yll,
		"cellsize":     &raster.CellSize,
		"nodata_value": &raster.NoData,
	}

	// Header entries are key/value word pairs until the first bare number.
	var pending string
	for {
		word, ok := next()
		if !ok {
			return Raster{}, fmt.Errorf("popdensity: %s: truncated header", path)
		}
		key := strings.ToLower(word)
		if key == "ncols" || key == "nrows" {
			value, ok := next()
			if !ok {
				return Raster{}, fmt.Errorf("popdensity: %s: truncated header", path)
			}
			n, err := strconv.Atoi(value)
			if err != nil || n <= 0 {
				return Raster{}, fmt.Errorf("popdensity: %s: bad %s %q", path, key, value)
			}
			if key == "ncols" {
				raster.Cols = n
			} else {
				raster.Rows = n
			}
			continue
		}
		if target, ok := header[key]; ok {
			value, found := next()
			if !found {
				return Raster{}, fmt.Errorf("popdensity: %s: truncated header", path)
			}
			v, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return Raster{}, fmt.Errorf("popdensity: %s: bad %s %q", path, key, value)
			}
			*target = v
			continue
		}
		// First cell value reached.
		pending = word
		break
	}

	if raster.Cols == 0 || raster.Rows == 0 || raster.CellSize <= 0 {
		return Raster{}, fmt.Errorf("popdensity: %s: incomplete header", path)
	}

	raster.Values = make([][]float64, raster.Rows)
	word, ok := pending, true
	for row := 0; row < raster.Rows; row++ {
		raster.Values[row] = make([]float64, raster.Cols)
		for col := 0; col < raster.Cols; col++ {
			if !ok {
				return Raster{}, fmt.Errorf("popdensity: %s: truncated grid at row %d", path, row)
			}
			v, err := strconv.ParseFloat(word, 64)
			if err != nil {
				return Raster{}, fmt.Errorf("popdensity: %s: bad cell %q", path, word)
			}
			raster.Values[row][col] = v
			word, ok = next()
		}
	}
	if err := scanner.Err(); err != nil {
		return Raster{}, err
	}
	return raster, nil
}
