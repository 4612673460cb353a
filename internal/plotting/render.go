package plotting

import (
	"errors"
	"image/color"
	"io"
	"log"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	gem "github.com/sol2204/Vietnam-gas-project/internal/gem/domain"
	"github.com/sol2204/Vietnam-gas-project/internal/popdensity"
)

// OutputFileName is the fixed figure file name.
const OutputFileName = "plants_and_pop_density.png"

var (
	// ErrNoPlants is returned when no plant coordinates remain to draw.
	ErrNoPlants = errors.New("plotting: no plant coordinates to draw")
	// ErrEmptyDensity is returned when the density input holds no values.
	ErrEmptyDensity = errors.New("plotting: empty density input")
)

// Renderer draws plant locations over a population-density background and
// saves one PNG per invocation.
type Renderer struct {
	title  string
	logger *log.Logger
}

// NewRenderer constructs a Renderer with the figure title.
func NewRenderer(title string, logger *log.Logger) *Renderer {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Renderer{title: title, logger: logger}
}

// RenderRaster draws plants over a density raster heat map.
func (r *Renderer) RenderRaster(plants []gem.PlantRecord, raster popdensity.Raster, outPath string) error {
	if len(plants) == 0 {
		return ErrNoPlants
	}
	if raster.Empty() {
		return ErrEmptyDensity
	}

	p := newFigure(r.title)

	grid := rasterGrid{raster: raster}
	heat := plotter.NewHeatMap(grid, palette.Heat(12, 1))
	heat.Min, heat.Max = grid.logRange()
	p.Add(heat)

	if err := addPlantScatter(p, plants); err != nil {
		return err
	}
	p.Add(plotter.NewGrid())

	r.logger.Printf("plot: %d plants over %dx%d raster -> %s", len(plants), raster.Cols, raster.Rows, outPath)
	return p.Save(12*vg.Inch, 10*vg.Inch, outPath)
}

// RenderPoints draws plants over interpolated density sample points.
func (r *Renderer) RenderPoints(plants []gem.PlantRecord, points []popdensity.SamplePoint, outPath string) error {
	if len(plants) == 0 {
		return ErrNoPlants
	}
	if len(points) == 0 {
		return ErrEmptyDensity
	}

	p := newFigure(r.title)

	xys := make(plotter.XYs, len(points))
	zs := make([]float64, len(points))
	for i, pt := range points {
		xys[i].X = pt.X
		xys[i].Y = pt.Y
		zs[i] = pt.Z
	}
	density, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	colors := palette.Heat(12, 1).Colors()
	minZ, maxZ := logRange(zs)
	density.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		return draw.GlyphStyle{
			Color:  gradeColor(colors, zs[i], minZ, maxZ),
			Radius: vg.Points(1.5),
			Shape:  draw.BoxGlyph{},
		}
	}
	p.Add(density)

	if err := addPlantScatter(p, plants); err != nil {
		return err
	}
	p.Add(plotter.NewGrid())

	r.logger.Printf("plot: %d plants over %d density samples -> %s", len(plants), len(points), outPath)
	return p.Save(12*vg.Inch, 10*vg.Inch, outPath)
}

func newFigure(title string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Longitude"
	p.Y.Label.Text = "Latitude"
	return p
}

// addPlantScatter overlays plant locations as edged red triangles.
func addPlantScatter(p *plot.Plot, plants []gem.PlantRecord) error {
	xys := make(plotter.XYs, len(plants))
	for i, plant := range plants {
		xys[i].X = plant.Lon
		xys[i].Y = plant.Lat
	}
	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Color = color.RGBA{R: 200, G: 30, B: 30, A: 255}
	scatter.GlyphStyle.Radius = vg.Points(5)
	scatter.GlyphStyle.Shape = draw.TriangleGlyph{}
	p.Add(scatter)
	p.Legend.Add("Gas Plants", scatter)
	p.Legend.Top = true
	return nil
}

// rasterGrid adapts a Raster to the plotter grid, log-scaling positive cells
// and masking no-data and non-positive cells as NaN. The raster stores the
// north row first while the plotter counts rows from the bottom, so rows
// are flipped.
type rasterGrid struct {
	raster popdensity.Raster
}

func (g rasterGrid) Dims() (c, r int) { return g.raster.Cols, g.raster.Rows }

func (g rasterGrid) Z(c, r int) float64 {
	v := g.raster.Values[g.raster.Rows-1-r][c]
	if v == g.raster.NoData || v <= 0 {
		return math.NaN()
	}
	return math.Log10(v)
}

func (g rasterGrid) X(c int) float64 {
	return g.raster.Xll + g.raster.CellSize*(float64(c)+0.5)
}

func (g rasterGrid) Y(r int) float64 {
	return g.raster.Yll + g.raster.CellSize*(float64(r)+0.5)
}

// logRange returns the finite min and max of the grid's log-scaled cells.
func (g rasterGrid) logRange() (min, max float64) {
	var values []float64
	for _, row := range g.raster.Values {
		for _, v := range row {
			if v == g.raster.NoData || v <= 0 {
				continue
			}
			values = append(values, v)
		}
	}
	return logRange(values)
}

// logRange computes the log10 span of the positive values, defaulting to
// [0, 1] when none exist so a degenerate input still renders.
func logRange(values []float64) (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if v <= 0 {
			continue
		}
		lv := math.Log10(v)
		if lv < min {
			min = lv
		}
		if lv > max {
			max = lv
		}
	}
	if min > max {
		return 0, 1
	}
	if min == max {
		max = min + 1
	}
	return min, max
}

// gradeColor maps a raw density value onto the palette by log position.
func gradeColor(colors []color.Color, z, minZ, maxZ float64) color.Color {
	if len(colors) == 0 {
		return color.Black
	}
	if z <= 0 {
		return colors[0]
	}
	pos := (math.Log10(z) - minZ) / (maxZ - minZ)
	idx := int(pos * float64(len(colors)-1))
	if idx < 0 {
		idx = 0
	}
	if idx > len(colors)-1 {
		idx = len(colors) - 1
	}
	return colors[idx]
}
