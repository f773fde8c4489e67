// Package plot renders the study charts as PNG files.
package plot

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/kilianp07/genrel/core/model"
)

// Chart file names written by Render.
const (
	ScatterFile = "avail_vs_sys_capacity_scatter.png"
	BoxPlotFile = "boxplot_sys_capacity_tier_level.png"
	SubplotFile = "subplot_sys_capacity_number_units.png"
)

// set1 is the ColorBrewer Set1 palette.
var set1 = []color.Color{
	color.RGBA{R: 0xe4, G: 0x1a, B: 0x1c, A: 0xff},
	color.RGBA{R: 0x37, G: 0x7e, B: 0xb8, A: 0xff},
	color.RGBA{R: 0x4d, G: 0xaf, B: 0x4a, A: 0xff},
	color.RGBA{R: 0x98, G: 0x4e, B: 0xa3, A: 0xff},
	color.RGBA{R: 0xff, G: 0x7f, B: 0x00, A: 0xff},
	color.RGBA{R: 0xff, G: 0xff, B: 0x33, A: 0xff},
	color.RGBA{R: 0xa6, G: 0x56, B: 0x28, A: 0xff},
}

var demandColor = color.Gray{Y: 0x80}

// Render writes the three charts for run into dir and returns their paths.
func Render(dir string, run model.Run) ([]string, error) {
	if len(run.Cases) == 0 {
		return nil, fmt.Errorf("no cases to plot")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	steps := []struct {
		file string
		draw func(io.Writer, model.Run) error
	}{
		{ScatterFile, writeScatter},
		{BoxPlotFile, writeBoxPlot},
		{SubplotFile, writeSubplots},
	}
	paths := make([]string, 0, len(steps))
	for _, s := range steps {
		path := filepath.Join(dir, s.file)
		if err := writeFile(path, run, s.draw); err != nil {
			return nil, fmt.Errorf("%s: %w", s.file, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeFile(path string, run model.Run, fn func(io.Writer, model.Run) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f, run); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func demand(run model.Run) float64 {
	return run.Cases[0].DemandKW
}

func savePNG(w io.Writer, p *plot.Plot, width, height vg.Length) error {
	wt, err := p.WriterTo(width, height, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

func dashedLine(xys plotter.XYs) (*plotter.Line, error) {
	l, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	l.LineStyle.Color = demandColor
	l.LineStyle.Width = vg.Points(3)
	l.LineStyle.Dashes = []vg.Length{vg.Points(8), vg.Points(5)}
	return l, nil
}

// writeScatter plots availability against system capacity, one series per
// tier, with the peak demand as a vertical line.
func writeScatter(w io.Writer, run model.Run) error {
	p := plot.New()
	p.Title.Text = "Availability vs. Capacity and Uptime Institute Tier Levels"
	p.X.Label.Text = "System Capacity kW"
	p.Y.Label.Text = "System Availability (%)"
	p.Add(plotter.NewGrid())

	minAvail, maxAvail := math.Inf(1), math.Inf(-1)
	for _, c := range run.Cases {
		minAvail = math.Min(minAvail, c.SystemAvailability)
		maxAvail = math.Max(maxAvail, c.SystemAvailability)
	}
	xMin, xMax := demand(run)*0.9, run.Cases.MaxSystemCapacity()*1.1
	yMin, yMax := minAvail*0.95, maxAvail*1.05

	for i, lvl := range model.TierLevels {
		cases := run.Cases.ByTier(lvl)
		if len(cases) == 0 {
			continue
		}
		xys := make(plotter.XYs, len(cases))
		for j, c := range cases {
			xys[j].X, xys[j].Y = c.SystemCapacityKW, c.SystemAvailability
		}
		s, err := plotter.NewScatter(xys)
		if err != nil {
			return err
		}
		s.GlyphStyle.Color = set1[i]
		s.GlyphStyle.Radius = vg.Points(4)
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(s)
		p.Legend.Add(lvl.String(), s)
	}

	line, err := dashedLine(plotter.XYs{{X: demand(run), Y: yMin}, {X: demand(run), Y: yMax}})
	if err != nil {
		return err
	}
	p.Add(line)
	p.Legend.Add("Peak Demand kW", line)
	// Add widens the axes to the data; fix them last.
	p.X.Min, p.X.Max = xMin, xMax
	p.Y.Min, p.Y.Max = yMin, yMax
	return savePNG(w, p, 11*vg.Inch, 6*vg.Inch)
}

// writeBoxPlot shows the spread of system capacity reaching each tier.
func writeBoxPlot(w io.Writer, run model.Run) error {
	p := plot.New()
	p.Title.Text = "System Capacity Range for all Cases\nBy Tier Level"
	p.X.Label.Text = "Tier Level"
	p.Y.Label.Text = "System Capacity (kW)"
	p.Add(plotter.NewGrid())

	names := make([]string, len(model.TierLevels))
	for i, lvl := range model.TierLevels {
		names[i] = lvl.String()
		cases := run.Cases.ByTier(lvl)
		if len(cases) == 0 {
			continue
		}
		vals := make(plotter.Values, len(cases))
		for j, c := range cases {
			vals[j] = c.SystemCapacityKW
		}
		b, err := plotter.NewBoxPlot(vg.Points(40), float64(i), vals)
		if err != nil {
			return err
		}
		b.FillColor = set1[i]
		p.Add(b)
	}
	p.NominalX(names...)

	last := float64(len(model.TierLevels) - 1)
	line, err := dashedLine(plotter.XYs{{X: -0.5, Y: demand(run)}, {X: last + 0.5, Y: demand(run)}})
	if err != nil {
		return err
	}
	p.Add(line)
	p.Legend.Add("Peak Demand Load", line)
	p.Legend.Top = true
	p.Legend.Left = true
	return savePNG(w, p, 11*vg.Inch, 6*vg.Inch)
}

// writeSubplots draws one panel per tier 1..4 with system capacity bars by
// units installed, grouped by unit capacity.
func writeSubplots(w io.Writer, run model.Run) error {
	installed := uniqueInts(run.Cases, func(c model.Case) int { return c.UnitsInstalled })
	capacities := uniqueFloats(run.Cases, func(c model.Case) float64 { return c.UnitCapacityKW })
	yMin, yMax := demand(run)*0.7, run.Cases.MaxSystemCapacity()*1.25

	labels := make([]string, len(installed))
	pos := make(map[int]int, len(installed))
	for i, n := range installed {
		labels[i] = strconv.Itoa(n)
		pos[n] = i
	}

	tiers := []model.TierLevel{model.Tier1, model.Tier2, model.Tier3, model.Tier4}
	const rows, cols = 2, 2
	plots := make([][]*plot.Plot, rows)
	for r := range plots {
		plots[r] = make([]*plot.Plot, cols)
	}
	barWidth := vg.Points(8)
	for i, lvl := range tiers {
		p := plot.New()
		p.Title.Text = fmt.Sprintf("System Capacity vs. Number of units\n%s", lvl)
		p.X.Label.Text = "Units Installed"
		p.Y.Label.Text = "System Capacity (kW)"
		p.Add(plotter.NewGrid())

		cases := run.Cases.ByTier(lvl)
		for g, capKW := range capacities {
			vals := make(plotter.Values, len(installed))
			for _, c := range cases {
				if c.UnitCapacityKW == capKW {
					vals[pos[c.UnitsInstalled]] = c.SystemCapacityKW
				}
			}
			bars, err := plotter.NewBarChart(vals, barWidth)
			if err != nil {
				return err
			}
			bars.Color = set1[g%len(set1)]
			bars.LineStyle.Width = 0
			bars.Offset = barWidth * vg.Length(float64(g)-float64(len(capacities)-1)/2)
			p.Add(bars)
			p.Legend.Add(strconv.FormatFloat(capKW, 'f', -1, 64)+" kW", bars)
		}
		p.NominalX(labels...)

		line, err := dashedLine(plotter.XYs{{X: -0.5, Y: demand(run)}, {X: float64(len(installed)) - 0.5, Y: demand(run)}})
		if err != nil {
			return err
		}
		line.LineStyle.Color = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0x80}
		p.Add(line)
		p.Legend.Add("Peak Demand kW", line)
		p.Legend.Top = true
		p.Legend.Left = true
		p.Y.Min, p.Y.Max = yMin, yMax
		plots[i/cols][i%cols] = p
	}

	img := vgimg.New(11*vg.Inch, 8*vg.Inch)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows:      rows,
		Cols:      cols,
		PadX:      vg.Millimeter * 4,
		PadY:      vg.Millimeter * 4,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}
	canvases := plot.Align(plots, tiles, dc)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			plots[r][c].Draw(canvases[r][c])
		}
	}
	_, err := vgimg.PngCanvas{Canvas: img}.WriteTo(w)
	return err
}

func uniqueInts(t model.Table, key func(model.Case) int) []int {
	seen := make(map[int]bool)
	var out []int
	for _, c := range t {
		if k := key(c); !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	slices.Sort(out)
	return out
}

func uniqueFloats(t model.Table, key func(model.Case) float64) []float64 {
	seen := make(map[float64]bool)
	var out []float64
	for _, c := range t {
		if k := key(c); !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}
