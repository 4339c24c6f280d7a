// Package plot draws learning curves of tracked experiment data
package plot

import (
	"fmt"
	"image/color"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Series is a single named curve, one value per episode
type Series struct {
	Name string
	Data []float64
}

// episodes returns the length of the longest series
func episodes(series []Series) int {
	n := 0
	for _, s := range series {
		if len(s.Data) > n {
			n = len(s.Data)
		}
	}
	return n
}

// HTML writes an interactive line chart of each series to w
func HTML(w io.Writer, title string, series ...Series) error {
	if len(series) == 0 {
		return fmt.Errorf("html: no series to plot")
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Episode"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Return"}),
	)

	x := make([]string, episodes(series))
	for i := range x {
		x[i] = fmt.Sprintf("%d", i)
	}
	line.SetXAxis(x)

	for _, s := range series {
		items := make([]opts.LineData, len(s.Data))
		for i, v := range s.Data {
			items[i] = opts.LineData{Value: v}
		}
		line.AddSeries(s.Name, items)
	}

	page := components.NewPage()
	page.AddCharts(line)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("html: %v", err)
	}
	return nil
}

var palette = []color.RGBA{
	{R: 31, G: 119, B: 180, A: 255},
	{R: 255, G: 127, B: 14, A: 255},
	{R: 44, G: 160, B: 44, A: 255},
	{R: 214, G: 39, B: 40, A: 255},
	{R: 148, G: 103, B: 189, A: 255},
}

// PNG saves a static line chart of each series to path. The image
// format is taken from the extension of path.
func PNG(path, title string, series ...Series) error {
	if len(series) == 0 {
		return fmt.Errorf("png: no series to plot")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Episode"
	p.Y.Label.Text = "Return"

	for i, s := range series {
		pts := make(plotter.XYs, len(s.Data))
		for j, v := range s.Data {
			pts[j].X = float64(j)
			pts[j].Y = v
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("png: could not create line %q: %v", s.Name, err)
		}
		line.Color = palette[i%len(palette)]

		p.Add(line)
		p.Legend.Add(s.Name, line)
	}

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("png: %v", err)
	}
	return nil
}
