// Package render draws a topology (and, optionally, a highlighted
// repair path) to a PNG file using gonum's plotting library. Of this
// module's packages only internal/cli imports it, and the CLI calls it
// only when --png is supplied; the analysis packages (topology, apsp,
// pathrecon, tilfa, scan, stats) do not depend on it.
package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/okdaichi/tilfa/internal/topology"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PNG renders t on a circular node layout to path. When highlight has
// two or more nodes, it is drawn as a heavier colored line over the
// plain edges, representing the repair path an operator wants to
// inspect.
func PNG(t *topology.Topology, highlight []int, path string) error {
	p := plot.New()
	p.HideAxes()

	coords := circularLayout(t.N)

	for _, e := range t.Edges() {
		line, err := plotter.NewLine(plotter.XYs{coords[e[0]], coords[e[1]]})
		if err != nil {
			return fmt.Errorf("render edge %d-%d: %w", e[0], e[1], err)
		}
		line.Color = color.Gray{Y: 180}
		line.Width = vg.Points(1)
		p.Add(line)
	}

	if len(highlight) >= 2 {
		pts := make(plotter.XYs, len(highlight))
		for i, n := range highlight {
			pts[i] = coords[n]
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("render repair path: %w", err)
		}
		line.Color = color.RGBA{R: 220, A: 255}
		line.Width = vg.Points(3)
		p.Add(line)
	}

	nodePts := make(plotter.XYs, t.N)
	labels := make([]string, t.N)
	for i := 0; i < t.N; i++ {
		nodePts[i] = coords[i]
		labels[i] = fmt.Sprintf("%d", i+1) // 1-indexed display
	}

	scatter, err := plotter.NewScatter(nodePts)
	if err != nil {
		return fmt.Errorf("render nodes: %w", err)
	}
	p.Add(scatter)

	nodeLabels, err := plotter.NewLabels(plotter.XYLabels{XYs: nodePts, Labels: labels})
	if err == nil {
		p.Add(nodeLabels)
	}

	return p.Save(6*vg.Inch, 6*vg.Inch, path)
}

func circularLayout(n int) plotter.XYs {
	pts := make(plotter.XYs, n)
	if n == 1 {
		pts[0] = plotter.XY{X: 0, Y: 0}
		return pts
	}
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = plotter.XY{X: math.Cos(angle), Y: math.Sin(angle)}
	}
	return pts
}
