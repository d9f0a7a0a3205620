package chart

import (
	"math"

	"github.com/litescript/ls-starchart/internal/astro"
	"github.com/litescript/ls-starchart/internal/draw"
)

// ConstellationsLayer draws constellation stick figures and names.
type ConstellationsLayer struct{}

func (ConstellationsLayer) Name() string { return "constellations" }

func (ConstellationsLayer) Render(ctx *Context) *draw.Group {
	g := draw.NewGroup("constellations")
	threshold := ctx.Layout.SplitThreshold

	for _, c := range ctx.Data.Constellations {
		var visible []astro.PlanePoint
		for _, line := range c.Lines {
			pts := make([]astro.PlanePoint, 0, len(line))
			for _, eq := range line {
				if p, ok := ctx.Project(eq); ok {
					pts = append(pts, p)
				}
			}
			visible = append(visible, pts...)
			for _, seg := range polylines(pts, threshold) {
				g.Add(linePath("constellation", seg))
			}
		}

		// name at the center of the bounding box of what is visible
		if len(visible) < 2 {
			continue
		}
		minX, maxX := math.Inf(1), math.Inf(-1)
		minY, maxY := math.Inf(1), math.Inf(-1)
		for _, p := range visible {
			minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
			minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
		}
		label := textNode("constellation-label",
			astro.PlanePoint{X: (minX + maxX) * 0.5, Y: (minY + maxY) * 0.5}, "middle", c.Name)
		label.Baseline = "middle"
		g.Add(label)
	}
	return g
}
