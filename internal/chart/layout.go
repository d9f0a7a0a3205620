package chart

import (
	"math"

	"github.com/litescript/ls-starchart/internal/astro"
)

// Layout is the pixel geometry derived from a Config.
type Layout struct {
	PlotX, PlotY   float64 // top-left corner of the plot rectangle
	PlotW, PlotH   float64
	CenterPx       astro.PlanePoint
	Scale          float64 // pixels per tangent-plane unit
	SplitThreshold float64 // jump, in pixels, that breaks a sampled line
}

// NewLayout computes the plot rectangle, center pixel and scale. The field
// of view is the angular diameter that exactly fits the shorter plot side.
func NewLayout(cfg Config) Layout {
	plotX := float64(cfg.Margin.Left)
	plotY := float64(cfg.Margin.Top)
	plotW := math.Max(float64(cfg.Width-cfg.Margin.Left-cfg.Margin.Right), 0)
	plotH := math.Max(float64(cfg.Height-cfg.Margin.Top-cfg.Margin.Bottom), 0)

	short := math.Min(plotW, plotH)
	rhoMax := math.Tan(cfg.FOVDeg / 2 * math.Pi / 180)

	return Layout{
		PlotX:          plotX,
		PlotY:          plotY,
		PlotW:          plotW,
		PlotH:          plotH,
		CenterPx:       astro.PlanePoint{X: plotX + plotW/2, Y: plotY + plotH/2},
		Scale:          (short / 2) / rhoMax,
		SplitThreshold: short * 0.8,
	}
}

// PlotBox returns the plot rectangle.
func (l Layout) PlotBox() Box {
	return Box{X: l.PlotX, Y: l.PlotY, W: l.PlotW, H: l.PlotH}
}

// Box is an axis-aligned rectangle in pixels.
type Box struct {
	X, Y, W, H float64
}

// Overlaps reports whether a and b share interior area. Touching edges do
// not count.
func (a Box) Overlaps(b Box) bool {
	return !(a.X+a.W <= b.X || a.X >= b.X+b.W || a.Y+a.H <= b.Y || a.Y >= b.Y+b.H)
}

// Within reports whether a lies entirely inside outer, edges included.
func (a Box) Within(outer Box) bool {
	return a.X >= outer.X && a.X+a.W <= outer.X+outer.W &&
		a.Y >= outer.Y && a.Y+a.H <= outer.Y+outer.H
}

// squareAround returns the box of half-size half centered on p.
func squareAround(p astro.PlanePoint, half float64) Box {
	return Box{X: p.X - half, Y: p.Y - half, W: 2 * half, H: 2 * half}
}
