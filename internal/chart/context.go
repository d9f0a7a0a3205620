package chart

import (
	"math"

	"github.com/litescript/ls-starchart/internal/astro"
	"github.com/litescript/ls-starchart/internal/catalog"
)

// Context is everything a layer reads: datasets, configuration and the
// derived layout. Layers never modify it.
type Context struct {
	Data   catalog.Datasets
	Config Config
	Layout Layout
}

// NewContext derives the layout for cfg.
func NewContext(data catalog.Datasets, cfg Config) *Context {
	return &Context{Data: data, Config: cfg, Layout: NewLayout(cfg)}
}

// AdaptiveStepDeg returns the sampling step for graticule lines, in whole
// degrees between 1 and 4, growing with the field of view.
func AdaptiveStepDeg(fovDeg float64) int {
	var target float64
	switch {
	case fovDeg <= 30:
		target = 240
	case fovDeg <= 60:
		target = 180
	default:
		target = 120
	}
	step := int(math.Round(clamp(fovDeg/target, 0.5, 4)))
	if step < 1 {
		step = 1
	}
	return step
}

// AdaptiveStepDeg is the sampling step for this chart's field of view.
func (c *Context) AdaptiveStepDeg() int {
	return AdaptiveStepDeg(c.Config.FOVDeg)
}

// Project maps a sky point to its pixel position, ok=false when culled.
func (c *Context) Project(p astro.EquatorialPoint) (astro.PlanePoint, bool) {
	tp, ok := astro.Project(p, c.Config.Center, c.Config.Projection, c.Config.PositionAngleDeg)
	if !ok {
		return astro.PlanePoint{}, false
	}
	return astro.ToPixels(tp, c.Layout.CenterPx, c.Layout.Scale), true
}

func clamp(x, lo, hi float64) float64 {
	if math.IsNaN(x) {
		return lo
	}
	return math.Max(lo, math.Min(hi, x))
}
