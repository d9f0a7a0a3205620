// Package chart turns catalog data into a star-chart drawing tree: pixel
// layout, graticule sampling, symbol sizing, the layer stack, frame ticks and
// label placement.
package chart

import "github.com/litescript/ls-starchart/internal/astro"

// Margin is the space between the canvas edge and the plot rectangle, in
// pixels.
type Margin struct {
	Top    int
	Bottom int
	Left   int
	Right  int
}

// UniformMargin returns a margin of px on every side.
func UniformMargin(px int) Margin {
	return Margin{Top: px, Bottom: px, Left: px, Right: px}
}

// MaxFOVDeg is the widest field of view a chart can show. The scale is
// (short side / 2) / tan(fov / 2), which collapses at 180° and turns
// negative beyond it.
const MaxFOVDeg = 179.0

// Config fully describes one chart. It is not modified during rendering.
type Config struct {
	Center           astro.EquatorialPoint
	PositionAngleDeg float64 // PA=0 puts north up; positive turns counterclockwise
	Projection       astro.Projection
	FOVDeg           float64 // angular diameter across the shorter plot side
	Width            int
	Height           int
	Margin           Margin
	StepRADeg        int // graticule and major-tick step
	StepDecDeg       int
	LimitStarMag     float64 // faintest star drawn
	LimitObjectMag   float64 // faintest deep-sky object drawn
	ObjectScale      float64 // symbol size multiplier
}

// DefaultConfig returns the core defaults.
func DefaultConfig() Config {
	return Config{
		Center:         astro.EquatorialPoint{RADeg: 0, DecDeg: 0},
		Projection:     astro.Gnomonic,
		FOVDeg:         60,
		Width:          800,
		Height:         800,
		Margin:         UniformMargin(40),
		StepRADeg:      15,
		StepDecDeg:     10,
		LimitStarMag:   10,
		LimitObjectMag: 11,
		ObjectScale:    1,
	}
}

// stepRA and stepDec guard the loops that advance by the configured steps.
func (c Config) stepRA() int {
	if c.StepRADeg < 1 {
		return 1
	}
	return c.StepRADeg
}

func (c Config) stepDec() int {
	if c.StepDecDeg < 1 {
		return 1
	}
	return c.StepDecDeg
}
