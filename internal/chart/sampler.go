package chart

import (
	"math"

	"github.com/litescript/ls-starchart/internal/astro"
)

// SampleRAMeridian projects the meridian at raDeg from Dec -90 to +90
// inclusive and returns the visible points in pixels. step <= 0 selects the
// adaptive step.
func (c *Context) SampleRAMeridian(raDeg float64, step int) []astro.PlanePoint {
	if step <= 0 {
		step = c.AdaptiveStepDeg()
	}
	ra := astro.NormalizeRA(raDeg)

	var out []astro.PlanePoint
	for d := -90; d <= 90; d += step {
		if p, ok := c.Project(astro.EquatorialPoint{RADeg: ra, DecDeg: float64(d)}); ok {
			out = append(out, p)
		}
	}
	return out
}

// SampleDecParallel projects the parallel at decDeg for RA 0 up to but
// excluding 360 and returns the visible points in pixels. step <= 0 selects
// the adaptive step.
func (c *Context) SampleDecParallel(decDeg float64, step int) []astro.PlanePoint {
	if step <= 0 {
		step = c.AdaptiveStepDeg()
	}

	var out []astro.PlanePoint
	for r := 0; r < 360; r += step {
		if p, ok := c.Project(astro.EquatorialPoint{RADeg: float64(r), DecDeg: decDeg}); ok {
			out = append(out, p)
		}
	}
	return out
}

// SplitSegments breaks points into runs wherever consecutive points differ by
// more than threshold in x or in y. Empty input yields no runs; single-point
// runs are kept and left for the caller to drop.
func SplitSegments(points []astro.PlanePoint, threshold float64) [][]astro.PlanePoint {
	if len(points) == 0 {
		return nil
	}
	var segs [][]astro.PlanePoint
	seg := []astro.PlanePoint{points[0]}
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		if math.Abs(b.X-a.X) > threshold || math.Abs(b.Y-a.Y) > threshold {
			segs = append(segs, seg)
			seg = []astro.PlanePoint{b}
			continue
		}
		seg = append(seg, b)
	}
	return append(segs, seg)
}

// polylines splits points and keeps only runs that can be drawn as lines.
func polylines(points []astro.PlanePoint, threshold float64) [][]astro.PlanePoint {
	var out [][]astro.PlanePoint
	for _, seg := range SplitSegments(points, threshold) {
		if len(seg) >= 2 {
			out = append(out, seg)
		}
	}
	return out
}
