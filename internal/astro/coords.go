// Package astro provides celestial coordinates and the sky-to-plane projections
// used to draw charts.
package astro

import (
	"math"

	"github.com/golang/geo/s1"
	"gonum.org/v1/gonum/spatial/r2"
)

// EquatorialPoint is a position on the celestial sphere.
type EquatorialPoint struct {
	RADeg  float64 // Right Ascension in degrees (conventionally 0-360)
	DecDeg float64 // Declination in degrees (-90 to +90)
}

// PlanePoint is a 2-D coordinate. It holds either a tangent-plane coordinate
// (projection output, origin at the chart center, +y north) or a pixel
// coordinate (+y down). Callers track which space is in use.
type PlanePoint = r2.Vec

// HoursToDegrees converts hours of right ascension to degrees.
func HoursToDegrees(hours float64) float64 {
	return hours * 15
}

// NormalizeRA wraps an angle in degrees into [0, 360).
func NormalizeRA(deg float64) float64 {
	a := math.Mod(deg, 360)
	if a < 0 {
		a += 360
	}
	// math.Mod(-1e-20, 360) + 360 rounds to 360
	if a >= 360 {
		a = 0
	}
	return a
}

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return (s1.Angle(deg) * s1.Degree).Radians()
}

// radToDeg converts radians to degrees.
func radToDeg(rad float64) float64 {
	return s1.Angle(rad).Degrees()
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
