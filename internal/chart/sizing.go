package chart

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/litescript/ls-starchart/internal/astro"
	"github.com/litescript/ls-starchart/internal/catalog"
	"github.com/litescript/ls-starchart/internal/draw"
)

// Symbol size model constants.
const (
	magRadiusMin = 4.0  // radius at the faint end
	magRadiusMax = 18.0 // radius at the bright end
	magBright    = -1.0
	magFaint     = 10.0

	sizeK     = 1.2
	sizeAlpha = 0.5
	sizeCap   = 16.0

	weightMag  = 1.0
	weightSize = 0.3
	radiusMin  = 6.0
)

// RadiusByMagnitude maps a magnitude to a radius by interpolating linearly in
// flux between rMin at faint and rMax at bright. mag is clamped to
// [bright, faint].
func RadiusByMagnitude(mag, rMin, rMax, bright, faint float64) float64 {
	m := math.Max(bright, math.Min(faint, mag))
	f := math.Pow(10, -0.4*m)
	fb := math.Pow(10, -0.4*bright)
	ff := math.Pow(10, -0.4*faint)
	t := (f - ff) / (fb - ff)
	return rMin + (rMax-rMin)*t
}

// RadiusBySize maps an angular size in arcminutes to k*arcmin^alpha, capped.
// Non-positive sizes give 0.
func RadiusBySize(arcmin, k, alpha, limit float64) float64 {
	if arcmin <= 0 {
		return 0
	}
	return math.Min(k*math.Pow(arcmin, alpha), limit)
}

// CombinedRadius weighs the magnitude and size radii and applies a floor.
func CombinedRadius(mag, arcmin, wMag, wSize, floor float64) float64 {
	byMag := RadiusByMagnitude(mag, magRadiusMin, magRadiusMax, magBright, magFaint)
	bySize := RadiusBySize(arcmin, sizeK, sizeAlpha, sizeCap)
	return math.Max(wMag*byMag+wSize*bySize, floor)
}

// StarRadius is the drawn radius of a star before object scaling.
func StarRadius(mag float64) float64 {
	return math.Max(4-0.6*mag, 0.5)
}

type glyph int

const (
	glyphCross glyph = iota
	glyphCircle
	glyphCrossCircle
	glyphSquare
	glyphEllipse
	glyphRing
)

// symbolSpec is how one object kind is drawn.
type symbolSpec struct {
	glyph glyph
	class string
	// combined uses CombinedRadius; otherwise the magnitude radius alone.
	combined bool
}

// symbolTable is keyed by object kind; kinds not listed use defaultSymbol.
var symbolTable = map[catalog.ObjectKind]symbolSpec{
	catalog.KindOpenCluster:     {glyph: glyphCircle, class: "open-cluster object", combined: true},
	catalog.KindGlobularCluster: {glyph: glyphCrossCircle, class: "globular-cluster object", combined: true},
	catalog.KindBrightNebula:    {glyph: glyphSquare, class: "bright-nebula object", combined: true},
	catalog.KindGalaxy:          {glyph: glyphEllipse, class: "galaxy object"},
	catalog.KindPlanetaryNebula: {glyph: glyphRing, class: "planetary-nebula object", combined: true},
}

var defaultSymbol = symbolSpec{glyph: glyphCross, class: "object"}

func symbolFor(kind catalog.ObjectKind) symbolSpec {
	if s, ok := symbolTable[kind]; ok {
		return s
	}
	return defaultSymbol
}

// symbolSize is the glyph size of o, scale included.
func (s symbolSpec) symbolSize(o catalog.CelestialObject, scale float64) float64 {
	if s.combined {
		return CombinedRadius(o.Magnitude, o.Size.Major, weightMag, weightSize, radiusMin) * scale
	}
	return RadiusByMagnitude(o.Magnitude, magRadiusMin, magRadiusMax, magBright, magFaint) * scale
}

// render draws o at pixel p.
func (s symbolSpec) render(o catalog.CelestialObject, p astro.PlanePoint, scale float64) draw.Node {
	size := s.symbolSize(o, scale)
	switch s.glyph {
	case glyphCircle:
		return &draw.Circle{ID: o.Identifier, Class: s.class, Center: p, R: size * 0.5}
	case glyphCrossCircle:
		r := size * 0.5
		g := &draw.Group{ID: o.Identifier, Class: s.class}
		return g.Add(&draw.Circle{Center: p, R: r}, hLine(p, r), vLine(p, r))
	case glyphSquare:
		half := size * 0.5
		return &draw.Rect{
			ID:    o.Identifier,
			Class: s.class,
			Min:   r2.Sub(p, r2.Vec{X: half, Y: half}),
			W:     2 * half,
			H:     2 * half,
		}
	case glyphEllipse:
		g := &draw.Group{
			ID:        o.Identifier,
			Class:     s.class,
			Transform: fmt.Sprintf("rotate(%.2f,%.2f,%.2f)", o.Angle, p.X, p.Y),
		}
		return g.Add(&draw.Ellipse{Center: p, RX: size * 0.7, RY: size * 0.35})
	case glyphRing:
		cross := size / 2
		g := &draw.Group{ID: o.Identifier, Class: s.class}
		return g.Add(&draw.Circle{Center: p, R: size / 4}, hLine(p, cross), vLine(p, cross))
	default:
		half := size * 0.5
		g := &draw.Group{ID: o.Identifier, Class: s.class}
		return g.Add(hLine(p, half), vLine(p, half))
	}
}

func hLine(p astro.PlanePoint, half float64) *draw.Line {
	return &draw.Line{From: astro.PlanePoint{X: p.X - half, Y: p.Y}, To: astro.PlanePoint{X: p.X + half, Y: p.Y}}
}

func vLine(p astro.PlanePoint, half float64) *draw.Line {
	return &draw.Line{From: astro.PlanePoint{X: p.X, Y: p.Y - half}, To: astro.PlanePoint{X: p.X, Y: p.Y + half}}
}

// labelSymbolBox is the occupied area seeded for an object before labels are
// placed. It approximates the glyph from the magnitude alone.
func labelSymbolBox(kind catalog.ObjectKind, mag float64, p astro.PlanePoint, pad float64) Box {
	size := math.Max(10-mag, 4)
	switch kind {
	case catalog.KindPlanetaryNebula:
		return squareAround(p, size+pad)
	case catalog.KindGalaxy:
		return squareAround(p, math.Max(size, size/2)+pad)
	default:
		// bright nebulae, clusters and everything else
		return squareAround(p, size/2+pad)
	}
}

// starSymbolBox is the occupied area seeded for a star.
func starSymbolBox(mag float64, p astro.PlanePoint, pad float64) Box {
	return squareAround(p, StarRadius(mag)+pad)
}
