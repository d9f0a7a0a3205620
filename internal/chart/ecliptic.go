package chart

import (
	"github.com/litescript/ls-starchart/internal/astro"
	"github.com/litescript/ls-starchart/internal/draw"
)

// eclipticStepDeg is the longitude step the ecliptic is sampled at.
const eclipticStepDeg = 2

// EclipticLayer draws the ecliptic.
type EclipticLayer struct{}

func (EclipticLayer) Name() string { return "ecliptic" }

func (EclipticLayer) Render(ctx *Context) *draw.Group {
	g := draw.NewGroup("ecliptic")

	var pts []astro.PlanePoint
	for lon := 0; lon <= 360; lon += eclipticStepDeg {
		if p, ok := ctx.Project(astro.EclipticToEquatorial(float64(lon))); ok {
			pts = append(pts, p)
		}
	}
	for _, seg := range polylines(pts, ctx.Layout.SplitThreshold) {
		g.Add(linePath("ecliptic", seg))
	}
	return g
}
