package chart

import (
	"github.com/litescript/ls-starchart/internal/astro"
	"github.com/litescript/ls-starchart/internal/draw"
)

// ObjectsLayer draws deep-sky objects in storage order, so the catalog's
// faintest-first order puts bright objects on top.
type ObjectsLayer struct{}

func (ObjectsLayer) Name() string { return "objects" }

func (ObjectsLayer) Render(ctx *Context) *draw.Group {
	g := draw.NewGroup("objects")
	scale := ctx.Config.ObjectScale
	for _, o := range ctx.Data.Objects {
		if o.Magnitude > ctx.Config.LimitObjectMag {
			continue
		}
		p, ok := ctx.Project(o.Coords)
		if !ok {
			continue
		}
		g.Add(symbolFor(o.Kind).render(o, p, scale))
	}
	return g
}

// StarsLayer draws stars as circles sized by magnitude.
type StarsLayer struct{}

func (StarsLayer) Name() string { return "stars" }

func (StarsLayer) Render(ctx *Context) *draw.Group {
	g := draw.NewGroup("stars")
	scale := ctx.Config.ObjectScale
	for _, s := range ctx.Data.Stars {
		if s.Magnitude > ctx.Config.LimitStarMag {
			continue
		}
		p, ok := ctx.Project(s.Coords)
		if !ok {
			continue
		}
		g.Add(&draw.Circle{ID: s.Identifier, Class: "star", Center: p, R: StarRadius(s.Magnitude) * scale})
	}
	return g
}

// zenithMarkSize is the length of each arm of the center cross.
const zenithMarkSize = 10.0

// ZenithLayer marks the chart center with a cross.
type ZenithLayer struct{}

func (ZenithLayer) Name() string { return "zenith" }

func (ZenithLayer) Render(ctx *Context) *draw.Group {
	g := draw.NewGroup("zenith")
	p, ok := ctx.Project(ctx.Config.Center)
	if !ok {
		return g
	}
	half := zenithMarkSize / 2
	g.Add(
		&draw.Line{From: astro.PlanePoint{X: p.X - half, Y: p.Y}, To: astro.PlanePoint{X: p.X + half, Y: p.Y}, StrokeWidth: 2},
		&draw.Line{From: astro.PlanePoint{X: p.X, Y: p.Y - half}, To: astro.PlanePoint{X: p.X, Y: p.Y + half}, StrokeWidth: 2},
	)
	return g
}
