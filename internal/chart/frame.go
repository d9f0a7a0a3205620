package chart

import (
	"fmt"
	"math"

	"github.com/litescript/ls-starchart/internal/astro"
	"github.com/litescript/ls-starchart/internal/draw"
)

// Side is an edge of the plot rectangle.
type Side int

const (
	Top Side = iota
	Bottom
	Left
	Right
)

func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Mark is a point where a graticule line crosses the plot border. Label is
// empty for minor ticks.
type Mark struct {
	X, Y  float64
	Side  Side
	Label string
}

// edgeTolerance admits crossings that land exactly on a corner.
const edgeTolerance = 1e-6

// EdgeHits returns where poly crosses the requested sides of rect, segment by
// segment in order. A crossing counts when the interpolation parameter lies
// in [0, 1] and the crossing lies within the side's extent.
func EdgeHits(poly []astro.PlanePoint, sides []Side, rect Box) []Mark {
	var want [4]bool
	for _, s := range sides {
		if s >= Top && s <= Right {
			want[s] = true
		}
	}
	top, bottom := rect.Y, rect.Y+rect.H
	left, right := rect.X, rect.X+rect.W

	var hits []Mark
	for i := 1; i < len(poly); i++ {
		x1, y1 := poly[i-1].X, poly[i-1].Y
		x2, y2 := poly[i].X, poly[i].Y
		dx, dy := x2-x1, y2-y1

		horizontal := func(side Side, edge float64) {
			if dy == 0 || (y1-edge)*(y2-edge) > 0 {
				return
			}
			t := (edge - y1) / dy
			if t < 0 || t > 1 {
				return
			}
			x := x1 + t*dx
			if x >= left-edgeTolerance && x <= right+edgeTolerance {
				hits = append(hits, Mark{X: x, Y: edge, Side: side})
			}
		}
		vertical := func(side Side, edge float64) {
			if dx == 0 || (x1-edge)*(x2-edge) > 0 {
				return
			}
			t := (edge - x1) / dx
			if t < 0 || t > 1 {
				return
			}
			y := y1 + t*dy
			if y >= top-edgeTolerance && y <= bottom+edgeTolerance {
				hits = append(hits, Mark{X: edge, Y: y, Side: side})
			}
		}

		if want[Top] {
			horizontal(Top, top)
		}
		if want[Bottom] {
			horizontal(Bottom, bottom)
		}
		if want[Left] {
			vertical(Left, left)
		}
		if want[Right] {
			vertical(Right, right)
		}
	}
	return hits
}

type markKey struct {
	side  Side
	x, y  int64
	label string
}

// DedupMarks drops marks that share side, label and position rounded to
// 0.1px. The first occurrence wins and order is kept.
func DedupMarks(marks []Mark) []Mark {
	seen := make(map[markKey]struct{}, len(marks))
	out := make([]Mark, 0, len(marks))
	for _, m := range marks {
		k := markKey{
			side:  m.Side,
			x:     int64(math.Round(m.X * 10)),
			y:     int64(math.Round(m.Y * 10)),
			label: m.Label,
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, m)
	}
	return out
}

// FrameLayer draws the plot border with RA ticks on the top and bottom edges
// and Dec ticks on the left and right edges.
type FrameLayer struct {
	fineStepRADeg  float64
	fineStepDecDeg int
}

// NewFrameLayer returns a frame with ticks every 3.75° of RA (15 minutes of
// time) and every 2° of Dec.
func NewFrameLayer() FrameLayer {
	return FrameLayer{fineStepRADeg: 3.75, fineStepDecDeg: 2}
}

func (FrameLayer) Name() string { return "frame" }

func (f FrameLayer) Render(ctx *Context) *draw.Group {
	g := draw.NewGroup("frame")
	plot := ctx.Layout.PlotBox()
	top, bottom := plot.Y, plot.Y+plot.H
	left, right := plot.X, plot.X+plot.W

	g.Add(&draw.Rect{
		Class:  "border",
		Min:    astro.PlanePoint{X: plot.X, Y: plot.Y},
		W:      plot.W,
		H:      plot.H,
		Fill:   "none",
		Stroke: "black",
	})

	for _, m := range DedupMarks(f.raMarks(ctx, plot)) {
		switch m.Side {
		case Top:
			length := 3.0
			if m.Label != "" {
				length = 6
			}
			g.Add(tick(m.X, top, m.X, top-length))
			if m.Label != "" {
				g.Add(textNode("tick-label", astro.PlanePoint{X: m.X, Y: top - 10}, "middle", m.Label))
			}
		case Bottom:
			g.Add(tick(m.X, bottom, m.X, bottom+6))
			if m.Label != "" {
				g.Add(textNode("tick-label", astro.PlanePoint{X: m.X, Y: bottom + 20}, "middle", m.Label))
			}
		}
	}

	for _, m := range DedupMarks(f.decMarks(ctx, plot)) {
		length := 3.0
		if m.Label != "" {
			length = 6
		}
		switch m.Side {
		case Left:
			g.Add(tick(left, m.Y, left-length, m.Y))
			if m.Label != "" {
				g.Add(textNode("tick-label", astro.PlanePoint{X: left - 10, Y: m.Y + 4}, "end", m.Label))
			}
		case Right:
			g.Add(tick(right, m.Y, right+length, m.Y))
			if m.Label != "" {
				g.Add(textNode("tick-label", astro.PlanePoint{X: right + 10, Y: m.Y + 4}, "start", m.Label))
			}
		}
	}
	return g
}

// raMarks collects meridian crossings of the top and bottom edges. A major
// crossing yields both a labeled and an unlabeled mark.
func (f FrameLayer) raMarks(ctx *Context, plot Box) []Mark {
	stepH := f.fineStepRADeg / 15
	n := int(math.Floor(24 / stepH))
	step := float64(ctx.Config.stepRA())

	var marks []Mark
	for i := 0; i < n; i++ {
		h := float64(i) * stepH
		ra := h * 15
		k := math.Round(ra / step)
		major := math.Abs(ra-k*step) < 1e-8

		for _, seg := range SplitSegments(ctx.SampleRAMeridian(ra, 0), ctx.Layout.SplitThreshold) {
			for _, m := range EdgeHits(seg, []Side{Top, Bottom}, plot) {
				if major {
					labeled := m
					labeled.Label = fmt.Sprintf("%.0fh", math.Round(h))
					marks = append(marks, labeled)
				}
				marks = append(marks, m)
			}
		}
	}
	return marks
}

// decMarks collects parallel crossings of the left and right edges. The
// major test is a truncated modulo, so negative declinations behave like
// their positive counterparts.
func (f FrameLayer) decMarks(ctx *Context, plot Box) []Mark {
	step := ctx.Config.stepDec()

	var marks []Mark
	for d := gridMinDec; d <= 90; d += f.fineStepDecDeg {
		major := d%step == 0
		for _, seg := range SplitSegments(ctx.SampleDecParallel(float64(d), 0), ctx.Layout.SplitThreshold) {
			for _, m := range EdgeHits(seg, []Side{Left, Right}, plot) {
				if major {
					labeled := m
					labeled.Label = fmt.Sprintf("%d°", d)
					marks = append(marks, labeled)
				}
				marks = append(marks, m)
			}
		}
	}
	return marks
}

func tick(x1, y1, x2, y2 float64) *draw.Line {
	return &draw.Line{Class: "tick", From: astro.PlanePoint{X: x1, Y: y1}, To: astro.PlanePoint{X: x2, Y: y2}}
}
