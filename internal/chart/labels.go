package chart

import (
	"math"
	"sort"
	"unicode/utf8"

	"github.com/litescript/ls-starchart/internal/astro"
	"github.com/litescript/ls-starchart/internal/catalog"
	"github.com/litescript/ls-starchart/internal/draw"
)

// LabelOptions tunes label placement.
type LabelOptions struct {
	StarLabelMag   float64 // stars at or brighter than this get labels
	ObjectLabelMag float64 // same for deep-sky objects; Messier objects always qualify
	SymbolPad      float64 // padding around seeded symbol boxes
	Offsets        []astro.PlanePoint
}

// DefaultLabelOptions returns the stock placement settings: labels directly
// above or below the symbol, moving outward.
func DefaultLabelOptions() LabelOptions {
	return LabelOptions{
		StarLabelMag:   1.0,
		ObjectLabelMag: 8.0,
		SymbolPad:      1.0,
		Offsets: []astro.PlanePoint{
			{X: 0, Y: -10}, {X: 0, Y: 10},
			{X: 0, Y: -16}, {X: 0, Y: 16},
			{X: 0, Y: -20}, {X: 0, Y: 20},
		},
	}
}

// Label box geometry.
const (
	labelCharWidth = 7.0
	labelMinWidth  = 16.0
	labelHeight    = 12.0
)

// Candidate is an object that asked for a label.
type Candidate struct {
	Text      string
	Magnitude float64
	IsStar    bool
	Anchor    astro.PlanePoint // symbol position
}

// Class is the CSS class of the label text.
func (c Candidate) Class() string {
	if c.IsStar {
		return "star-label"
	}
	return "object-label"
}

// Placement is a label that found a free spot. At is the text anchor: the
// horizontal center and the baseline.
type Placement struct {
	Candidate
	At  astro.PlanePoint
	Box Box
}

// LabelResult is the outcome of one placement pass.
type LabelResult struct {
	Placed  []Placement
	Skipped []Candidate
}

// LabelBox returns the box of text whose baseline is centered at at.
func LabelBox(at astro.PlanePoint, text string) Box {
	chars := utf8.RuneCountInString(text)
	if chars < 2 {
		chars = 2
	}
	w := math.Max(float64(chars)*labelCharWidth, labelMinWidth)
	return Box{X: at.X - w/2, Y: at.Y - labelHeight, W: w, H: labelHeight}
}

func (o LabelOptions) shouldLabel(kind catalog.ObjectKind, mag float64) bool {
	if kind.IsStarLike() {
		return mag <= o.StarLabelMag
	}
	return mag <= o.ObjectLabelMag
}

func labelText(obj catalog.CelestialObject) string {
	if obj.Name != "" {
		return obj.Name
	}
	return obj.Designation()
}

// seedBoxes returns the symbol area of every star and object within the
// drawing limits, whether or not it will get a label.
func seedBoxes(ctx *Context, pad float64) []Box {
	var boxes []Box
	for _, s := range ctx.Data.Stars {
		if s.Magnitude > ctx.Config.LimitStarMag {
			continue
		}
		if p, ok := ctx.Project(s.Coords); ok {
			boxes = append(boxes, starSymbolBox(s.Magnitude, p, pad))
		}
	}
	for _, o := range ctx.Data.Objects {
		if o.Magnitude > ctx.Config.LimitObjectMag {
			continue
		}
		if p, ok := ctx.Project(o.Coords); ok {
			boxes = append(boxes, labelSymbolBox(o.Kind, o.Magnitude, p, pad))
		}
	}
	return boxes
}

// candidates lists label requests brightest first; ties keep catalog order,
// stars before objects.
func candidates(ctx *Context, opts LabelOptions) []Candidate {
	var out []Candidate
	for _, s := range ctx.Data.Stars {
		if !opts.shouldLabel(s.Kind, s.Magnitude) {
			continue
		}
		if p, ok := ctx.Project(s.Coords); ok {
			out = append(out, Candidate{Text: labelText(s), Magnitude: s.Magnitude, IsStar: true, Anchor: p})
		}
	}
	for _, o := range ctx.Data.Objects {
		if o.Catalog != "M" && !opts.shouldLabel(o.Kind, o.Magnitude) {
			continue
		}
		if p, ok := ctx.Project(o.Coords); ok {
			out = append(out, Candidate{Text: labelText(o), Magnitude: o.Magnitude, Anchor: p})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Magnitude < out[j].Magnitude })
	return out
}

// PlaceLabels runs the greedy placement. Symbol boxes are seeded first, then
// each candidate takes the first offset whose box stays inside the plot and
// overlaps nothing placed so far. Candidates with no such offset are skipped.
func PlaceLabels(ctx *Context, opts LabelOptions) LabelResult {
	occupied := seedBoxes(ctx, opts.SymbolPad)
	plot := ctx.Layout.PlotBox()

	var res LabelResult
	for _, c := range candidates(ctx, opts) {
		placed := false
		for _, off := range opts.Offsets {
			at := astro.PlanePoint{X: c.Anchor.X + off.X, Y: c.Anchor.Y + off.Y}
			box := LabelBox(at, c.Text)
			if !box.Within(plot) || overlapsAny(box, occupied) {
				continue
			}
			occupied = append(occupied, box)
			res.Placed = append(res.Placed, Placement{Candidate: c, At: astro.PlanePoint{X: at.X, Y: box.Y + box.H}, Box: box})
			placed = true
			break
		}
		if !placed {
			res.Skipped = append(res.Skipped, c)
		}
	}
	return res
}

func overlapsAny(b Box, boxes []Box) bool {
	for _, o := range boxes {
		if b.Overlaps(o) {
			return true
		}
	}
	return false
}

// LabelsLayer draws the labels chosen by PlaceLabels.
type LabelsLayer struct {
	opts LabelOptions
}

// NewLabelsLayer returns a labels layer using opts.
func NewLabelsLayer(opts LabelOptions) LabelsLayer {
	return LabelsLayer{opts: opts}
}

func (LabelsLayer) Name() string { return "labels" }

func (l LabelsLayer) Render(ctx *Context) *draw.Group {
	g := draw.NewGroup("labels")
	for _, p := range PlaceLabels(ctx, l.opts).Placed {
		g.Add(textNode(p.Class(), p.At, "middle", p.Text))
	}
	return g
}
