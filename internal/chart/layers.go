package chart

import (
	"github.com/litescript/ls-starchart/internal/astro"
	"github.com/litescript/ls-starchart/internal/draw"
)

// Layer renders one stratum of the chart into a group. The set of layers is
// fixed; the unexported method keeps it closed.
type Layer interface {
	Name() string
	Render(ctx *Context) *draw.Group
	layer()
}

// ClippedLayers returns the layers drawn inside the plot clip, back to front.
func ClippedLayers() []Layer {
	return []Layer{
		EclipticLayer{},
		GridLayer{},
		ConstellationsLayer{},
		ObjectsLayer{},
		StarsLayer{},
		NewLabelsLayer(DefaultLabelOptions()),
		ZenithLayer{},
	}
}

// OverlayLayers returns the layers drawn on top, outside the clip.
func OverlayLayers() []Layer {
	return []Layer{NewFrameLayer()}
}

func (EclipticLayer) layer()       {}
func (GridLayer) layer()           {}
func (ConstellationsLayer) layer() {}
func (ObjectsLayer) layer()        {}
func (StarsLayer) layer()          {}
func (LabelsLayer) layer()         {}
func (ZenithLayer) layer()         {}
func (FrameLayer) layer()          {}

// linePath turns a pixel polyline into an unfilled path.
func linePath(class string, pts []astro.PlanePoint) *draw.Path {
	return &draw.Path{Class: class, Points: pts, Fill: "none"}
}

func textNode(class string, at astro.PlanePoint, anchor, content string) *draw.Text {
	return &draw.Text{Class: class, At: at, Anchor: anchor, Content: content}
}
