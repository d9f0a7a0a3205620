package chart

import (
	"sync"

	"github.com/litescript/ls-starchart/internal/draw"
)

// ClipID is the id of the clip path around the plot rectangle.
const ClipID = "clip-chart"

// Renderer composes the layer stack into a document.
type Renderer struct {
	// Parallel renders layers concurrently. Each layer writes its own slot,
	// so the document is identical to a sequential render.
	Parallel bool
	Clipped  []Layer
	Overlay  []Layer
}

// NewRenderer returns a renderer with the standard layer stack.
func NewRenderer() *Renderer {
	return &Renderer{Clipped: ClippedLayers(), Overlay: OverlayLayers()}
}

// Render draws ctx with the standard layer stack, sequentially.
func Render(ctx *Context) *draw.Document {
	return NewRenderer().Render(ctx)
}

// Render builds the document for ctx.
func (r *Renderer) Render(ctx *Context) *draw.Document {
	l := ctx.Layout
	doc := &draw.Document{
		Width:  float64(ctx.Config.Width),
		Height: float64(ctx.Config.Height),
		Class:  "chart",
		Clip:   draw.ClipRect{ID: ClipID, X: l.PlotX, Y: l.PlotY, W: l.PlotW, H: l.PlotH},
	}
	doc.Clipped = r.renderAll(ctx, r.Clipped)
	doc.Overlay = r.renderAll(ctx, r.Overlay)
	return doc
}

func (r *Renderer) renderAll(ctx *Context, layers []Layer) []*draw.Group {
	out := make([]*draw.Group, len(layers))
	if !r.Parallel {
		for i, layer := range layers {
			out[i] = layer.Render(ctx)
		}
		return out
	}

	var wg sync.WaitGroup
	for i, layer := range layers {
		wg.Add(1)
		go func(i int, layer Layer) {
			defer wg.Done()
			out[i] = layer.Render(ctx)
		}(i, layer)
	}
	wg.Wait()
	return out
}
