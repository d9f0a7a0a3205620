package chart

import (
	"math"

	"github.com/litescript/ls-starchart/internal/draw"
)

// gridMinDec is the southernmost parallel drawn.
const gridMinDec = -80

// GridLayer draws the RA meridians and Dec parallels.
type GridLayer struct{}

func (GridLayer) Name() string { return "grid" }

func (GridLayer) Render(ctx *Context) *draw.Group {
	g := draw.NewGroup("lines")
	threshold := ctx.Layout.SplitThreshold

	// meridians every whole number of hours
	stepH := int(math.Round(float64(ctx.Config.stepRA()) / 15))
	if stepH < 1 {
		stepH = 1
	}
	for h := 0; h < 24; h += stepH {
		for _, seg := range polylines(ctx.SampleRAMeridian(float64(h)*15, 0), threshold) {
			g.Add(linePath("graticule ra", seg))
		}
	}

	for dec := gridMinDec; dec <= 90; dec += ctx.Config.stepDec() {
		for _, seg := range polylines(ctx.SampleDecParallel(float64(dec), 0), threshold) {
			g.Add(linePath("graticule dec", seg))
		}
	}
	return g
}
