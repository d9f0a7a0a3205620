// Package report describes a rendered chart: what was in view and which
// labels were placed. It writes JSON for tooling and a text table for people.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/litescript/ls-starchart/internal/astro"
	"github.com/litescript/ls-starchart/internal/catalog"
	"github.com/litescript/ls-starchart/internal/chart"
)

// Export is the JSON-serializable description of one chart.
type Export struct {
	GeneratedAt      time.Time     `json:"generated_at"`
	Center           CenterExport  `json:"center"`
	Projection       string        `json:"projection"`
	FOVDeg           float64       `json:"fov_deg"`
	PositionAngleDeg float64       `json:"position_angle_deg"`
	Width            int           `json:"width"`
	Height           int           `json:"height"`
	Scale            float64       `json:"scale_px"` // pixels per tangent-plane unit
	VisibleStars     int           `json:"visible_stars"`
	VisibleObjects   int           `json:"visible_objects"`
	Labels           []LabelExport `json:"labels"`
	Skipped          []string      `json:"skipped,omitempty"`
}

// CenterExport is the chart center in degrees.
type CenterExport struct {
	RADeg  float64 `json:"ra_deg"`
	DecDeg float64 `json:"dec_deg"`
}

// LabelExport is one placed label.
type LabelExport struct {
	Text  string  `json:"text"`
	Class string  `json:"class"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// Build summarizes ctx. Label placement is rerun with opts, which gives the
// same result the labels layer drew.
func Build(ctx *chart.Context, opts chart.LabelOptions, generatedAt time.Time) *Export {
	cfg := ctx.Config
	e := &Export{
		GeneratedAt:      generatedAt,
		Center:           CenterExport{RADeg: cfg.Center.RADeg, DecDeg: cfg.Center.DecDeg},
		Projection:       cfg.Projection.String(),
		FOVDeg:           cfg.FOVDeg,
		PositionAngleDeg: cfg.PositionAngleDeg,
		Width:            cfg.Width,
		Height:           cfg.Height,
		Scale:            ctx.Layout.Scale,
		VisibleStars:     countVisible(ctx, ctx.Data.Stars, cfg.LimitStarMag),
		VisibleObjects:   countVisible(ctx, ctx.Data.Objects, cfg.LimitObjectMag),
		Labels:           []LabelExport{},
	}

	res := chart.PlaceLabels(ctx, opts)
	for _, p := range res.Placed {
		e.Labels = append(e.Labels, LabelExport{Text: p.Text, Class: p.Class(), X: p.At.X, Y: p.At.Y})
	}
	for _, c := range res.Skipped {
		e.Skipped = append(e.Skipped, c.Text)
	}
	return e
}

// countVisible counts objects within the magnitude limit whose symbol center
// lands inside the plot rectangle.
func countVisible(ctx *chart.Context, objs []catalog.CelestialObject, limit float64) int {
	plot := ctx.Layout.PlotBox()
	var n int
	for _, o := range objs {
		if o.Magnitude > limit {
			continue
		}
		p, ok := ctx.Project(o.Coords)
		if !ok {
			continue
		}
		if p.X >= plot.X && p.X <= plot.X+plot.W && p.Y >= plot.Y && p.Y <= plot.Y+plot.H {
			n++
		}
	}
	return n
}

// WriteJSON writes the export as indented JSON.
func (e *Export) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}

// FormatRA renders degrees as hours, minutes and seconds.
func FormatRA(deg float64) string {
	total := astro.NormalizeRA(deg) / 15 * 3600
	h := int(total / 3600)
	m := int(total/60) % 60
	s := total - float64(h*3600+m*60)
	return fmt.Sprintf("%02dh%02dm%04.1fs", h, m, s)
}

// FormatDec renders degrees as signed degrees, minutes and seconds.
func FormatDec(deg float64) string {
	sign := "+"
	if deg < 0 {
		sign = "-"
		deg = -deg
	}
	total := deg * 3600
	d := int(total / 3600)
	m := int(total/60) % 60
	s := total - float64(d*3600+m*60)
	return fmt.Sprintf("%s%02d°%02d'%04.1f\"", sign, d, m, s)
}

// WriteSummaryTable writes a text summary of e.
func WriteSummaryTable(w io.Writer, e *Export) {
	rule := strings.Repeat("─", 60)

	fmt.Fprintf(w, "Chart @ %s  %s\n", FormatRA(e.Center.RADeg), FormatDec(e.Center.DecDeg))
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%-12s %s\n", "Projection", e.Projection)
	fmt.Fprintf(w, "%-12s %.2f°\n", "FOV", e.FOVDeg)
	if e.PositionAngleDeg != 0 {
		fmt.Fprintf(w, "%-12s %.2f°\n", "PA", e.PositionAngleDeg)
	}
	fmt.Fprintf(w, "%-12s %dx%d px\n", "Size", e.Width, e.Height)
	fmt.Fprintf(w, "%-12s %.1f px/unit\n", "Scale", e.Scale)
	fmt.Fprintf(w, "%-12s %d\n", "Stars", e.VisibleStars)
	fmt.Fprintf(w, "%-12s %d\n", "Objects", e.VisibleObjects)
	fmt.Fprintln(w, rule)

	if len(e.Labels) == 0 {
		fmt.Fprintln(w, "No labels placed")
	} else {
		fmt.Fprintf(w, "%-24s %-14s %8s %8s\n", "Label", "Class", "X", "Y")
		fmt.Fprintln(w, rule)
		for _, l := range e.Labels {
			fmt.Fprintf(w, "%-24s %-14s %8.1f %8.1f\n", truncate(l.Text, 24), l.Class, l.X, l.Y)
		}
	}

	fmt.Fprintf(w, "\nTotal: %d labels placed, %d skipped\n", len(e.Labels), len(e.Skipped))
	if len(e.Skipped) > 0 {
		fmt.Fprintf(w, "Skipped: %s\n", strings.Join(e.Skipped, ", "))
	}
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-2]) + ".."
}
