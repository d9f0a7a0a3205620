// Package svgout serializes a draw.Document as SVG.
package svgout

import (
	"bufio"
	_ "embed"
	"fmt"
	"html"
	"io"
	"os"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo/float"

	"github.com/litescript/ls-starchart/internal/draw"
	"github.com/litescript/ls-starchart/internal/logging"
)

//go:embed default.css
var defaultCSS string

// DefaultCSS returns the built-in stylesheet.
func DefaultCSS() string {
	return defaultCSS
}

// Stylesheet returns the contents of the CSS file at path. An empty path, or
// a file that cannot be read, yields the built-in stylesheet.
func Stylesheet(path string, log *logging.Logger) string {
	if path == "" {
		return defaultCSS
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn("stylesheet unreadable, using built-in", "path", path, "err", err)
		return defaultCSS
	}
	return string(data)
}

// Write renders doc to w with css embedded in a style element. The clipped
// layers share one group bound to the document's clip rectangle; overlay
// groups follow unclipped.
func Write(w io.Writer, doc *draw.Document, css string) error {
	bw := bufio.NewWriter(w)
	canvas := svg.New(bw)

	var root []string
	if doc.Class != "" {
		root = append(root, attr("class", doc.Class))
	}
	canvas.Start(doc.Width, doc.Height, root...)
	if css != "" {
		canvas.Style("text/css", css)
	}

	clip := doc.Clip
	canvas.Def()
	canvas.ClipPath(attr("id", clip.ID))
	canvas.Rect(clip.X, clip.Y, clip.W, clip.H)
	canvas.ClipEnd()
	canvas.DefEnd()

	canvas.Group(attr("clip-path", "url(#"+clip.ID+")"))
	for _, g := range doc.Clipped {
		writeNode(canvas, g)
	}
	canvas.Gend()

	for _, g := range doc.Overlay {
		writeNode(canvas, g)
	}
	canvas.End()

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}

func writeNode(canvas *svg.SVG, n draw.Node) {
	switch v := n.(type) {
	case *draw.Group:
		canvas.Group(attrs(
			"id", v.ID,
			"class", v.Class,
			"transform", v.Transform,
			"clip-path", clipRef(v.ClipPath),
		)...)
		for _, c := range v.Children {
			writeNode(canvas, c)
		}
		canvas.Gend()
	case *draw.Circle:
		canvas.Circle(v.Center.X, v.Center.Y, v.R, attrs("id", v.ID, "class", v.Class)...)
	case *draw.Ellipse:
		canvas.Ellipse(v.Center.X, v.Center.Y, v.RX, v.RY, attrs("id", v.ID, "class", v.Class)...)
	case *draw.Line:
		var width string
		if v.StrokeWidth > 0 {
			width = num(v.StrokeWidth)
		}
		canvas.Line(v.From.X, v.From.Y, v.To.X, v.To.Y, attrs("class", v.Class, "stroke-width", width)...)
	case *draw.Rect:
		canvas.Rect(v.Min.X, v.Min.Y, v.W, v.H, attrs(
			"id", v.ID,
			"class", v.Class,
			"fill", v.Fill,
			"stroke", v.Stroke,
		)...)
	case *draw.Path:
		if len(v.Points) == 0 {
			return
		}
		canvas.Path(pathData(v.Points), attrs("class", v.Class, "fill", v.Fill)...)
	case *draw.Text:
		canvas.Text(v.At.X, v.At.Y, v.Content, attrs(
			"class", v.Class,
			"text-anchor", v.Anchor,
			"dominant-baseline", v.Baseline,
		)...)
	}
}

// pathData encodes a polyline as "M x y L x y ...".
func pathData(pts []draw.Point) string {
	var b strings.Builder
	for i, p := range pts {
		if i == 0 {
			b.WriteString("M")
		} else {
			b.WriteString(" L")
		}
		b.WriteString(num(p.X))
		b.WriteByte(' ')
		b.WriteString(num(p.Y))
	}
	return b.String()
}

func clipRef(id string) string {
	if id == "" {
		return ""
	}
	return "url(#" + id + ")"
}

// attrs builds svgo attribute arguments from name/value pairs, skipping
// empty values.
func attrs(kv ...string) []string {
	out := make([]string, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] == "" {
			continue
		}
		out = append(out, attr(kv[i], kv[i+1]))
	}
	return out
}

func attr(name, value string) string {
	return name + `="` + html.EscapeString(value) + `"`
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
