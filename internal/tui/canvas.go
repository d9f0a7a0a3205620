package tui

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-starchart/internal/draw"
)

const (
	colorBackground = "236" // very dark background

	// Star glyphs by drawn radius, brightest first
	glyphStarBright  = '✶'
	glyphStarMedium  = '✸'
	glyphStarDim     = '•'
	glyphStarVeryDim = '·'

	// Star colors (grayscale so objects stand out)
	colorStarBright  = "255"
	colorStarMedium  = "250"
	colorStarDim     = "244"
	colorStarVeryDim = "240"
)

// cellStyle is the glyph and color one class is drawn with.
type cellStyle struct {
	glyph rune
	color lipgloss.Color
}

// lineStyles covers paths and lines, by class.
var lineStyles = map[string]cellStyle{
	"graticule ra":  {'·', "238"},
	"graticule dec": {'·', "238"},
	"ecliptic":      {'∙', "136"},
	"constellation": {'•', "60"},
	"tick":          {'·', "244"},
}

// textColors covers text, by class.
var textColors = map[string]lipgloss.Color{
	"constellation-label": "97",
	"star-label":          "252",
	"object-label":        "174",
	"tick-label":          "244",
}

// markerStyles draw a whole symbol group or shape as one glyph at its center.
var markerStyles = map[string]cellStyle{
	"galaxy object":           {'◍', "204"},
	"open-cluster object":     {'○', "221"},
	"globular-cluster object": {'⊕', "221"},
	"planetary-nebula object": {'◌', "79"},
	"bright-nebula object":    {'□', "79"},
	"object":                  {'×', "174"},
	"zenith":                  {'+', "46"},
}

// Canvas is a grid of character cells, each with a foreground color.
type Canvas struct {
	width, height int
	cells         [][]rune
	colors        [][]lipgloss.Color
}

// NewCanvas returns a blank canvas.
func NewCanvas(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	c := &Canvas{
		width:  width,
		height: height,
		cells:  make([][]rune, height),
		colors: make([][]lipgloss.Color, height),
	}
	for y := 0; y < height; y++ {
		c.cells[y] = make([]rune, width)
		c.colors[y] = make([]lipgloss.Color, width)
		for x := 0; x < width; x++ {
			c.cells[y][x] = ' '
			c.colors[y][x] = colorBackground
		}
	}
	return c
}

// Set writes r at (x, y). Out-of-range cells are ignored.
func (c *Canvas) Set(x, y int, r rune, color lipgloss.Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y][x] = r
	c.colors[y][x] = color
}

// At returns the rune at (x, y), or 0 when out of range.
func (c *Canvas) At(x, y int) rune {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return 0
	}
	return c.cells[y][x]
}

// String returns the canvas without styling.
func (c *Canvas) String() string {
	var b strings.Builder
	for y := 0; y < c.height; y++ {
		b.WriteString(string(c.cells[y]))
		if y < c.height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Render returns the canvas with colors, one style per run of equal color.
func (c *Canvas) Render() string {
	var b strings.Builder
	for y := 0; y < c.height; y++ {
		start := 0
		for x := 1; x <= c.width; x++ {
			if x < c.width && c.colors[y][x] == c.colors[y][start] {
				continue
			}
			style := lipgloss.NewStyle().Foreground(c.colors[y][start])
			b.WriteString(style.Render(string(c.cells[y][start:x])))
			start = x
		}
		if y < c.height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// rasterizer maps document pixels onto canvas cells.
type rasterizer struct {
	canvas *Canvas
	sx, sy float64
	clip   [4]int // x0, y0, x1, y1 in cells, end exclusive
}

// Rasterize draws doc onto a width x height canvas. The clipped layers are
// confined to the document's clip rectangle; overlay layers are not.
func Rasterize(doc *draw.Document, width, height int) *Canvas {
	c := NewCanvas(width, height)
	if doc.Width <= 0 || doc.Height <= 0 {
		return c
	}
	r := &rasterizer{
		canvas: c,
		sx:     float64(width) / doc.Width,
		sy:     float64(height) / doc.Height,
	}

	r.clip = [4]int{
		int(math.Floor(doc.Clip.X * r.sx)),
		int(math.Floor(doc.Clip.Y * r.sy)),
		int(math.Ceil((doc.Clip.X + doc.Clip.W) * r.sx)),
		int(math.Ceil((doc.Clip.Y + doc.Clip.H) * r.sy)),
	}
	if doc.Clip.W <= 0 || doc.Clip.H <= 0 {
		r.clip = [4]int{0, 0, width, height}
	}
	for _, g := range doc.Clipped {
		r.node(g)
	}

	r.clip = [4]int{0, 0, width, height}
	for _, g := range doc.Overlay {
		r.node(g)
	}
	return c
}

func (r *rasterizer) cell(p draw.Point) (int, int) {
	return int(math.Floor(p.X * r.sx)), int(math.Floor(p.Y * r.sy))
}

func (r *rasterizer) set(x, y int, ch rune, color lipgloss.Color) {
	if x < r.clip[0] || x >= r.clip[2] || y < r.clip[1] || y >= r.clip[3] {
		return
	}
	r.canvas.Set(x, y, ch, color)
}

func (r *rasterizer) node(n draw.Node) {
	if st, ok := markerStyles[draw.ClassOf(n)]; ok {
		if p, ok := center(n); ok {
			x, y := r.cell(p)
			r.set(x, y, st.glyph, st.color)
		}
		return
	}

	switch v := n.(type) {
	case *draw.Group:
		for _, c := range v.Children {
			r.node(c)
		}
	case *draw.Circle:
		if v.Class == "star" {
			x, y := r.cell(v.Center)
			ch, color := starGlyph(v.R)
			r.set(x, y, ch, color)
		}
	case *draw.Path:
		if st, ok := lineStyles[v.Class]; ok {
			for i := 1; i < len(v.Points); i++ {
				r.segment(v.Points[i-1], v.Points[i], st)
			}
		}
	case *draw.Line:
		if st, ok := lineStyles[v.Class]; ok {
			r.segment(v.From, v.To, st)
		}
	case *draw.Text:
		if color, ok := textColors[v.Class]; ok {
			r.text(v, color)
		}
	}
}

// segment samples a straight segment once per cell along its longer axis.
func (r *rasterizer) segment(a, b draw.Point, st cellStyle) {
	x0, y0 := a.X*r.sx, a.Y*r.sy
	x1, y1 := b.X*r.sx, b.Y*r.sy
	steps := int(math.Ceil(math.Max(math.Abs(x1-x0), math.Abs(y1-y0))))
	// segments far off-canvas are not worth walking
	if steps > 4*(r.canvas.width+r.canvas.height) {
		return
	}
	for i := 0; i <= steps; i++ {
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		x := int(math.Floor(x0 + (x1-x0)*t))
		y := int(math.Floor(y0 + (y1-y0)*t))
		r.set(x, y, st.glyph, st.color)
	}
}

func (r *rasterizer) text(t *draw.Text, color lipgloss.Color) {
	x, y := r.cell(t.At)
	if t.Baseline != "middle" {
		// the baseline sits under the glyphs; write on the row above it
		y = int(math.Floor(t.At.Y*r.sy - 0.5))
	}
	n := utf8.RuneCountInString(t.Content)
	switch t.Anchor {
	case "middle":
		x -= n / 2
	case "end":
		x -= n
	}
	for i, ch := range []rune(t.Content) {
		r.set(x+i, y, ch, color)
	}
}

// starGlyph picks a glyph and color from the drawn radius, which grows with
// brightness.
func starGlyph(radius float64) (rune, lipgloss.Color) {
	switch {
	case radius > 3.1:
		return glyphStarBright, colorStarBright
	case radius > 2.2:
		return glyphStarMedium, colorStarMedium
	case radius > 1.6:
		return glyphStarDim, colorStarDim
	default:
		return glyphStarVeryDim, colorStarVeryDim
	}
}

// center is the point a symbol is anchored on.
func center(n draw.Node) (draw.Point, bool) {
	switch v := n.(type) {
	case *draw.Circle:
		return v.Center, true
	case *draw.Ellipse:
		return v.Center, true
	case *draw.Rect:
		return draw.Point{X: v.Min.X + v.W/2, Y: v.Min.Y + v.H/2}, true
	case *draw.Line:
		return draw.Point{X: (v.From.X + v.To.X) / 2, Y: (v.From.Y + v.To.Y) / 2}, true
	case *draw.Group:
		for _, c := range v.Children {
			if p, ok := center(c); ok {
				return p, true
			}
		}
	}
	return draw.Point{}, false
}
