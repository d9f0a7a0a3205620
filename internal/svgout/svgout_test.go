package svgout

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litescript/ls-starchart/internal/draw"
	"github.com/litescript/ls-starchart/internal/logging"
)

func testDoc() *draw.Document {
	stars := draw.NewGroup("stars").Add(&draw.Circle{ID: "7", Class: "star", Center: draw.Point{X: 100, Y: 120}, R: 3})
	grid := draw.NewGroup("lines").Add(&draw.Path{
		Class:  "graticule ra",
		Points: []draw.Point{{X: 10, Y: 20}, {X: 30, Y: 40}, {X: 50, Y: 60.126}},
		Fill:   "none",
	})
	galaxy := (&draw.Group{ID: "31", Class: "galaxy object", Transform: "rotate(35.00,10.00,20.00)"}).
		Add(&draw.Ellipse{Center: draw.Point{X: 10, Y: 20}, RX: 4, RY: 2})
	objects := draw.NewGroup("objects").Add(galaxy)
	labels := draw.NewGroup("labels").Add(&draw.Text{
		Class:   "object-label",
		At:      draw.Point{X: 10, Y: 8},
		Anchor:  "middle",
		Content: "NGC <1> & Co",
	})
	zenith := draw.NewGroup("zenith").Add(&draw.Line{From: draw.Point{X: 0, Y: 0}, To: draw.Point{X: 5, Y: 0}, StrokeWidth: 2})
	frame := draw.NewGroup("frame").Add(&draw.Rect{Class: "border", Min: draw.Point{X: 40, Y: 40}, W: 720, H: 720, Fill: "none", Stroke: "black"})

	return &draw.Document{
		Width:   800,
		Height:  800,
		Class:   "chart",
		Clip:    draw.ClipRect{ID: "clip-chart", X: 40, Y: 40, W: 720, H: 720},
		Clipped: []*draw.Group{grid, objects, stars, labels, zenith},
		Overlay: []*draw.Group{frame},
	}
}

func render(t *testing.T, doc *draw.Document, css string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, doc, css))
	return buf.String()
}

func TestWrite_Structure(t *testing.T) {
	out := render(t, testDoc(), "")

	assert.Contains(t, out, `class="chart"`)
	assert.Contains(t, out, `<clipPath id="clip-chart"`)
	assert.Contains(t, out, `clip-path="url(#clip-chart)"`)
	assert.Contains(t, out, `</svg>`)

	// clipped layers come before the frame, in order
	order := []string{`class="lines"`, `class="objects"`, `class="stars"`, `class="labels"`, `class="zenith"`, `class="frame"`}
	last := -1
	for _, marker := range order {
		i := strings.Index(out, marker)
		require.GreaterOrEqual(t, i, 0, marker)
		assert.Greater(t, i, last, marker)
		last = i
	}

	clipClose := strings.LastIndex(out[:strings.Index(out, `class="frame"`)], "</g>")
	assert.Greater(t, clipClose, strings.Index(out, `class="zenith"`), "frame must sit outside the clip group")
}

func TestWrite_Nodes(t *testing.T) {
	out := render(t, testDoc(), "")

	assert.Contains(t, out, `d="M10.00 20.00 L30.00 40.00 L50.00 60.13"`)
	assert.Contains(t, out, `class="graticule ra"`)
	assert.Contains(t, out, `transform="rotate(35.00,10.00,20.00)"`)
	assert.Contains(t, out, `id="31"`)
	assert.Contains(t, out, `id="7"`)
	assert.Contains(t, out, `text-anchor="middle"`)
	assert.Contains(t, out, `stroke-width="2.00"`)
	assert.Contains(t, out, `class="border"`)
	assert.Contains(t, out, "<ellipse")
	assert.Contains(t, out, "<circle")

	assert.Contains(t, out, "NGC &lt;1&gt; &amp; Co")
	assert.NotContains(t, out, "NGC <1>")
}

func TestWrite_EmptyPathSkipped(t *testing.T) {
	doc := testDoc()
	doc.Clipped[0].Children = []draw.Node{&draw.Path{Class: "graticule dec"}}
	out := render(t, doc, "")
	assert.NotContains(t, out, "graticule dec")
}

func TestWrite_AttributeEscaping(t *testing.T) {
	doc := testDoc()
	doc.Clipped[2].Children = []draw.Node{&draw.Circle{ID: `a"b`, Class: "star", R: 1}}
	out := render(t, doc, "")
	assert.Contains(t, out, `id="a&#34;b"`)
}

func TestWrite_Stylesheet(t *testing.T) {
	out := render(t, testDoc(), DefaultCSS())
	assert.Contains(t, out, "<style")
	assert.Contains(t, out, ".star-label")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWrite_PropagatesError(t *testing.T) {
	err := Write(failingWriter{}, testDoc(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestDefaultCSS_CoversClasses(t *testing.T) {
	css := DefaultCSS()
	for _, class := range []string{
		".star", ".object", ".graticule", ".constellation", ".constellation-label",
		".tick", ".tick-label", ".border", ".star-label", ".object-label", ".ecliptic",
	} {
		assert.Contains(t, css, class)
	}
}

func TestStylesheet(t *testing.T) {
	var logBuf bytes.Buffer
	log := logging.New(logging.LevelDebug)
	log.SetOutput(&logBuf)

	assert.Equal(t, DefaultCSS(), Stylesheet("", log))

	path := filepath.Join(t.TempDir(), "night.css")
	require.NoError(t, os.WriteFile(path, []byte(".star { fill: red; }"), 0o644))
	assert.Equal(t, ".star { fill: red; }", Stylesheet(path, log))
	assert.Empty(t, logBuf.String())

	missing := filepath.Join(t.TempDir(), "missing.css")
	assert.Equal(t, DefaultCSS(), Stylesheet(missing, log))
	assert.Contains(t, logBuf.String(), "stylesheet unreadable")
}
