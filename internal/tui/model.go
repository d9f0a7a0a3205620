// Package tui is an interactive terminal explorer. It renders the same
// drawing tree as the SVG output onto a character canvas.
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-starchart/internal/astro"
	"github.com/litescript/ls-starchart/internal/catalog"
	"github.com/litescript/ls-starchart/internal/chart"
	"github.com/litescript/ls-starchart/internal/draw"
	"github.com/litescript/ls-starchart/internal/report"
)

const (
	// A terminal cell is about twice as tall as it is wide
	cellWidthPx  = 8
	cellHeightPx = 16

	// Animation
	animDuration  = 400 * time.Millisecond
	animFrameRate = 30 * time.Millisecond

	panFraction    = 0.1 // of the field of view per key press
	zoomFactor     = 1.25
	minFOV         = 1.0
	maxFOV         = chart.MaxFOVDeg
	maxGnomonicFOV = 150.0
	paStep         = 15.0

	colorTitle  = "135" // violet
	colorDim    = "60"  // muted purple
	colorAccent = "229" // gold
)

// Model is the bubbletea model for the explorer.
type Model struct {
	data     catalog.Datasets
	cfg      chart.Config
	home     chart.Config
	labels   bool
	parallel bool

	width  int
	height int

	// Animation state
	animating bool
	animFrom  astro.EquatorialPoint
	animTo    astro.EquatorialPoint
	animStart time.Time
}

// New returns an explorer over data starting at cfg. Size and margin are
// replaced by the terminal's.
func New(data catalog.Datasets, cfg chart.Config, parallel bool) Model {
	return Model{
		data:     data,
		cfg:      cfg,
		home:     cfg,
		labels:   true,
		parallel: parallel,
	}
}

// WithSize sets the terminal size used until the first resize message.
func (m Model) WithSize(width, height int) Model {
	m.width, m.height = width, height
	return m
}

// Config returns the current view.
func (m Model) Config() chart.Config {
	return m.cfg
}

// animTickMsg is sent during animation
type animTickMsg time.Time

func animTick() tea.Cmd {
	return tea.Tick(animFrameRate, func(t time.Time) tea.Msg {
		return animTickMsg(t)
	})
}

// Init returns nil cmd
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case tea.KeyMsg:
		step := m.cfg.FOVDeg * panFraction
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			// east is to the left
			return m.pan(step, 0)
		case "right", "l":
			return m.pan(-step, 0)
		case "up", "k":
			return m.pan(0, step)
		case "down", "j":
			return m.pan(0, -step)
		case "+", "=":
			m = m.zoom(1 / zoomFactor)
		case "-", "_":
			m = m.zoom(zoomFactor)
		case "p":
			m = m.cycleProjection()
		case "[":
			m.cfg.PositionAngleDeg = normalizeAngle(m.cfg.PositionAngleDeg - paStep)
		case "]":
			m.cfg.PositionAngleDeg = normalizeAngle(m.cfg.PositionAngleDeg + paStep)
		case "n":
			m.labels = !m.labels
		case "r":
			m.animating = false
			m.cfg = m.home
		}

	case animTickMsg:
		if m.animating {
			return m.updateAnimation()
		}
	}

	return m, nil
}

// pan moves the view by dRA and dDec degrees on the sky. RA steps widen
// toward the poles so a key press covers a similar angle everywhere.
func (m Model) pan(dRA, dDec float64) (Model, tea.Cmd) {
	from := m.cfg.Center
	if m.animating {
		from = m.animTo
	}
	cosDec := math.Max(math.Cos(from.DecDeg*math.Pi/180), 0.2)
	to := astro.EquatorialPoint{
		RADeg:  astro.NormalizeRA(from.RADeg + dRA/cosDec),
		DecDeg: math.Max(-90, math.Min(90, from.DecDeg+dDec)),
	}
	return m.startAnimation(to)
}

func (m Model) startAnimation(to astro.EquatorialPoint) (Model, tea.Cmd) {
	m.animating = true
	m.animFrom = m.cfg.Center
	m.animTo = to
	m.animStart = time.Now()
	return m, animTick()
}

func (m Model) updateAnimation() (Model, tea.Cmd) {
	elapsed := time.Since(m.animStart)
	t := float64(elapsed) / float64(animDuration)

	if t >= 1.0 {
		// Animation complete
		m.animating = false
		m.cfg.Center = m.animTo
		return m, nil
	}

	// Ease-out cubic
	t = 1 - math.Pow(1-t, 3)

	// Interpolate RA with wrap-around handling
	m.cfg.Center = astro.EquatorialPoint{
		RADeg:  astro.NormalizeRA(lerpAngle(m.animFrom.RADeg, m.animTo.RADeg, t)),
		DecDeg: lerp(m.animFrom.DecDeg, m.animTo.DecDeg, t),
	}
	return m, animTick()
}

func (m Model) maxFOV() float64 {
	if m.cfg.Projection == astro.Gnomonic {
		return maxGnomonicFOV
	}
	return maxFOV
}

func (m Model) zoom(factor float64) Model {
	m.cfg.FOVDeg = math.Max(minFOV, math.Min(m.maxFOV(), m.cfg.FOVDeg*factor))
	return m
}

func (m Model) cycleProjection() Model {
	next := astro.Projections[0]
	for i, p := range astro.Projections {
		if p == m.cfg.Projection {
			next = astro.Projections[(i+1)%len(astro.Projections)]
			break
		}
	}
	m.cfg.Projection = next
	// gnomonic cannot show a hemisphere
	return m.zoom(1)
}

// layers is the clipped stack, without labels when they are switched off.
func (m Model) layers() []chart.Layer {
	all := chart.ClippedLayers()
	if m.labels {
		return all
	}
	out := all[:0]
	for _, l := range all {
		if l.Name() != "labels" {
			out = append(out, l)
		}
	}
	return out
}

// document renders the current view for a cols x rows canvas. The frame is
// left out: the terminal edge is the border.
func (m Model) document(cols, rows int) *draw.Document {
	cfg := m.cfg
	cfg.Width = cols * cellWidthPx
	cfg.Height = rows * cellHeightPx
	cfg.Margin = chart.UniformMargin(0)

	r := &chart.Renderer{Parallel: m.parallel, Clipped: m.layers()}
	return r.Render(chart.NewContext(m.data, cfg))
}

// View renders the explorer.
func (m Model) View() string {
	if m.width < 20 || m.height < 10 {
		return "Star chart requires larger terminal"
	}

	// Reserve lines for header and status
	viewHeight := m.height - 3
	viewWidth := m.width

	doc := m.document(viewWidth, viewHeight)

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(Rasterize(doc, viewWidth, viewHeight).Render())
	b.WriteString("\n")
	b.WriteString(m.renderStatus(doc))

	return b.String()
}

func (m Model) renderHeader() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorTitle))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorDim))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorAccent))

	title := titleStyle.Render("Star Chart")
	proj := accentStyle.Render(m.cfg.Projection.String())

	labelStr := dimStyle.Render("Labels: off")
	if m.labels {
		labelStr = accentStyle.Render("Labels: on")
	}

	center := dimStyle.Render(fmt.Sprintf("RA %s Dec %s",
		report.FormatRA(m.cfg.Center.RADeg), report.FormatDec(m.cfg.Center.DecDeg)))

	return fmt.Sprintf("%s | %s | %s | %s", title, proj, labelStr, center)
}

func (m Model) renderStatus(doc *draw.Document) string {
	var stars, objects int
	if g := doc.Layer("stars"); g != nil {
		stars = len(g.Children)
	}
	if g := doc.Layer("objects"); g != nil {
		objects = len(g.Children)
	}

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorAccent))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorDim))

	line1 := accentStyle.Render(fmt.Sprintf("FOV %.1f° | PA %.0f° | %d stars | %d objects",
		m.cfg.FOVDeg, m.cfg.PositionAngleDeg, stars, objects))
	line2 := dimStyle.Render("hjkl/arrows pan · +/- zoom · p projection · [ ] rotate · n labels · r reset · q quit")
	return line1 + "\n" + line2
}

// normalizeAngle wraps angle to -180..+180 range
func normalizeAngle(a float64) float64 {
	for a > 180 {
		a -= 360
	}
	for a < -180 {
		a += 360
	}
	return a
}

// lerpAngle interpolates between angles, taking shortest path
func lerpAngle(a, b, t float64) float64 {
	diff := normalizeAngle(b - a)
	return a + diff*t
}

// lerp linear interpolation
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
