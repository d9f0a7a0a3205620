package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/litescript/ls-starchart/internal/astro"
	"github.com/litescript/ls-starchart/internal/catalog"
	"github.com/litescript/ls-starchart/internal/draw"
)

func TestRadiusByMagnitude(t *testing.T) {
	tests := []struct {
		mag  float64
		want float64
	}{
		{-1, 18},
		{-5, 18}, // clamped to bright
		{10, 4},
		{20, 4}, // clamped to faint
	}
	for _, tt := range tests {
		got := RadiusByMagnitude(tt.mag, 4, 18, -1, 10)
		if !scalar.EqualWithinAbs(got, tt.want, 1e-9) {
			t.Errorf("RadiusByMagnitude(%v) = %v, want %v", tt.mag, got, tt.want)
		}
	}

	// brighter is never smaller
	prev := 0.0
	for m := 12.0; m >= -2; m -= 0.25 {
		r := RadiusByMagnitude(m, 4, 18, -1, 10)
		if r < prev {
			t.Fatalf("radius shrank at mag %v", m)
		}
		prev = r
	}
}

func TestRadiusBySize(t *testing.T) {
	tests := []struct {
		arcmin float64
		want   float64
	}{
		{0, 0},
		{-3, 0},
		{100, 12},
		{400, 16}, // capped
	}
	for _, tt := range tests {
		got := RadiusBySize(tt.arcmin, 1.2, 0.5, 16)
		if !scalar.EqualWithinAbs(got, tt.want, 1e-9) {
			t.Errorf("RadiusBySize(%v) = %v, want %v", tt.arcmin, got, tt.want)
		}
	}
}

func TestCombinedRadius(t *testing.T) {
	// faint and sizeless hits the floor
	assert.InDelta(t, 6.0, CombinedRadius(10, 0, 1, 0.3, 6), 1e-9)
	// bright and large: 18 + 0.3*12
	assert.InDelta(t, 21.6, CombinedRadius(-1, 100, 1, 0.3, 6), 1e-9)
}

func TestStarRadius(t *testing.T) {
	assert.InDelta(t, 4.0, StarRadius(0), 1e-12)
	assert.InDelta(t, 3.7, StarRadius(0.5), 1e-12)
	assert.InDelta(t, 0.5, StarRadius(10), 1e-12)
}

func TestSymbolRender(t *testing.T) {
	p := astro.PlanePoint{X: 100, Y: 200}

	t.Run("galaxy", func(t *testing.T) {
		o := object(catalog.KindGalaxy, "M", "31", 0, 0, 10)
		o.Angle = 35
		g, ok := symbolFor(o.Kind).render(o, p, 1).(*draw.Group)
		require.True(t, ok)
		assert.Equal(t, "galaxy object", g.Class)
		assert.Equal(t, "31", g.ID)
		assert.Equal(t, "rotate(35.00,100.00,200.00)", g.Transform)
		require.Len(t, g.Children, 1)
		e, ok := g.Children[0].(*draw.Ellipse)
		require.True(t, ok)
		assert.InDelta(t, 2.8, e.RX, 1e-9)
		assert.InDelta(t, 1.4, e.RY, 1e-9)
	})

	t.Run("open cluster", func(t *testing.T) {
		o := object(catalog.KindOpenCluster, "M", "45", 0, 0, 10)
		c, ok := symbolFor(o.Kind).render(o, p, 2).(*draw.Circle)
		require.True(t, ok)
		assert.Equal(t, "open-cluster object", c.Class)
		assert.InDelta(t, 6.0, c.R, 1e-9) // floor 6, scale 2, halved
	})

	t.Run("bright nebula", func(t *testing.T) {
		o := object(catalog.KindBrightNebula, "M", "42", 0, 0, 10)
		r, ok := symbolFor(o.Kind).render(o, p, 1).(*draw.Rect)
		require.True(t, ok)
		assert.Equal(t, "bright-nebula object", r.Class)
		assert.InDelta(t, 97.0, r.Min.X, 1e-9)
		assert.InDelta(t, 6.0, r.W, 1e-9)
	})

	t.Run("planetary nebula", func(t *testing.T) {
		o := object(catalog.KindPlanetaryNebula, "M", "57", 0, 0, 10)
		g, ok := symbolFor(o.Kind).render(o, p, 1).(*draw.Group)
		require.True(t, ok)
		require.Len(t, g.Children, 3)
		c := g.Children[0].(*draw.Circle)
		assert.InDelta(t, 1.5, c.R, 1e-9)
	})

	t.Run("globular cluster", func(t *testing.T) {
		o := object(catalog.KindGlobularCluster, "M", "13", 0, 0, 10)
		g, ok := symbolFor(o.Kind).render(o, p, 1).(*draw.Group)
		require.True(t, ok)
		assert.Equal(t, "globular-cluster object", g.Class)
		assert.Len(t, g.Children, 3)
	})

	t.Run("other kinds get a cross", func(t *testing.T) {
		for _, kind := range []catalog.ObjectKind{catalog.KindMilkyWay, catalog.KindDoubleStar, catalog.KindNotUsed} {
			o := object(kind, "NGC", "1", 0, 0, 10)
			g, ok := symbolFor(kind).render(o, p, 1).(*draw.Group)
			require.True(t, ok, kind.String())
			assert.Equal(t, "object", g.Class)
			assert.Len(t, g.Children, 2)
		}
	})
}

func TestLabelSymbolBox(t *testing.T) {
	p := astro.PlanePoint{X: 50, Y: 50}
	// size = max(10-mag, 4)
	assert.Equal(t, Box{X: 43, Y: 43, W: 14, H: 14}, labelSymbolBox(catalog.KindGalaxy, 4, p, 1))
	assert.Equal(t, Box{X: 43, Y: 43, W: 14, H: 14}, labelSymbolBox(catalog.KindPlanetaryNebula, 4, p, 1))
	assert.Equal(t, Box{X: 46, Y: 46, W: 8, H: 8}, labelSymbolBox(catalog.KindOpenCluster, 4, p, 1))
	assert.Equal(t, Box{X: 47, Y: 47, W: 6, H: 6}, labelSymbolBox(catalog.KindBrightNebula, 12, p, 1))
}
