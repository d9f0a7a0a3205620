package chart

import (
	"github.com/litescript/ls-starchart/internal/astro"
	"github.com/litescript/ls-starchart/internal/catalog"
)

// newTestContext returns a context on the default config centered at (0,0),
// with patch applied.
func newTestContext(data catalog.Datasets, patch func(*Config)) *Context {
	cfg := DefaultConfig()
	cfg.Center = astro.EquatorialPoint{RADeg: 0, DecDeg: 0}
	if patch != nil {
		patch(&cfg)
	}
	return NewContext(data, cfg)
}

func star(id, name string, ra, dec, mag float64) catalog.CelestialObject {
	return catalog.CelestialObject{
		Kind:       catalog.KindStar,
		Catalog:    "HYG",
		Identifier: id,
		Name:       name,
		Coords:     astro.EquatorialPoint{RADeg: ra, DecDeg: dec},
		Magnitude:  mag,
	}
}

func object(kind catalog.ObjectKind, cat, id string, ra, dec, mag float64) catalog.CelestialObject {
	return catalog.CelestialObject{
		Kind:       kind,
		Catalog:    cat,
		Identifier: id,
		Coords:     astro.EquatorialPoint{RADeg: ra, DecDeg: dec},
		Magnitude:  mag,
	}
}
