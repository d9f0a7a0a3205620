// Package catalog loads the star, deep-sky object and constellation datasets a
// chart is drawn from.
package catalog

import (
	"strings"

	"github.com/litescript/ls-starchart/internal/astro"
)

// ObjectKind is the category of a celestial object. Its String form is the
// kind name used in CSS classes.
type ObjectKind int

const (
	KindStar ObjectKind = iota
	KindDoubleStar
	KindTripleStar
	KindGalaxy
	KindOpenCluster
	KindGlobularCluster
	KindPlanetaryNebula
	KindBrightNebula
	KindMilkyWay
	KindNotUsed
)

var kindNames = [...]string{
	KindStar:            "star",
	KindDoubleStar:      "double-star",
	KindTripleStar:      "triple-star",
	KindGalaxy:          "galaxy",
	KindOpenCluster:     "open-cluster",
	KindGlobularCluster: "globular-cluster",
	KindPlanetaryNebula: "planetary-nebula",
	KindBrightNebula:    "bright-nebula",
	KindMilkyWay:        "milky-way",
	KindNotUsed:         "not-used",
}

func (k ObjectKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "not-used"
	}
	return kindNames[k]
}

// IsStarLike reports whether the kind name contains "star". Star-like
// entries of the deep-sky catalog are skipped and use the stricter star
// labeling threshold.
func (k ObjectKind) IsStarLike() bool {
	return strings.Contains(k.String(), "star")
}

// Size is an object's angular extent in arcminutes.
type Size struct {
	Major float64
	Minor float64
}

// CelestialObject is one star or deep-sky object.
type CelestialObject struct {
	Kind       ObjectKind
	Catalog    string // "HYG", "M", "NGC", "IC", ...
	Identifier string
	Coords     astro.EquatorialPoint
	Magnitude  float64
	Size       Size
	Angle      float64 // position angle, degrees
	Name       string  // proper name, may be empty
}

// Designation is "catalog identifier", e.g. "M 42".
func (o CelestialObject) Designation() string {
	return o.Catalog + " " + o.Identifier
}

// Constellation is a named set of stick-figure polylines.
type Constellation struct {
	Abbr  string
	Name  string
	Lines [][]astro.EquatorialPoint
}

// Datasets bundles everything one chart is rendered from. Objects are kept
// faintest first.
type Datasets struct {
	Stars          []CelestialObject
	Objects        []CelestialObject
	Constellations []Constellation
}
