package astro

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"
)

// Projection selects the radial mapping from the sphere to the chart plane.
type Projection int

const (
	Gnomonic      Projection = iota // r = tan(z)
	Stereographic                   // r = tan(z/2), defined over the whole sphere
	Spherical                       // r = sin(z), orthographic-like
	AltAz                           // r = z / 90°, linear in zenith angle
)

// horizonCos is the smallest cos(zenith) the gnomonic projection accepts,
// about 6e-11 degrees short of 90°.
const horizonCos = 1e-12

// Projections lists every projection in cycling order.
var Projections = []Projection{Gnomonic, Stereographic, Spherical, AltAz}

func (p Projection) String() string {
	switch p {
	case Gnomonic:
		return "gnomonic"
	case Stereographic:
		return "stereographic"
	case Spherical:
		return "spherical"
	case AltAz:
		return "altaz"
	default:
		return "unknown"
	}
}

// ParseProjection parses a projection name, ignoring case.
func ParseProjection(s string) (Projection, error) {
	for _, p := range Projections {
		if strings.EqualFold(s, p.String()) {
			return p, nil
		}
	}
	return Gnomonic, fmt.Errorf("invalid projection %q, use: gnomonic | stereographic | spherical | altaz", s)
}

// MarshalText implements encoding.TextMarshaler.
func (p Projection) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Projection) UnmarshalText(b []byte) error {
	v, err := ParseProjection(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Separation returns the great-circle angle between a and b in radians,
// using the spherical law of cosines.
func Separation(a, b EquatorialPoint) float64 {
	ra, dec := degToRad(a.RADeg), degToRad(a.DecDeg)
	rb, db := degToRad(b.RADeg), degToRad(b.DecDeg)
	// Clamp before acos: rounding can push the cosine past ±1
	cosZ := clamp(math.Sin(db)*math.Sin(dec)+math.Cos(db)*math.Cos(dec)*math.Cos(ra-rb), -1, 1)
	return math.Acos(cosZ)
}

// Project maps p onto the tangent plane of a chart centered on center.
//
// The azimuth is the bearing from the center to p, reduced by the position
// angle, so a larger PA rotates the sky counterclockwise. PA=0 puts north on
// +y and east on -x.
//
// Points more than 90° from the center are culled (ok=false) for every
// projection except Stereographic, which covers the whole sphere.
func Project(p, center EquatorialPoint, proj Projection, paDeg float64) (PlanePoint, bool) {
	ra := degToRad(p.RADeg)
	dec := degToRad(p.DecDeg)
	cra := degToRad(center.RADeg)
	cdec := degToRad(center.DecDeg)

	// Only sin/cos of the RA difference are used, so centers near 0h need
	// no normalization.
	dRA := ra - cra

	cosZ := clamp(math.Sin(cdec)*math.Sin(dec)+math.Cos(cdec)*math.Cos(dec)*math.Cos(dRA), -1, 1)
	zenith := math.Acos(cosZ)

	y := math.Sin(dRA) * math.Cos(dec)
	x := math.Cos(cdec)*math.Sin(dec) - math.Sin(cdec)*math.Cos(dec)*math.Cos(dRA)
	az := math.Atan2(y, x) - degToRad(paDeg)

	if zenith > math.Pi/2 && proj != Stereographic {
		return PlanePoint{}, false
	}
	// tan(z) stays finite at the horizon only through rounding
	if proj == Gnomonic && cosZ < horizonCos {
		return PlanePoint{}, false
	}

	var r float64
	switch proj {
	case Gnomonic:
		r = math.Tan(zenith)
	case Stereographic:
		r = math.Tan(zenith / 2)
	case Spherical:
		r = math.Sin(zenith)
	case AltAz:
		r = zenith / (math.Pi / 2)
	default:
		return PlanePoint{}, false
	}
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return PlanePoint{}, false
	}

	return PlanePoint{X: -r * math.Sin(az), Y: r * math.Cos(az)}, true
}

// ToPixels scales a tangent-plane point about the center pixel. Pixel y grows
// downward, so the tangent-plane y is flipped.
func ToPixels(tp, centerPx PlanePoint, scale float64) PlanePoint {
	return r2.Add(centerPx, PlanePoint{X: tp.X * scale, Y: -tp.Y * scale})
}
