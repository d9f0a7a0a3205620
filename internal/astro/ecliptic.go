package astro

import "math"

// EclipticObliquityDeg is the J2000 mean obliquity of the ecliptic.
const EclipticObliquityDeg = 23.43928

// EclipticToEquatorial converts a point on the ecliptic (latitude 0) at the
// given longitude to equatorial coordinates. RA is returned in [0, 360).
func EclipticToEquatorial(lonDeg float64) EquatorialPoint {
	lon := degToRad(lonDeg)
	eps := degToRad(EclipticObliquityDeg)

	dec := math.Asin(math.Sin(lon) * math.Sin(eps))
	ra := math.Atan2(math.Sin(lon)*math.Cos(eps), math.Cos(lon))

	return EquatorialPoint{
		RADeg:  NormalizeRA(radToDeg(ra)),
		DecDeg: radToDeg(dec),
	}
}
