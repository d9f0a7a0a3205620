package astro

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// HMSToHours converts hours, minutes and seconds to decimal hours.
func HMSToHours(h, m, s float64) float64 {
	return h + (m*60+s)/3600
}

// DMSToDegrees converts degrees, minutes and seconds to decimal degrees.
// The sign is taken from d alone, including negative zero, so "-0:30:00"
// yields -0.5.
func DMSToDegrees(d, m, s float64) float64 {
	sign := 1.0
	if math.Signbit(d) {
		sign = -1
	}
	return sign * (math.Abs(d) + (m*60+s)/3600)
}

// splitSexagesimal splits "a:b:c" into three numbers. Exactly three fields
// are required; a field that does not parse counts as zero.
func splitSexagesimal(s string) (a, b, c float64, ok bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	vals := make([]float64, 3)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			v = 0
		}
		vals[i] = v
	}
	return vals[0], vals[1], vals[2], true
}

// ParseRA parses a right ascension given as "H:M:S" or as decimal degrees.
// The result is wrapped into [0, 360).
func ParseRA(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ":") {
		h, m, sec, ok := splitSexagesimal(s)
		if !ok {
			return 0, fmt.Errorf("bad RA HMS: %s", s)
		}
		return NormalizeRA(HoursToDegrees(HMSToHours(h, m, sec))), nil
	}
	deg, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("RA must be HMS or degrees: %w", err)
	}
	return NormalizeRA(deg), nil
}

// ParseDec parses a declination given as "D:M:S" or as decimal degrees.
func ParseDec(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ":") {
		d, m, sec, ok := splitSexagesimal(s)
		if !ok {
			return 0, fmt.Errorf("bad Dec DMS: %s", s)
		}
		return DMSToDegrees(d, m, sec), nil
	}
	deg, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("Dec must be DMS or degrees: %w", err)
	}
	return deg, nil
}
