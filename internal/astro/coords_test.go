package astro

import (
	"math"
	"testing"
)

func TestNormalizeRA(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{360, 0},
		{720, 0},
		{-30, 330},
		{365.5, 5.5},
		{-1e-20, 0},
	}
	for _, tt := range tests {
		got := NormalizeRA(tt.in)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("NormalizeRA(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if got < 0 || got >= 360 {
			t.Errorf("NormalizeRA(%v) = %v, out of [0, 360)", tt.in, got)
		}
	}
}

func TestEclipticToEquatorial(t *testing.T) {
	tests := []struct {
		name    string
		lon     float64
		wantRA  float64
		wantDec float64
	}{
		{"vernal equinox", 0, 0, 0},
		{"summer solstice", 90, 90, EclipticObliquityDeg},
		{"autumnal equinox", 180, 180, 0},
		{"winter solstice", 270, 270, -EclipticObliquityDeg},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EclipticToEquatorial(tt.lon)
			if math.Abs(got.RADeg-tt.wantRA) > 1e-9 {
				t.Errorf("RA = %v, want %v", got.RADeg, tt.wantRA)
			}
			if math.Abs(got.DecDeg-tt.wantDec) > 1e-9 {
				t.Errorf("Dec = %v, want %v", got.DecDeg, tt.wantDec)
			}
		})
	}
}

func TestEclipticToEquatorial_RAInRange(t *testing.T) {
	for lon := 0.0; lon <= 360; lon += 2 {
		p := EclipticToEquatorial(lon)
		if p.RADeg < 0 || p.RADeg >= 360 {
			t.Errorf("lon %v: RA %v out of [0, 360)", lon, p.RADeg)
		}
		if math.Abs(p.DecDeg) > EclipticObliquityDeg+1e-9 {
			t.Errorf("lon %v: |Dec| %v exceeds obliquity", lon, p.DecDeg)
		}
	}
}
