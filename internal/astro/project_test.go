package astro

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestProject_CenterIsOrigin(t *testing.T) {
	centers := []EquatorialPoint{
		{RADeg: 0, DecDeg: 0},
		{RADeg: 83.82, DecDeg: -5.39},
		{RADeg: 359.5, DecDeg: 60},
		{RADeg: 180, DecDeg: -89},
	}
	for _, c := range centers {
		for _, proj := range Projections {
			p, ok := Project(c, c, proj, 0)
			if !ok {
				t.Errorf("Project(center, center, %v) culled", proj)
				continue
			}
			if !scalar.EqualWithinAbs(p.X, 0, 1e-12) || !scalar.EqualWithinAbs(p.Y, 0, 1e-12) {
				t.Errorf("Project(center, center, %v) = %v, want (0,0)", proj, p)
			}
		}
	}
}

func TestProject_EastIsNegativeX(t *testing.T) {
	c := EquatorialPoint{RADeg: 0, DecDeg: 0}
	s := EquatorialPoint{RADeg: 1, DecDeg: 0}

	p, ok := Project(s, c, Gnomonic, 0)
	if !ok {
		t.Fatal("Project() culled a point 1° from center")
	}
	want := -math.Tan(1 * math.Pi / 180)
	if math.Abs(p.X-want) > 1e-12 {
		t.Errorf("x = %v, want %v", p.X, want)
	}
	if math.Abs(p.Y) > 1e-12 {
		t.Errorf("y = %v, want 0", p.Y)
	}
}

func TestProject_NorthIsPositiveY(t *testing.T) {
	c := EquatorialPoint{RADeg: 40, DecDeg: 10}
	s := EquatorialPoint{RADeg: 40, DecDeg: 15}

	p, ok := Project(s, c, Gnomonic, 0)
	if !ok {
		t.Fatal("Project() culled a point 5° north of center")
	}
	if math.Abs(p.X) > 1e-12 || p.Y <= 0 {
		t.Errorf("Project() = %v, want (0, >0)", p)
	}
}

func TestProject_PositionAngle90(t *testing.T) {
	c := EquatorialPoint{RADeg: 0, DecDeg: 0}
	s := EquatorialPoint{RADeg: 1, DecDeg: 0}

	p, ok := Project(s, c, Gnomonic, 90)
	if !ok {
		t.Fatal("Project() culled")
	}
	want := math.Tan(1 * math.Pi / 180)
	if math.Abs(p.X) > 1e-12 || math.Abs(p.Y-want) > 1e-12 {
		t.Errorf("Project(PA=90) = %v, want (0, %v)", p, want)
	}
}

func TestProject_PositionAngleRotatesWholeField(t *testing.T) {
	c := EquatorialPoint{RADeg: 120, DecDeg: 30}
	points := []EquatorialPoint{
		{RADeg: 125, DecDeg: 33},
		{RADeg: 110, DecDeg: 20},
		{RADeg: 121, DecDeg: 45},
	}
	for _, proj := range Projections {
		for _, s := range points {
			p0, ok0 := Project(s, c, proj, 0)
			p90, ok90 := Project(s, c, proj, 90)
			if !ok0 || !ok90 {
				t.Fatalf("Project(%v) culled %v", proj, s)
			}
			// subtracting 90° from the azimuth maps (x, y) to (y, -x)
			if !scalar.EqualWithinAbs(p90.X, p0.Y, 1e-12) || !scalar.EqualWithinAbs(p90.Y, -p0.X, 1e-12) {
				t.Errorf("%v: PA=90 gave %v from %v", proj, p90, p0)
			}
			// rotation preserves the radius
			r0 := math.Hypot(p0.X, p0.Y)
			r90 := math.Hypot(p90.X, p90.Y)
			if !scalar.EqualWithinAbs(r0, r90, 1e-12) {
				t.Errorf("%v: radius changed under rotation %v -> %v", proj, r0, r90)
			}
		}
	}
}

func TestProject_BacksideCulling(t *testing.T) {
	c := EquatorialPoint{RADeg: 0, DecDeg: 0}
	s := EquatorialPoint{RADeg: 120, DecDeg: 0}

	for _, proj := range []Projection{Gnomonic, Spherical, AltAz} {
		if p, ok := Project(s, c, proj, 0); ok {
			t.Errorf("Project(%v) = %v for zenith 120°, want culled", proj, p)
		}
	}

	p, ok := Project(s, c, Stereographic, 0)
	if !ok {
		t.Fatal("Stereographic culled a backside point")
	}
	want := -math.Tan(60 * math.Pi / 180)
	if math.Abs(p.X-want) > 1e-12 || math.Abs(p.Y) > 1e-12 {
		t.Errorf("Stereographic = %v, want (%v, 0)", p, want)
	}
}

func TestProject_GnomonicHorizonCulled(t *testing.T) {
	tests := []struct {
		name   string
		point  EquatorialPoint
		center EquatorialPoint
	}{
		{"east on the equator", EquatorialPoint{RADeg: 90}, EquatorialPoint{}},
		{"pole from the equator", EquatorialPoint{RADeg: 0, DecDeg: 90}, EquatorialPoint{RADeg: 45}},
		{"equator from the pole", EquatorialPoint{RADeg: 0}, EquatorialPoint{DecDeg: 90}},
	}
	for _, tt := range tests {
		if p, ok := Project(tt.point, tt.center, Gnomonic, 0); ok {
			t.Errorf("%s: Project = %v, want culled", tt.name, p)
		}
		// the other projections keep the horizon
		for _, proj := range []Projection{Stereographic, Spherical, AltAz} {
			p, ok := Project(tt.point, tt.center, proj, 0)
			if !ok {
				t.Errorf("%s: %v culled a point 90° out", tt.name, proj)
				continue
			}
			if r := math.Hypot(p.X, p.Y); r > 1.0+1e-9 {
				t.Errorf("%s: %v radius = %v, want at most 1", tt.name, proj, r)
			}
		}
	}

	// just inside the horizon still projects
	if _, ok := Project(EquatorialPoint{RADeg: 89}, EquatorialPoint{}, Gnomonic, 0); !ok {
		t.Error("gnomonic culled a point 89° out")
	}
}

func TestProject_StereographicCoversSphere(t *testing.T) {
	c := EquatorialPoint{RADeg: 10, DecDeg: 20}
	for ra := 0.0; ra < 360; ra += 30 {
		for dec := -80.0; dec <= 80; dec += 20 {
			p, ok := Project(EquatorialPoint{RADeg: ra, DecDeg: dec}, c, Stereographic, 15)
			if !ok {
				t.Errorf("Stereographic culled (%v, %v)", ra, dec)
				continue
			}
			if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
				t.Errorf("Stereographic (%v, %v) = %v, want finite", ra, dec, p)
			}
		}
	}
}

func TestProject_Antipode(t *testing.T) {
	// r = tan(90°) for stereographic at the antipode; must never leak Inf
	c := EquatorialPoint{RADeg: 0, DecDeg: 0}
	a := EquatorialPoint{RADeg: 180, DecDeg: 0}
	p, ok := Project(a, c, Stereographic, 0)
	if ok && (math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) || math.IsNaN(p.X) || math.IsNaN(p.Y)) {
		t.Errorf("antipode = %v, want culled or finite", p)
	}
}

func TestProject_RadialMapping(t *testing.T) {
	c := EquatorialPoint{RADeg: 0, DecDeg: 0}
	s := EquatorialPoint{RADeg: 0, DecDeg: 30}
	z := 30 * math.Pi / 180

	tests := []struct {
		proj Projection
		want float64
	}{
		{Gnomonic, math.Tan(z)},
		{Stereographic, math.Tan(z / 2)},
		{Spherical, math.Sin(z)},
		{AltAz, z / (math.Pi / 2)},
	}
	for _, tt := range tests {
		t.Run(tt.proj.String(), func(t *testing.T) {
			p, ok := Project(s, c, tt.proj, 0)
			if !ok {
				t.Fatal("culled")
			}
			if math.Abs(p.Y-tt.want) > 1e-12 || math.Abs(p.X) > 1e-12 {
				t.Errorf("Project() = %v, want (0, %v)", p, tt.want)
			}
		})
	}
}

func TestProject_WraparoundInvariance(t *testing.T) {
	p1, ok1 := Project(EquatorialPoint{RADeg: 1}, EquatorialPoint{RADeg: 359}, Gnomonic, 0)
	p2, ok2 := Project(EquatorialPoint{RADeg: 3}, EquatorialPoint{RADeg: 1}, Gnomonic, 0)
	if !ok1 || !ok2 {
		t.Fatal("culled")
	}
	if math.Abs(p1.X-p2.X) > 1e-9 || math.Abs(p1.Y-p2.Y) > 1e-9 {
		t.Errorf("wrapped %v != unwrapped %v", p1, p2)
	}

	// same relative offset at a non-zero declination and with rotation
	for _, proj := range Projections {
		a, okA := Project(EquatorialPoint{RADeg: 2, DecDeg: 42}, EquatorialPoint{RADeg: 358, DecDeg: 40}, proj, 33)
		b, okB := Project(EquatorialPoint{RADeg: 184, DecDeg: 42}, EquatorialPoint{RADeg: 180, DecDeg: 40}, proj, 33)
		if !okA || !okB {
			t.Fatalf("%v culled", proj)
		}
		if !scalar.EqualWithinAbs(a.X, b.X, 1e-9) || !scalar.EqualWithinAbs(a.Y, b.Y, 1e-9) {
			t.Errorf("%v: %v != %v", proj, a, b)
		}
	}
}

func TestToPixels(t *testing.T) {
	r := math.Tan(1 * math.Pi / 180)
	center := PlanePoint{X: 400, Y: 300}
	got := ToPixels(PlanePoint{X: -r, Y: 0.5}, center, 100)
	if math.Abs(got.X-(400-r*100)) > 1e-10 {
		t.Errorf("x = %v, want %v", got.X, 400-r*100)
	}
	if math.Abs(got.Y-250) > 1e-10 {
		t.Errorf("y = %v, want 250 (y flipped)", got.Y)
	}
}

func TestSeparation(t *testing.T) {
	a := EquatorialPoint{RADeg: 0, DecDeg: 0}
	b := EquatorialPoint{RADeg: 90, DecDeg: 0}
	if got := Separation(a, b); math.Abs(got-math.Pi/2) > 1e-12 {
		t.Errorf("Separation() = %v, want π/2", got)
	}
	if got := Separation(a, a); got != 0 {
		t.Errorf("Separation(a, a) = %v, want 0", got)
	}
}

func TestParseProjection(t *testing.T) {
	tests := []struct {
		in      string
		want    Projection
		wantErr bool
	}{
		{"gnomonic", Gnomonic, false},
		{"Stereographic", Stereographic, false},
		{"SPHERICAL", Spherical, false},
		{"AltAz", AltAz, false},
		{"unknown", Gnomonic, true},
		{"", Gnomonic, true},
	}
	for _, tt := range tests {
		got, err := ParseProjection(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseProjection(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseProjection(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestProjection_TextRoundTrip(t *testing.T) {
	for _, p := range Projections {
		b, err := p.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got Projection
		if err := got.UnmarshalText(b); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", b, err)
		}
		if got != p {
			t.Errorf("round trip %v -> %v", p, got)
		}
	}
}
