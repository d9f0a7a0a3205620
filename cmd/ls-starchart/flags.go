package main

import (
	"github.com/spf13/cobra"

	"github.com/litescript/ls-starchart/internal/config"
)

// chartFlags are the chart options accepted by render and explore. Defaults
// shown in help match config.Default; only flags set explicitly override a
// config file.
type chartFlags struct {
	ra, dec     string
	projection  string
	fov, pa     float64
	limitStar   float64
	limitObject float64
	objectScale float64

	width, height   int
	margin          int
	stepRA, stepDec int

	css            string
	stars          string
	objects        string
	constellations string
	parallel       bool
}

func (f *chartFlags) bind(cmd *cobra.Command) {
	d := config.Default()
	fs := cmd.Flags()

	fs.StringVar(&f.ra, "ra", "", "Center right ascension, H:M:S or degrees")
	fs.StringVar(&f.dec, "dec", "", "Center declination, D:M:S or degrees")
	fs.StringVar(&f.projection, "projection", d.Projection, "Projection: gnomonic | stereographic | spherical | altaz")
	fs.Float64Var(&f.fov, "fov", d.FOVDeg, "Field of view across the shorter side, degrees")
	fs.Float64Var(&f.pa, "pa", d.PositionAngleDeg, "Position angle, degrees")
	fs.Float64Var(&f.limitStar, "limit-star-mag", d.LimitStarMag, "Faintest star magnitude drawn")
	fs.Float64Var(&f.limitObject, "limit-object-mag", d.LimitObjectMag, "Faintest deep-sky object magnitude drawn")
	fs.Float64Var(&f.objectScale, "object-scale", d.ObjectScale, "Symbol size multiplier")

	fs.IntVar(&f.width, "width", d.Width, "Chart width, px")
	fs.IntVar(&f.height, "height", d.Height, "Chart height, px")
	fs.IntVar(&f.margin, "margin", d.Margin.Top, "Margin on every side, px")
	fs.IntVar(&f.stepRA, "step-ra-deg", d.StepRADeg, "RA grid step, degrees")
	fs.IntVar(&f.stepDec, "step-dec-deg", d.StepDecDeg, "Dec grid step, degrees")

	fs.StringVar(&f.css, "css", "", "Stylesheet to embed instead of the built-in one")
	fs.StringVar(&f.stars, "hyg-path", "", "HYG star catalog CSV (.gz accepted)")
	fs.StringVar(&f.objects, "ngc-path", "", "OpenNGC catalog CSV")
	fs.StringVar(&f.constellations, "constellations-path", "", "Constellation figures CSV")
	fs.BoolVar(&f.parallel, "parallel", false, "Render layers concurrently")
}

// overrides returns the flags that were set on the command line.
func (f *chartFlags) overrides(cmd *cobra.Command) *config.Overrides {
	fs := cmd.Flags()
	o := &config.Overrides{}

	strs := map[string]struct {
		dst **string
		v   *string
	}{
		"ra":                  {&o.RA, &f.ra},
		"dec":                 {&o.Dec, &f.dec},
		"projection":          {&o.Projection, &f.projection},
		"css":                 {&o.CSS, &f.css},
		"hyg-path":            {&o.StarsPath, &f.stars},
		"ngc-path":            {&o.ObjectsPath, &f.objects},
		"constellations-path": {&o.ConstellationsPath, &f.constellations},
	}
	for name, s := range strs {
		if fs.Changed(name) {
			*s.dst = s.v
		}
	}

	floats := map[string]struct {
		dst **float64
		v   *float64
	}{
		"fov":              {&o.FOVDeg, &f.fov},
		"pa":               {&o.PositionAngleDeg, &f.pa},
		"limit-star-mag":   {&o.LimitStarMag, &f.limitStar},
		"limit-object-mag": {&o.LimitObjectMag, &f.limitObject},
		"object-scale":     {&o.ObjectScale, &f.objectScale},
	}
	for name, s := range floats {
		if fs.Changed(name) {
			*s.dst = s.v
		}
	}

	ints := map[string]struct {
		dst **int
		v   *int
	}{
		"width":        {&o.Width, &f.width},
		"height":       {&o.Height, &f.height},
		"margin":       {&o.Margin, &f.margin},
		"step-ra-deg":  {&o.StepRADeg, &f.stepRA},
		"step-dec-deg": {&o.StepDecDeg, &f.stepDec},
	}
	for name, s := range ints {
		if fs.Changed(name) {
			*s.dst = s.v
		}
	}

	if fs.Changed("parallel") {
		o.Parallel = &f.parallel
	}
	return o
}
