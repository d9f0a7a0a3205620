package config

// Overrides carries values set explicitly on the command line. Nil fields
// leave the loaded configuration alone.
type Overrides struct {
	RA               *string
	Dec              *string
	Projection       *string
	FOVDeg           *float64
	PositionAngleDeg *float64
	Width            *int
	Height           *int
	Margin           *int
	StepRADeg        *int
	StepDecDeg       *int
	LimitStarMag     *float64
	LimitObjectMag   *float64
	ObjectScale      *float64

	StarsPath          *string
	ObjectsPath        *string
	ConstellationsPath *string
	CSS                *string
	LogLevel           *string
	Parallel           *bool
}

// Apply folds o into c.
func (c *Config) Apply(o *Overrides) {
	if o == nil {
		return
	}
	setString(&c.RA, o.RA)
	setString(&c.Dec, o.Dec)
	setString(&c.Projection, o.Projection)
	setFloat(&c.FOVDeg, o.FOVDeg)
	setFloat(&c.PositionAngleDeg, o.PositionAngleDeg)
	setInt(&c.Width, o.Width)
	setInt(&c.Height, o.Height)
	if o.Margin != nil {
		px := *o.Margin
		c.Margin = Margin{Top: px, Bottom: px, Left: px, Right: px}
	}
	setInt(&c.StepRADeg, o.StepRADeg)
	setInt(&c.StepDecDeg, o.StepDecDeg)
	setFloat(&c.LimitStarMag, o.LimitStarMag)
	setFloat(&c.LimitObjectMag, o.LimitObjectMag)
	setFloat(&c.ObjectScale, o.ObjectScale)

	setString(&c.Catalogs.Stars, o.StarsPath)
	setString(&c.Catalogs.Objects, o.ObjectsPath)
	setString(&c.Catalogs.Constellations, o.ConstellationsPath)
	setString(&c.CSS, o.CSS)
	setString(&c.LogLevel, o.LogLevel)
	if o.Parallel != nil {
		c.Parallel = *o.Parallel
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
