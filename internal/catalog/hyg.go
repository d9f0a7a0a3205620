package catalog

import (
	"errors"
	"fmt"
	"io"

	"github.com/litescript/ls-starchart/internal/apperr"
	"github.com/litescript/ls-starchart/internal/astro"
)

// hygColumns are the HYG database columns the loader reads.
var hygColumns = []string{"id", "ra", "dec", "mag", "proper"}

// LoadStars reads a HYG star database (optionally gzipped). An empty path
// selects the built-in bright-star list.
func LoadStars(path string) ([]CelestialObject, error) {
	if path == "" {
		return BrightStars(), nil
	}
	rc, err := openData("load stars", path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	stars, err := ReadStars(rc)
	if err != nil {
		return nil, apperr.New("load stars", apperr.KindInvalidData, path, err)
	}
	return stars, nil
}

// ReadStars parses HYG CSV. RA is in hours and converted to degrees.
// Unparseable coordinates read as zero and a missing magnitude as 99, so such
// stars fall below any magnitude limit.
func ReadStars(r io.Reader) ([]CelestialObject, error) {
	cr := newCSVReader(r, ',')
	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty HYG file: %w", apperr.ErrInvalidData)
		}
		return nil, fmt.Errorf("read HYG header: %w", err)
	}
	cols := newHeaderIndex(header)
	for _, c := range hygColumns {
		if !cols.has(c) {
			return nil, fmt.Errorf("HYG header missing column %q: %w", c, apperr.ErrInvalidData)
		}
	}

	var out []CelestialObject
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read HYG row: %w", err)
		}
		out = append(out, CelestialObject{
			Kind:       KindStar,
			Catalog:    "HYG",
			Identifier: cols.get(rec, "id"),
			Coords: astro.EquatorialPoint{
				RADeg:  astro.HoursToDegrees(floatOr(cols.get(rec, "ra"), 0)),
				DecDeg: floatOr(cols.get(rec, "dec"), 0),
			},
			Magnitude: floatOr(cols.get(rec, "mag"), 99),
			Name:      cols.get(rec, "proper"),
		})
	}
	return out, nil
}
