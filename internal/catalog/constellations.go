package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/litescript/ls-starchart/internal/apperr"
	"github.com/litescript/ls-starchart/internal/astro"
)

//go:embed data/constellations.csv
var constellationsCSV []byte

// LoadConstellations reads constellation stick figures. An empty path selects
// the embedded figures.
func LoadConstellations(path string) ([]Constellation, error) {
	if path == "" {
		cs, err := ReadConstellations(bytes.NewReader(constellationsCSV))
		if err != nil {
			return nil, apperr.New("load constellations", apperr.KindInvalidData, "embedded", err)
		}
		return cs, nil
	}
	rc, err := openData("load constellations", path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	cs, err := ReadConstellations(rc)
	if err != nil {
		return nil, apperr.New("load constellations", apperr.KindInvalidData, path, err)
	}
	return cs, nil
}

// ReadConstellations parses headerless rows of the form
//
//	ABBR,ra_h,dec,ra_h,dec,...
//
// Each row is one polyline. Rows sharing an abbreviation are grouped into one
// constellation, in order of first appearance. Blank or unparseable pairs
// are skipped and a trailing unpaired field is ignored.
func ReadConstellations(r io.Reader) ([]Constellation, error) {
	cr := newCSVReader(r, ',')

	var out []Constellation
	byAbbr := make(map[string]int)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read constellation row: %w", err)
		}
		// abbreviation plus at least one pair
		if len(rec) < 3 {
			continue
		}

		abbr := strings.TrimSpace(rec[0])
		i, ok := byAbbr[abbr]
		if !ok {
			i = len(out)
			byAbbr[abbr] = i
			out = append(out, Constellation{Abbr: abbr, Name: ConstellationName(abbr)})
		}

		var line []astro.EquatorialPoint
		for j := 1; j+1 < len(rec); j += 2 {
			raS, decS := strings.TrimSpace(rec[j]), strings.TrimSpace(rec[j+1])
			if raS == "" || decS == "" {
				continue
			}
			raH, err1 := strconv.ParseFloat(raS, 64)
			dec, err2 := strconv.ParseFloat(decS, 64)
			if err1 != nil || err2 != nil {
				continue
			}
			line = append(line, astro.EquatorialPoint{RADeg: astro.HoursToDegrees(raH), DecDeg: dec})
		}
		if len(line) > 0 {
			out[i].Lines = append(out[i].Lines, line)
		}
	}
	return out, nil
}
