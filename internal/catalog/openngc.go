package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/litescript/ls-starchart/internal/apperr"
	"github.com/litescript/ls-starchart/internal/astro"
)

//go:embed data/messier.csv
var messierCSV []byte

// ngcTypes maps OpenNGC object types to kinds. Unlisted types are KindNotUsed.
var ngcTypes = map[string]ObjectKind{
	"*":      KindStar,
	"**":     KindDoubleStar,
	"***":    KindTripleStar,
	"*Ass":   KindNotUsed,
	"OCl":    KindOpenCluster,
	"GCl":    KindGlobularCluster,
	"Cl+N":   KindOpenCluster,
	"G":      KindGalaxy,
	"GPair":  KindGalaxy,
	"GTrpl":  KindGalaxy,
	"GGroup": KindGalaxy,
	"PN":     KindPlanetaryNebula,
	"HII":    KindBrightNebula,
	"DrkN":   KindBrightNebula,
	"EmN":    KindBrightNebula,
	"Neb":    KindBrightNebula,
	"RfN":    KindBrightNebula,
	"SNR":    KindPlanetaryNebula,
	"Nova":   KindNotUsed,
	"NonEx":  KindNotUsed,
	"Dup":    KindNotUsed,
	"Other":  KindNotUsed,
}

// ngcMagColumns are the photometric bands an object's magnitude is the
// minimum of.
var ngcMagColumns = []string{"B-Mag", "V-Mag", "J-Mag", "H-Mag", "K-Mag"}

// ngcDefaultMag stands in for a missing band.
const ngcDefaultMag = 20.0

// ParseNGCType maps an OpenNGC type code to a kind.
func ParseNGCType(code string) ObjectKind {
	if k, ok := ngcTypes[strings.TrimSpace(code)]; ok {
		return k
	}
	return KindNotUsed
}

// LoadObjects reads an OpenNGC catalog (';'-separated, optionally gzipped).
// An empty path selects the built-in Messier sample.
func LoadObjects(path string) ([]CelestialObject, error) {
	if path == "" {
		objs, err := ReadObjects(bytes.NewReader(messierCSV))
		if err != nil {
			return nil, apperr.New("load objects", apperr.KindInvalidData, "embedded", err)
		}
		return objs, nil
	}
	rc, err := openData("load objects", path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	objs, err := ReadObjects(rc)
	if err != nil {
		return nil, apperr.New("load objects", apperr.KindInvalidData, path, err)
	}
	return objs, nil
}

// ReadObjects parses OpenNGC CSV. Star-like entries and rows without
// coordinates are dropped. The result is ordered faintest first so brighter
// objects are drawn on top.
func ReadObjects(r io.Reader) ([]CelestialObject, error) {
	cr := newCSVReader(r, ';')
	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty OpenNGC file: %w", apperr.ErrInvalidData)
		}
		return nil, fmt.Errorf("read OpenNGC header: %w", err)
	}
	cols := newHeaderIndex(header)
	for _, c := range []string{"Name", "Type", "RA", "Dec"} {
		if !cols.has(c) {
			return nil, fmt.Errorf("OpenNGC header missing column %q: %w", c, apperr.ErrInvalidData)
		}
	}

	var out []CelestialObject
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read OpenNGC row: %w", err)
		}
		if obj, ok := parseNGCRow(cols, rec); ok {
			out = append(out, obj)
		}
	}

	// stable ascending, then reversed: equal magnitudes end up in reverse
	// file order
	sort.SliceStable(out, func(i, j int) bool { return out[i].Magnitude < out[j].Magnitude })
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

func parseNGCRow(cols headerIndex, rec []string) (CelestialObject, bool) {
	raS, decS := cols.get(rec, "RA"), cols.get(rec, "Dec")
	if raS == "" || decS == "" {
		return CelestialObject{}, false
	}

	kind := ParseNGCType(cols.get(rec, "Type"))
	if kind.IsStarLike() {
		return CelestialObject{}, false
	}

	ra, err := astro.ParseRA(raS)
	if err != nil || !strings.Contains(raS, ":") {
		return CelestialObject{}, false
	}
	dec, err := astro.ParseDec(decS)
	if err != nil || !strings.Contains(decS, ":") {
		return CelestialObject{}, false
	}

	mag := math.Inf(1)
	for _, c := range ngcMagColumns {
		mag = math.Min(mag, floatOr(cols.get(rec, c), ngcDefaultMag))
	}

	catalog, id := chooseDesignation(cols.get(rec, "M"), cols.get(rec, "Name"))
	return CelestialObject{
		Kind:       kind,
		Catalog:    catalog,
		Identifier: id,
		Coords:     astro.EquatorialPoint{RADeg: ra, DecDeg: dec},
		Magnitude:  mag,
		Size: Size{
			Major: floatOr(cols.get(rec, "MajAx"), 0),
			Minor: floatOr(cols.get(rec, "MinAx"), 0),
		},
		Angle: floatOr(cols.get(rec, "PosAng"), 0),
	}, true
}

// chooseDesignation prefers the Messier number, then an NGC/IC number parsed
// from the name, then the bare name under "Unknown".
func chooseDesignation(m, name string) (catalog, id string) {
	if m = strings.TrimSpace(m); m != "" {
		return "M", strings.TrimLeft(m, "0")
	}
	if cat, n, ok := catalogNumberFromName(name); ok {
		return cat, n
	}
	return "Unknown", strings.TrimSpace(name)
}

// catalogNumberFromName recognizes "NGC####" and "IC####" prefixes, ignoring
// case, and returns the first run of digits after the prefix.
func catalogNumberFromName(name string) (catalog, number string, ok bool) {
	s := strings.TrimSpace(name)
	if len(s) < 3 {
		return "", "", false
	}
	for _, prefix := range []string{"NGC", "IC"} {
		if len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix) {
			if n := firstNumber(strings.TrimLeftFunc(s[len(prefix):], unicode.IsSpace)); n != "" {
				return prefix, n, true
			}
			return "", "", false
		}
	}
	return "", "", false
}

// firstNumber returns the first run of ASCII digits in s.
func firstNumber(s string) string {
	start := strings.IndexFunc(s, func(r rune) bool { return r >= '0' && r <= '9' })
	if start < 0 {
		return ""
	}
	end := start
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	return s[start:end]
}
