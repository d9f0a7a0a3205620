package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/litescript/ls-starchart/internal/astro"
	"github.com/litescript/ls-starchart/internal/catalog"
	"github.com/litescript/ls-starchart/internal/chart"
)

func testContext() *chart.Context {
	data := catalog.Datasets{
		Stars: []catalog.CelestialObject{
			{Kind: catalog.KindStar, Name: "Alpha", Identifier: "1", Magnitude: 0},
			{Kind: catalog.KindStar, Name: "Faint", Identifier: "2", Magnitude: 9, Coords: astro.EquatorialPoint{RADeg: 2, DecDeg: 2}},
			{Kind: catalog.KindStar, Name: "TooFaint", Identifier: "3", Magnitude: 12, Coords: astro.EquatorialPoint{RADeg: 3}},
			{Kind: catalog.KindStar, Name: "Behind", Identifier: "4", Magnitude: 0, Coords: astro.EquatorialPoint{RADeg: 180}},
			{Kind: catalog.KindStar, Name: "OffPlot", Identifier: "5", Magnitude: 5, Coords: astro.EquatorialPoint{RADeg: 60}},
		},
		Objects: []catalog.CelestialObject{
			{Kind: catalog.KindGalaxy, Catalog: "M", Identifier: "31", Magnitude: 3.4, Coords: astro.EquatorialPoint{RADeg: 355, DecDeg: -10}},
		},
	}
	cfg := chart.DefaultConfig()
	return chart.NewContext(data, cfg)
}

func TestBuild(t *testing.T) {
	at := time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)
	e := Build(testContext(), chart.DefaultLabelOptions(), at)

	if e.GeneratedAt != at {
		t.Errorf("GeneratedAt = %v, want %v", e.GeneratedAt, at)
	}
	if e.Projection != "gnomonic" {
		t.Errorf("Projection = %q, want gnomonic", e.Projection)
	}
	if e.VisibleStars != 2 {
		t.Errorf("VisibleStars = %d, want 2", e.VisibleStars)
	}
	if e.VisibleObjects != 1 {
		t.Errorf("VisibleObjects = %d, want 1", e.VisibleObjects)
	}
	if len(e.Labels) != 2 {
		t.Fatalf("Labels = %v, want Alpha and M 31", e.Labels)
	}
	if e.Labels[0].Text != "Alpha" || e.Labels[0].Class != "star-label" {
		t.Errorf("first label = %+v", e.Labels[0])
	}
	if e.Labels[1].Text != "M 31" || e.Labels[1].Class != "object-label" {
		t.Errorf("second label = %+v", e.Labels[1])
	}
	if len(e.Skipped) != 0 {
		t.Errorf("Skipped = %v, want none", e.Skipped)
	}
}

func TestExport_WriteJSON(t *testing.T) {
	e := Build(testContext(), chart.DefaultLabelOptions(), time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

	var buf bytes.Buffer
	if err := e.WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	for _, key := range []string{"generated_at", "center", "projection", "fov_deg", "scale_px", "visible_stars", "labels"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("JSON missing key %q", key)
		}
	}
	if _, ok := decoded["skipped"]; ok {
		t.Error("empty skipped list should be omitted")
	}
}

func TestExport_WriteJSON_NoLabels(t *testing.T) {
	ctx := chart.NewContext(catalog.Datasets{}, chart.DefaultConfig())
	e := Build(ctx, chart.DefaultLabelOptions(), time.Time{})

	var buf bytes.Buffer
	if err := e.WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON error: %v", err)
	}
	if !strings.Contains(buf.String(), `"labels": []`) {
		t.Errorf("labels should encode as an empty list:\n%s", buf.String())
	}
}

func TestWriteSummaryTable(t *testing.T) {
	e := Build(testContext(), chart.DefaultLabelOptions(), time.Time{})
	e.Skipped = []string{"Crowded"}

	var buf bytes.Buffer
	WriteSummaryTable(&buf, e)
	out := buf.String()

	for _, want := range []string{"Chart @ 00h00m00.0s  +00°00'00.0\"", "gnomonic", "60.00°", "800x800", "Alpha", "M 31", "star-label", "2 labels placed, 1 skipped", "Skipped: Crowded"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "PA") {
		t.Error("PA row should be omitted at zero")
	}
}

func TestWriteSummaryTable_Empty(t *testing.T) {
	e := Build(chart.NewContext(catalog.Datasets{}, chart.DefaultConfig()), chart.DefaultLabelOptions(), time.Time{})

	var buf bytes.Buffer
	WriteSummaryTable(&buf, e)
	if !strings.Contains(buf.String(), "No labels placed") {
		t.Errorf("expected empty notice:\n%s", buf.String())
	}
}

func TestFormatRA(t *testing.T) {
	tests := []struct {
		deg  float64
		want string
	}{
		{0, "00h00m00.0s"},
		{83.82208, "05h35m17.3s"},
		{-15, "23h00m00.0s"},
		{187.5, "12h30m00.0s"},
	}
	for _, tt := range tests {
		if got := FormatRA(tt.deg); got != tt.want {
			t.Errorf("FormatRA(%v) = %q, want %q", tt.deg, got, tt.want)
		}
	}
}

func TestFormatDec(t *testing.T) {
	tests := []struct {
		deg  float64
		want string
	}{
		{0, "+00°00'00.0\""},
		{-5.39111, "-05°23'28.0\""},
		{45.5, "+45°30'00.0\""},
		{-0.5, "-00°30'00.0\""},
	}
	for _, tt := range tests {
		if got := FormatDec(tt.deg); got != tt.want {
			t.Errorf("FormatDec(%v) = %q, want %q", tt.deg, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		s    string
		max  int
		want string
	}{
		{"Vega", 10, "Vega"},
		{"Betelgeuse", 6, "Bete.."},
		{"Betelgeuse", 3, "Bet"},
		{"Açamar Ñ", 5, "Aça.."},
	}
	for _, tt := range tests {
		if got := truncate(tt.s, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.s, tt.max, got, tt.want)
		}
	}
}
