package catalog

import (
	"bufio"
	"compress/gzip"
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/litescript/ls-starchart/internal/apperr"
)

// openData opens a catalog file, transparently gunzipping it when the
// content starts with the gzip magic bytes.
func openData(op, path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		kind := apperr.KindIO
		if errors.Is(err, fs.ErrNotExist) {
			kind = apperr.KindNotFound
		}
		return nil, apperr.New(op, kind, path, err)
	}

	br := bufio.NewReader(f)
	magic, _ := br.Peek(2)
	if len(magic) == 2 && magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err := gzip.NewReader(br)
		if err != nil {
			f.Close()
			return nil, apperr.New(op, apperr.KindInvalidData, path, err)
		}
		return &stackedCloser{Reader: gz, closers: []io.Closer{gz, f}}, nil
	}
	return &stackedCloser{Reader: br, closers: []io.Closer{f}}, nil
}

type stackedCloser struct {
	io.Reader
	closers []io.Closer
}

func (s *stackedCloser) Close() error {
	var errs []error
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// newCSVReader returns a lenient reader: variable-length rows, lazy quotes.
func newCSVReader(r io.Reader, comma rune) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true
	return cr
}

// headerIndex maps column names to positions.
type headerIndex map[string]int

func newHeaderIndex(header []string) headerIndex {
	idx := make(headerIndex, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := idx[h]; !dup {
			idx[h] = i
		}
	}
	return idx
}

// get returns the trimmed field for column name, or "" when the column or the
// field is missing.
func (h headerIndex) get(rec []string, name string) string {
	i, ok := h[name]
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func (h headerIndex) has(name string) bool {
	_, ok := h[name]
	return ok
}

// floatOr parses s, falling back to def for empty or malformed input.
func floatOr(s string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return def
	}
	return v
}
