// SPDX-License-Identifier: MIT

package dataio

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
)

const maxLineBytes = 1 << 20

// Table is a parsed delimited text source. Cells are kept as strings and
// converted on access, so text and numeric columns can coexist.
type Table struct {
	names []string
	rows  [][]string
	lines []int // 1-based source line of each row
}

// rawLine is a data line kept after skipping, comments and blanks.
type rawLine struct {
	no   int
	text string
}

// LoadTable opens path and parses it with ReadTable.
func LoadTable(path string, opts ...Option) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, dataErrorf(opLoadTable, err)
	}
	defer f.Close()

	t, err := ReadTable(f, opts...)
	if err != nil {
		return nil, dataErrorf(path, err)
	}

	return t, nil
}

// ReadTable parses r into a Table.
//
// Stage 1 collects data lines (after WithSkipRows, comments and blanks).
// Stage 2 splits them: comma separated when the first data line contains a
// comma, otherwise on runs of whitespace. Stage 3 resolves the header and
// column names; unnamed columns are called "0", "1", ...
func ReadTable(r io.Reader, opts ...Option) (*Table, error) {
	o := gatherOptions(opts...)

	// Stage 1: raw lines.
	lines, err := dataLines(r, o)
	if err != nil {
		return nil, dataErrorf(opReadTable, err)
	}
	if len(lines) == 0 {
		return nil, dataErrorf(opReadTable, ErrEmptyInput)
	}

	// Stage 2: records.
	var records [][]string
	if strings.ContainsRune(lines[0].text, ',') {
		records, err = splitComma(lines)
		if err != nil {
			return nil, dataErrorf(opReadTable, err)
		}
	} else {
		records = make([][]string, len(lines))
		for i, ln := range lines {
			records[i] = strings.Fields(ln.text)
		}
	}

	// Stage 3: header and names.
	t := &Table{}
	start := 0
	if o.header == HeaderPresent || (o.header == HeaderAuto && !allNumeric(records[0])) {
		t.names = records[0]
		start = 1
	}
	if len(o.names) > 0 {
		t.names = o.names
	}
	t.rows = records[start:]
	t.lines = make([]int, 0, len(t.rows))
	for _, ln := range lines[start:] {
		t.lines = append(t.lines, ln.no)
	}
	if len(t.rows) == 0 {
		return nil, dataErrorf(opReadTable, ErrEmptyInput)
	}
	if t.names == nil {
		width := 0
		for _, rec := range t.rows {
			width = max(width, len(rec))
		}
		t.names = make([]string, width)
		for i := range t.names {
			t.names[i] = strconv.Itoa(i)
		}
	}

	return t, nil
}

// dataLines returns the lines that carry data, with inline comments removed.
func dataLines(r io.Reader, o Options) ([]rawLine, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var out []rawLine
	no := 0
	for sc.Scan() {
		no++
		if no <= o.skipRows {
			continue
		}
		text := sc.Text()
		if o.comment != 0 {
			if i := strings.IndexRune(text, o.comment); i >= 0 {
				text = text[:i]
			}
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		out = append(out, rawLine{no: no, text: text})
	}

	return out, sc.Err()
}

// splitComma parses comma separated lines with encoding/csv, one record per line.
func splitComma(lines []rawLine) ([][]string, error) {
	records := make([][]string, len(lines))
	for i, ln := range lines {
		cr := csv.NewReader(strings.NewReader(ln.text))
		cr.FieldsPerRecord = -1
		cr.TrimLeadingSpace = true
		rec, err := cr.Read()
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return nil, lineErrorf(opReadTable, ln.no, "%v", perr.Err)
			}
			return nil, lineErrorf(opReadTable, ln.no, "%v", err)
		}
		for j := range rec {
			rec[j] = strings.TrimSpace(rec[j])
		}
		records[i] = rec
	}

	return records, nil
}

func allNumeric(rec []string) bool {
	for _, s := range rec {
		if _, err := strconv.ParseFloat(s, 64); err != nil {
			return false
		}
	}

	return true
}

// Names returns the column names in order.
func (t *Table) Names() []string { return append([]string(nil), t.names...) }

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.rows) }

// Has reports whether a column called name exists.
func (t *Table) Has(name string) bool { return t.index(name) >= 0 }

func (t *Table) index(name string) int {
	for i, n := range t.names {
		if n == name {
			return i
		}
	}

	return -1
}

// Strings returns the raw cells of column name.
func (t *Table) Strings(name string) ([]string, error) {
	i := t.index(name)
	if i < 0 {
		return nil, dataErrorf(opStrings, ErrUnknownColumn)
	}
	out := make([]string, len(t.rows))
	for r, rec := range t.rows {
		if i >= len(rec) {
			return nil, lineErrorf(opStrings, t.lines[r], "missing column %q", name)
		}
		out[r] = rec[i]
	}

	return out, nil
}

// Floats parses column name as float64 values.
func (t *Table) Floats(name string) ([]float64, error) {
	i := t.index(name)
	if i < 0 {
		return nil, dataErrorf(opFloats, ErrUnknownColumn)
	}

	return t.FloatsAt(i)
}

// FloatsAt parses the i-th column (0-based) as float64 values.
func (t *Table) FloatsAt(i int) ([]float64, error) {
	if i < 0 || i >= len(t.names) {
		return nil, dataErrorf(opFloats, ErrUnknownColumn)
	}
	out := make([]float64, len(t.rows))
	for r, rec := range t.rows {
		if i >= len(rec) {
			return nil, lineErrorf(opFloats, t.lines[r], "missing column %d", i)
		}
		v, err := strconv.ParseFloat(rec[i], 64)
		if err != nil {
			return nil, lineErrorf(opFloats, t.lines[r], "column %q: %q is not a number", t.names[i], rec[i])
		}
		out[r] = v
	}

	return out, nil
}

// Columns parses several named columns at once, in the order given.
func (t *Table) Columns(names ...string) ([][]float64, error) {
	out := make([][]float64, len(names))
	for k, name := range names {
		col, err := t.Floats(name)
		if err != nil {
			return nil, err
		}
		out[k] = col
	}

	return out, nil
}
