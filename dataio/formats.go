// SPDX-License-Identifier: MIT

package dataio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadScalar reads a file holding a single number (surrounding whitespace allowed).
func LoadScalar(path string) (float64, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, dataErrorf(opScalar, err)
	}
	s := strings.TrimSpace(string(b))
	if s == "" {
		return 0, dataErrorf(opScalar, fmt.Errorf("%s: %w", path, ErrEmptyInput))
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, lineErrorf(opScalar, 1, "%s: %q is not a number", path, s)
	}

	return v, nil
}

// WriteScalar writes v in its shortest round-trip form, without a newline.
func WriteScalar(path string, v float64) error {
	return os.WriteFile(path, []byte(strconv.FormatFloat(v, 'g', -1, 64)), 0o644)
}

// PolynomialFile is the parsed content of a polynomial description:
//
//	line 1: degree n
//	line 2: n+1 coefficients, highest power first
//	line 3: interval bounds a b
type PolynomialFile struct {
	Degree int
	Coeffs []float64
	A, B   float64
}

// LoadPolynomial parses a polynomial description file.
func LoadPolynomial(path string) (PolynomialFile, error) {
	lines, err := readFieldLines(path)
	if err != nil {
		return PolynomialFile{}, dataErrorf(opPolynomial, err)
	}
	if len(lines) < 3 {
		return PolynomialFile{}, dataErrorf(opPolynomial, fmt.Errorf("%s: need 3 lines, got %d: %w", path, len(lines), ErrMalformed))
	}

	var p PolynomialFile
	if len(lines[0].fields) != 1 {
		return p, lineErrorf(opPolynomial, lines[0].no, "degree line must hold one value")
	}
	p.Degree, err = strconv.Atoi(lines[0].fields[0])
	if err != nil || p.Degree < 0 {
		return p, lineErrorf(opPolynomial, lines[0].no, "bad degree %q", lines[0].fields[0])
	}

	p.Coeffs, err = parseFields(lines[1])
	if err != nil {
		return p, dataErrorf(opPolynomial, err)
	}
	if len(p.Coeffs) != p.Degree+1 {
		return p, lineErrorf(opPolynomial, lines[1].no, "degree %d needs %d coefficients, got %d",
			p.Degree, p.Degree+1, len(p.Coeffs))
	}

	bounds, err := parseFields(lines[2])
	if err != nil {
		return p, dataErrorf(opPolynomial, err)
	}
	if len(bounds) != 2 {
		return p, lineErrorf(opPolynomial, lines[2].no, "interval needs 2 bounds, got %d", len(bounds))
	}
	p.A, p.B = bounds[0], bounds[1]

	return p, nil
}

// LoadNodes reads interpolation nodes from lines labelled "xi:" and "f(xi):".
// Both labels must be present and carry the same number of values.
func LoadNodes(path string) (xi, fxi []float64, err error) {
	lines, err := readFieldLines(path)
	if err != nil {
		return nil, nil, dataErrorf(opNodes, err)
	}

	var gotX, gotF bool
	for _, ln := range lines {
		if len(ln.fields) == 0 {
			continue
		}
		label, rest := ln.fields[0], ln.fields[1:]
		// "xi:1" style, no space after the label.
		for _, prefix := range []string{"f(xi):", "xi:"} {
			if strings.HasPrefix(label, prefix) && label != prefix {
				rest = append([]string{strings.TrimPrefix(label, prefix)}, rest...)
				label = prefix
				break
			}
		}
		vals, perr := parseFields(fieldLine{no: ln.no, fields: rest})
		switch label {
		case "xi:":
			xi, gotX, err = vals, true, perr
		case "f(xi):":
			fxi, gotF, err = vals, true, perr
		default:
			continue
		}
		if err != nil {
			return nil, nil, dataErrorf(opNodes, err)
		}
	}
	if !gotX || !gotF {
		return nil, nil, dataErrorf(opNodes, fmt.Errorf("%s: missing xi: or f(xi): line: %w", path, ErrMalformed))
	}
	if len(xi) != len(fxi) {
		return nil, nil, dataErrorf(opNodes, fmt.Errorf("%s: %d nodes but %d values: %w", path, len(xi), len(fxi), ErrMalformed))
	}

	return xi, fxi, nil
}

type fieldLine struct {
	no     int
	fields []string
}

// readFieldLines returns the whitespace-split, non-blank, non-comment lines of path.
func readFieldLines(path string) ([]fieldLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []fieldLine
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	no := 0
	for sc.Scan() {
		no++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, string(DefaultComment)) {
			continue
		}
		out = append(out, fieldLine{no: no, fields: strings.Fields(text)})
	}

	return out, sc.Err()
}

func parseFields(ln fieldLine) ([]float64, error) {
	out := make([]float64, len(ln.fields))
	for i, s := range ln.fields {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, lineErrorf("parse", ln.no, "%q is not a number", s)
		}
		out[i] = v
	}

	return out, nil
}
