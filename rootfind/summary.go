// SPDX-License-Identifier: MIT

package rootfind

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// SummaryHeader is the column layout of the results summary CSV.
var SummaryHeader = []string{"function", "method", "root", "iterations", "final_error"}

// SummaryRow is one (function, method) line of the summary table.
type SummaryRow struct {
	Function   string
	Method     string
	Root       string // fixed precision, 10 decimals
	Iterations int
	FinalError string // scientific notation, 2 decimals
}

// Record returns the row as CSV fields in SummaryHeader order.
func (r SummaryRow) Record() []string {
	return []string{r.Function, r.Method, r.Root, strconv.Itoa(r.Iterations), r.FinalError}
}

// Summarize flattens comparisons into summary rows, preserving order.
func Summarize(cmps []Comparison) []SummaryRow {
	rows := make([]SummaryRow, 0, 3*len(cmps))
	for _, c := range cmps {
		for _, r := range c.Results {
			rows = append(rows, SummaryRow{
				Function:   c.Function,
				Method:     string(r.Method),
				Root:       fmt.Sprintf("%.10f", r.Root),
				Iterations: r.Iterations(),
				FinalError: fmt.Sprintf("%.2e", r.FinalError()),
			})
		}
	}

	return rows
}

// WriteSummaryCSV writes the header and rows to w.
func WriteSummaryCSV(w io.Writer, rows []SummaryRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(SummaryHeader); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(r.Record()); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
