// Package dataio reads the text files exchanged with the lab programs.
//
// 📦 What is inside
//
//   - Table: a column-oriented view over delimited numeric text. Comma,
//     tab and whitespace separated inputs are accepted; the delimiter is
//     detected from the first data line. Lines starting with the comment
//     rune ('#' by default) and blank lines are skipped. A header row is
//     detected automatically (any non-numeric field) unless forced with
//     WithHeader.
//   - LoadScalar / WriteScalar: single-number files such as exact integral
//     values.
//   - LoadPolynomial: degree, coefficients (highest power first) and an
//     integration interval, one group per line.
//   - LoadNodes: interpolation nodes stored as "xi: ..." and "f(xi): ..."
//     lines.
//
// ⚙️ Usage
//
//	t, err := dataio.LoadTable("wyniki_h1.txt", dataio.WithNames("time", "T_num", "T_ana"))
//	if err != nil {
//	    return err
//	}
//	ts, _ := t.Floats("time")
//
// ⚠️ Errors
//
// All failures are reported with package sentinels (ErrEmptyInput,
// ErrMalformed, ErrUnknownColumn) wrapped with the operation and, where
// known, the offending line. Match them with errors.Is.
package dataio
