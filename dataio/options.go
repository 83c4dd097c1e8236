// SPDX-License-Identifier: MIT

package dataio

import "fmt"

// DefaultComment marks comment lines in every supported format.
const DefaultComment = '#'

// HeaderMode selects how the first data record is treated.
type HeaderMode int

const (
	// HeaderAuto treats the first record as a header when any field is non-numeric.
	HeaderAuto HeaderMode = iota
	// HeaderPresent always consumes the first record as a header.
	HeaderPresent
	// HeaderAbsent treats every record as data.
	HeaderAbsent
)

// Option configures ReadTable / LoadTable.
type Option func(*Options)

// Options is the resolved reader configuration.
type Options struct {
	names    []string
	skipRows int
	header   HeaderMode
	comment  rune
}

// WithNames assigns column names. A header row, if present, is consumed but
// its names are replaced.
func WithNames(names ...string) Option {
	cp := append([]string(nil), names...)

	return func(o *Options) { o.names = cp }
}

// WithSkipRows drops the first n raw lines before any other processing.
// Panics if n < 0.
func WithSkipRows(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("dataio: WithSkipRows(%d): n must be >= 0", n))
	}

	return func(o *Options) { o.skipRows = n }
}

// WithHeader forces header handling: true consumes the first record as a
// header, false treats it as data.
func WithHeader(present bool) Option {
	return func(o *Options) {
		if present {
			o.header = HeaderPresent
		} else {
			o.header = HeaderAbsent
		}
	}
}

// WithComment sets the comment rune; 0 disables comment handling.
func WithComment(r rune) Option {
	return func(o *Options) { o.comment = r }
}

func gatherOptions(user ...Option) Options {
	o := Options{header: HeaderAuto, comment: DefaultComment}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
