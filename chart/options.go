// SPDX-License-Identifier: MIT

package chart

import (
	"fmt"

	"gonum.org/v1/plot/vg"
)

const (
	// DefaultWidth and DefaultHeight are the canvas size in inches.
	DefaultWidth  = 10.0
	DefaultHeight = 6.0

	// DefaultDPI is the raster resolution.
	DefaultDPI = 300
)

// Option configures SavePanel / SaveGrid.
type Option func(*Options)

// Options is the resolved canvas configuration.
type Options struct {
	width  vg.Length
	height vg.Length
	dpi    int
}

// Width returns the canvas width.
func (o Options) Width() vg.Length { return o.width }

// Height returns the canvas height.
func (o Options) Height() vg.Length { return o.height }

// DPI returns the raster resolution.
func (o Options) DPI() int { return o.dpi }

// WithSize sets the canvas size in inches. Panics unless both are > 0.
func WithSize(widthIn, heightIn float64) Option {
	if !(widthIn > 0) || !(heightIn > 0) {
		panic(fmt.Sprintf("chart: WithSize(%v, %v): size must be > 0", widthIn, heightIn))
	}

	return func(o *Options) {
		o.width = vg.Length(widthIn) * vg.Inch
		o.height = vg.Length(heightIn) * vg.Inch
	}
}

// WithDPI sets the raster resolution. Panics if dpi < 1.
func WithDPI(dpi int) Option {
	if dpi < 1 {
		panic(fmt.Sprintf("chart: WithDPI(%d): dpi must be >= 1", dpi))
	}

	return func(o *Options) { o.dpi = dpi }
}

// NewOptions resolves setters on top of the defaults.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

func gatherOptions(user ...Option) Options {
	o := Options{
		width:  vg.Length(DefaultWidth) * vg.Inch,
		height: vg.Length(DefaultHeight) * vg.Inch,
		dpi:    DefaultDPI,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
