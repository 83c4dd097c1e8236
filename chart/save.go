// SPDX-License-Identifier: MIT

package chart

import (
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// SavePanel renders one panel to a PNG file at path, creating parent
// directories as needed.
func SavePanel(path string, pn Panel, opts ...Option) error {
	p, err := Build(pn)
	if err != nil {
		return chartErrorf("SavePanel", err)
	}
	o := gatherOptions(opts...)

	img := vgimg.NewWith(vgimg.UseWH(o.width, o.height), vgimg.UseDPI(o.dpi))
	p.Draw(draw.New(img))

	if err := writePNG(path, img); err != nil {
		return chartErrorf("SavePanel", err)
	}

	return nil
}

// SaveGrid renders a rectangular grid of panels (rows of equal length) on
// one canvas, aligning their data areas.
func SaveGrid(path string, rows [][]Panel, opts ...Option) error {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return chartErrorf("SaveGrid", ErrBadGrid)
	}
	cols := len(rows[0])
	plots := make([][]*plot.Plot, len(rows))
	for j, row := range rows {
		if len(row) != cols {
			return chartErrorf("SaveGrid", ErrBadGrid)
		}
		plots[j] = make([]*plot.Plot, cols)
		for i, pn := range row {
			p, err := Build(pn)
			if err != nil {
				return chartErrorf("SaveGrid", err)
			}
			plots[j][i] = p
		}
	}
	o := gatherOptions(opts...)

	img := vgimg.NewWith(vgimg.UseWH(o.width, o.height), vgimg.UseDPI(o.dpi))
	tiles := draw.Tiles{
		Rows:      len(rows),
		Cols:      cols,
		PadX:      vg.Millimeter * 6,
		PadY:      vg.Millimeter * 6,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}
	canvases := plot.Align(plots, tiles, draw.New(img))
	for j := range plots {
		for i := range plots[j] {
			plots[j][i].Draw(canvases[j][i])
		}
	}

	if err := writePNG(path, img); err != nil {
		return chartErrorf("SaveGrid", err)
	}

	return nil
}

func writePNG(path string, img *vgimg.Canvas) (err error) {
	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	png := vgimg.PngCanvas{Canvas: img}
	_, err = png.WriteTo(f)

	return err
}
