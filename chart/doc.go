// Package chart renders declarative plot descriptions to PNG files.
//
// 🖼 Model
//
// A Panel describes one set of axes: title, axis labels, optional log
// scales and fixed ranges, a background grid, data Series (line, points or
// both), horizontal/vertical reference lines and an optional nominal bar
// chart. SavePanel draws a single panel; SaveGrid aligns a rectangular
// grid of panels on one canvas.
//
// 🧹 Data hygiene
//
// Non-finite points are dropped before drawing. On a log axis points with a
// non-positive coordinate are dropped too, and a panel left without data
// on a log axis falls back to the range [1, 10] instead of panicking.
//
// ⚙️ Output
//
// Images are rasterised with gonum/plot's vgimg backend. The default canvas
// is 10×6 inches at 300 dpi; see WithSize and WithDPI.
package chart
