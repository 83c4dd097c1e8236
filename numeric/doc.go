// Package numeric computes the auxiliary quantities the lab reports need:
// exact integrals, error measures, reference trend lines, sample grids and
// interpolants.
//
// Quadrature is built on gonum's integrate/quad (fixed Gauss–Legendre
// rules); grids and reductions on gonum's floats and stat packages;
// interpolation on gonum's interp. Helpers never panic on numeric edge
// cases: divisions by zero and logs of non-positive values surface as
// non-finite values which callers filter with Finite or MaskXY.
package numeric
