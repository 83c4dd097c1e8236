// SPDX-License-Identifier: MIT

// Package rootfind locates and refines real roots of scalar functions and
// records how each iterative method converges.
//
// 🚀 What is inside?
//
//	A small, deterministic toolkit built around three classic methods:
//	  • Bisection – bracket halving, always converges on a valid bracket
//	  • Newton    – tangent steps, quadratic convergence near simple roots
//	  • Secant    – finite-difference tangent, no derivative required
//
// On top of the kernels sit:
//   - FindRoots: sample a grid, detect sign changes, refine each with bisection
//   - Compare:   build a bracket around an estimate and run all three methods
//   - Summarize: flatten comparisons into a CSV summary table
//
// ⚙️ Usage:
//
//	fns := rootfind.LabFunctions()
//	roots, err := rootfind.FindRoots(fns[1].Eval, 0.1, 3.9)
//	if err != nil { /* ErrBadInterval */ }
//	cmp, err := rootfind.Compare(fns[1], roots[0])
//	for _, r := range cmp.Results {
//	    fmt.Println(r.Method, r.Root, len(r.Approximations))
//	}
//
// Numeric policy:
//
//   - Non-finite function values are the "undefined" marker. They never
//     panic; they stop an iteration with ReasonNonFinite or exclude a grid
//     pair from localization.
//   - Every kernel is bounded by an iteration cap (default 1000).
//   - Newton and secant may jump basins or diverge; this is reported through
//     Result.Reason, never corrected.
//
// Defaults (tolerance 1e-10, floors 1e-15, 1000 samples) live in options.go.
package rootfind
