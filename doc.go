// SPDX-License-Identifier: MIT

// Package numlab is a toolkit for numerical methods labs: root finding,
// quadrature, interpolation data and the figures that go with them.
//
// 🚀 What is numlab?
//
//	A small, test-first Go module that brings together:
//		• Root finding: bisection, Newton and secant with full trajectories
//		• Root localisation: sign-change scans with pole masking
//		• Quadrature: composite rules, Gauss–Legendre, adaptive reference integrals
//		• Data loading: whitespace/CSV tables, scalars, polynomials, node lists
//		• Figures: PNG line, log-scale and bar charts on gonum/plot
//		• Reports: nine lab reports with a YAML run manifest
//
// ✨ Why numlab?
//
//   - Explicit outcomes: every iteration returns its trajectory and stop reason
//   - Forgiving batch runs: a missing input skips one step, never the run
//   - Configurable: TOML file plus NUMLAB_* environment overrides
//   - Observable: structured zap logs per lab and per step
//
// Packages:
//
//	rootfind/  bisection, Newton, secant, FindRoots, method comparison
//	numeric/   polynomials, integrands, quadrature, grids, error metrics, least squares
//	matrix/    dense matrices, LU with partial pivoting, linear solves
//	dataio/    text table and lab file readers
//	chart/     panel model and PNG rendering
//	labs/      report registry, run environment and manifest
//	config/    TOML + environment configuration
//	logging/   zap logger setup
//	cmd/numlab command line: run, list, roots, exact, version
//
// Quick start:
//
//	go run ./cmd/numlab run --data ./data --out ./out
//	go run ./cmd/numlab roots --compare
package numlab
