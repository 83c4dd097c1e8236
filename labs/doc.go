// SPDX-License-Identifier: MIT

// Package labs turns the numeric packages into reproducible reports.
//
// 🚀 What is a report?
//
//	A report is one laboratory exercise: it reads its inputs from the data
//	directory, computes the derived quantities (roots, exact integrals,
//	errors) and writes tables and PNG figures to the output directory.
//
// 🔧 Reports
//
//	roots          bisection / Newton / secant on the three lab functions
//	series         overlay of the Dla_N.csv series
//	interpolation  Newton interpolation curve and Horner values
//	quadrature     composite rules vs exact integrals
//	gauss          Gauss–Legendre convergence and method comparison
//	approximation  least-squares approximation and RMSE by degree
//	thermal        Euler cooling vs analytical solution
//	ode            Heun / midpoint / RK4 cooling curves and errors
//	solvers        iterative linear solver summary
//
// ⚙️ Failure model
//
//	Every output is a step. A step whose input is missing or malformed is
//	logged at Warn and recorded as skipped in the run manifest; the rest
//	of the run continues. Run itself fails only on unknown report names or
//	when the output directory or the manifest cannot be written.
//
// ✨ Usage
//
//	env := labs.NewEnv(cfg, log)
//	if err := labs.Run(env, "roots", "gauss"); err != nil { ... }
package labs
