// SPDX-License-Identifier: MIT

package numeric

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// PercentGuard is added to the reference value in RelativeErrorsPct so
// that a zero reference does not divide by zero.
const PercentGuard = 1e-10

// RelativeError returns |approx − exact| / |exact|. A zero exact value
// yields +Inf (or NaN when approx is zero too).
func RelativeError(approx, exact float64) float64 {
	return math.Abs(approx-exact) / math.Abs(exact)
}

// RelativeErrors applies RelativeError to every approximation.
func RelativeErrors(approx []float64, exact float64) []float64 {
	out := make([]float64, len(approx))
	for i, v := range approx {
		out[i] = RelativeError(v, exact)
	}

	return out
}

// AbsErrors returns |a_i − b_i|.
func AbsErrors(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, numErrorf("AbsErrors", ErrLengthMismatch)
	}
	out := make([]float64, len(a))
	floats.SubTo(out, a, b)
	for i := range out {
		out[i] = math.Abs(out[i])
	}

	return out, nil
}

// RelativeErrorsPct returns |num_i − ref_i| / (ref_i + PercentGuard) · 100.
func RelativeErrorsPct(num, ref []float64) ([]float64, error) {
	abs, err := AbsErrors(num, ref)
	if err != nil {
		return nil, numErrorf("RelativeErrorsPct", err)
	}
	for i := range abs {
		abs[i] = abs[i] / (ref[i] + PercentGuard) * 100
	}

	return abs, nil
}

// MSE returns the mean squared difference of a and b.
func MSE(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, numErrorf("MSE", ErrLengthMismatch)
	}
	if len(a) == 0 {
		return 0, numErrorf("MSE", ErrEmpty)
	}
	sq := make([]float64, len(a))
	floats.SubTo(sq, a, b)
	floats.Mul(sq, sq)

	return stat.Mean(sq, nil), nil
}

// RMSE returns sqrt(MSE(a, b)).
func RMSE(a, b []float64) (float64, error) {
	m, err := MSE(a, b)
	if err != nil {
		return 0, numErrorf("RMSE", err)
	}

	return math.Sqrt(m), nil
}

// ErrorStats summarises an absolute error vector.
type ErrorStats struct {
	RMSE float64
	MAE  float64
	Max  float64
}

// Summarize computes RMSE, mean absolute error and maximum of |a − b|.
func Summarize(a, b []float64) (ErrorStats, error) {
	abs, err := AbsErrors(a, b)
	if err != nil {
		return ErrorStats{}, numErrorf("Summarize", err)
	}
	if len(abs) == 0 {
		return ErrorStats{}, numErrorf("Summarize", ErrEmpty)
	}
	rmse, _ := RMSE(a, b)

	return ErrorStats{RMSE: rmse, MAE: stat.Mean(abs, nil), Max: floats.Max(abs)}, nil
}

// PowerTrend returns y0·(x_i/x_0)^order: a reference line through
// (xs[0], y0) with slope order on log-log axes.
func PowerTrend(xs []float64, y0, order float64) []float64 {
	out := make([]float64, len(xs))
	if len(xs) == 0 {
		return out
	}
	x0 := xs[0]
	for i, x := range xs {
		out[i] = y0 * math.Pow(x/x0, order)
	}

	return out
}
