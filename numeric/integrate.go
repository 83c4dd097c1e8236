// SPDX-License-Identifier: MIT

package numeric

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// GaussLegendre applies the n-point Gauss–Legendre rule to f on [a, b].
func GaussLegendre(f func(float64) float64, a, b float64, n int) (float64, error) {
	if n < 1 {
		return 0, numErrorf("GaussLegendre", ErrBadNodes)
	}
	if !Finite(a) || !Finite(b) {
		return 0, numErrorf("GaussLegendre", ErrBadInterval)
	}
	if a == b {
		return 0, nil
	}
	if b < a {
		return -quad.Fixed(f, b, a, n, quad.Legendre{}, 0), nil
	}

	return quad.Fixed(f, a, b, n, quad.Legendre{}, 0), nil
}

// Integrate computes ∫_a^b f adaptively.
//
// Implementation:
//   - Each panel is integrated with n and 2n Gauss–Legendre nodes.
//   - The panel is accepted when |Q_2n − Q_n| <= max(absTol, relTol·|Q_2n|)
//     or the depth cap is reached; otherwise it is halved.
//   - b < a yields the negated integral over [b, a].
//
// A non-finite result is reported as ErrNonFinite.
func Integrate(f func(float64) float64, a, b float64, opts ...Option) (float64, error) {
	if !Finite(a) || !Finite(b) {
		return 0, numErrorf("Integrate", ErrBadInterval)
	}
	o := gatherOptions(opts...)

	sign := 1.0
	if b < a {
		a, b, sign = b, a, -1
	}
	v := sign * adaptive(f, a, b, o, 0)
	if !Finite(v) {
		return v, numErrorf("Integrate", ErrNonFinite)
	}

	return v, nil
}

func adaptive(f func(float64) float64, a, b float64, o Options, depth int) float64 {
	if a == b {
		return 0
	}
	coarse := quad.Fixed(f, a, b, o.nodes, quad.Legendre{}, 0)
	fine := quad.Fixed(f, a, b, 2*o.nodes, quad.Legendre{}, 0)
	if math.Abs(fine-coarse) <= math.Max(o.absTol, o.relTol*math.Abs(fine)) || depth >= o.maxDepth {
		return fine
	}
	mid := 0.5 * (a + b)

	return adaptive(f, a, mid, o, depth+1) + adaptive(f, mid, b, o, depth+1)
}

// IntegrateSegments integrates over consecutive breakpoints and sums the
// pieces. Pairs with breaks[i+1] <= breaks[i] are skipped.
func IntegrateSegments(f func(float64) float64, breaks []float64, opts ...Option) (float64, error) {
	if len(breaks) < 2 {
		return 0, numErrorf("IntegrateSegments", ErrBadInterval)
	}
	var total float64
	for i := 0; i+1 < len(breaks); i++ {
		a, b := breaks[i], breaks[i+1]
		if b <= a {
			continue
		}
		v, err := Integrate(f, a, b, opts...)
		if err != nil {
			return 0, numErrorf("IntegrateSegments", err)
		}
		total += v
	}

	return total, nil
}
