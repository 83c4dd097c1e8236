// SPDX-License-Identifier: MIT

package numeric_test

import (
	"testing"

	"github.com/katalvlaran/numlab/numeric"
	"github.com/stretchr/testify/assert"
)

func TestPolynomial(t *testing.T) {
	p := numeric.Polynomial{1, -2, 0, 5} // x³ − 2x² + 5

	assert.Equal(t, 3, p.Degree())
	assert.Equal(t, 5.0, p.Eval(2))
	assert.Equal(t, 5.0, p.Eval(0))
	assert.InDelta(t, 0.25-2.0/3.0+5, p.Integral(0, 1), 1e-12)
	assert.InDelta(t, -p.Integral(0, 1), p.Integral(1, 0), 1e-12)

	assert.Equal(t, numeric.Polynomial{1, 1, 1, 0}, numeric.Polynomial{3, 2, 1}.Antiderivative())
	assert.Equal(t, -1, numeric.Polynomial{}.Degree())
	assert.Equal(t, 0.0, numeric.Polynomial{}.Eval(3))
}
