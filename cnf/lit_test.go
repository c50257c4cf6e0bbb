package cnf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/cnfid/cnf"
)

// TestLit_Encoding pins the dense encoding 2·(v−1)+s and its
// round-trips.
func TestLit_Encoding(t *testing.T) {
	cases := []struct {
		dimacs int
		lit    cnf.Lit
		v      int
		sign   bool
	}{
		{dimacs: 1, lit: 0, v: 1, sign: false},
		{dimacs: -1, lit: 1, v: 1, sign: true},
		{dimacs: 2, lit: 2, v: 2, sign: false},
		{dimacs: -3, lit: 5, v: 3, sign: true},
	}
	for _, tc := range cases {
		lit := cnf.NewLit(tc.dimacs)
		assert.Equal(t, tc.lit, lit, "dimacs %d", tc.dimacs)
		assert.Equal(t, tc.v, lit.Var(), "dimacs %d", tc.dimacs)
		assert.Equal(t, tc.sign, lit.Sign(), "dimacs %d", tc.dimacs)
		assert.Equal(t, tc.dimacs, lit.Dimacs(), "dimacs %d", tc.dimacs)
		assert.Equal(t, lit, cnf.MkLit(tc.v, tc.sign), "dimacs %d", tc.dimacs)
	}
}

// TestLit_Neg verifies complement flipping stays on the same variable.
func TestLit_Neg(t *testing.T) {
	lit := cnf.NewLit(4)

	assert.Equal(t, cnf.NewLit(-4), lit.Neg())
	assert.Equal(t, lit, lit.Neg().Neg())
}

// TestLit_Ordering confirms that ordering Lit values orders literals
// by (variable, sign) with the positive literal first.
func TestLit_Ordering(t *testing.T) {
	assert.Less(t, cnf.NewLit(1), cnf.NewLit(-1))
	assert.Less(t, cnf.NewLit(-1), cnf.NewLit(2))
	assert.Less(t, cnf.NewLit(2), cnf.NewLit(-2))
}

// TestLit_String renders the DIMACS integer.
func TestLit_String(t *testing.T) {
	assert.Equal(t, "-7", cnf.NewLit(-7).String())
	assert.Equal(t, "7", cnf.NewLit(7).String())
}
