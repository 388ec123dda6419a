// SPDX-License-Identifier: MIT

package expr_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/sketchsolve/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConstructors_Rewrites pins the local rewrite table applied at build time.
func TestConstructors_Rewrites(t *testing.T) {
	a := expr.NewArena()
	x, y := a.NewVariable(), a.NewVariable()
	X, Y := expr.VarOf(x), expr.VarOf(y)

	cases := []struct {
		name string
		got  expr.Expr
		want string
	}{
		{"x+0", expr.AddOf(X, expr.Num(0)), "x1"},
		{"0+x", expr.AddOf(expr.Num(0), X), "x1"},
		{"c+c", expr.AddOf(expr.Num(2), expr.Num(3)), "5"},
		{"c+x commutes", expr.AddOf(expr.Num(3), X), "x1 + 3"},
		{"x+x doubles", expr.AddOf(X, expr.VarOf(x)), "2*x1"},
		{"x-0", expr.SubOf(X, expr.Num(0)), "x1"},
		{"0-x", expr.SubOf(expr.Num(0), X), "-1*x1"},
		{"x-x", expr.SubOf(X, expr.VarOf(x)), "0"},
		{"c-c", expr.SubOf(expr.Num(7), expr.Num(2)), "5"},
		{"0*x", expr.MulOf(expr.Num(0), X), "0"},
		{"x*0", expr.MulOf(X, expr.Num(0)), "0"},
		{"1*x", expr.MulOf(expr.Num(1), X), "x1"},
		{"x*1", expr.MulOf(X, expr.Num(1)), "x1"},
		{"x*c commutes", expr.MulOf(X, expr.Num(3)), "3*x1"},
		{"c*c", expr.MulOf(expr.Num(3), expr.Num(4)), "12"},
		{"nested constants", expr.MulOf(expr.Num(3), expr.MulOf(expr.Num(4), X)), "12*x1"},
		{"distribute right", expr.MulOf(X, expr.AddOf(Y, expr.Num(1))), "x1*x2 + x1"},
		{"distribute left", expr.MulOf(expr.AddOf(X, Y), expr.Num(2)), "2*x1 + 2*x2"},
		{"x/1", expr.DivOf(X, expr.Num(1)), "x1"},
		{"x/-1", expr.DivOf(X, expr.Num(-1)), "-1*x1"},
		{"0/x", expr.DivOf(expr.Num(0), X), "0"},
		{"c/c", expr.DivOf(expr.Num(1), expr.Num(4)), "0.25"},
		{"sin const", expr.SinOf(expr.Num(0)), "0"},
		{"cos const", expr.CosOf(expr.Num(0)), "1"},
		{"grouping", expr.DivOf(expr.SubOf(X, Y), expr.MulOf(X, Y)), "(x1 - x2)/(x1*x2)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.got.String())
		})
	}
}

// TestDerivative_ProductOfSums pins the printed form of a small polynomial and
// its partials, which exercises distribution, doubling and constant folding.
func TestDerivative_ProductOfSums(t *testing.T) {
	a := expr.NewArena()
	x1, x2 := a.NewVariable(), a.NewVariable()

	q := expr.MulOf(expr.AddOf(expr.Num(5), expr.VarOf(x1)), expr.AddOf(expr.VarOf(x1), expr.VarOf(x2)))
	assert.Equal(t, "x1*x1 + x1*x2 + 5*x1 + 5*x2", q.String())

	dq1 := q.Derivative(x1)
	assert.Equal(t, "2*x1 + x2 + 5", dq1.String())

	dq2 := q.Derivative(x2)
	assert.Equal(t, "x1 + 5", dq2.String())

	assert.Equal(t, "1", dq1.Derivative(x2).String())
	assert.Equal(t, "1", dq2.Derivative(x1).String())
}

func TestMulByZero_AlwaysZero(t *testing.T) {
	a := expr.NewArena()
	x, y := a.NewVariable(), a.NewVariable()
	rng := rand.New(rand.NewSource(7))

	for _, e := range sampleExprs(x, y) {
		z := expr.MulOf(expr.Num(0), e)
		for i := 0; i < 20; i++ {
			asg := expr.Assignment{x: rng.Float64()*4 - 2, y: rng.Float64()*4 - 2}
			v, err := z.Eval(asg)
			require.NoError(t, err)
			assert.Equal(t, 0.0, v, "0*(%s)", e)
		}
	}
}

func TestAddSelf_MatchesDouble(t *testing.T) {
	a := expr.NewArena()
	x, y := a.NewVariable(), a.NewVariable()
	rng := rand.New(rand.NewSource(11))

	for _, e := range sampleExprs(x, y) {
		sum := expr.AddOf(e, e)
		dbl := expr.MulOf(expr.Num(2), e)
		for i := 0; i < 20; i++ {
			asg := expr.Assignment{x: rng.Float64()*4 - 2, y: rng.Float64()*4 - 2}
			got, err := sum.Eval(asg)
			require.NoError(t, err)
			want, err := dbl.Eval(asg)
			require.NoError(t, err)
			assert.InDelta(t, want, got, 1e-12, "%s", e)
		}
	}
}

func TestEqual_Structural(t *testing.T) {
	a := expr.NewArena()
	x, y := a.NewVariable(), a.NewVariable()

	assert.True(t, expr.Equal(expr.AddOf(expr.VarOf(x), expr.VarOf(y)), expr.AddOf(expr.VarOf(x), expr.VarOf(y))))
	assert.False(t, expr.Equal(expr.AddOf(expr.VarOf(x), expr.VarOf(y)), expr.AddOf(expr.VarOf(y), expr.VarOf(x))),
		"commuted operands are not structurally equal")
	assert.True(t, expr.Equal(expr.SinOf(expr.VarOf(x)), expr.SinOf(expr.VarOf(x))))
	assert.False(t, expr.Equal(expr.SinOf(expr.VarOf(x)), expr.CosOf(expr.VarOf(x))))
	assert.False(t, expr.Equal(expr.Num(1), expr.VarOf(x)))
}
