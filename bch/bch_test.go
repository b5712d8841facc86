package bch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/secondq/algebra"
	"github.com/katalvlaran/secondq/bch"
	"github.com/katalvlaran/secondq/space"
)

func newRegistry(t *testing.T) *space.Registry {
	t.Helper()
	reg := space.NewRegistry()
	require.NoError(t, reg.AddSpace('o', space.Fermion, space.Occupied, []string{"i", "j", "k", "l"}))
	require.NoError(t, reg.AddSpace('v', space.Fermion, space.Unoccupied, []string{"a", "b", "c", "d"}))
	reg.Freeze()

	return reg
}

func operator(t *testing.T, reg *space.Registry, label string, comps ...string) *algebra.Expression {
	t.Helper()
	e, err := algebra.OperatorExpr(reg, label, comps, algebra.Nonsymmetric)
	require.NoError(t, err)

	return e
}

// TestCommutator_Antisymmetry: [a,b] = -[b,a] term by term.
func TestCommutator_Antisymmetry(t *testing.T) {
	reg := newRegistry(t)
	f := operator(t, reg, "f", "o+ v")
	t1 := operator(t, reg, "t", "v+ o")

	ab, err := bch.Commutator(reg, f, t1)
	require.NoError(t, err)
	ba, err := bch.Commutator(reg, t1, f)
	require.NoError(t, err)
	assert.True(t, ab.Equal(ba.Neg()))
}

// TestCommutator_SelfVanishes: [a,a] = 0 exactly.
func TestCommutator_SelfVanishes(t *testing.T) {
	reg := newRegistry(t)
	f := operator(t, reg, "f", "o+ v", "v+ o")

	c, err := bch.Commutator(reg, f, f)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
}

// TestCommutator_ExcitationsCommute: two pure excitation operators
// commute, and the canonicalizer proves it.
func TestCommutator_ExcitationsCommute(t *testing.T) {
	reg := newRegistry(t)
	t1 := operator(t, reg, "t", "v+ o")
	s1 := operator(t, reg, "s", "v+ o")

	c, err := bch.Commutator(reg, t1, s1)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
}

// TestCommutator_MixedBlocksNonzero: a deexcitation against an
// excitation does not commute.
func TestCommutator_MixedBlocksNonzero(t *testing.T) {
	reg := newRegistry(t)
	f := operator(t, reg, "f", "o+ v")
	t1 := operator(t, reg, "t", "v+ o")

	c, err := bch.Commutator(reg, f, t1)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
}

// TestCommutator_Nested: the variadic form nests left,
// [[a,b],c] with three operands.
func TestCommutator_Nested(t *testing.T) {
	reg := newRegistry(t)
	f := operator(t, reg, "f", "o+ v")
	t1 := operator(t, reg, "t", "v+ o")

	inner, err := bch.Commutator(reg, f, t1)
	require.NoError(t, err)
	viaInner, err := bch.Commutator(reg, inner, t1)
	require.NoError(t, err)
	direct, err := bch.Commutator(reg, f, t1, t1)
	require.NoError(t, err)
	assert.True(t, direct.Equal(viaInner))
}

// TestCommutator_Errors covers the operand guards.
func TestCommutator_Errors(t *testing.T) {
	reg := newRegistry(t)
	f := operator(t, reg, "f", "o+ v")

	_, err := bch.Commutator(nil, f, f)
	assert.ErrorIs(t, err, bch.ErrNilRegistry)

	_, err = bch.Commutator(reg, f)
	assert.ErrorIs(t, err, bch.ErrTooFewOperands)

	_, err = bch.Commutator(reg, f, nil)
	assert.ErrorIs(t, err, bch.ErrNilExpression)
}

// TestSeries_OrderZero truncates before the first commutator.
func TestSeries_OrderZero(t *testing.T) {
	reg := newRegistry(t)
	f := operator(t, reg, "f", "o+ v")
	t1 := operator(t, reg, "t", "v+ o")

	s, err := bch.Series(reg, f, t1, 0)
	require.NoError(t, err)
	want, err := f.Canonicalize(reg)
	require.NoError(t, err)
	assert.True(t, s.Equal(want))
}

// TestSeries_OrderOne matches a + [a,b] assembled by hand.
func TestSeries_OrderOne(t *testing.T) {
	reg := newRegistry(t)
	f := operator(t, reg, "f", "o+ v")
	t1 := operator(t, reg, "t", "v+ o")

	s, err := bch.Series(reg, f, t1, 1)
	require.NoError(t, err)

	comm, err := bch.Commutator(reg, f, t1)
	require.NoError(t, err)
	want := f.Clone()
	require.NoError(t, want.AddExpr(comm))
	wantC, err := want.Canonicalize(reg)
	require.NoError(t, err)
	assert.True(t, s.Equal(wantC))
}

// TestSeries_OrderTwo_SixTerms: for noncommuting single-term operators
// the order-2 expansion is a + ab - ba + 1/2 abb - bab + 1/2 bba, six
// distinct canonical terms (the two -bab contributions of the nested
// commutator merge).
func TestSeries_OrderTwo_SixTerms(t *testing.T) {
	reg := newRegistry(t)
	f := operator(t, reg, "f", "o+ v")
	t1 := operator(t, reg, "t", "v+ o")

	s, err := bch.Series(reg, f, t1, 2)
	require.NoError(t, err)
	assert.Equal(t, 6, s.Len())

	mul := func(a, b *algebra.Expression) *algebra.Expression {
		p, mErr := a.Mul(b)
		require.NoError(t, mErr)

		return p
	}
	half := algebra.Rat(1, 2)
	want := f.Clone()
	require.NoError(t, want.AddExpr(mul(f, t1)))
	require.NoError(t, want.AddExpr(mul(t1, f).Neg()))
	require.NoError(t, want.AddExpr(mul(mul(f, t1), t1).Scale(half)))
	require.NoError(t, want.AddExpr(mul(mul(t1, f), t1).Neg()))
	require.NoError(t, want.AddExpr(mul(mul(t1, t1), f).Scale(half)))
	wantC, err := want.Canonicalize(reg)
	require.NoError(t, err)
	assert.True(t, s.Equal(wantC))
}

// TestSeries_ScalarGenerator: commuting with a pure scalar vanishes at
// every order, leaving a alone.
func TestSeries_ScalarGenerator(t *testing.T) {
	reg := newRegistry(t)
	f := operator(t, reg, "f", "o+ v")
	scalar, err := algebra.FromTerms(algebra.ScalarTerm(algebra.Rat(7, 3)))
	require.NoError(t, err)

	s, err := bch.Series(reg, f, scalar, 4)
	require.NoError(t, err)
	want, err := f.Canonicalize(reg)
	require.NoError(t, err)
	assert.True(t, s.Equal(want))
}

// TestSeries_Errors covers the order and nil guards.
func TestSeries_Errors(t *testing.T) {
	reg := newRegistry(t)
	f := operator(t, reg, "f", "o+ v")

	_, err := bch.Series(reg, f, f, -1)
	assert.ErrorIs(t, err, bch.ErrNegativeOrder)

	_, err = bch.Series(reg, nil, f, 1)
	assert.ErrorIs(t, err, bch.ErrNilExpression)

	_, err = bch.Series(nil, f, f, 1)
	assert.ErrorIs(t, err, bch.ErrNilRegistry)
}
