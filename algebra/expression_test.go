package algebra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/secondq/algebra"
)

// singlesTerm is f^{v0}_{o0} a+(v0) a-(o0) with the given coefficient.
func singlesTerm(p, q int64) algebra.Term {
	v0 := algebra.NewIndex('v', 0)
	o0 := algebra.NewIndex('o', 0)

	return algebra.NewTerm(
		algebra.Rat(p, q),
		[]algebra.Tensor{algebra.NewTensor("f", []algebra.Index{v0}, []algebra.Index{o0}, algebra.Nonsymmetric)},
		[]algebra.Operator{algebra.Cre(v0), algebra.Ann(o0)},
	)
}

// TestExpression_AddMergesAndCancels checks exact accumulation by
// structural key and removal of exact zeros.
func TestExpression_AddMergesAndCancels(t *testing.T) {
	e := algebra.NewExpression()
	require.NoError(t, e.Add(singlesTerm(1, 2)))
	require.NoError(t, e.Add(singlesTerm(3, 2)))

	require.Equal(t, 1, e.Len())
	key := singlesTerm(1, 1).Key()
	assert.Zero(t, e.Coef(key).Cmp(algebra.Rat(2, 1)), "1/2 + 3/2 must accumulate to exactly 2")

	require.NoError(t, e.Add(singlesTerm(-2, 1)))
	assert.Equal(t, 0, e.Len(), "an exact zero term must be removed")
	assert.Nil(t, e.Coef(key))
}

// TestExpression_ArityMismatch rejects reusing a tensor label at a
// different arity.
func TestExpression_ArityMismatch(t *testing.T) {
	o0 := algebra.NewIndex('o', 0)
	e := algebra.NewExpression()
	require.NoError(t, e.Add(algebra.NewTerm(nil,
		[]algebra.Tensor{algebra.NewTensor("f", []algebra.Index{o0}, []algebra.Index{o0}, algebra.Nonsymmetric)}, nil)))

	err := e.Add(algebra.NewTerm(nil,
		[]algebra.Tensor{algebra.NewTensor("f", nil, []algebra.Index{o0}, algebra.Nonsymmetric)}, nil))
	assert.ErrorIs(t, err, algebra.ErrIndexArityMismatch)
}

// TestTerm_MulAvoidsCapture verifies that the right factor's dummies
// are shifted past the left factor's before concatenation.
func TestTerm_MulAvoidsCapture(t *testing.T) {
	v0 := algebra.NewIndex('v', 0)
	o0 := algebra.NewIndex('o', 0)
	left := singlesTerm(1, 1)
	right := algebra.NewTerm(nil,
		[]algebra.Tensor{algebra.NewTensor("t", []algebra.Index{o0}, []algebra.Index{v0}, algebra.Nonsymmetric)},
		[]algebra.Operator{algebra.Cre(v0), algebra.Ann(o0)},
	)

	prod := left.Mul(right)
	assert.Equal(t, "f^{v0}_{o0} t^{o1}_{v1} a+(v0) a-(o0) a+(v1) a-(o1)", prod.Key())
	assert.Zero(t, prod.Coef.Cmp(algebra.Rat(1, 1)))
}

// TestExpression_ReindexRejectsNonInjective guards external index
// alignment against merging distinct dummies.
func TestExpression_ReindexRejectsNonInjective(t *testing.T) {
	e, err := algebra.FromTerms(singlesTerm(1, 1))
	require.NoError(t, err)

	_, err = e.Reindex(map[algebra.Index]algebra.Index{
		algebra.NewIndex('o', 0): algebra.NewIndex('o', 7),
		algebra.NewIndex('v', 0): algebra.NewIndex('o', 7),
	})
	assert.ErrorIs(t, err, algebra.ErrBadIndexMap)
}

// TestExpression_AdjointInvolution checks that conjugating twice is the
// identity on the stored representation.
func TestExpression_AdjointInvolution(t *testing.T) {
	e, err := algebra.FromTerms(singlesTerm(3, 4))
	require.NoError(t, err)

	adj := e.Adjoint()
	assert.Equal(t, "3/4 f^{o0}_{v0} a+(o0) a-(v0)", adj.String(), "roles swap, operator order reverses")
	assert.True(t, e.Equal(adj.Adjoint()))
}

// TestExpression_Dot sums coefficient products over shared keys.
func TestExpression_Dot(t *testing.T) {
	e1, err := algebra.FromTerms(singlesTerm(3, 2), algebra.ScalarTerm(algebra.Rat(5, 1)))
	require.NoError(t, err)
	e2, err := algebra.FromTerms(singlesTerm(2, 1))
	require.NoError(t, err)

	assert.Zero(t, e1.Dot(e2).Cmp(algebra.Rat(3, 1)), "3/2 * 2 over the one shared key")
	assert.Zero(t, e2.Dot(e1).Cmp(algebra.Rat(3, 1)), "dot is symmetric")
}

// TestExpression_ScaleAndNeg covers in-place coefficient maps,
// including the zero scale wiping the expression.
func TestExpression_ScaleAndNeg(t *testing.T) {
	e, err := algebra.FromTerms(singlesTerm(1, 2))
	require.NoError(t, err)
	key := singlesTerm(1, 1).Key()

	e.Scale(algebra.Rat(4, 1)).Neg()
	assert.Zero(t, e.Coef(key).Cmp(algebra.Rat(-2, 1)))

	e.Scale(algebra.Rat(0, 1))
	assert.Equal(t, 0, e.Len())
}

// TestExpression_String pins the multi-line rendering with explicit
// signs from the second term on.
func TestExpression_String(t *testing.T) {
	e, err := algebra.FromTerms(singlesTerm(3, 2), algebra.ScalarTerm(algebra.Rat(-1, 3)))
	require.NoError(t, err)

	assert.Equal(t, "3/2 f^{v0}_{o0} a+(v0) a-(o0)\n-1/3", e.String())
}

// TestTerm_Latex pins the LaTeX rendering of a fractional term.
func TestTerm_Latex(t *testing.T) {
	got := singlesTerm(-1, 2).Latex()
	assert.Equal(t, `-\frac{1}{2} f^{v_{0}}_{o_{0}} \hat{a}^{\dagger}_{v_{0}} \hat{a}_{o_{0}}`, got)
}

// TestExpression_Latex drops the leading plus of the first term only.
func TestExpression_Latex(t *testing.T) {
	e, err := algebra.FromTerms(singlesTerm(1, 1), algebra.ScalarTerm(algebra.Rat(2, 1)))
	require.NoError(t, err)

	assert.Equal(t, "f^{v_{0}}_{o_{0}} \\hat{a}^{\\dagger}_{v_{0}} \\hat{a}_{o_{0}}\n+2", e.Latex("\n"))
}
