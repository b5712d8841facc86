package bch

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/katalvlaran/secondq/algebra"
	"github.com/katalvlaran/secondq/space"
)

// Sentinel errors for commutator and series construction.
var (
	// ErrTooFewOperands is returned when Commutator receives fewer than
	// two expressions.
	ErrTooFewOperands = errors.New("bch: commutator needs at least two operands")

	// ErrNegativeOrder is returned by Series for a negative truncation order.
	ErrNegativeOrder = errors.New("bch: negative series order")

	// ErrNilRegistry is returned if a nil registry is passed.
	ErrNilRegistry = errors.New("bch: registry is nil")

	// ErrNilExpression is returned if a nil expression operand is passed.
	ErrNilExpression = errors.New("bch: expression is nil")
)

// Commutator returns the left-nested commutator of its operands,
// [[[a,b],c],...], canonicalized. At least two operands are required.
func Commutator(reg *space.Registry, exprs ...*algebra.Expression) (*algebra.Expression, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}
	if len(exprs) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewOperands, len(exprs))
	}
	for _, e := range exprs {
		if e == nil {
			return nil, ErrNilExpression
		}
	}
	acc := exprs[0].Clone()
	for _, b := range exprs[1:] {
		next, err := commute(acc, b)
		if err != nil {
			return nil, err
		}
		acc = next
	}

	return acc.Canonicalize(reg)
}

// Series returns the Baker–Campbell–Hausdorff expansion of
// e^{-b}·a·e^{b} truncated at the given nesting order:
//
//	Σ_{k=0..order} 1/k! [..[a,b],..,b]   (k commutators)
//
// Every intermediate commutator is canonicalized before the next
// nesting, which keeps the term count bounded without changing the
// operator the sum represents.
func Series(reg *space.Registry, a, b *algebra.Expression, order int) (*algebra.Expression, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}
	if a == nil || b == nil {
		return nil, ErrNilExpression
	}
	if order < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeOrder, order)
	}

	out := algebra.NewExpression()
	if err := out.AddExpr(a); err != nil {
		return nil, err
	}
	cur := a.Clone()
	fact := big.NewRat(1, 1)
	for k := 1; k <= order; k++ {
		next, err := commute(cur, b)
		if err != nil {
			return nil, err
		}
		cur, err = next.Canonicalize(reg)
		if err != nil {
			return nil, err
		}
		fact.Mul(fact, big.NewRat(1, int64(k)))
		if err = out.AddExpr(cur.Clone().Scale(fact)); err != nil {
			return nil, err
		}
	}

	return out.Canonicalize(reg)
}

// commute returns a·b − b·a without canonicalizing.
func commute(a, b *algebra.Expression) (*algebra.Expression, error) {
	ab, err := a.Mul(b)
	if err != nil {
		return nil, err
	}
	ba, err := b.Mul(a)
	if err != nil {
		return nil, err
	}
	if err = ab.AddExpr(ba.Neg()); err != nil {
		return nil, err
	}

	return ab, nil
}
