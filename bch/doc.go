// Package bch builds commutators and the truncated
// Baker–Campbell–Hausdorff similarity transform on top of the exact
// operator algebra.
//
// What
//
//   - Commutator(reg, a, b, c, ...) — the left-nested commutator
//     [[[a,b],c],...], canonicalized.
//   - Series(reg, a, b, order) — the BCH expansion of e^{-b}·a·e^{b}
//     truncated after the order-th nested commutator:
//
//	a + [a,b] + 1/2! [[a,b],b] + ... + 1/order! [..[a,b],..,b]
//
// Why
//
//	Similarity-transformed operators are the backbone of coupled-cluster
//	style derivations; truncating the nesting depth is how a finite
//	working equation is cut out of the exponential.
//
// Exactness
//
//	Products, signs and the 1/k! weights are exact rationals; every
//	intermediate is canonicalized with the same operator identities the
//	rest of the module uses, so nothing is reordered approximately.
//
// Errors
//
//   - ErrTooFewOperands   Commutator needs at least two expressions.
//   - ErrNegativeOrder    Series with order < 0.
//   - ErrNilRegistry, ErrNilExpression guards.
package bch
