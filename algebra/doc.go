// Package algebra provides the term/expression model of second-quantized
// operator algebra: typed indices, creation/annihilation operators,
// labeled tensors with permutation symmetry, terms with exact rational
// coefficients, and expressions with canonical-form merging.
//
// What
//
//   - Index — a (space label, ordinal) handle bound to a registered
//     orbital space.
//   - Operator — Create or Annihilate over an Index; statistics come
//     from the index's space.
//   - Tensor — label + ordered upper/lower index lists + declared
//     Symmetry (Antisymmetric, Symmetric, Nonsymmetric).
//   - Term — exact rational coefficient × tensor factors × ordered
//     operator product. Every index in a term is a summation dummy.
//   - Expression — an insertion-ordered sum of terms, merged by
//     canonical-free structural key; Canonicalize reduces every term
//     to its unique representative and cancels exact zeros.
//   - ParseOperators / OperatorExpr — the operator mini-language
//     ("v+ v+ o o") and the many-body operator builder.
//
// Why
//
//	Everything downstream (Wick contraction, commutators, equation
//	extraction) is expression surgery. Exactness is the system's
//	core guarantee: coefficients are big.Rat, every reordering tracks
//	its sign, and no transformation is applied unless it is a genuine
//	algebraic identity.
//
// Canonical form
//
//	Canonicalize sorts operators toward creation-before-annihilation
//	order (tie-break: space label, then ordinal) by adjacent
//	transpositions; a fermion–fermion transposition flips the sign,
//	transpositions involving a boson are sign-free. Two exceptions
//	keep every step exact:
//	  - a creation/annihilation pair on the same index is rewritten by
//	    the exact (anti)commutator a⁻(p)a⁺(p) = 1 ∓ a⁺(p)a⁻(p),
//	    branching the term;
//	  - a creation/annihilation pair on the same space but different
//	    indices is a sort barrier: under the implicit index summation
//	    that transposition is not a pure sign.
//	Antisymmetric tensor index lists are sorted with the permutation
//	sign, symmetric ones sign-free, nonsymmetric ones left rigid; all
//	dummy indices are then relabeled per space by first appearance,
//	and the whole pass repeats to a fixpoint. A term mapped to minus
//	itself by any same-space index swap is identically zero.
//
// Ordering caveat
//
//	Wick contraction eligibility depends on operator order, so
//	canonicalize the *output* of wick.Contract, not its input: an
//	input canonicalized first describes a different operator product.
//
// Complexity
//
//	Canonicalization is polynomial per term (bubble sorts over a few
//	dozen symbols); expression merge is O(1) amortized per term via
//	the structural key map.
//
// Errors
//
//   - ErrIndexArityMismatch  a tensor label reused at a different arity.
//   - ErrBadIndexMap         a non-injective Reindex map.
//   - ErrBadOperatorToken    malformed mini-language token.
//   - space.ErrUnknownSpace  an index over an unregistered space.
package algebra
