// Package wick applies Wick's theorem: it consumes an expression whose
// terms are products of second-quantized operator strings over a
// declared vacuum and produces the expression of all valid
// contractions whose residual (uncontracted) operator count lies in a
// requested [minrank, maxrank] window.
//
// What
//
//   - Contract(reg, expr, minrank, maxrank, opts...) — every partial
//     matching of each term's operators into contracted pairs plus an
//     order-preserving residual, with the standard fermion sign rule,
//     accumulated and canonicalized.
//   - NormalOrder(reg, expr, opts...) — Contract with the widest rank
//     window: the vacuum normal-ordered form of the expression.
//
// Vacuum rule
//
//	A creation and an annihilation operator on the same space may
//	contract only in the order the vacuum makes nonzero:
//	  - Occupied space: creation left of annihilation (hole contraction).
//	  - Unoccupied space: annihilation left of creation (particle contraction).
//	  - General space: no contraction is implied by occupation; every
//	    operator index over a general space is first branched over the
//	    space's declared elementary components (declaration order),
//	    each branch contracted separately.
//	Pairings across different spaces, including fermion/boson
//	mismatches, never match and contribute nothing.
//
// Ordering caveat
//
//	Eligibility depends on the operators' left-to-right order, so
//	Contract consumes terms exactly as constructed. Canonicalize the
//	result, not the input: algebra.Canonicalize reorders operators and
//	therefore describes a different operator product.
//
// Enumeration
//
//	The matching search runs on an explicit frame stack over a uint64
//	bitset of operator slots (at most 64 operators per term), deciding
//	slots left to right: leave the slot uncontracted or pair it with an
//	eligible later slot. The rank window prunes inside the search:
//	a branch dies as soon as its committed residual exceeds maxrank or
//	cannot reach minrank. Operators interchangeable under a
//	sign-preserving symmetry of the term (for example two lines of one
//	antisymmetrized amplitude) are factored: one representative partner
//	is expanded and the branch weight multiplied by the class size,
//	instead of enumerating equal matchings one by one.
//
// Concurrency
//
//	Per-term searches share only the read-only registry. WithWorkers
//	fans terms out across a pool and merges results in input order, so
//	the output is identical to the single-threaded run. Derivations run
//	to completion; bound the rank window rather than expecting
//	cancellation.
//
// Complexity
//
//	Worst case the number of matchings is factorial in the operator
//	count; the rank window and automorphism factoring are the two
//	mechanisms that keep real derivations tractable.
//
// Errors
//
//   - ErrInvalidRankWindow       minrank < 0 or minrank > maxrank.
//   - ErrTooManyOperators        a term with more than 64 operators.
//   - ErrBadOption               invalid functional option (e.g. WithWorkers(0)).
//   - ErrNilRegistry, ErrNilExpression guards.
//   - space.ErrUnknownSpace      an operator over an unregistered space.
//   - space.ErrNoDecomposition   a general-space operator with no
//     declared elementary components.
package wick
