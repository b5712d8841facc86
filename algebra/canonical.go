package algebra

import (
	"math/big"
	"sort"

	"github.com/katalvlaran/secondq/space"
)

// maxCanonicalPasses bounds the relabel/sort fixpoint iteration; real
// terms stabilize in two or three passes.
const maxCanonicalPasses = 64

// Canonicalize returns the canonical form of the expression: every
// term reduced to its unique representative (see the package docs),
// equal representatives merged with exact coefficient addition, and
// zero-coefficient terms removed.
func (e *Expression) Canonicalize(reg *space.Registry) (*Expression, error) {
	out := NewExpression()
	for _, k := range e.keys {
		branches, err := canonicalTerm(reg, *e.terms[k])
		if err != nil {
			return nil, err
		}
		for _, t := range branches {
			if err = out.Add(t); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// canonicalTerm reduces one term. Same-index creation/annihilation
// rewrites branch the term, so the result is a (usually singleton,
// possibly empty) list of canonical terms.
func canonicalTerm(reg *space.Registry, t Term) ([]Term, error) {
	work := []Term{t.Clone()}
	var done []Term
	for len(work) > 0 {
		cur := work[len(work)-1]
		work = work[:len(work)-1]

		fixed, branches, err := canonicalFixpoint(reg, cur)
		if err != nil {
			return nil, err
		}
		if branches != nil {
			work = append(work, branches...)

			continue
		}
		if fixed.IsZero() {
			continue
		}
		zero, err := cancelsSelf(reg, fixed)
		if err != nil {
			return nil, err
		}
		if !zero {
			done = append(done, fixed)
		}
	}

	return done, nil
}

// canonicalFixpoint iterates sort+relabel passes until the structural
// key revisits itself, then returns the smallest-key member of that
// cycle (for an ordinary fixpoint the cycle has length one). When an
// operator sort hits a same-index creation/annihilation pair it
// returns the rewrite branches instead.
func canonicalFixpoint(reg *space.Registry, t Term) (Term, []Term, error) {
	t = t.Clone()
	order := make([]string, 0, 4)
	seen := make(map[string]Term)
	for pass := 0; pass < maxCanonicalPasses; pass++ {
		branches, err := sortOperators(reg, &t)
		if err != nil {
			return Term{}, nil, err
		}
		if branches != nil {
			return Term{}, branches, nil
		}
		sortTensorIndices(&t)
		if t.IsZero() {
			return t, nil, nil
		}
		sortTensorFactors(&t)
		relabelDummies(&t)

		key := t.Key()
		if first, ok := seen[key]; ok {
			best := first
			past := false
			for _, k := range order {
				past = past || k == key
				if past && seen[k].Key() < best.Key() {
					best = seen[k]
				}
			}

			return best, nil, nil
		}
		seen[key] = t.Clone()
		order = append(order, key)
	}
	panic("algebra: canonicalization did not stabilize: " + t.Key())
}

// opRank orders operators: creation before annihilation, then space
// label, then ordinal.
func opRank(o Operator) (int, byte, int) {
	class := 1
	if o.Kind == Create {
		class = 0
	}

	return class, o.Index.Space, o.Index.Ord
}

// opAfter reports whether a belongs strictly after b.
func opAfter(a, b Operator) bool {
	ac, as, ao := opRank(a)
	bc, bs, bo := opRank(b)
	if ac != bc {
		return ac > bc
	}
	if as != bs {
		return as > bs
	}

	return ao > bo
}

// sortOperators bubble-sorts the operator product toward canonical
// order by adjacent transpositions, negating the coefficient for every
// fermion-fermion transposition. A creation/annihilation pair on the
// same space is never transposed: equal indices trigger the exact
// (anti)commutator rewrite (branches returned), different indices form
// a summation barrier. Adjacent equal fermion operators square to zero.
func sortOperators(reg *space.Registry, t *Term) ([]Term, error) {
	sign := 1
	ops := t.Ops
	for changed := true; changed; {
		changed = false
		for i := 0; i+1 < len(ops); i++ {
			a, b := ops[i], ops[i+1]
			fa, err := fieldOf(reg, a.Index.Space)
			if err != nil {
				return nil, err
			}
			fb, err := fieldOf(reg, b.Index.Space)
			if err != nil {
				return nil, err
			}
			if a == b && fa == space.Fermion {
				t.Coef.SetInt64(0)

				return nil, nil
			}
			if !opAfter(a, b) {
				continue
			}
			if a.Index.Space == b.Index.Space && a.Kind != b.Kind {
				if a.Index == b.Index {
					if sign < 0 {
						t.Coef.Neg(t.Coef)
					}

					return rewriteSameIndexPair(t, i, fa), nil
				}
				// Same space, different dummies: transposing under the
				// implicit summation is not a pure sign. Sort barrier.
				continue
			}
			if fa == space.Fermion && fb == space.Fermion {
				sign = -sign
			}
			ops[i], ops[i+1] = b, a
			changed = true
		}
	}
	if sign < 0 {
		t.Coef.Neg(t.Coef)
	}

	return nil, nil
}

// rewriteSameIndexPair applies a⁻(p)a⁺(p) = 1 ∓ a⁺(p)a⁻(p) at position
// i (fermion: minus, boson: plus), returning the contracted branch and
// the transposed branch.
func rewriteSameIndexPair(t *Term, i int, field space.FieldType) []Term {
	contracted := t.Clone()
	contracted.Ops = append(contracted.Ops[:i], contracted.Ops[i+2:]...)

	swapped := t.Clone()
	swapped.Ops[i], swapped.Ops[i+1] = swapped.Ops[i+1], swapped.Ops[i]
	if field == space.Fermion {
		swapped.Coef.Neg(swapped.Coef)
	}

	return []Term{contracted, swapped}
}

// sortTensorIndices sorts each tensor's upper and lower index lists
// per its declared symmetry: antisymmetric with the permutation sign
// (a repeated index zeroes the term), symmetric sign-free,
// nonsymmetric left rigid.
func sortTensorIndices(t *Term) {
	for i := range t.Tensors {
		f := &t.Tensors[i]
		switch f.Symmetry {
		case Antisymmetric:
			swaps := sortIndices(f.Upper) + sortIndices(f.Lower)
			if swaps%2 == 1 {
				t.Coef.Neg(t.Coef)
			}
			if hasAdjacentDup(f.Upper) || hasAdjacentDup(f.Lower) {
				t.Coef.SetInt64(0)

				return
			}
		case Symmetric:
			sortIndices(f.Upper)
			sortIndices(f.Lower)
		case Nonsymmetric:
			// rigid label: original order is part of the tensor's identity
		}
	}
}

// sortIndices bubble-sorts by (space, ordinal) and returns the number
// of transpositions performed.
func sortIndices(list []Index) int {
	swaps := 0
	for changed := true; changed; {
		changed = false
		for i := 0; i+1 < len(list); i++ {
			if list[i+1].Less(list[i]) {
				list[i], list[i+1] = list[i+1], list[i]
				swaps++
				changed = true
			}
		}
	}

	return swaps
}

func hasAdjacentDup(list []Index) bool {
	for i := 0; i+1 < len(list); i++ {
		if list[i] == list[i+1] {
			return true
		}
	}

	return false
}

// sortTensorFactors orders the (mutually commuting) tensor factors by
// label, then arity, then rendered indices.
func sortTensorFactors(t *Term) {
	sort.SliceStable(t.Tensors, func(i, j int) bool {
		a, b := t.Tensors[i], t.Tensors[j]
		if a.Label != b.Label {
			return a.Label < b.Label
		}
		if len(a.Upper) != len(b.Upper) {
			return len(a.Upper) < len(b.Upper)
		}
		if len(a.Lower) != len(b.Lower) {
			return len(a.Lower) < len(b.Lower)
		}

		return a.String() < b.String()
	})
}

// relabelDummies renames every index to per-space ordinals 0,1,2,...
// in first-appearance order (tensors before operators), so terms that
// differ only by a bijective dummy relabeling share one key.
func relabelDummies(t *Term) {
	next := make(map[byte]int)
	m := make(map[Index]Index)
	for _, idx := range t.indices() {
		m[idx] = NewIndex(idx.Space, next[idx.Space])
		next[idx.Space]++
	}
	*t = t.Reindex(m)
}

// cancelsSelf reports whether any transposition of two same-space
// dummies maps the canonical term to itself with a negated
// coefficient, which makes the term identically zero (for example an
// antisymmetric tensor contracted with a symmetric partner over the
// swapped pair).
func cancelsSelf(reg *space.Registry, t Term) (bool, error) {
	idxs := t.indices()
	neg := new(big.Rat).Neg(t.Coef)
	for i := 0; i < len(idxs); i++ {
		for j := i + 1; j < len(idxs); j++ {
			if idxs[i].Space != idxs[j].Space {
				continue
			}
			swapped := t.Reindex(map[Index]Index{idxs[i]: idxs[j], idxs[j]: idxs[i]})
			fixed, branches, err := canonicalFixpoint(reg, swapped)
			if err != nil {
				return false, err
			}
			if branches != nil {
				continue
			}
			if fixed.Key() == t.Key() && fixed.Coef.Cmp(neg) == 0 {
				return true, nil
			}
		}
	}

	return false, nil
}

// fieldOf resolves the statistics of a space label.
func fieldOf(reg *space.Registry, label byte) (space.FieldType, error) {
	sp, err := reg.Resolve(label)
	if err != nil {
		return 0, err
	}

	return sp.Field, nil
}
