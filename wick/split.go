package wick

import (
	"github.com/katalvlaran/secondq/algebra"
	"github.com/katalvlaran/secondq/space"
)

// splitGeneral branches a term over the elementary components of every
// general space carried by one of its operator indices: a general
// index sum is the union of its occupied/unoccupied component sums, so
// each component substitution is a separate, exactly equivalent
// branch. Indices that appear only on tensors are left alone; only
// operators take part in pairing.
func splitGeneral(reg *space.Registry, t algebra.Term) ([]algebra.Term, error) {
	work := []algebra.Term{t}
	var out []algebra.Term
	for len(work) > 0 {
		cur := work[len(work)-1]
		work = work[:len(work)-1]

		idx, found, err := firstGeneralOpIndex(reg, cur)
		if err != nil {
			return nil, err
		}
		if !found {
			out = append(out, cur)

			continue
		}
		comps, err := reg.Elementary(idx.Space)
		if err != nil {
			return nil, err
		}
		for _, comp := range comps {
			repl := algebra.NewIndex(comp, nextOrdinal(cur, comp))
			work = append(work, cur.Reindex(map[algebra.Index]algebra.Index{idx: repl}))
		}
	}

	return out, nil
}

// firstGeneralOpIndex returns the first operator index (left to right)
// whose space is General, resolving every operator space as it goes.
func firstGeneralOpIndex(reg *space.Registry, t algebra.Term) (algebra.Index, bool, error) {
	for _, op := range t.Ops {
		sp, err := reg.Resolve(op.Index.Space)
		if err != nil {
			return algebra.Index{}, false, err
		}
		if sp.Kind == space.General {
			return op.Index, true, nil
		}
	}

	return algebra.Index{}, false, nil
}

// nextOrdinal returns the first ordinal unused by label's indices in t.
func nextOrdinal(t algebra.Term, label byte) int {
	next := 0
	for _, idx := range t.Indices() {
		if idx.Space == label && idx.Ord+1 > next {
			next = idx.Ord + 1
		}
	}

	return next
}
